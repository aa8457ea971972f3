package repositories

import (
	"context"

	"agencyportal/internal/assets"
	"agencyportal/internal/docstore"
	"agencyportal/internal/models"
	"agencyportal/pkg/apperrors"
)

// BlogRepository owns the blog collection. The public view sees published
// posts only; the admin view sees everything.
type BlogRepository interface {
	// Save creates the post when its id is empty, updates it otherwise.
	// A supplied image file is uploaded before any document write.
	Save(ctx context.Context, post models.BlogPost, image *assets.File) (*models.BlogPost, error)
	ListPublished(ctx context.Context, category models.BlogCategory) ([]models.BlogPost, error)
	ListAll(ctx context.Context) ([]models.BlogPost, error)
	Get(ctx context.Context, id string) (*models.BlogPost, error)
	Remove(ctx context.Context, id string) error
}

type BlogRepositoryImpl struct {
	store  docstore.Store
	assets *assets.Manager
}

func NewBlogRepository(store docstore.Store, assetManager *assets.Manager) BlogRepository {
	return &BlogRepositoryImpl{store: store, assets: assetManager}
}

func (r *BlogRepositoryImpl) Save(ctx context.Context, post models.BlogPost, image *assets.File) (*models.BlogPost, error) {
	if post.Status == "" {
		post.Status = models.BlogStatusDraft
	}
	if !post.Status.IsValid() {
		return nil, apperrors.ErrInvalidStatus("blog", "unknown post status: "+string(post.Status))
	}
	if !post.Category.IsValid() {
		return nil, apperrors.ErrInvalidStatus("blog", "unknown post category: "+string(post.Category))
	}

	if image != nil {
		url, err := r.assets.Upload(ctx, *image, "blog")
		if err != nil {
			return nil, err
		}
		post.Image = url
	}

	if post.ID == "" {
		post.CreatedAt = models.NowISO()
		doc, err := docstore.Encode(post)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		delete(doc, "id")

		id, err := r.store.Create(ctx, docstore.CollectionBlog, doc)
		if err != nil {
			return nil, apperrors.ErrStoreUnavailable(err)
		}
		post.ID = id
		return &post, nil
	}

	// Existing post: createdAt is write-once, everything else follows the
	// submitted document.
	partial := docstore.Document{
		"title":     post.Title,
		"content":   post.Content,
		"category":  string(post.Category),
		"status":    string(post.Status),
		"updatedAt": models.NowISO(),
	}
	// A save without a new image keeps the stored cover.
	if post.Image != "" {
		partial["image"] = post.Image
	}
	if err := r.store.Update(ctx, docstore.CollectionBlog, post.ID, partial); err != nil {
		return nil, storeErr(err)
	}
	return r.Get(ctx, post.ID)
}

// ListPublished returns published posts, newest first. The category filter
// applies only when it names a real category; "all" and empty return every
// published post. Draft posts never appear regardless of filter.
func (r *BlogRepositoryImpl) ListPublished(ctx context.Context, category models.BlogCategory) ([]models.BlogPost, error) {
	q := docstore.Query{}.
		Where("status", docstore.OpEqual, string(models.BlogStatusPublished)).
		Sort("createdAt", true)

	if category != "" && category != models.BlogCategoryAll {
		if !category.IsValid() {
			return nil, apperrors.ErrInvalidStatus("blog", "unknown post category: "+string(category))
		}
		q = q.Where("category", docstore.OpEqual, string(category))
	}

	records, err := r.store.List(ctx, docstore.CollectionBlog, q)
	if err != nil {
		return nil, apperrors.ErrStoreUnavailable(err)
	}
	return decodePosts(records)
}

func (r *BlogRepositoryImpl) ListAll(ctx context.Context) ([]models.BlogPost, error) {
	records, err := r.store.List(ctx, docstore.CollectionBlog,
		docstore.Query{}.Sort("createdAt", true))
	if err != nil {
		return nil, apperrors.ErrStoreUnavailable(err)
	}
	return decodePosts(records)
}

func (r *BlogRepositoryImpl) Get(ctx context.Context, id string) (*models.BlogPost, error) {
	rec, err := r.store.Get(ctx, docstore.CollectionBlog, id)
	if err != nil {
		return nil, storeErr(err)
	}
	var post models.BlogPost
	if err := docstore.Decode(rec.Data, &post); err != nil {
		return nil, apperrors.InternalError(err)
	}
	post.ID = rec.ID
	return &post, nil
}

func (r *BlogRepositoryImpl) Remove(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, docstore.CollectionBlog, id); err != nil {
		return storeErr(err)
	}
	return nil
}

func decodePosts(records []docstore.Record) ([]models.BlogPost, error) {
	out := make([]models.BlogPost, 0, len(records))
	for _, rec := range records {
		var post models.BlogPost
		if err := docstore.Decode(rec.Data, &post); err != nil {
			return nil, apperrors.InternalError(err)
		}
		post.ID = rec.ID
		out = append(out, post)
	}
	return out, nil
}
