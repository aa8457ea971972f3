package repositories

import (
	"context"
	"strings"
	"testing"

	"agencyportal/internal/assets"
	"agencyportal/internal/docstore"
	"agencyportal/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBlogFixture(t *testing.T) (BlogRepository, *fakeStorage) {
	t.Helper()
	store := docstore.NewMemoryStore()
	blobs := newFakeStorage()
	manager := assets.NewManager(blobs, 1024, []string{"image/jpeg"})
	return NewBlogRepository(store, manager), blobs
}

func TestBlogRepository_DraftsHiddenFromPublicView(t *testing.T) {
	ctx := context.Background()
	repo, _ := newBlogFixture(t)

	published, err := repo.Save(ctx, models.BlogPost{
		Title:    "Runway Season",
		Content:  "...",
		Category: models.BlogCategoryFashion,
		Status:   models.BlogStatusPublished,
	}, nil)
	require.NoError(t, err)

	_, err = repo.Save(ctx, models.BlogPost{
		Title:    "Work in progress",
		Content:  "...",
		Category: models.BlogCategoryLifestyle,
	}, nil)
	require.NoError(t, err)

	public, err := repo.ListPublished(ctx, models.BlogCategoryAll)
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, published.ID, public[0].ID)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestBlogRepository_CategoryFilter(t *testing.T) {
	ctx := context.Background()
	repo, _ := newBlogFixture(t)

	for _, cat := range []models.BlogCategory{
		models.BlogCategoryFashion,
		models.BlogCategoryFashion,
		models.BlogCategoryEvents,
	} {
		_, err := repo.Save(ctx, models.BlogPost{
			Title:    "post",
			Content:  "...",
			Category: cat,
			Status:   models.BlogStatusPublished,
		}, nil)
		require.NoError(t, err)
	}

	fashion, err := repo.ListPublished(ctx, models.BlogCategoryFashion)
	require.NoError(t, err)
	assert.Len(t, fashion, 2)

	everything, err := repo.ListPublished(ctx, "")
	require.NoError(t, err)
	assert.Len(t, everything, 3)

	_, err = repo.Save(ctx, models.BlogPost{
		Title:    "bad",
		Content:  "...",
		Category: models.BlogCategory("gossip"),
		Status:   models.BlogStatusPublished,
	}, nil)
	assert.Error(t, err, "unknown category rejected at the boundary")
}

func TestBlogRepository_SaveUploadsImageAndUpdates(t *testing.T) {
	ctx := context.Background()
	repo, blobs := newBlogFixture(t)

	post, err := repo.Save(ctx, models.BlogPost{
		Title:    "Backstage",
		Content:  "...",
		Category: models.BlogCategoryEvents,
		Status:   models.BlogStatusDraft,
	}, &assets.File{
		Name:        "cover.jpg",
		Size:        4,
		ContentType: "image/jpeg",
		Reader:      strings.NewReader("jpeg"),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, post.Image)
	assert.Len(t, blobs.objects, 1)
	assert.NotEmpty(t, post.CreatedAt)

	post.Status = models.BlogStatusPublished
	updated, err := repo.Save(ctx, *post, nil)
	require.NoError(t, err)
	assert.Equal(t, post.ID, updated.ID)
	assert.Equal(t, models.BlogStatusPublished, updated.Status)
	assert.Equal(t, post.CreatedAt, updated.CreatedAt, "createdAt is write-once")
	assert.Equal(t, post.Image, updated.Image, "image survives updates without a new upload")
	assert.NotEmpty(t, updated.UpdatedAt)
}

func TestBlogRepository_UpdateWithoutImageKeepsStoredCover(t *testing.T) {
	ctx := context.Background()
	repo, _ := newBlogFixture(t)

	post, err := repo.Save(ctx, models.BlogPost{
		Title:    "Backstage",
		Content:  "...",
		Category: models.BlogCategoryEvents,
		Status:   models.BlogStatusPublished,
	}, &assets.File{
		Name:        "cover.jpg",
		Size:        4,
		ContentType: "image/jpeg",
		Reader:      strings.NewReader("jpeg"),
	})
	require.NoError(t, err)
	require.NotEmpty(t, post.Image)

	// An edit form that never saw the stored URL submits an empty image.
	updated, err := repo.Save(ctx, models.BlogPost{
		ID:       post.ID,
		Title:    "Backstage, revisited",
		Content:  "...",
		Category: models.BlogCategoryEvents,
		Status:   models.BlogStatusPublished,
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Backstage, revisited", updated.Title)
	assert.Equal(t, post.Image, updated.Image, "stored cover is never erased by an imageless edit")
}
