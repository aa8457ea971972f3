package repositories

import (
	"context"
	"errors"

	"agencyportal/internal/assets"
	"agencyportal/internal/docstore"
	"agencyportal/internal/logger"
	"agencyportal/internal/models"
	"agencyportal/pkg/apperrors"
)

// ModelRepository owns the models collection and its photo assets.
type ModelRepository interface {
	List(ctx context.Context, status models.ModelStatus) ([]models.Model, error)
	Get(ctx context.Context, id string) (*models.Model, error)
	Add(ctx context.Context, m models.Model, photos []assets.File) (*models.Model, error)
	Update(ctx context.Context, id string, upd models.ModelUpdate) (*models.Model, error)
	Remove(ctx context.Context, id string) error
}

type ModelRepositoryImpl struct {
	store  docstore.Store
	assets *assets.Manager
}

func NewModelRepository(store docstore.Store, assetManager *assets.Manager) ModelRepository {
	return &ModelRepositoryImpl{store: store, assets: assetManager}
}

// List returns models, newest first. An empty status returns every model.
func (r *ModelRepositoryImpl) List(ctx context.Context, status models.ModelStatus) ([]models.Model, error) {
	q := docstore.Query{}.Sort("createdAt", true)
	if status != "" {
		if !status.IsValid() {
			return nil, apperrors.ErrInvalidStatus("models", "unknown model status: "+string(status))
		}
		q = q.Where("status", docstore.OpEqual, string(status))
	}

	records, err := r.store.List(ctx, docstore.CollectionModels, q)
	if err != nil {
		return nil, apperrors.ErrStoreUnavailable(err)
	}
	return decodeModels(records)
}

func (r *ModelRepositoryImpl) Get(ctx context.Context, id string) (*models.Model, error) {
	rec, err := r.store.Get(ctx, docstore.CollectionModels, id)
	if err != nil {
		return nil, storeErr(err)
	}
	var m models.Model
	if err := docstore.Decode(rec.Data, &m); err != nil {
		return nil, apperrors.InternalError(err)
	}
	m.ID = rec.ID
	return &m, nil
}

// Add uploads every photo first and only then creates the record, so an
// upload failure never leaves a partial document. Photos already uploaded
// by the failed attempt are reclaimed best-effort.
func (r *ModelRepositoryImpl) Add(ctx context.Context, m models.Model, photos []assets.File) (*models.Model, error) {
	if m.Status == "" {
		m.Status = models.ModelStatusActive
	}
	if !m.Status.IsValid() {
		return nil, apperrors.ErrInvalidStatus("models", "unknown model status: "+string(m.Status))
	}

	urls := make([]string, 0, len(photos))
	for _, photo := range photos {
		url, err := r.assets.Upload(ctx, photo, "models")
		if err != nil {
			for _, uploaded := range urls {
				if rmErr := r.assets.Remove(ctx, uploaded); rmErr != nil {
					logger.WithError(rmErr).Warn("failed to reclaim photo after aborted add", "url", uploaded)
				}
			}
			return nil, err
		}
		urls = append(urls, url)
	}

	m.ID = ""
	m.Photos = urls
	m.CreatedAt = models.NowISO()

	doc, err := docstore.Encode(m)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	delete(doc, "id")

	id, err := r.store.Create(ctx, docstore.CollectionModels, doc)
	if err != nil {
		return nil, apperrors.ErrStoreUnavailable(err)
	}
	m.ID = id
	return &m, nil
}

// Update applies a typed partial update. createdAt and photos are not
// reachable through ModelUpdate, keeping them write-once here.
func (r *ModelRepositoryImpl) Update(ctx context.Context, id string, upd models.ModelUpdate) (*models.Model, error) {
	if upd.Status != nil && !upd.Status.IsValid() {
		return nil, apperrors.ErrInvalidStatus("models", "unknown model status: "+string(*upd.Status))
	}

	partial, err := docstore.Encode(upd)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if len(partial) == 0 {
		return r.Get(ctx, id)
	}

	if err := r.store.Update(ctx, docstore.CollectionModels, id, partial); err != nil {
		return nil, storeErr(err)
	}
	return r.Get(ctx, id)
}

// Remove reclaims every photo asset, then deletes the document. The
// document delete is attempted even when asset deletion fails; asset
// failures are surfaced as an orphaned-asset error, never swallowed.
func (r *ModelRepositoryImpl) Remove(ctx context.Context, id string) error {
	m, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	var assetErrs []error
	for _, url := range m.Photos {
		if err := r.assets.Remove(ctx, url); err != nil {
			logger.WithError(err).Error("failed to reclaim model photo", "model", id, "url", url)
			assetErrs = append(assetErrs, err)
		}
	}

	if err := r.store.Delete(ctx, docstore.CollectionModels, id); err != nil {
		return storeErr(err)
	}

	if len(assetErrs) > 0 {
		return apperrors.ErrOrphanedAsset(errors.Join(assetErrs...))
	}
	return nil
}

func decodeModels(records []docstore.Record) ([]models.Model, error) {
	out := make([]models.Model, 0, len(records))
	for _, rec := range records {
		var m models.Model
		if err := docstore.Decode(rec.Data, &m); err != nil {
			return nil, apperrors.InternalError(err)
		}
		m.ID = rec.ID
		out = append(out, m)
	}
	return out, nil
}

// storeErr maps adapter errors onto the application taxonomy.
func storeErr(err error) *apperrors.AppError {
	if apperrors.Is(err, docstore.ErrNotFound) {
		return apperrors.ErrNotFound(err)
	}
	return apperrors.ErrStoreUnavailable(err)
}
