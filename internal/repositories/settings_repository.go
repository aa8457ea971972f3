package repositories

import (
	"context"

	"agencyportal/internal/docstore"
	"agencyportal/internal/models"
	"agencyportal/pkg/apperrors"
)

// Singleton document keys.
const (
	settingsKey = "agency"
	websiteKey  = "content"
)

// SettingsRepository owns the settings singleton. Load creates the
// canonical default document on first read; Save overwrites the whole
// document, matching the edit-whole-section workflow.
type SettingsRepository interface {
	Load(ctx context.Context) (*models.SiteSettings, error)
	Save(ctx context.Context, s models.SiteSettings) error
}

type SettingsRepositoryImpl struct {
	store docstore.Store
}

func NewSettingsRepository(store docstore.Store) SettingsRepository {
	return &SettingsRepositoryImpl{store: store}
}

func (r *SettingsRepositoryImpl) Load(ctx context.Context) (*models.SiteSettings, error) {
	rec, err := r.store.Get(ctx, docstore.CollectionSettings, settingsKey)
	if err != nil {
		if apperrors.Is(err, docstore.ErrNotFound) {
			defaults := models.DefaultSiteSettings()
			if err := r.Save(ctx, defaults); err != nil {
				return nil, err
			}
			return &defaults, nil
		}
		return nil, apperrors.ErrStoreUnavailable(err)
	}

	var s models.SiteSettings
	if err := docstore.Decode(rec.Data, &s); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &s, nil
}

func (r *SettingsRepositoryImpl) Save(ctx context.Context, s models.SiteSettings) error {
	doc, err := docstore.Encode(s)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if err := r.store.Set(ctx, docstore.CollectionSettings, settingsKey, doc); err != nil {
		return apperrors.ErrStoreUnavailable(err)
	}
	return nil
}

// WebsiteRepository owns the website content singleton, with the same
// first-read-creates and full-overwrite semantics as SettingsRepository.
type WebsiteRepository interface {
	Load(ctx context.Context) (*models.WebsiteContent, error)
	Save(ctx context.Context, c models.WebsiteContent) error
}

type WebsiteRepositoryImpl struct {
	store docstore.Store
}

func NewWebsiteRepository(store docstore.Store) WebsiteRepository {
	return &WebsiteRepositoryImpl{store: store}
}

func (r *WebsiteRepositoryImpl) Load(ctx context.Context) (*models.WebsiteContent, error) {
	rec, err := r.store.Get(ctx, docstore.CollectionWebsite, websiteKey)
	if err != nil {
		if apperrors.Is(err, docstore.ErrNotFound) {
			defaults := models.DefaultWebsiteContent()
			if err := r.Save(ctx, defaults); err != nil {
				return nil, err
			}
			return &defaults, nil
		}
		return nil, apperrors.ErrStoreUnavailable(err)
	}

	var c models.WebsiteContent
	if err := docstore.Decode(rec.Data, &c); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &c, nil
}

func (r *WebsiteRepositoryImpl) Save(ctx context.Context, c models.WebsiteContent) error {
	doc, err := docstore.Encode(c)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if err := r.store.Set(ctx, docstore.CollectionWebsite, websiteKey, doc); err != nil {
		return apperrors.ErrStoreUnavailable(err)
	}
	return nil
}
