package repositories

import (
	"context"

	"agencyportal/internal/assets"
	"agencyportal/internal/docstore"
	"agencyportal/internal/identity"
	"agencyportal/internal/models"
	"agencyportal/pkg/apperrors"
)

// ProfileRepository owns the users collection, keyed by identity id. The
// profile's displayName mirrors the identity provider's record; Save keeps
// the two in sync.
type ProfileRepository interface {
	Load(ctx context.Context, ident *identity.Identity) (*models.UserProfile, error)
	Save(ctx context.Context, ident *identity.Identity, profile models.UserProfile, avatar *assets.File) (*models.UserProfile, error)
}

type ProfileRepositoryImpl struct {
	store    docstore.Store
	assets   *assets.Manager
	provider identity.Provider
}

func NewProfileRepository(store docstore.Store, assetManager *assets.Manager, provider identity.Provider) ProfileRepository {
	return &ProfileRepositoryImpl{store: store, assets: assetManager, provider: provider}
}

// Load returns the caller's profile, falling back to an empty profile
// seeded from the identity when none exists yet. The identity provider's
// displayName takes precedence over the stored one.
func (r *ProfileRepositoryImpl) Load(ctx context.Context, ident *identity.Identity) (*models.UserProfile, error) {
	rec, err := r.store.Get(ctx, docstore.CollectionUsers, ident.ID)
	if err != nil {
		if apperrors.Is(err, docstore.ErrNotFound) {
			return &models.UserProfile{
				DisplayName: ident.DisplayName,
				AvatarURL:   ident.AvatarURL,
			}, nil
		}
		return nil, apperrors.ErrStoreUnavailable(err)
	}

	var profile models.UserProfile
	if err := docstore.Decode(rec.Data, &profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if ident.DisplayName != "" {
		profile.DisplayName = ident.DisplayName
	}
	if profile.AvatarURL == "" {
		profile.AvatarURL = ident.AvatarURL
	}
	return &profile, nil
}

// Save persists the profile and re-syncs displayName (and a freshly
// uploaded avatar) into the identity provider. The sequence is fixed:
// avatar upload, then identity profile update, then the profile document
// write. A later step failing never leaves the avatar URL referenced
// without being committed earlier in the chain.
func (r *ProfileRepositoryImpl) Save(ctx context.Context, ident *identity.Identity, profile models.UserProfile, avatar *assets.File) (*models.UserProfile, error) {
	upd := identity.ProfileUpdate{}

	// A save without a new avatar keeps the one already on record.
	if avatar == nil && profile.AvatarURL == "" {
		profile.AvatarURL = ident.AvatarURL
	}

	if avatar != nil {
		url, err := r.assets.Upload(ctx, *avatar, "avatars")
		if err != nil {
			return nil, err
		}
		profile.AvatarURL = url
		upd.AvatarURL = &url
	}

	if profile.DisplayName != ident.DisplayName {
		upd.DisplayName = &profile.DisplayName
	}
	if upd.DisplayName != nil || upd.AvatarURL != nil {
		if _, err := r.provider.UpdateProfile(ctx, ident.ID, upd); err != nil {
			return nil, err
		}
	}

	profile.UpdatedAt = models.NowISO()
	doc, err := docstore.Encode(profile)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if err := r.store.Set(ctx, docstore.CollectionUsers, ident.ID, doc); err != nil {
		return nil, apperrors.ErrStoreUnavailable(err)
	}
	return &profile, nil
}
