package repositories

import (
	"context"
	"strings"

	"agencyportal/internal/docstore"
	"agencyportal/internal/models"
	"agencyportal/pkg/apperrors"
)

// AdminGrantRepository owns the admins collection. One grant per email;
// existence of a grant is the sole privilege signal.
type AdminGrantRepository interface {
	Grant(ctx context.Context, email string) (*models.AdminGrant, error)
	FindByEmail(ctx context.Context, email string) (*models.AdminGrant, error)
	List(ctx context.Context) ([]models.AdminGrant, error)
}

type AdminGrantRepositoryImpl struct {
	store docstore.Store
}

func NewAdminGrantRepository(store docstore.Store) AdminGrantRepository {
	return &AdminGrantRepositoryImpl{store: store}
}

// Grant records a privilege grant for the email. Granting an already
// privileged email is a no-op returning the existing grant.
func (r *AdminGrantRepositoryImpl) Grant(ctx context.Context, email string) (*models.AdminGrant, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	existing, err := r.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return existing, nil
	}
	if err != nil && !apperrors.Is(err, docstore.ErrNotFound) {
		return nil, err
	}

	grant := models.AdminGrant{
		Email:     email,
		Role:      "admin",
		CreatedAt: models.NowISO(),
	}
	doc, err := docstore.Encode(grant)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if _, err := r.store.Create(ctx, docstore.CollectionAdmins, doc); err != nil {
		return nil, apperrors.ErrStoreUnavailable(err)
	}
	return &grant, nil
}

func (r *AdminGrantRepositoryImpl) List(ctx context.Context) ([]models.AdminGrant, error) {
	records, err := r.store.List(ctx, docstore.CollectionAdmins, docstore.Query{})
	if err != nil {
		return nil, apperrors.ErrStoreUnavailable(err)
	}

	grants := make([]models.AdminGrant, 0, len(records))
	for _, rec := range records {
		var grant models.AdminGrant
		if err := docstore.Decode(rec.Data, &grant); err != nil {
			return nil, apperrors.InternalError(err)
		}
		grants = append(grants, grant)
	}
	return grants, nil
}

func (r *AdminGrantRepositoryImpl) FindByEmail(ctx context.Context, email string) (*models.AdminGrant, error) {
	records, err := r.store.List(ctx, docstore.CollectionAdmins,
		docstore.Query{}.Where("email", docstore.OpEqual, strings.ToLower(email)))
	if err != nil {
		return nil, apperrors.ErrStoreUnavailable(err)
	}
	if len(records) == 0 {
		return nil, docstore.ErrNotFound
	}

	var grant models.AdminGrant
	if err := docstore.Decode(records[0].Data, &grant); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &grant, nil
}
