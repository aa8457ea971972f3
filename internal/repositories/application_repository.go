package repositories

import (
	"context"

	"agencyportal/internal/docstore"
	"agencyportal/internal/models"
	"agencyportal/pkg/apperrors"
)

// ApplicationRepository owns the applications collection. Applications
// carry no blob assets beyond an optional externally-hosted photo URL, so
// removal deletes the document only.
type ApplicationRepository interface {
	Create(ctx context.Context, app models.Application) (*models.Application, error)
	List(ctx context.Context, status models.ApplicationStatus) ([]models.Application, error)
	Get(ctx context.Context, id string) (*models.Application, error)
	SetStatus(ctx context.Context, id string, status models.ApplicationStatus) (*models.Application, error)
	Remove(ctx context.Context, id string) error
}

type ApplicationRepositoryImpl struct {
	store docstore.Store
}

func NewApplicationRepository(store docstore.Store) ApplicationRepository {
	return &ApplicationRepositoryImpl{store: store}
}

// Create stores a new application. Status always starts pending and
// createdAt is write-once.
func (r *ApplicationRepositoryImpl) Create(ctx context.Context, app models.Application) (*models.Application, error) {
	app.ID = ""
	app.Status = models.ApplicationStatusPending
	app.CreatedAt = models.NowISO()
	app.UpdatedAt = ""

	doc, err := docstore.Encode(app)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	delete(doc, "id")

	id, err := r.store.Create(ctx, docstore.CollectionApplications, doc)
	if err != nil {
		return nil, apperrors.ErrStoreUnavailable(err)
	}
	app.ID = id
	return &app, nil
}

// List returns applications, newest first, optionally filtered by status.
func (r *ApplicationRepositoryImpl) List(ctx context.Context, status models.ApplicationStatus) ([]models.Application, error) {
	q := docstore.Query{}.Sort("createdAt", true)
	if status != "" {
		if !status.IsValid() {
			return nil, apperrors.ErrInvalidStatus("applications", "unknown application status: "+string(status))
		}
		q = q.Where("status", docstore.OpEqual, string(status))
	}

	records, err := r.store.List(ctx, docstore.CollectionApplications, q)
	if err != nil {
		return nil, apperrors.ErrStoreUnavailable(err)
	}

	out := make([]models.Application, 0, len(records))
	for _, rec := range records {
		var app models.Application
		if err := docstore.Decode(rec.Data, &app); err != nil {
			return nil, apperrors.InternalError(err)
		}
		app.ID = rec.ID
		out = append(out, app)
	}
	return out, nil
}

func (r *ApplicationRepositoryImpl) Get(ctx context.Context, id string) (*models.Application, error) {
	rec, err := r.store.Get(ctx, docstore.CollectionApplications, id)
	if err != nil {
		return nil, storeErr(err)
	}
	var app models.Application
	if err := docstore.Decode(rec.Data, &app); err != nil {
		return nil, apperrors.InternalError(err)
	}
	app.ID = rec.ID
	return &app, nil
}

// SetStatus updates status and updatedAt together as a single document
// update. Transitions are unconstrained: any status may follow any other.
func (r *ApplicationRepositoryImpl) SetStatus(ctx context.Context, id string, status models.ApplicationStatus) (*models.Application, error) {
	if !status.IsValid() {
		return nil, apperrors.ErrInvalidStatus("applications", "unknown application status: "+string(status))
	}

	err := r.store.Update(ctx, docstore.CollectionApplications, id, docstore.Document{
		"status":    string(status),
		"updatedAt": models.NowISO(),
	})
	if err != nil {
		return nil, storeErr(err)
	}
	return r.Get(ctx, id)
}

func (r *ApplicationRepositoryImpl) Remove(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, docstore.CollectionApplications, id); err != nil {
		return storeErr(err)
	}
	return nil
}
