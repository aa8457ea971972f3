package repositories

import (
	"context"
	"time"

	"agencyportal/internal/docstore"
	"agencyportal/internal/models"
	"agencyportal/pkg/apperrors"
)

// BookingRepository owns the bookings collection. "Upcoming" is a
// classification recomputed against now at query time, never stored.
type BookingRepository interface {
	Create(ctx context.Context, b models.Booking) (*models.Booking, error)
	List(ctx context.Context) ([]models.Booking, error)
	ListUpcoming(ctx context.Context, now time.Time) ([]models.Booking, error)
	Get(ctx context.Context, id string) (*models.Booking, error)
	SetStatus(ctx context.Context, id string, status models.BookingStatus) (*models.Booking, error)
	Remove(ctx context.Context, id string) error
}

type BookingRepositoryImpl struct {
	store docstore.Store
}

func NewBookingRepository(store docstore.Store) BookingRepository {
	return &BookingRepositoryImpl{store: store}
}

func (r *BookingRepositoryImpl) Create(ctx context.Context, b models.Booking) (*models.Booking, error) {
	if b.Status == "" {
		b.Status = models.BookingStatusPending
	}
	if !b.Status.IsValid() {
		return nil, apperrors.ErrInvalidStatus("bookings", "unknown booking status: "+string(b.Status))
	}

	// Upcoming classification compares dates lexically, so the stored
	// form must match the fixed timestamp layout.
	if b.Date != "" {
		date, err := models.NormalizeISO(b.Date)
		if err != nil {
			return nil, apperrors.NewBadRequestError("invalid booking date: " + b.Date)
		}
		b.Date = date
	}

	b.ID = ""
	b.CreatedAt = models.NowISO()
	b.UpdatedAt = ""

	doc, err := docstore.Encode(b)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	delete(doc, "id")

	id, err := r.store.Create(ctx, docstore.CollectionBookings, doc)
	if err != nil {
		return nil, apperrors.ErrStoreUnavailable(err)
	}
	b.ID = id
	return &b, nil
}

// List returns bookings, most recent date first.
func (r *BookingRepositoryImpl) List(ctx context.Context) ([]models.Booking, error) {
	records, err := r.store.List(ctx, docstore.CollectionBookings,
		docstore.Query{}.Sort("date", true))
	if err != nil {
		return nil, apperrors.ErrStoreUnavailable(err)
	}
	return decodeBookings(records)
}

// ListUpcoming returns bookings with date >= now, soonest first.
func (r *BookingRepositoryImpl) ListUpcoming(ctx context.Context, now time.Time) ([]models.Booking, error) {
	q := docstore.Query{}.
		Where("date", docstore.OpGte, models.FormatISO(now)).
		Sort("date", false)

	records, err := r.store.List(ctx, docstore.CollectionBookings, q)
	if err != nil {
		return nil, apperrors.ErrStoreUnavailable(err)
	}
	return decodeBookings(records)
}

func (r *BookingRepositoryImpl) Get(ctx context.Context, id string) (*models.Booking, error) {
	rec, err := r.store.Get(ctx, docstore.CollectionBookings, id)
	if err != nil {
		return nil, storeErr(err)
	}
	var b models.Booking
	if err := docstore.Decode(rec.Data, &b); err != nil {
		return nil, apperrors.InternalError(err)
	}
	b.ID = rec.ID
	return &b, nil
}

// SetStatus updates status and updatedAt together as a single document
// update.
func (r *BookingRepositoryImpl) SetStatus(ctx context.Context, id string, status models.BookingStatus) (*models.Booking, error) {
	if !status.IsValid() {
		return nil, apperrors.ErrInvalidStatus("bookings", "unknown booking status: "+string(status))
	}

	err := r.store.Update(ctx, docstore.CollectionBookings, id, docstore.Document{
		"status":    string(status),
		"updatedAt": models.NowISO(),
	})
	if err != nil {
		return nil, storeErr(err)
	}
	return r.Get(ctx, id)
}

func (r *BookingRepositoryImpl) Remove(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, docstore.CollectionBookings, id); err != nil {
		return storeErr(err)
	}
	return nil
}

func decodeBookings(records []docstore.Record) ([]models.Booking, error) {
	out := make([]models.Booking, 0, len(records))
	for _, rec := range records {
		var b models.Booking
		if err := docstore.Decode(rec.Data, &b); err != nil {
			return nil, apperrors.InternalError(err)
		}
		b.ID = rec.ID
		out = append(out, b)
	}
	return out, nil
}
