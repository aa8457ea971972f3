package repositories

import (
	"context"
	"testing"
	"time"

	"agencyportal/internal/docstore"
	"agencyportal/internal/models"
	"agencyportal/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingRepository_CreateDefaultsPending(t *testing.T) {
	ctx := context.Background()
	repo := NewBookingRepository(docstore.NewMemoryStore())

	b, err := repo.Create(ctx, models.Booking{
		ClientName: "Vogue",
		ModelName:  "Alina",
		Date:       models.FormatISO(time.Now().Add(48 * time.Hour)),
	})
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusPending, b.Status)
	assert.NotEmpty(t, b.CreatedAt)
}

func TestBookingRepository_ListUpcoming(t *testing.T) {
	ctx := context.Background()
	repo := NewBookingRepository(docstore.NewMemoryStore())
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	past, err := repo.Create(ctx, models.Booking{
		ClientName: "Archive",
		Date:       models.FormatISO(now.Add(-72 * time.Hour)),
	})
	require.NoError(t, err)

	soon, err := repo.Create(ctx, models.Booking{
		ClientName: "Editorial",
		Date:       models.FormatISO(now.Add(24 * time.Hour)),
	})
	require.NoError(t, err)

	later, err := repo.Create(ctx, models.Booking{
		ClientName: "Campaign",
		Date:       models.FormatISO(now.Add(96 * time.Hour)),
	})
	require.NoError(t, err)

	upcoming, err := repo.ListUpcoming(ctx, now)
	require.NoError(t, err)
	require.Len(t, upcoming, 2)
	assert.Equal(t, soon.ID, upcoming[0].ID, "soonest first")
	assert.Equal(t, later.ID, upcoming[1].ID)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, later.ID, all[0].ID, "full list is newest date first")
	assert.Equal(t, past.ID, all[2].ID)
}

func TestBookingRepository_CreateNormalizesDate(t *testing.T) {
	ctx := context.Background()
	repo := NewBookingRepository(docstore.NewMemoryStore())

	b, err := repo.Create(ctx, models.Booking{
		ClientName: "Lookbook",
		Date:       "2026-09-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-09-01T00:00:00.000Z", b.Date)

	offset, err := repo.Create(ctx, models.Booking{
		ClientName: "Showroom",
		Date:       "2026-09-01T10:30:00+05:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-09-01T05:30:00.000Z", offset.Date)

	_, err = repo.Create(ctx, models.Booking{
		ClientName: "Garbled",
		Date:       "next tuesday",
	})
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
}

func TestBookingRepository_SetStatus(t *testing.T) {
	ctx := context.Background()
	repo := NewBookingRepository(docstore.NewMemoryStore())

	b, err := repo.Create(ctx, models.Booking{ClientName: "Vogue"})
	require.NoError(t, err)

	confirmed, err := repo.SetStatus(ctx, b.ID, models.BookingStatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, confirmed.Status)

	_, err = repo.SetStatus(ctx, b.ID, models.BookingStatus("noshow"))
	assert.Error(t, err)
}
