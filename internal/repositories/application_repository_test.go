package repositories

import (
	"context"
	"testing"

	"agencyportal/internal/docstore"
	"agencyportal/internal/models"
	"agencyportal/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplicationRepository_CreateForcesPendingStatus(t *testing.T) {
	ctx := context.Background()
	repo := NewApplicationRepository(docstore.NewMemoryStore())

	app, err := repo.Create(ctx, models.Application{
		Name:   "Mira",
		Email:  "mira@example.com",
		Status: models.ApplicationStatusApproved, // submitted status is ignored
	})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusPending, app.Status)
	assert.NotEmpty(t, app.ID)
	assert.NotEmpty(t, app.CreatedAt)
}

func TestApplicationRepository_StatusTransitions(t *testing.T) {
	ctx := context.Background()
	repo := NewApplicationRepository(docstore.NewMemoryStore())

	app, err := repo.Create(ctx, models.Application{Name: "Mira", Email: "mira@example.com"})
	require.NoError(t, err)

	approved, err := repo.SetStatus(ctx, app.ID, models.ApplicationStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusApproved, approved.Status)
	assert.Equal(t, app.CreatedAt, approved.CreatedAt)
	assert.NotEmpty(t, approved.UpdatedAt)

	_, err = repo.SetStatus(ctx, app.ID, models.ApplicationStatus("archived"))
	assert.Error(t, err, "unknown status rejected at the boundary")

	_, err = repo.SetStatus(ctx, "missing", models.ApplicationStatusRejected)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestApplicationRepository_ListFiltersByStatus(t *testing.T) {
	ctx := context.Background()
	repo := NewApplicationRepository(docstore.NewMemoryStore())

	a, err := repo.Create(ctx, models.Application{Name: "A", Email: "a@example.com"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, models.Application{Name: "B", Email: "b@example.com"})
	require.NoError(t, err)
	_, err = repo.SetStatus(ctx, a.ID, models.ApplicationStatusRejected)
	require.NoError(t, err)

	pending, err := repo.List(ctx, models.ApplicationStatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "B", pending[0].Name)

	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestApplicationRepository_Remove(t *testing.T) {
	ctx := context.Background()
	repo := NewApplicationRepository(docstore.NewMemoryStore())

	app, err := repo.Create(ctx, models.Application{Name: "Mira", Email: "mira@example.com"})
	require.NoError(t, err)
	require.NoError(t, repo.Remove(ctx, app.ID))

	_, err = repo.Get(ctx, app.ID)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}
