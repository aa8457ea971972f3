package repositories

import (
	"context"
	"testing"

	"agencyportal/internal/docstore"
	"agencyportal/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsRepository_FirstLoadSeedsDefaults(t *testing.T) {
	ctx := context.Background()
	store := docstore.NewMemoryStore()
	repo := NewSettingsRepository(store)

	s, err := repo.Load(ctx)
	require.NoError(t, err)
	defaults := models.DefaultSiteSettings()
	assert.Equal(t, &defaults, s)

	// The defaults were persisted, not just returned.
	_, err = store.Get(ctx, docstore.CollectionSettings, "agency")
	require.NoError(t, err)
}

func TestSettingsRepository_SaveRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewSettingsRepository(docstore.NewMemoryStore())

	s, err := repo.Load(ctx)
	require.NoError(t, err)

	s.AgencyName = "Nordlicht Models"
	s.Email = "hello@nordlicht.example"
	s.Notifications.BookingAlerts = false
	require.NoError(t, repo.Save(ctx, *s))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, s, got)
	assert.False(t, got.Notifications.BookingAlerts)
}

func TestWebsiteRepository_FirstLoadSeedsDefaults(t *testing.T) {
	ctx := context.Background()
	repo := NewWebsiteRepository(docstore.NewMemoryStore())

	c, err := repo.Load(ctx)
	require.NoError(t, err)
	defaults := models.DefaultWebsiteContent()
	assert.Equal(t, &defaults, c)
	require.NotEmpty(t, c.Services)
}

func TestWebsiteRepository_SaveRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewWebsiteRepository(docstore.NewMemoryStore())

	c, err := repo.Load(ctx)
	require.NoError(t, err)

	c.HeroSection.Title = "New Faces 2026"
	c.FeaturedModels = []string{"model-1", "model-7"}
	c.Services = append(c.Services, models.Service{
		Icon:        "fas fa-video",
		Title:       "Video Portfolio",
		Description: "Short reels for casting submissions",
	})
	require.NoError(t, repo.Save(ctx, *c))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, c, got)
}
