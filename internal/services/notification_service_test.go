package services

import (
	"context"
	"testing"

	"agencyportal/internal/docstore"
	"agencyportal/internal/models"
	"agencyportal/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	sent []string // "to|subject"
}

func (r *recordingSender) Send(to, subject, body string) error {
	r.sent = append(r.sent, to+"|"+subject)
	return nil
}

func notificationFixture(t *testing.T, mutate func(*models.SiteSettings)) (NotificationService, *recordingSender) {
	t.Helper()
	ctx := context.Background()
	settingsRepo := repositories.NewSettingsRepository(docstore.NewMemoryStore())

	s, err := settingsRepo.Load(ctx)
	require.NoError(t, err)
	s.Email = "agency@example.com"
	if mutate != nil {
		mutate(s)
	}
	require.NoError(t, settingsRepo.Save(ctx, *s))

	sender := &recordingSender{}
	return NewNotificationService(settingsRepo, sender), sender
}

func TestNotificationService_ApplicationAlert(t *testing.T) {
	svc, sender := notificationFixture(t, nil)

	svc.ApplicationReceived(context.Background(), &models.Application{
		Name:  "Mira",
		Email: "mira@example.com",
	})
	require.Len(t, sender.sent, 1)
	assert.Contains(t, sender.sent[0], "agency@example.com|")
	assert.Contains(t, sender.sent[0], "Mira")
}

func TestNotificationService_RespectsAlertToggles(t *testing.T) {
	svc, sender := notificationFixture(t, func(s *models.SiteSettings) {
		s.Notifications.BookingAlerts = false
	})

	svc.BookingReceived(context.Background(), &models.Booking{ClientName: "Vogue"})
	assert.Empty(t, sender.sent, "booking alerts disabled")

	svc.ApplicationReceived(context.Background(), &models.Application{Name: "Mira"})
	assert.Len(t, sender.sent, 1, "application alerts still on")
}

func TestNotificationService_MasterToggleWinsOverAlerts(t *testing.T) {
	svc, sender := notificationFixture(t, func(s *models.SiteSettings) {
		s.Notifications.EmailNotifications = false
	})

	svc.ApplicationReceived(context.Background(), &models.Application{Name: "Mira"})
	svc.BookingReceived(context.Background(), &models.Booking{ClientName: "Vogue"})
	assert.Empty(t, sender.sent)
}
