package services

import (
	"context"
	"fmt"

	"agencyportal/internal/email"
	"agencyportal/internal/logger"
	"agencyportal/internal/models"
	"agencyportal/internal/repositories"
)

// NotificationService mails the agency when new public submissions come
// in, honoring the alert toggles in SiteSettings. Delivery failures are
// logged and never surfaced to the submitting caller.
type NotificationService interface {
	ApplicationReceived(ctx context.Context, app *models.Application)
	BookingReceived(ctx context.Context, b *models.Booking)
}

type notificationService struct {
	settingsRepo repositories.SettingsRepository
	sender       email.Sender
}

func NewNotificationService(settingsRepo repositories.SettingsRepository, sender email.Sender) NotificationService {
	return &notificationService{settingsRepo: settingsRepo, sender: sender}
}

func (s *notificationService) ApplicationReceived(ctx context.Context, app *models.Application) {
	settings, ok := s.recipient(ctx)
	if !ok || !settings.Notifications.ApplicationAlerts {
		return
	}
	subject := fmt.Sprintf("New talent application from %s", app.Name)
	body := fmt.Sprintf(
		"<p>A new application has been submitted.</p>"+
			"<p><b>Name:</b> %s<br><b>Email:</b> %s<br><b>Age:</b> %d<br><b>Experience:</b> %s</p>",
		app.Name, app.Email, app.Age, app.Experience)
	s.deliver(settings.Email, subject, body)
}

func (s *notificationService) BookingReceived(ctx context.Context, b *models.Booking) {
	settings, ok := s.recipient(ctx)
	if !ok || !settings.Notifications.BookingAlerts {
		return
	}
	subject := fmt.Sprintf("New booking request from %s", b.ClientName)
	body := fmt.Sprintf(
		"<p>A new booking has been requested.</p>"+
			"<p><b>Client:</b> %s<br><b>Model:</b> %s<br><b>Date:</b> %s %s<br><b>Location:</b> %s</p>",
		b.ClientName, b.ModelName, b.Date, b.Time, b.Location)
	s.deliver(settings.Email, subject, body)
}

// recipient loads settings and applies the master toggle. A missing
// agency address also disables delivery.
func (s *notificationService) recipient(ctx context.Context) (*models.SiteSettings, bool) {
	settings, err := s.settingsRepo.Load(ctx)
	if err != nil {
		logger.WithError(err).Warn("notification skipped, settings unavailable")
		return nil, false
	}
	if !settings.Notifications.EmailNotifications || settings.Email == "" {
		return nil, false
	}
	return settings, true
}

func (s *notificationService) deliver(to, subject, body string) {
	if err := s.sender.Send(to, subject, body); err != nil {
		logger.WithError(err).Error("notification email delivery failed", "to", to)
	}
}
