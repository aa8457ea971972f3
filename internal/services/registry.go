package services

import (
	"agencyportal/internal/email"
	"agencyportal/internal/repositories"
)

// ServiceContainer bundles the application services for handler wiring.
type ServiceContainer struct {
	Stats         StatsService
	Notifications NotificationService
}

func NewServiceContainer(
	modelRepo repositories.ModelRepository,
	applicationRepo repositories.ApplicationRepository,
	bookingRepo repositories.BookingRepository,
	settingsRepo repositories.SettingsRepository,
	sender email.Sender,
) *ServiceContainer {
	return &ServiceContainer{
		Stats:         NewStatsService(modelRepo, applicationRepo, bookingRepo),
		Notifications: NewNotificationService(settingsRepo, sender),
	}
}
