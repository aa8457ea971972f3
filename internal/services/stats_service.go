package services

import (
	"context"
	"time"

	"agencyportal/internal/models"
	"agencyportal/internal/repositories"
)

// DashboardStats is the aggregate snapshot shown on the admin dashboard.
// Counts are computed fresh on every call, never cached.
type DashboardStats struct {
	TotalModels         int `json:"totalModels"`
	ActiveModels        int `json:"activeModels"`
	PendingApplications int `json:"pendingApplications"`
	UpcomingBookings    int `json:"upcomingBookings"`
}

// DashboardSnapshot bundles the stats with the most recent activity.
type DashboardSnapshot struct {
	Stats              DashboardStats       `json:"stats"`
	RecentApplications []models.Application `json:"recentApplications"`
	RecentBookings     []models.Booking     `json:"recentBookings"`
}

type StatsService interface {
	ComputeStats(ctx context.Context) (*DashboardStats, error)
	Snapshot(ctx context.Context) (*DashboardSnapshot, error)
}

type statsService struct {
	modelRepo       repositories.ModelRepository
	applicationRepo repositories.ApplicationRepository
	bookingRepo     repositories.BookingRepository
	now             func() time.Time
}

func NewStatsService(
	modelRepo repositories.ModelRepository,
	applicationRepo repositories.ApplicationRepository,
	bookingRepo repositories.BookingRepository,
) StatsService {
	return &statsService{
		modelRepo:       modelRepo,
		applicationRepo: applicationRepo,
		bookingRepo:     bookingRepo,
		now:             time.Now,
	}
}

// ComputeStats issues one query per metric. Active models are counted
// client-side from the full list so one round trip serves both totals.
func (s *statsService) ComputeStats(ctx context.Context) (*DashboardStats, error) {
	allModels, err := s.modelRepo.List(ctx, "")
	if err != nil {
		return nil, err
	}
	active := 0
	for _, m := range allModels {
		if m.Status == models.ModelStatusActive {
			active++
		}
	}

	pending, err := s.applicationRepo.List(ctx, models.ApplicationStatusPending)
	if err != nil {
		return nil, err
	}

	upcoming, err := s.bookingRepo.ListUpcoming(ctx, s.now())
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalModels:         len(allModels),
		ActiveModels:        active,
		PendingApplications: len(pending),
		UpcomingBookings:    len(upcoming),
	}, nil
}

const recentLimit = 5

// Snapshot extends ComputeStats with the five most recent applications
// and bookings for the dashboard activity feed.
func (s *statsService) Snapshot(ctx context.Context) (*DashboardSnapshot, error) {
	stats, err := s.ComputeStats(ctx)
	if err != nil {
		return nil, err
	}

	apps, err := s.applicationRepo.List(ctx, "")
	if err != nil {
		return nil, err
	}
	if len(apps) > recentLimit {
		apps = apps[:recentLimit]
	}

	bookings, err := s.bookingRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(bookings) > recentLimit {
		bookings = bookings[:recentLimit]
	}

	return &DashboardSnapshot{
		Stats:              *stats,
		RecentApplications: apps,
		RecentBookings:     bookings,
	}, nil
}
