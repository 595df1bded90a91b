package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/senbim-immo/admin-service/internal/domain"
	"github.com/senbim-immo/admin-service/internal/persistence"
	"github.com/senbim-immo/admin-service/internal/repository"
)

const statsCacheKey = "dashboard:stats"

// DashboardStats aggregates the numbers shown on the dashboard and the
// statistics screen. Listing counts are alias-aware: legacy statuses fold
// into their canonical bucket.
type DashboardStats struct {
	TotalListings     int64                          `json:"total_listings"`
	ListingsByStatus  map[domain.ListingStatus]int64 `json:"listings_by_status"`
	TotalUsers        int64                          `json:"total_users"`
	NewUsersThisMonth int64                          `json:"new_users_this_month"`
	RevenueTotal      int64                          `json:"revenue_total"`
	RevenueThisMonth  int64                          `json:"revenue_this_month"`
	GeneratedAt       time.Time                      `json:"generated_at"`
}

// StatsService computes dashboard aggregates, cached in Redis.
type StatsService struct {
	listings repository.ListingRepository
	users    repository.UserRepository
	payments repository.PaymentRepository
	cache    *persistence.StatsCache
	logger   *zap.Logger
}

// NewStatsService constructs the service.
func NewStatsService(listings repository.ListingRepository, users repository.UserRepository, payments repository.PaymentRepository, cache *persistence.StatsCache, logger *zap.Logger) *StatsService {
	return &StatsService{listings: listings, users: users, payments: payments, cache: cache, logger: logger}
}

// Dashboard returns the aggregates, serving from cache when fresh.
func (s *StatsService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	if s.cache != nil {
		var cached DashboardStats
		if err := s.cache.Get(ctx, statsCacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	stats, err := s.compute(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, statsCacheKey, stats); err != nil {
			s.logger.Warn("stats cache write failed", zap.Error(err))
		}
	}
	return stats, nil
}

func (s *StatsService) compute(ctx context.Context) (*DashboardStats, error) {
	now := time.Now()

	byStatus, err := s.listings.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	var totalListings int64
	for _, count := range byStatus {
		totalListings += count
	}

	totalUsers, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	newUsers, err := s.users.CountCreatedSince(ctx, monthStart)
	if err != nil {
		return nil, err
	}

	revenueTotal, err := s.payments.SumSuccessfulSince(ctx, nil)
	if err != nil {
		return nil, err
	}
	revenueMonth, err := s.payments.SumSuccessfulSince(ctx, &monthStart)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalListings:     totalListings,
		ListingsByStatus:  byStatus,
		TotalUsers:        totalUsers,
		NewUsersThisMonth: newUsers,
		RevenueTotal:      revenueTotal,
		RevenueThisMonth:  revenueMonth,
		GeneratedAt:       now,
	}, nil
}
