package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/senbim-immo/admin-service/internal/domain"
)

func TestStatsDashboardAggregates(t *testing.T) {
	listings := newFakeListingRepo()
	listings.add(&domain.Listing{Status: domain.ListingStatusAvailable})
	listings.add(&domain.Listing{Status: domain.ListingStatusAvailable})
	listings.add(&domain.Listing{Status: domain.ListingStatusPending})

	now := time.Now()
	users := newFakeUserRepo()
	users.add(&domain.User{ID: "u1", Email: "ancien@example.sn", CreatedAt: now.AddDate(0, -3, 0)})
	users.add(&domain.User{ID: "u2", Email: "recent@example.sn", CreatedAt: now})

	payments := &fakePaymentRepo{payments: []domain.Payment{
		{Amount: 3000, Status: domain.PaymentStatusSuccess, CreatedAt: now.AddDate(0, -2, 0)},
		{Amount: 1500, Status: domain.PaymentStatusSuccess, CreatedAt: now},
	}}

	svc := NewStatsService(listings, users, payments, nil, zap.NewNop())

	stats, err := svc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("Dashboard returned error: %v", err)
	}
	if stats.TotalListings != 3 {
		t.Errorf("total listings = %d, want 3", stats.TotalListings)
	}
	if stats.ListingsByStatus[domain.ListingStatusAvailable] != 2 {
		t.Errorf("available listings = %d, want 2", stats.ListingsByStatus[domain.ListingStatusAvailable])
	}
	if stats.TotalUsers != 2 {
		t.Errorf("total users = %d, want 2", stats.TotalUsers)
	}
	if stats.NewUsersThisMonth != 1 {
		t.Errorf("new users this month = %d, want 1", stats.NewUsersThisMonth)
	}
	if stats.RevenueTotal != 4500 {
		t.Errorf("revenue total = %d, want 4500", stats.RevenueTotal)
	}
	if stats.RevenueThisMonth != 1500 {
		t.Errorf("revenue this month = %d, want 1500", stats.RevenueThisMonth)
	}
	if stats.GeneratedAt.IsZero() {
		t.Error("generated_at should be set")
	}
}
