package service

import (
	"context"
	"errors"
	"testing"

	"github.com/senbim-immo/admin-service/internal/domain"
	"github.com/senbim-immo/admin-service/internal/repository"
	apperrors "github.com/senbim-immo/admin-service/pkg/util"
)

func TestListingCreateForcesPendingStatus(t *testing.T) {
	repo := newFakeListingRepo()
	svc := NewListingService(repo, nil)

	listing, err := svc.Create(context.Background(), "admin@senbim.sn", ListingInput{
		Title:  "Villa a Ngor",
		Price:  45000000,
		City:   "Dakar",
		Status: domain.ListingStatusAvailable,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if listing.Status != domain.ListingStatusPending {
		t.Errorf("expected status %q, got %q", domain.ListingStatusPending, listing.Status)
	}
	stored, _ := repo.GetByID(context.Background(), listing.ID)
	if stored.Status != domain.ListingStatusPending {
		t.Errorf("stored status = %q, want %q", stored.Status, domain.ListingStatusPending)
	}
}

func TestListingCreateValidation(t *testing.T) {
	svc := NewListingService(newFakeListingRepo(), nil)

	if _, err := svc.Create(context.Background(), "admin@senbim.sn", ListingInput{Title: "  "}); err == nil {
		t.Error("expected error for empty title")
	}
	if _, err := svc.Create(context.Background(), "admin@senbim.sn", ListingInput{Title: "ok", Price: -1}); err == nil {
		t.Error("expected error for negative price")
	}
}

func TestListingUpdatePersistsStatusVerbatim(t *testing.T) {
	repo := newFakeListingRepo()
	svc := NewListingService(repo, nil)

	seeded := repo.add(&domain.Listing{Title: "Appartement", Status: domain.ListingStatusSold})

	updated, err := svc.Update(context.Background(), seeded.ID, ListingInput{
		Title:  "Appartement",
		Status: domain.ListingStatusPending,
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Status != domain.ListingStatusPending {
		t.Errorf("edit should persist status verbatim, got %q", updated.Status)
	}
}

func TestListingUpdateRejectsUnknownStatus(t *testing.T) {
	repo := newFakeListingRepo()
	svc := NewListingService(repo, nil)
	seeded := repo.add(&domain.Listing{Title: "Terrain", Status: domain.ListingStatusPending})

	_, err := svc.Update(context.Background(), seeded.ID, ListingInput{Title: "Terrain", Status: "inconnu"})
	var domainErr *apperrors.DomainError
	if !errors.As(err, &domainErr) || domainErr.Code != "VALIDATION_FAILED" {
		t.Errorf("expected VALIDATION_FAILED, got %v", err)
	}
}

func TestListingTransitions(t *testing.T) {
	ctx := context.Background()

	t.Run("validate pending listing", func(t *testing.T) {
		repo := newFakeListingRepo()
		svc := NewListingService(repo, nil)
		seeded := repo.add(&domain.Listing{Title: "Studio", Status: domain.ListingStatusPending})

		listing, err := svc.Validate(ctx, "admin@senbim.sn", seeded.ID)
		if err != nil {
			t.Fatalf("Validate returned error: %v", err)
		}
		if listing.Status != domain.ListingStatusAvailable {
			t.Errorf("status = %q, want disponible", listing.Status)
		}
	})

	t.Run("sell requires reserved", func(t *testing.T) {
		repo := newFakeListingRepo()
		svc := NewListingService(repo, nil)
		seeded := repo.add(&domain.Listing{Title: "Studio", Status: domain.ListingStatusAvailable})

		_, err := svc.Sell(ctx, "admin@senbim.sn", seeded.ID)
		var domainErr *apperrors.DomainError
		if !errors.As(err, &domainErr) || domainErr.Code != "CONFLICT" {
			t.Errorf("expected CONFLICT for disponible->vendu, got %v", err)
		}
	})

	t.Run("transition accepts legacy stored status", func(t *testing.T) {
		repo := newFakeListingRepo()
		svc := NewListingService(repo, nil)
		seeded := repo.add(&domain.Listing{Title: "Maison", Status: "publiée"})

		listing, err := svc.Reserve(ctx, "admin@senbim.sn", seeded.ID)
		if err != nil {
			t.Fatalf("Reserve returned error: %v", err)
		}
		if listing.Status != domain.ListingStatusReserved {
			t.Errorf("status = %q, want réservé", listing.Status)
		}
	})
}

func TestListingListNormalizesStatuses(t *testing.T) {
	repo := newFakeListingRepo()
	svc := NewListingService(repo, nil)
	repo.add(&domain.Listing{Title: "A", Status: "validée"})
	repo.add(&domain.Listing{Title: "B", Status: "vendue"})

	listings, err := svc.List(context.Background(), repository.ListingFilter{})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	for _, listing := range listings {
		switch listing.Status {
		case domain.ListingStatusAvailable, domain.ListingStatusSold:
		default:
			t.Errorf("status %q was not normalized", listing.Status)
		}
	}
}

func TestListingCountByStatusFoldsAliases(t *testing.T) {
	repo := newFakeListingRepo()
	svc := NewListingService(repo, nil)
	repo.add(&domain.Listing{Title: "A", Status: "validée"})
	repo.add(&domain.Listing{Title: "B", Status: domain.ListingStatusAvailable})
	repo.add(&domain.Listing{Title: "C", Status: domain.ListingStatusPending})

	counts, err := svc.CountByStatus(context.Background())
	if err != nil {
		t.Fatalf("CountByStatus returned error: %v", err)
	}
	if counts[domain.ListingStatusAvailable] != 2 {
		t.Errorf("disponible count = %d, want 2", counts[domain.ListingStatusAvailable])
	}
	if counts[domain.ListingStatusPending] != 1 {
		t.Errorf("en attente count = %d, want 1", counts[domain.ListingStatusPending])
	}
}
