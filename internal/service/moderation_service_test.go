package service

import (
	"context"
	"errors"
	"testing"

	"github.com/senbim-immo/admin-service/internal/domain"
	apperrors "github.com/senbim-immo/admin-service/pkg/util"
)

func TestModerationReviewReturnsTombstoneForDeletedListing(t *testing.T) {
	reports := newFakeReportRepo()
	svc := NewModerationService(reports, newFakeListingRepo(), newFakeUserRepo(), nil)

	reports.add(&domain.Report{
		ID:          "r1",
		ContentType: domain.ReportContentListing,
		ContentID:   "gone",
		Status:      domain.ReportStatusNew,
	})

	report, content, err := svc.Review(context.Background(), "r1")
	if err != nil {
		t.Fatalf("Review returned error: %v", err)
	}
	if report.ID != "r1" {
		t.Errorf("unexpected report %q", report.ID)
	}
	if content.Tombstone != "Annonce introuvable ou déjà supprimée." {
		t.Errorf("tombstone = %q", content.Tombstone)
	}
	if content.Listing != nil || content.User != nil {
		t.Error("tombstone response should carry no content preview")
	}
}

func TestModerationReviewReturnsTombstoneForDeletedUser(t *testing.T) {
	reports := newFakeReportRepo()
	svc := NewModerationService(reports, newFakeListingRepo(), newFakeUserRepo(), nil)

	reports.add(&domain.Report{
		ID:          "r1",
		ContentType: domain.ReportContentUser,
		ContentID:   "gone",
		Status:      domain.ReportStatusNew,
	})

	_, content, err := svc.Review(context.Background(), "r1")
	if err != nil {
		t.Fatalf("Review returned error: %v", err)
	}
	if content.Tombstone != "Utilisateur introuvable ou déjà supprimé." {
		t.Errorf("tombstone = %q", content.Tombstone)
	}
}

func TestModerationRejectListingResolvesReport(t *testing.T) {
	reports := newFakeReportRepo()
	listings := newFakeListingRepo()
	svc := NewModerationService(reports, listings, newFakeUserRepo(), nil)

	seeded := listings.add(&domain.Listing{Title: "Signalée", Status: domain.ListingStatusAvailable})
	reports.add(&domain.Report{
		ID:          "r1",
		ContentType: domain.ReportContentListing,
		ContentID:   seeded.ID,
		Status:      domain.ReportStatusNew,
	})

	report, err := svc.RejectListing(context.Background(), "admin@senbim.sn", "r1")
	if err != nil {
		t.Fatalf("RejectListing returned error: %v", err)
	}
	if report.Status != domain.ReportStatusResolved {
		t.Errorf("report status = %q, want résolu", report.Status)
	}
	listing, _ := listings.GetByID(context.Background(), seeded.ID)
	if listing.Status != domain.ListingStatusRefused {
		t.Errorf("listing status = %q, want refusée", listing.Status)
	}
}

func TestModerationContentActionPartialFailure(t *testing.T) {
	reports := newFakeReportRepo()
	listings := newFakeListingRepo()
	svc := NewModerationService(reports, listings, newFakeUserRepo(), nil)

	seeded := listings.add(&domain.Listing{Title: "Signalée", Status: domain.ListingStatusAvailable})
	reports.add(&domain.Report{
		ID:          "r1",
		ContentType: domain.ReportContentListing,
		ContentID:   seeded.ID,
		Status:      domain.ReportStatusNew,
	})
	reports.updateErr = errors.New("db down")

	_, err := svc.RejectListing(context.Background(), "admin@senbim.sn", "r1")
	if !apperrors.IsPartiallyApplied(err) {
		t.Fatalf("expected PARTIALLY_APPLIED, got %v", err)
	}
	// Step 1 ran: the listing is refused even though the report stayed open.
	listing, _ := listings.GetByID(context.Background(), seeded.ID)
	if listing.Status != domain.ListingStatusRefused {
		t.Errorf("listing status = %q, want refusée", listing.Status)
	}
	report, _ := reports.GetByID(context.Background(), "r1")
	if report.Status != domain.ReportStatusNew {
		t.Errorf("report status = %q, want nouveau", report.Status)
	}
}

func TestModerationContentActionStepOneFailureAborts(t *testing.T) {
	reports := newFakeReportRepo()
	svc := NewModerationService(reports, newFakeListingRepo(), newFakeUserRepo(), nil)

	reports.add(&domain.Report{
		ID:          "r1",
		ContentType: domain.ReportContentListing,
		ContentID:   "missing",
		Status:      domain.ReportStatusNew,
	})

	if _, err := svc.DeleteListing(context.Background(), "admin@senbim.sn", "r1"); err == nil {
		t.Fatal("expected error when content is missing")
	}
	report, _ := reports.GetByID(context.Background(), "r1")
	if report.Status != domain.ReportStatusNew {
		t.Errorf("report status = %q, step-1 failure must not resolve", report.Status)
	}
}

func TestModerationContentActionTypeMismatch(t *testing.T) {
	reports := newFakeReportRepo()
	svc := NewModerationService(reports, newFakeListingRepo(), newFakeUserRepo(), nil)

	reports.add(&domain.Report{
		ID:          "r1",
		ContentType: domain.ReportContentUser,
		ContentID:   "u1",
		Status:      domain.ReportStatusNew,
	})

	_, err := svc.RejectListing(context.Background(), "admin@senbim.sn", "r1")
	var domainErr *apperrors.DomainError
	if !errors.As(err, &domainErr) || domainErr.Code != "VALIDATION_FAILED" {
		t.Errorf("expected VALIDATION_FAILED for type mismatch, got %v", err)
	}
}

func TestModerationSuspendUserDoesNotTouchListings(t *testing.T) {
	reports := newFakeReportRepo()
	listings := newFakeListingRepo()
	users := newFakeUserRepo()
	svc := NewModerationService(reports, listings, users, nil)

	users.add(&domain.User{ID: "u1", Email: "membre@example.sn", AccountStatus: domain.AccountStatusActive})
	seeded := listings.add(&domain.Listing{Title: "Du membre", Status: domain.ListingStatusAvailable, CreatedBy: "membre@example.sn"})
	reports.add(&domain.Report{
		ID:          "r1",
		ContentType: domain.ReportContentUser,
		ContentID:   "u1",
		Status:      domain.ReportStatusNew,
	})

	if _, err := svc.SuspendUser(context.Background(), "admin@senbim.sn", "r1"); err != nil {
		t.Fatalf("SuspendUser returned error: %v", err)
	}
	user, _ := users.GetByID(context.Background(), "u1")
	if user.AccountStatus != domain.AccountStatusSuspended {
		t.Errorf("account status = %q, want suspendu", user.AccountStatus)
	}
	listing, _ := listings.GetByID(context.Background(), seeded.ID)
	if listing.Status != domain.ListingStatusAvailable {
		t.Errorf("suspension must not cascade to listings, got %q", listing.Status)
	}
}

func TestModerationResolveIsIdempotent(t *testing.T) {
	reports := newFakeReportRepo()
	svc := NewModerationService(reports, newFakeListingRepo(), newFakeUserRepo(), nil)

	reports.add(&domain.Report{ID: "r1", ContentType: domain.ReportContentListing, Status: domain.ReportStatusResolved})

	report, err := svc.Resolve(context.Background(), "r1")
	if err != nil {
		t.Fatalf("re-resolving should be a no-op, got %v", err)
	}
	if report.Status != domain.ReportStatusResolved {
		t.Errorf("status = %q", report.Status)
	}
}
