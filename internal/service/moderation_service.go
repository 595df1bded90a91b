package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/senbim-immo/admin-service/internal/domain"
	"github.com/senbim-immo/admin-service/internal/events"
	"github.com/senbim-immo/admin-service/internal/repository"
	apperrors "github.com/senbim-immo/admin-service/pkg/util"
)

// Tombstone messages shown when reported content no longer exists.
const (
	tombstoneListing = "Annonce introuvable ou déjà supprimée."
	tombstoneUser    = "Utilisateur introuvable ou déjà supprimé."
	tombstoneGeneric = "Contenu introuvable ou déjà supprimé."
)

// ReportedContent is the result of resolving a report's reference. Exactly
// one of Listing, User or Tombstone is set; a missing reference is an
// expected, displayable condition, not an error.
type ReportedContent struct {
	Listing   *domain.Listing
	User      *domain.User
	Tombstone string
}

// ModerationService drives the report triage queue.
type ModerationService struct {
	reports    repository.ReportRepository
	listings   repository.ListingRepository
	users      repository.UserRepository
	dispatcher events.Dispatcher
}

// NewModerationService constructs the service.
func NewModerationService(reports repository.ReportRepository, listings repository.ListingRepository, users repository.UserRepository, dispatcher events.Dispatcher) *ModerationService {
	return &ModerationService{reports: reports, listings: listings, users: users, dispatcher: dispatcher}
}

// ListReports returns the triage queue.
func (s *ModerationService) ListReports(ctx context.Context, filter repository.ReportFilter) ([]domain.Report, error) {
	return s.reports.List(ctx, filter)
}

// CountByStatus returns queue counts for the header badges.
func (s *ModerationService) CountByStatus(ctx context.Context) (map[domain.ReportStatus]int64, error) {
	return s.reports.CountByStatus(ctx)
}

// Review loads a report together with the content it points at. Deleted
// content yields a tombstone in place of a preview.
func (s *ModerationService) Review(ctx context.Context, reportID string) (*domain.Report, *ReportedContent, error) {
	report, err := s.reports.GetByID(ctx, reportID)
	if err != nil {
		return nil, nil, err
	}

	content := &ReportedContent{}
	switch report.ContentType {
	case domain.ReportContentListing:
		listing, err := s.listings.GetByID(ctx, report.ContentID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				content.Tombstone = tombstoneListing
				return report, content, nil
			}
			return nil, nil, err
		}
		listing.Status = domain.NormalizeListingStatus(listing.Status)
		content.Listing = listing
	case domain.ReportContentUser:
		user, err := s.users.GetByID(ctx, report.ContentID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				content.Tombstone = tombstoneUser
				return report, content, nil
			}
			return nil, nil, err
		}
		content.User = user
	default:
		content.Tombstone = tombstoneGeneric
	}
	return report, content, nil
}

// MarkInProgress moves a new report into triage.
func (s *ModerationService) MarkInProgress(ctx context.Context, reportID string) (*domain.Report, error) {
	return s.updateStatus(ctx, reportID, domain.ReportStatusInProgress)
}

// Resolve closes a report without acting on the content.
func (s *ModerationService) Resolve(ctx context.Context, reportID string) (*domain.Report, error) {
	return s.updateStatus(ctx, reportID, domain.ReportStatusResolved)
}

// RejectListing refuses the reported listing, then resolves the report.
func (s *ModerationService) RejectListing(ctx context.Context, adminEmail, reportID string) (*domain.Report, error) {
	return s.contentAction(ctx, adminEmail, reportID, domain.ReportContentListing, "reject", func(ctx context.Context, contentID string) error {
		listing, err := s.listings.GetByID(ctx, contentID)
		if err != nil {
			return err
		}
		listing.Status = domain.ListingStatusRefused
		return s.listings.Update(ctx, listing)
	})
}

// DeleteListing removes the reported listing, then resolves the report.
func (s *ModerationService) DeleteListing(ctx context.Context, adminEmail, reportID string) (*domain.Report, error) {
	return s.contentAction(ctx, adminEmail, reportID, domain.ReportContentListing, "delete", func(ctx context.Context, contentID string) error {
		return s.listings.Delete(ctx, contentID)
	})
}

// SuspendUser suspends the reported account, then resolves the report.
// Suspension does not cascade to the member's listings or conversations.
func (s *ModerationService) SuspendUser(ctx context.Context, adminEmail, reportID string) (*domain.Report, error) {
	return s.contentAction(ctx, adminEmail, reportID, domain.ReportContentUser, "suspend", func(ctx context.Context, contentID string) error {
		user, err := s.users.GetByID(ctx, contentID)
		if err != nil {
			return err
		}
		user.AccountStatus = domain.AccountStatusSuspended
		if err := s.users.Update(ctx, user); err != nil {
			return err
		}
		s.publish(ctx, events.Event{
			Type:       events.EventUserSuspended,
			EntityID:   user.ID,
			AdminEmail: adminEmail,
			Payload:    events.UserSuspendedPayload{Email: user.Email},
		})
		return nil
	})
}

// DeleteUser removes the reported account, then resolves the report.
func (s *ModerationService) DeleteUser(ctx context.Context, adminEmail, reportID string) (*domain.Report, error) {
	return s.contentAction(ctx, adminEmail, reportID, domain.ReportContentUser, "delete", func(ctx context.Context, contentID string) error {
		return s.users.Delete(ctx, contentID)
	})
}

// contentAction runs a two-step composite: act on the content, then resolve
// the report. Step-1 failure aborts before step 2. Step-1 success followed by
// step-2 failure returns a PARTIALLY_APPLIED error so the operator knows the
// content was changed but the report still shows unresolved.
func (s *ModerationService) contentAction(ctx context.Context, adminEmail, reportID string, wantType domain.ReportContentType, action string, apply func(context.Context, string) error) (*domain.Report, error) {
	report, err := s.reports.GetByID(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if report.ContentType != wantType {
		return nil, apperrors.NewValidationError("action does not apply to this content type", map[string]any{
			"content_type": report.ContentType,
		})
	}

	if err := apply(ctx, report.ContentID); err != nil {
		return nil, err
	}

	report.Status = domain.ReportStatusResolved
	if err := s.reports.Update(ctx, report); err != nil {
		return nil, apperrors.NewPartiallyApplied(
			"content action applied but report could not be resolved",
			map[string]any{
				"report_id":  report.ID,
				"action":     action,
				"content_id": report.ContentID,
			}, err)
	}

	s.publish(ctx, events.Event{
		Type:       events.EventReportResolved,
		EntityID:   report.ID,
		AdminEmail: adminEmail,
		Payload: events.ReportResolvedPayload{
			ContentType: report.ContentType,
			ContentID:   report.ContentID,
			Action:      action,
		},
	})
	return report, nil
}

func (s *ModerationService) updateStatus(ctx context.Context, reportID string, next domain.ReportStatus) (*domain.Report, error) {
	report, err := s.reports.GetByID(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if report.Status == next {
		return report, nil
	}
	if !domain.CanTransitionReport(report.Status, next) {
		return nil, apperrors.NewConflict("illegal report transition", map[string]any{
			"current": report.Status,
			"next":    next,
		})
	}
	report.Status = next
	if err := s.reports.Update(ctx, report); err != nil {
		return nil, err
	}
	if next == domain.ReportStatusResolved {
		s.publish(ctx, events.Event{
			Type:     events.EventReportResolved,
			EntityID: report.ID,
			Payload: events.ReportResolvedPayload{
				ContentType: report.ContentType,
				ContentID:   report.ContentID,
			},
		})
	}
	return report, nil
}

func (s *ModerationService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
