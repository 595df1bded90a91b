package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/senbim-immo/admin-service/internal/domain"
	"github.com/senbim-immo/admin-service/internal/events"
	"github.com/senbim-immo/admin-service/internal/repository"
	apperrors "github.com/senbim-immo/admin-service/pkg/util"
)

// ListingService coordinates listing CRUD and the moderation lifecycle.
type ListingService struct {
	listings   repository.ListingRepository
	dispatcher events.Dispatcher
}

// NewListingService constructs the service.
func NewListingService(listings repository.ListingRepository, dispatcher events.Dispatcher) *ListingService {
	return &ListingService{listings: listings, dispatcher: dispatcher}
}

// ListingInput describes create/edit payloads. Status is honored on edit
// only; creation overrides it.
type ListingInput struct {
	Title        string
	Description  string
	Price        int64
	PropertyType string
	City         string
	District     string
	Images       []string
	Status       domain.ListingStatus
}

// Create persists a new listing. Whatever status the form submitted, the
// stored status is "en attente": moderation is mandatory for new inventory.
func (s *ListingService) Create(ctx context.Context, createdBy string, input ListingInput) (*domain.Listing, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, apperrors.NewValidationError("title required", nil)
	}
	if input.Price < 0 {
		return nil, apperrors.NewValidationError("price must not be negative", nil)
	}

	listing := &domain.Listing{
		Title:        strings.TrimSpace(input.Title),
		Description:  strings.TrimSpace(input.Description),
		Price:        input.Price,
		PropertyType: input.PropertyType,
		City:         input.City,
		District:     input.District,
		Images:       input.Images,
		Status:       domain.ListingStatusPending,
		CreatedBy:    createdBy,
	}
	if err := s.listings.Create(ctx, listing); err != nil {
		return nil, err
	}
	s.publish(ctx, events.Event{
		Type:       events.EventListingCreated,
		EntityID:   listing.ID,
		AdminEmail: createdBy,
		Payload: events.ListingCreatedPayload{
			Title:     listing.Title,
			City:      listing.City,
			Price:     listing.Price,
			Status:    listing.Status,
			CreatedBy: listing.CreatedBy,
		},
	})
	return listing, nil
}

// Update edits an existing listing. Unlike creation, the submitted status is
// persisted verbatim, so editing can move a listing to any state including
// back to "en attente". This mirrors the edit form, which is an admin tool
// and deliberately bypasses the moderation gate.
func (s *ListingService) Update(ctx context.Context, id string, input ListingInput) (*domain.Listing, error) {
	listing, err := s.listings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.IsValidListingStatus(input.Status) {
		return nil, apperrors.NewValidationError("unknown listing status", map[string]any{"status": input.Status})
	}

	oldStatus := listing.Status
	listing.Title = strings.TrimSpace(input.Title)
	listing.Description = strings.TrimSpace(input.Description)
	listing.Price = input.Price
	listing.PropertyType = input.PropertyType
	listing.City = input.City
	listing.District = input.District
	listing.Images = input.Images
	listing.Status = input.Status

	if err := s.listings.Update(ctx, listing); err != nil {
		return nil, err
	}
	if !domain.ListingStatusMatches(oldStatus, listing.Status) {
		s.publishStatusChange(ctx, listing.ID, "", oldStatus, listing.Status)
	}
	return listing, nil
}

// Get returns one listing with its status folded to the canonical value.
func (s *ListingService) Get(ctx context.Context, id string) (*domain.Listing, error) {
	listing, err := s.listings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	listing.Status = domain.NormalizeListingStatus(listing.Status)
	return listing, nil
}

// List returns listings matching the filter, statuses normalized.
func (s *ListingService) List(ctx context.Context, filter repository.ListingFilter) ([]domain.Listing, error) {
	listings, err := s.listings.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	for i := range listings {
		listings[i].Status = domain.NormalizeListingStatus(listings[i].Status)
	}
	return listings, nil
}

// CountByStatus returns per-status totals for the moderation tab badges,
// legacy aliases folded in.
func (s *ListingService) CountByStatus(ctx context.Context) (map[domain.ListingStatus]int64, error) {
	return s.listings.CountByStatus(ctx)
}

// Delete removes a listing permanently.
func (s *ListingService) Delete(ctx context.Context, id string) error {
	return s.listings.Delete(ctx, id)
}

// Validate approves a pending listing.
func (s *ListingService) Validate(ctx context.Context, adminEmail, id string) (*domain.Listing, error) {
	return s.transition(ctx, adminEmail, id, domain.ListingStatusAvailable)
}

// Reject refuses a pending listing.
func (s *ListingService) Reject(ctx context.Context, adminEmail, id string) (*domain.Listing, error) {
	return s.transition(ctx, adminEmail, id, domain.ListingStatusRefused)
}

// Hide removes an available listing from public view. There is no path back.
func (s *ListingService) Hide(ctx context.Context, adminEmail, id string) (*domain.Listing, error) {
	return s.transition(ctx, adminEmail, id, domain.ListingStatusHidden)
}

// Reserve marks an available listing as reserved.
func (s *ListingService) Reserve(ctx context.Context, adminEmail, id string) (*domain.Listing, error) {
	return s.transition(ctx, adminEmail, id, domain.ListingStatusReserved)
}

// Sell marks a reserved listing as sold.
func (s *ListingService) Sell(ctx context.Context, adminEmail, id string) (*domain.Listing, error) {
	return s.transition(ctx, adminEmail, id, domain.ListingStatusSold)
}

// Expire marks an available listing as expired. No scheduler drives this;
// it is a manual terminal state.
func (s *ListingService) Expire(ctx context.Context, adminEmail, id string) (*domain.Listing, error) {
	return s.transition(ctx, adminEmail, id, domain.ListingStatusExpired)
}

func (s *ListingService) transition(ctx context.Context, adminEmail, id string, next domain.ListingStatus) (*domain.Listing, error) {
	listing, err := s.listings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanTransitionListing(listing.Status, next) {
		return nil, apperrors.NewConflict("illegal status transition", map[string]any{
			"current": domain.NormalizeListingStatus(listing.Status),
			"next":    next,
		})
	}
	oldStatus := listing.Status
	listing.Status = next
	if err := s.listings.Update(ctx, listing); err != nil {
		return nil, err
	}
	s.publishStatusChange(ctx, listing.ID, adminEmail, oldStatus, next)
	return listing, nil
}

func (s *ListingService) publishStatusChange(ctx context.Context, listingID, adminEmail string, oldStatus, newStatus domain.ListingStatus) {
	s.publish(ctx, events.Event{
		Type:       events.EventListingStatusChanged,
		EntityID:   listingID,
		AdminEmail: adminEmail,
		Payload: events.ListingStatusChangedPayload{
			OldStatus: domain.NormalizeListingStatus(oldStatus),
			NewStatus: domain.NormalizeListingStatus(newStatus),
		},
	})
}

func (s *ListingService) publish(ctx context.Context, event events.Event) {
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
