package events

import (
	"time"

	"github.com/senbim-immo/admin-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventListingCreated       EventType = "listing_created"
	EventListingStatusChanged EventType = "listing_status_changed"
	EventReportResolved       EventType = "report_resolved"
	EventConversationBlocked  EventType = "conversation_blocked"
	EventUserSuspended        EventType = "user_suspended"
	EventTicketReplied        EventType = "ticket_replied"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID         string      `json:"id"`
	Type       EventType   `json:"type"`
	EntityID   string      `json:"entity_id"`
	AdminEmail string      `json:"admin_email,omitempty"`
	Timestamp  time.Time   `json:"timestamp"`
	Payload    interface{} `json:"payload"`
}

// ListingCreatedPayload payload.
type ListingCreatedPayload struct {
	Title     string               `json:"title"`
	City      string               `json:"city"`
	Price     int64                `json:"price"`
	Status    domain.ListingStatus `json:"status"`
	CreatedBy string               `json:"created_by"`
}

// ListingStatusChangedPayload payload.
type ListingStatusChangedPayload struct {
	OldStatus domain.ListingStatus `json:"old_status"`
	NewStatus domain.ListingStatus `json:"new_status"`
}

// ReportResolvedPayload payload.
type ReportResolvedPayload struct {
	ContentType domain.ReportContentType `json:"content_type"`
	ContentID   string                   `json:"content_id"`
	Action      string                   `json:"action,omitempty"`
}

// ConversationBlockedPayload payload.
type ConversationBlockedPayload struct {
	Participant1Email string `json:"participant1_email"`
	Participant2Email string `json:"participant2_email"`
}

// UserSuspendedPayload payload.
type UserSuspendedPayload struct {
	Email string `json:"email"`
}

// TicketRepliedPayload payload.
type TicketRepliedPayload struct {
	UserEmail   string              `json:"user_email"`
	Subject     string              `json:"subject"`
	NewStatus   domain.TicketStatus `json:"new_status"`
	BodyPreview string              `json:"body_preview"`
}
