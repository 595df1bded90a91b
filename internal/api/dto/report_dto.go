package dto

import (
	"time"

	"github.com/senbim-immo/admin-service/internal/domain"
)

// ReportResponse representation.
type ReportResponse struct {
	ID              string                   `json:"id"`
	ContentType     domain.ReportContentType `json:"content_type"`
	ContentID       string                   `json:"content_id"`
	Reason          string                   `json:"reason"`
	Details         string                   `json:"details,omitempty"`
	ReportedByEmail string                   `json:"reported_by_email"`
	Status          domain.ReportStatus      `json:"status"`
	CreatedAt       time.Time                `json:"created_at"`
	UpdatedAt       time.Time                `json:"updated_at"`
}

// ReportedContentResponse previews the content a report points at. Exactly
// one of listing, user or tombstone is set.
type ReportedContentResponse struct {
	Listing   *ListingResponse `json:"listing,omitempty"`
	User      *UserResponse    `json:"user,omitempty"`
	Tombstone string           `json:"tombstone,omitempty"`
}

// ReportReviewResponse bundles a report with its content preview.
type ReportReviewResponse struct {
	Report  ReportResponse          `json:"report"`
	Content ReportedContentResponse `json:"content"`
}
