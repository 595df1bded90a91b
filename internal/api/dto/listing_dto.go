package dto

import (
	"time"

	"github.com/senbim-immo/admin-service/internal/domain"
)

// ListingRequest payload for create and edit.
type ListingRequest struct {
	Title        string               `json:"title"`
	Description  string               `json:"description"`
	Price        int64                `json:"price"`
	PropertyType string               `json:"property_type"`
	City         string               `json:"city"`
	District     string               `json:"district"`
	Images       []string             `json:"images"`
	Status       domain.ListingStatus `json:"status"`
}

// ListingResponse representation.
type ListingResponse struct {
	ID           string               `json:"id"`
	Title        string               `json:"title"`
	Description  string               `json:"description"`
	Price        int64                `json:"price"`
	PropertyType string               `json:"property_type"`
	City         string               `json:"city"`
	District     string               `json:"district"`
	Images       []string             `json:"images"`
	Status       domain.ListingStatus `json:"status"`
	CreatedBy    string               `json:"created_by"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
}

// ListingCountsResponse feeds the moderation tab badges.
type ListingCountsResponse struct {
	Counts map[domain.ListingStatus]int64 `json:"counts"`
}
