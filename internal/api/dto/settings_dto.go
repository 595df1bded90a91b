package dto

import (
	"time"

	"github.com/senbim-immo/admin-service/internal/domain"
)

// CategoryRequest payload.
type CategoryRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// CategoryResponse representation.
type CategoryResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Type   string `json:"type"`
	Active bool   `json:"active"`
}

// LocationRequest payload.
type LocationRequest struct {
	City     string `json:"city"`
	District string `json:"district"`
}

// LocationResponse representation.
type LocationResponse struct {
	ID       string `json:"id"`
	City     string `json:"city"`
	District string `json:"district,omitempty"`
	Active   bool   `json:"active"`
}

// ConfigurationRequest payload.
type ConfigurationRequest struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// ConfigurationResponse representation.
type ConfigurationResponse struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AgentRequest payload.
type AgentRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
	PhotoURL string `json:"photo_url"`
	Active   bool   `json:"active"`
}

// AgentResponse representation.
type AgentResponse struct {
	ID        string    `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role,omitempty"`
	PhotoURL  string    `json:"photo_url,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// ContactMessageResponse representation.
type ContactMessageResponse struct {
	ID        string                      `json:"id"`
	FullName  string                      `json:"full_name"`
	Email     string                      `json:"email"`
	Phone     string                      `json:"phone,omitempty"`
	Subject   string                      `json:"subject"`
	Message   string                      `json:"message"`
	Status    domain.ContactMessageStatus `json:"status"`
	CreatedAt time.Time                   `json:"created_at"`
}

// ContactReplyRequest payload.
type ContactReplyRequest struct {
	Content string `json:"content"`
}
