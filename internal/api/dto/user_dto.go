package dto

import (
	"time"

	"github.com/senbim-immo/admin-service/internal/domain"
)

// LoginRequest payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the issued token and its owner.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

// UserResponse representation. Password material never leaves the server.
type UserResponse struct {
	ID                   string               `json:"id"`
	Email                string               `json:"email"`
	FullName             string               `json:"full_name"`
	Phone                string               `json:"phone,omitempty"`
	Role                 domain.UserRole      `json:"role"`
	AccountStatus        domain.AccountStatus `json:"account_status"`
	AccountType          domain.AccountType   `json:"account_type"`
	EmailVerified        bool                 `json:"email_verified"`
	PhoneVerified        bool                 `json:"phone_verified"`
	Region               string               `json:"region,omitempty"`
	NotificationSettings map[string]bool      `json:"notification_settings,omitempty"`
	CreatedAt            time.Time            `json:"created_at"`
	UpdatedAt            time.Time            `json:"updated_at"`
}

// UpdateProfileRequest payload; nil fields stay unchanged.
type UpdateProfileRequest struct {
	FullName             *string         `json:"full_name"`
	Phone                *string         `json:"phone"`
	Region               *string         `json:"region"`
	NotificationSettings map[string]bool `json:"notification_settings"`
}
