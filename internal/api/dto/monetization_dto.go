package dto

import (
	"time"

	"github.com/senbim-immo/admin-service/internal/domain"
)

// PriceRuleRequest payload.
type PriceRuleRequest struct {
	Name         string `json:"name"`
	Type         string `json:"type"`
	Price        int64  `json:"price"`
	DurationDays int    `json:"duration_days"`
	Active       bool   `json:"active"`
}

// PriceRuleResponse representation.
type PriceRuleResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Type         string    `json:"type"`
	Price        int64     `json:"price"`
	DurationDays int       `json:"duration_days"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PackageRequest payload.
type PackageRequest struct {
	Name             string `json:"name"`
	Price            int64  `json:"price"`
	Period           string `json:"period"`
	IncludedListings int    `json:"included_listings"`
	Active           bool   `json:"active"`
}

// PackageResponse representation.
type PackageResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Price            int64     `json:"price"`
	Period           string    `json:"period"`
	IncludedListings int       `json:"included_listings"`
	Active           bool      `json:"active"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// CouponRequest payload.
type CouponRequest struct {
	Code           string                    `json:"code"`
	DiscountType   domain.CouponDiscountType `json:"discount_type"`
	Value          int64                     `json:"value"`
	ExpirationDate *time.Time                `json:"expiration_date"`
	UsageLimit     int                       `json:"usage_limit"`
	Active         bool                      `json:"active"`
}

// CouponResponse representation.
type CouponResponse struct {
	ID             string                    `json:"id"`
	Code           string                    `json:"code"`
	DiscountType   domain.CouponDiscountType `json:"discount_type"`
	Value          int64                     `json:"value"`
	ExpirationDate *time.Time                `json:"expiration_date,omitempty"`
	UsageLimit     int                       `json:"usage_limit"`
	UsageCount     int                       `json:"usage_count"`
	Active         bool                      `json:"active"`
	CreatedAt      time.Time                 `json:"created_at"`
	UpdatedAt      time.Time                 `json:"updated_at"`
}

// PaymentResponse representation.
type PaymentResponse struct {
	ID                string    `json:"id"`
	UserEmail         string    `json:"user_email"`
	ProductName       string    `json:"product_name"`
	Amount            int64     `json:"amount"`
	Status            string    `json:"status"`
	CouponApplied     string    `json:"coupon_applied,omitempty"`
	ExternalReference string    `json:"external_reference,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// RevenueResponse aggregates successful payments.
type RevenueResponse struct {
	Total     int64 `json:"total"`
	ThisMonth int64 `json:"this_month"`
}
