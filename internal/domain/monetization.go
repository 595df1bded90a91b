package domain

import "time"

// PriceRule (tarif) is a per-listing pricing option.
type PriceRule struct {
	ID           string
	Name         string
	Type         string
	Price        int64
	DurationDays int
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Package (forfait) is a subscription bundle for professional accounts.
type Package struct {
	ID               string
	Name             string
	Price            int64
	Period           string
	IncludedListings int
	Active           bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// CouponDiscountType distinguishes percentage from fixed-amount discounts.
type CouponDiscountType string

const (
	CouponDiscountPercentage CouponDiscountType = "percentage"
	CouponDiscountFixed      CouponDiscountType = "fixed"
)

// Coupon is a discount code. UsageCount against UsageLimit is recorded for
// reporting only; redemption enforcement belongs to the payment backend.
type Coupon struct {
	ID             string
	Code           string
	DiscountType   CouponDiscountType
	Value          int64
	ExpirationDate *time.Time
	UsageLimit     int
	UsageCount     int
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// PaymentStatusSuccess marks payments counted into revenue aggregates.
const PaymentStatusSuccess = "réussi"

// Payment is a transaction record, read-mostly. Amounts are integer CFA.
type Payment struct {
	ID                string
	UserEmail         string
	ProductName       string
	Amount            int64
	Status            string
	CouponApplied     string
	ExternalReference string
	CreatedAt         time.Time
}
