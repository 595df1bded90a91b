package service

import (
	"context"
	"time"

	"github.com/senbim-immo/admin-service/internal/domain"
	"github.com/senbim-immo/admin-service/internal/repository"
	apperrors "github.com/senbim-immo/admin-service/pkg/util"
)

// MonetizationService manages pricing configuration and payment reporting.
type MonetizationService struct {
	priceRules repository.PriceRuleRepository
	packages   repository.PackageRepository
	coupons    repository.CouponRepository
	payments   repository.PaymentRepository
}

// NewMonetizationService constructs the service.
func NewMonetizationService(priceRules repository.PriceRuleRepository, packages repository.PackageRepository, coupons repository.CouponRepository, payments repository.PaymentRepository) *MonetizationService {
	return &MonetizationService{priceRules: priceRules, packages: packages, coupons: coupons, payments: payments}
}

// --- Tarifs ---

func (s *MonetizationService) ListPriceRules(ctx context.Context) ([]domain.PriceRule, error) {
	return s.priceRules.List(ctx)
}

func (s *MonetizationService) SavePriceRule(ctx context.Context, rule *domain.PriceRule) error {
	if rule.Price < 0 {
		return apperrors.NewValidationError("price must not be negative", nil)
	}
	if rule.ID == "" {
		return s.priceRules.Create(ctx, rule)
	}
	return s.priceRules.Update(ctx, rule)
}

// TogglePriceRule flips the active flag.
func (s *MonetizationService) TogglePriceRule(ctx context.Context, id string) (*domain.PriceRule, error) {
	rule, err := s.priceRules.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	rule.Active = !rule.Active
	if err := s.priceRules.Update(ctx, rule); err != nil {
		return nil, err
	}
	return rule, nil
}

func (s *MonetizationService) DeletePriceRule(ctx context.Context, id string) error {
	return s.priceRules.Delete(ctx, id)
}

// --- Forfaits ---

func (s *MonetizationService) ListPackages(ctx context.Context) ([]domain.Package, error) {
	return s.packages.List(ctx)
}

func (s *MonetizationService) SavePackage(ctx context.Context, pack *domain.Package) error {
	if pack.Price < 0 {
		return apperrors.NewValidationError("price must not be negative", nil)
	}
	if pack.ID == "" {
		return s.packages.Create(ctx, pack)
	}
	return s.packages.Update(ctx, pack)
}

func (s *MonetizationService) TogglePackage(ctx context.Context, id string) (*domain.Package, error) {
	pack, err := s.packages.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	pack.Active = !pack.Active
	if err := s.packages.Update(ctx, pack); err != nil {
		return nil, err
	}
	return pack, nil
}

func (s *MonetizationService) DeletePackage(ctx context.Context, id string) error {
	return s.packages.Delete(ctx, id)
}

// --- Coupons ---

func (s *MonetizationService) ListCoupons(ctx context.Context) ([]domain.Coupon, error) {
	return s.coupons.List(ctx)
}

// SaveCoupon stores a coupon. Usage counters are informational; redemption
// enforcement is owned by the payment backend.
func (s *MonetizationService) SaveCoupon(ctx context.Context, coupon *domain.Coupon) error {
	if coupon.Code == "" {
		return apperrors.NewValidationError("code required", nil)
	}
	switch coupon.DiscountType {
	case domain.CouponDiscountPercentage, domain.CouponDiscountFixed:
	default:
		return apperrors.NewValidationError("unknown discount type", map[string]any{"discount_type": coupon.DiscountType})
	}
	if coupon.ID == "" {
		return s.coupons.Create(ctx, coupon)
	}
	return s.coupons.Update(ctx, coupon)
}

func (s *MonetizationService) ToggleCoupon(ctx context.Context, id string) (*domain.Coupon, error) {
	coupon, err := s.coupons.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	coupon.Active = !coupon.Active
	if err := s.coupons.Update(ctx, coupon); err != nil {
		return nil, err
	}
	return coupon, nil
}

func (s *MonetizationService) DeleteCoupon(ctx context.Context, id string) error {
	return s.coupons.Delete(ctx, id)
}

// --- Paiements ---

func (s *MonetizationService) ListPayments(ctx context.Context, limit, offset int) ([]domain.Payment, error) {
	return s.payments.List(ctx, limit, offset)
}

// Revenue aggregates successful payments: all-time total and current
// calendar month. Integer CFA addition only.
type Revenue struct {
	Total     int64 `json:"total"`
	ThisMonth int64 `json:"this_month"`
}

func (s *MonetizationService) Revenue(ctx context.Context, now time.Time) (*Revenue, error) {
	total, err := s.payments.SumSuccessfulSince(ctx, nil)
	if err != nil {
		return nil, err
	}
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	thisMonth, err := s.payments.SumSuccessfulSince(ctx, &monthStart)
	if err != nil {
		return nil, err
	}
	return &Revenue{Total: total, ThisMonth: thisMonth}, nil
}
