package service

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/senbim-immo/admin-service/internal/domain"
	apperrors "github.com/senbim-immo/admin-service/pkg/util"
)

type fakePaymentRepo struct {
	payments []domain.Payment
}

func (f *fakePaymentRepo) List(_ context.Context, _, _ int) ([]domain.Payment, error) {
	return f.payments, nil
}

func (f *fakePaymentRepo) SumSuccessfulSince(_ context.Context, since *time.Time) (int64, error) {
	var sum int64
	for _, p := range f.payments {
		if p.Status != domain.PaymentStatusSuccess {
			continue
		}
		if since != nil && p.CreatedAt.Before(*since) {
			continue
		}
		sum += p.Amount
	}
	return sum, nil
}

type fakeCouponRepo struct {
	coupons map[string]*domain.Coupon
}

func (f *fakeCouponRepo) Create(_ context.Context, coupon *domain.Coupon) error {
	if f.coupons == nil {
		f.coupons = map[string]*domain.Coupon{}
	}
	coupon.ID = "coupon-1"
	copied := *coupon
	f.coupons[coupon.ID] = &copied
	return nil
}

func (f *fakeCouponRepo) Update(_ context.Context, coupon *domain.Coupon) error {
	if _, ok := f.coupons[coupon.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *coupon
	f.coupons[coupon.ID] = &copied
	return nil
}

func (f *fakeCouponRepo) GetByID(_ context.Context, id string) (*domain.Coupon, error) {
	coupon, ok := f.coupons[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *coupon
	return &copied, nil
}

func (f *fakeCouponRepo) List(_ context.Context) ([]domain.Coupon, error) {
	var result []domain.Coupon
	for _, coupon := range f.coupons {
		result = append(result, *coupon)
	}
	return result, nil
}

func (f *fakeCouponRepo) Delete(_ context.Context, id string) error {
	delete(f.coupons, id)
	return nil
}

func TestMonetizationRevenueSplitsByMonthStart(t *testing.T) {
	now := time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC)
	payments := &fakePaymentRepo{payments: []domain.Payment{
		{Amount: 5000, Status: domain.PaymentStatusSuccess, CreatedAt: time.Date(2025, time.January, 3, 0, 0, 0, 0, time.UTC)},
		{Amount: 2000, Status: domain.PaymentStatusSuccess, CreatedAt: time.Date(2025, time.March, 2, 0, 0, 0, 0, time.UTC)},
		{Amount: 9999, Status: "échoué", CreatedAt: time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)},
	}}
	svc := NewMonetizationService(nil, nil, nil, payments)

	revenue, err := svc.Revenue(context.Background(), now)
	if err != nil {
		t.Fatalf("Revenue returned error: %v", err)
	}
	if revenue.Total != 7000 {
		t.Errorf("total = %d, want 7000", revenue.Total)
	}
	if revenue.ThisMonth != 2000 {
		t.Errorf("this month = %d, want 2000", revenue.ThisMonth)
	}
}

func TestMonetizationSaveCoupon(t *testing.T) {
	tests := []struct {
		name     string
		coupon   domain.Coupon
		wantCode string
	}{
		{
			name:     "missing code",
			coupon:   domain.Coupon{DiscountType: domain.CouponDiscountPercentage, Value: 10},
			wantCode: "VALIDATION_FAILED",
		},
		{
			name:     "unknown discount type",
			coupon:   domain.Coupon{Code: "BIENVENUE10", DiscountType: "moitié"},
			wantCode: "VALIDATION_FAILED",
		},
		{
			name:   "valid percentage coupon",
			coupon: domain.Coupon{Code: "BIENVENUE10", DiscountType: domain.CouponDiscountPercentage, Value: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coupons := &fakeCouponRepo{}
			svc := NewMonetizationService(nil, nil, coupons, nil)

			err := svc.SaveCoupon(context.Background(), &tt.coupon)
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("SaveCoupon returned error: %v", err)
				}
				if tt.coupon.ID == "" {
					t.Error("expected repository to assign an id")
				}
				return
			}
			domainErr := apperrors.ToDomainError(err)
			if domainErr.Code != tt.wantCode {
				t.Errorf("error code = %q, want %q", domainErr.Code, tt.wantCode)
			}
		})
	}
}

func TestMonetizationToggleCoupon(t *testing.T) {
	coupons := &fakeCouponRepo{}
	svc := NewMonetizationService(nil, nil, coupons, nil)
	seed := domain.Coupon{Code: "ETE2025", DiscountType: domain.CouponDiscountFixed, Value: 1000, Active: true}
	if err := svc.SaveCoupon(context.Background(), &seed); err != nil {
		t.Fatalf("SaveCoupon returned error: %v", err)
	}

	toggled, err := svc.ToggleCoupon(context.Background(), seed.ID)
	if err != nil {
		t.Fatalf("ToggleCoupon returned error: %v", err)
	}
	if toggled.Active {
		t.Error("coupon should be inactive after toggle")
	}
}
