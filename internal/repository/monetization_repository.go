package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/senbim-immo/admin-service/internal/domain"
)

// PriceRuleRepository manages listing pricing options (tarifs).
type PriceRuleRepository interface {
	Create(ctx context.Context, rule *domain.PriceRule) error
	Update(ctx context.Context, rule *domain.PriceRule) error
	GetByID(ctx context.Context, id string) (*domain.PriceRule, error)
	List(ctx context.Context) ([]domain.PriceRule, error)
	Delete(ctx context.Context, id string) error
}

type priceRuleRepository struct {
	pool *pgxpool.Pool
}

// NewPriceRuleRepository instantiates repository.
func NewPriceRuleRepository(pool *pgxpool.Pool) PriceRuleRepository {
	return &priceRuleRepository{pool: pool}
}

func (r *priceRuleRepository) Create(ctx context.Context, rule *domain.PriceRule) error {
	const query = `
        INSERT INTO price_rules (name, type, price, duration_days, active)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query, rule.Name, rule.Type, rule.Price, rule.DurationDays, rule.Active).
		Scan(&rule.ID, &rule.CreatedAt, &rule.UpdatedAt)
}

func (r *priceRuleRepository) Update(ctx context.Context, rule *domain.PriceRule) error {
	const query = `
        UPDATE price_rules SET name=$1, type=$2, price=$3, duration_days=$4, active=$5, updated_at=NOW()
        WHERE id=$6`
	cmd, err := r.pool.Exec(ctx, query, rule.Name, rule.Type, rule.Price, rule.DurationDays, rule.Active, rule.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *priceRuleRepository) GetByID(ctx context.Context, id string) (*domain.PriceRule, error) {
	const query = `SELECT id, name, type, price, duration_days, active, created_at, updated_at FROM price_rules WHERE id=$1`
	var rule domain.PriceRule
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&rule.ID, &rule.Name, &rule.Type, &rule.Price, &rule.DurationDays, &rule.Active, &rule.CreatedAt, &rule.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &rule, nil
}

func (r *priceRuleRepository) List(ctx context.Context) ([]domain.PriceRule, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, type, price, duration_days, active, created_at, updated_at FROM price_rules ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.PriceRule
	for rows.Next() {
		var rule domain.PriceRule
		if err := rows.Scan(&rule.ID, &rule.Name, &rule.Type, &rule.Price, &rule.DurationDays, &rule.Active, &rule.CreatedAt, &rule.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, rule)
	}
	return result, rows.Err()
}

func (r *priceRuleRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM price_rules WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// PackageRepository manages subscription bundles (forfaits).
type PackageRepository interface {
	Create(ctx context.Context, pack *domain.Package) error
	Update(ctx context.Context, pack *domain.Package) error
	GetByID(ctx context.Context, id string) (*domain.Package, error)
	List(ctx context.Context) ([]domain.Package, error)
	Delete(ctx context.Context, id string) error
}

type packageRepository struct {
	pool *pgxpool.Pool
}

// NewPackageRepository instantiates repository.
func NewPackageRepository(pool *pgxpool.Pool) PackageRepository {
	return &packageRepository{pool: pool}
}

func (r *packageRepository) Create(ctx context.Context, pack *domain.Package) error {
	const query = `
        INSERT INTO packages (name, price, period, included_listings, active)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query, pack.Name, pack.Price, pack.Period, pack.IncludedListings, pack.Active).
		Scan(&pack.ID, &pack.CreatedAt, &pack.UpdatedAt)
}

func (r *packageRepository) Update(ctx context.Context, pack *domain.Package) error {
	const query = `
        UPDATE packages SET name=$1, price=$2, period=$3, included_listings=$4, active=$5, updated_at=NOW()
        WHERE id=$6`
	cmd, err := r.pool.Exec(ctx, query, pack.Name, pack.Price, pack.Period, pack.IncludedListings, pack.Active, pack.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *packageRepository) GetByID(ctx context.Context, id string) (*domain.Package, error) {
	const query = `SELECT id, name, price, period, included_listings, active, created_at, updated_at FROM packages WHERE id=$1`
	var pack domain.Package
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&pack.ID, &pack.Name, &pack.Price, &pack.Period, &pack.IncludedListings, &pack.Active, &pack.CreatedAt, &pack.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &pack, nil
}

func (r *packageRepository) List(ctx context.Context) ([]domain.Package, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, price, period, included_listings, active, created_at, updated_at FROM packages ORDER BY price`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Package
	for rows.Next() {
		var pack domain.Package
		if err := rows.Scan(&pack.ID, &pack.Name, &pack.Price, &pack.Period, &pack.IncludedListings, &pack.Active, &pack.CreatedAt, &pack.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, pack)
	}
	return result, rows.Err()
}

func (r *packageRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM packages WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// CouponRepository manages discount codes.
type CouponRepository interface {
	Create(ctx context.Context, coupon *domain.Coupon) error
	Update(ctx context.Context, coupon *domain.Coupon) error
	GetByID(ctx context.Context, id string) (*domain.Coupon, error)
	List(ctx context.Context) ([]domain.Coupon, error)
	Delete(ctx context.Context, id string) error
}

type couponRepository struct {
	pool *pgxpool.Pool
}

// NewCouponRepository instantiates repository.
func NewCouponRepository(pool *pgxpool.Pool) CouponRepository {
	return &couponRepository{pool: pool}
}

const couponColumns = `id, code, discount_type, value, expiration_date, usage_limit, usage_count, active, created_at, updated_at`

func (r *couponRepository) Create(ctx context.Context, coupon *domain.Coupon) error {
	const query = `
        INSERT INTO coupons (code, discount_type, value, expiration_date, usage_limit, usage_count, active)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		coupon.Code,
		coupon.DiscountType,
		coupon.Value,
		coupon.ExpirationDate,
		coupon.UsageLimit,
		coupon.UsageCount,
		coupon.Active,
	).Scan(&coupon.ID, &coupon.CreatedAt, &coupon.UpdatedAt)
}

func (r *couponRepository) Update(ctx context.Context, coupon *domain.Coupon) error {
	const query = `
        UPDATE coupons SET code=$1, discount_type=$2, value=$3, expiration_date=$4,
            usage_limit=$5, usage_count=$6, active=$7, updated_at=NOW()
        WHERE id=$8`
	cmd, err := r.pool.Exec(ctx, query,
		coupon.Code,
		coupon.DiscountType,
		coupon.Value,
		coupon.ExpirationDate,
		coupon.UsageLimit,
		coupon.UsageCount,
		coupon.Active,
		coupon.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *couponRepository) GetByID(ctx context.Context, id string) (*domain.Coupon, error) {
	var coupon domain.Coupon
	if err := r.pool.QueryRow(ctx, `SELECT `+couponColumns+` FROM coupons WHERE id=$1`, id).Scan(
		&coupon.ID,
		&coupon.Code,
		&coupon.DiscountType,
		&coupon.Value,
		&coupon.ExpirationDate,
		&coupon.UsageLimit,
		&coupon.UsageCount,
		&coupon.Active,
		&coupon.CreatedAt,
		&coupon.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &coupon, nil
}

func (r *couponRepository) List(ctx context.Context) ([]domain.Coupon, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+couponColumns+` FROM coupons ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Coupon
	for rows.Next() {
		var coupon domain.Coupon
		if err := rows.Scan(
			&coupon.ID,
			&coupon.Code,
			&coupon.DiscountType,
			&coupon.Value,
			&coupon.ExpirationDate,
			&coupon.UsageLimit,
			&coupon.UsageCount,
			&coupon.Active,
			&coupon.CreatedAt,
			&coupon.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, coupon)
	}
	return result, rows.Err()
}

func (r *couponRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM coupons WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// PaymentRepository reads transaction history.
type PaymentRepository interface {
	List(ctx context.Context, limit, offset int) ([]domain.Payment, error)
	SumSuccessfulSince(ctx context.Context, since *time.Time) (int64, error)
}

type paymentRepository struct {
	pool *pgxpool.Pool
}

// NewPaymentRepository instantiates repository.
func NewPaymentRepository(pool *pgxpool.Pool) PaymentRepository {
	return &paymentRepository{pool: pool}
}

func (r *paymentRepository) List(ctx context.Context, limit, offset int) ([]domain.Payment, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
        SELECT id, user_email, product_name, amount, status, coupon_applied, external_reference, created_at
        FROM payments ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Payment
	for rows.Next() {
		var payment domain.Payment
		if err := rows.Scan(
			&payment.ID,
			&payment.UserEmail,
			&payment.ProductName,
			&payment.Amount,
			&payment.Status,
			&payment.CouponApplied,
			&payment.ExternalReference,
			&payment.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, payment)
	}
	return result, rows.Err()
}

func (r *paymentRepository) SumSuccessfulSince(ctx context.Context, since *time.Time) (int64, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM payments WHERE status=$1`
	args := []any{domain.PaymentStatusSuccess}
	if since != nil {
		query += ` AND created_at >= $2`
		args = append(args, *since)
	}
	var total int64
	err := r.pool.QueryRow(ctx, query, args...).Scan(&total)
	return total, err
}
