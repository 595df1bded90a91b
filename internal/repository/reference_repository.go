package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/senbim-immo/admin-service/internal/domain"
)

// CategoryRepository manages reference categories (property types etc.).
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) error
	Rename(ctx context.Context, id, name string) error
	ListByType(ctx context.Context, categoryType string, activeOnly bool) ([]domain.Category, error)
	Delete(ctx context.Context, id string) error
}

type categoryRepository struct {
	pool *pgxpool.Pool
}

// NewCategoryRepository instantiates repository.
func NewCategoryRepository(pool *pgxpool.Pool) CategoryRepository {
	return &categoryRepository{pool: pool}
}

func (r *categoryRepository) Create(ctx context.Context, category *domain.Category) error {
	const query = `
        INSERT INTO categories (name, type, active)
        VALUES ($1,$2,$3)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query, category.Name, category.Type, category.Active).
		Scan(&category.ID, &category.CreatedAt, &category.UpdatedAt)
}

func (r *categoryRepository) Rename(ctx context.Context, id, name string) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE categories SET name=$1, updated_at=NOW() WHERE id=$2`, name, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *categoryRepository) ListByType(ctx context.Context, categoryType string, activeOnly bool) ([]domain.Category, error) {
	query := `SELECT id, name, type, active, created_at, updated_at FROM categories WHERE type=$1`
	if activeOnly {
		query += ` AND active=true`
	}
	query += ` ORDER BY name`
	rows, err := r.pool.Query(ctx, query, categoryType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Category
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.Type, &category.Active, &category.CreatedAt, &category.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, category)
	}
	return result, rows.Err()
}

func (r *categoryRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// LocationRepository manages city/district reference data.
type LocationRepository interface {
	Create(ctx context.Context, location *domain.Location) error
	Rename(ctx context.Context, id, city, district string) error
	List(ctx context.Context) ([]domain.Location, error)
	Delete(ctx context.Context, id string) error
}

type locationRepository struct {
	pool *pgxpool.Pool
}

// NewLocationRepository instantiates repository.
func NewLocationRepository(pool *pgxpool.Pool) LocationRepository {
	return &locationRepository{pool: pool}
}

func (r *locationRepository) Create(ctx context.Context, location *domain.Location) error {
	const query = `
        INSERT INTO locations (city, district, active)
        VALUES ($1,$2,$3)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query, location.City, location.District, location.Active).
		Scan(&location.ID, &location.CreatedAt, &location.UpdatedAt)
}

func (r *locationRepository) Rename(ctx context.Context, id, city, district string) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE locations SET city=$1, district=$2, updated_at=NOW() WHERE id=$3`, city, district, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *locationRepository) List(ctx context.Context) ([]domain.Location, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, city, district, active, created_at, updated_at FROM locations ORDER BY city, district`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Location
	for rows.Next() {
		var location domain.Location
		if err := rows.Scan(&location.ID, &location.City, &location.District, &location.Active, &location.CreatedAt, &location.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, location)
	}
	return result, rows.Err()
}

func (r *locationRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM locations WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// ConfigurationRepository manages site-wide key/value settings.
type ConfigurationRepository interface {
	Upsert(ctx context.Context, key, value string) error
	Get(ctx context.Context, key string) (*domain.Configuration, error)
	List(ctx context.Context) ([]domain.Configuration, error)
}

type configurationRepository struct {
	pool *pgxpool.Pool
}

// NewConfigurationRepository instantiates repository.
func NewConfigurationRepository(pool *pgxpool.Pool) ConfigurationRepository {
	return &configurationRepository{pool: pool}
}

func (r *configurationRepository) Upsert(ctx context.Context, key, value string) error {
	const query = `
        INSERT INTO configurations (key, value) VALUES ($1,$2)
        ON CONFLICT (key) DO UPDATE SET value=EXCLUDED.value, updated_at=NOW()`
	_, err := r.pool.Exec(ctx, query, key, value)
	return err
}

func (r *configurationRepository) Get(ctx context.Context, key string) (*domain.Configuration, error) {
	var cfg domain.Configuration
	if err := r.pool.QueryRow(ctx, `SELECT id, key, value, updated_at FROM configurations WHERE key=$1`, key).
		Scan(&cfg.ID, &cfg.Key, &cfg.Value, &cfg.UpdatedAt); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *configurationRepository) List(ctx context.Context) ([]domain.Configuration, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, key, value, updated_at FROM configurations ORDER BY key`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Configuration
	for rows.Next() {
		var cfg domain.Configuration
		if err := rows.Scan(&cfg.ID, &cfg.Key, &cfg.Value, &cfg.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, cfg)
	}
	return result, rows.Err()
}
