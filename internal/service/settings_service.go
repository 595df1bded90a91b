package service

import (
	"context"
	"strings"

	"github.com/senbim-immo/admin-service/internal/domain"
	"github.com/senbim-immo/admin-service/internal/repository"
	apperrors "github.com/senbim-immo/admin-service/pkg/util"
)

// SettingsService manages reference data: categories, locations, site-wide
// configuration keys.
type SettingsService struct {
	categories     repository.CategoryRepository
	locations      repository.LocationRepository
	configurations repository.ConfigurationRepository
}

// NewSettingsService constructs the service.
func NewSettingsService(categories repository.CategoryRepository, locations repository.LocationRepository, configurations repository.ConfigurationRepository) *SettingsService {
	return &SettingsService{categories: categories, locations: locations, configurations: configurations}
}

func (s *SettingsService) ListCategories(ctx context.Context, categoryType string, activeOnly bool) ([]domain.Category, error) {
	if strings.TrimSpace(categoryType) == "" {
		return nil, apperrors.NewValidationError("category type is required", nil)
	}
	return s.categories.ListByType(ctx, categoryType, activeOnly)
}

func (s *SettingsService) CreateCategory(ctx context.Context, name, categoryType string) (*domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewValidationError("category name is required", nil)
	}
	if strings.TrimSpace(categoryType) == "" {
		return nil, apperrors.NewValidationError("category type is required", nil)
	}
	category := &domain.Category{Name: name, Type: categoryType, Active: true}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *SettingsService) RenameCategory(ctx context.Context, id, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return apperrors.NewValidationError("category name is required", nil)
	}
	return s.categories.Rename(ctx, id, name)
}

func (s *SettingsService) DeleteCategory(ctx context.Context, id string) error {
	return s.categories.Delete(ctx, id)
}

func (s *SettingsService) ListLocations(ctx context.Context) ([]domain.Location, error) {
	return s.locations.List(ctx)
}

func (s *SettingsService) CreateLocation(ctx context.Context, city, district string) (*domain.Location, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, apperrors.NewValidationError("city is required", nil)
	}
	location := &domain.Location{City: city, District: strings.TrimSpace(district), Active: true}
	if err := s.locations.Create(ctx, location); err != nil {
		return nil, err
	}
	return location, nil
}

func (s *SettingsService) RenameLocation(ctx context.Context, id, city, district string) error {
	city = strings.TrimSpace(city)
	if city == "" {
		return apperrors.NewValidationError("city is required", nil)
	}
	return s.locations.Rename(ctx, id, city, strings.TrimSpace(district))
}

func (s *SettingsService) DeleteLocation(ctx context.Context, id string) error {
	return s.locations.Delete(ctx, id)
}

func (s *SettingsService) ListConfigurations(ctx context.Context) ([]domain.Configuration, error) {
	return s.configurations.List(ctx)
}

func (s *SettingsService) GetConfiguration(ctx context.Context, key string) (*domain.Configuration, error) {
	return s.configurations.Get(ctx, key)
}

func (s *SettingsService) SetConfiguration(ctx context.Context, key, value string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return apperrors.NewValidationError("configuration key is required", nil)
	}
	return s.configurations.Upsert(ctx, key, value)
}
