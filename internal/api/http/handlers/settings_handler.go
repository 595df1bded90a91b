package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/senbim-immo/admin-service/internal/api/dto"
	"github.com/senbim-immo/admin-service/internal/domain"
	"github.com/senbim-immo/admin-service/internal/service"
	apperrors "github.com/senbim-immo/admin-service/pkg/util"
)

// SettingsHandler manages reference data endpoints.
type SettingsHandler struct {
	service *service.SettingsService
}

// NewSettingsHandler constructs handler.
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: settingsService}
}

// ListCategories GET /settings/categories?type=...
func (h *SettingsHandler) ListCategories(c *fiber.Ctx) error {
	activeOnly := c.Query("active_only") == "true"
	categories, err := h.service.ListCategories(c.Context(), c.Query("type"), activeOnly)
	if err != nil {
		return err
	}
	items := make([]dto.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		items = append(items, categoryResponse(category))
	}
	return c.JSON(fiber.Map{"data": items})
}

// CreateCategory POST /settings/categories.
func (h *SettingsHandler) CreateCategory(c *fiber.Ctx) error {
	var req dto.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	category, err := h.service.CreateCategory(c.Context(), req.Name, req.Type)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": categoryResponse(*category)})
}

// RenameCategory PATCH /settings/categories/:id.
func (h *SettingsHandler) RenameCategory(c *fiber.Ctx) error {
	var req dto.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := h.service.RenameCategory(c.Context(), c.Params("id"), req.Name); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"renamed": true}})
}

// DeleteCategory DELETE /settings/categories/:id.
func (h *SettingsHandler) DeleteCategory(c *fiber.Ctx) error {
	if err := h.service.DeleteCategory(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListLocations GET /settings/locations.
func (h *SettingsHandler) ListLocations(c *fiber.Ctx) error {
	locations, err := h.service.ListLocations(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.LocationResponse, 0, len(locations))
	for _, location := range locations {
		items = append(items, locationResponse(location))
	}
	return c.JSON(fiber.Map{"data": items})
}

// CreateLocation POST /settings/locations.
func (h *SettingsHandler) CreateLocation(c *fiber.Ctx) error {
	var req dto.LocationRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	location, err := h.service.CreateLocation(c.Context(), req.City, req.District)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": locationResponse(*location)})
}

// RenameLocation PATCH /settings/locations/:id.
func (h *SettingsHandler) RenameLocation(c *fiber.Ctx) error {
	var req dto.LocationRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := h.service.RenameLocation(c.Context(), c.Params("id"), req.City, req.District); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"renamed": true}})
}

// DeleteLocation DELETE /settings/locations/:id.
func (h *SettingsHandler) DeleteLocation(c *fiber.Ctx) error {
	if err := h.service.DeleteLocation(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListConfigurations GET /settings/configurations.
func (h *SettingsHandler) ListConfigurations(c *fiber.Ctx) error {
	configurations, err := h.service.ListConfigurations(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.ConfigurationResponse, 0, len(configurations))
	for _, cfg := range configurations {
		items = append(items, dto.ConfigurationResponse{Key: cfg.Key, Value: cfg.Value, UpdatedAt: cfg.UpdatedAt})
	}
	return c.JSON(fiber.Map{"data": items})
}

// SetConfiguration PUT /settings/configurations.
func (h *SettingsHandler) SetConfiguration(c *fiber.Ctx) error {
	var req dto.ConfigurationRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := h.service.SetConfiguration(c.Context(), req.Key, req.Value); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"key": req.Key, "value": req.Value}})
}

func categoryResponse(category domain.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:     category.ID,
		Name:   category.Name,
		Type:   category.Type,
		Active: category.Active,
	}
}

func locationResponse(location domain.Location) dto.LocationResponse {
	return dto.LocationResponse{
		ID:       location.ID,
		City:     location.City,
		District: location.District,
		Active:   location.Active,
	}
}
