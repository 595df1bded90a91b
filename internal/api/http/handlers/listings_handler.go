package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/senbim-immo/admin-service/internal/api/dto"
	"github.com/senbim-immo/admin-service/internal/domain"
	"github.com/senbim-immo/admin-service/internal/repository"
	"github.com/senbim-immo/admin-service/internal/service"
	apperrors "github.com/senbim-immo/admin-service/pkg/util"
)

// ListingsHandler manages listing endpoints.
type ListingsHandler struct {
	service *service.ListingService
}

// NewListingsHandler constructs handler.
func NewListingsHandler(listingService *service.ListingService) *ListingsHandler {
	return &ListingsHandler{service: listingService}
}

// List GET /listings.
func (h *ListingsHandler) List(c *fiber.Ctx) error {
	filter := repository.ListingFilter{
		PropertyType: optionalQuery(c, "property_type"),
		City:         optionalQuery(c, "city"),
		CreatedBy:    optionalQuery(c, "created_by"),
		SearchTerm:   optionalQuery(c, "search"),
	}
	if statusStr := c.Query("status"); statusStr != "" {
		status := domain.ListingStatus(statusStr)
		filter.Status = &status
	}
	filter.Limit, filter.Offset = parsePagination(c)

	listings, err := h.service.List(c.Context(), filter)
	if err != nil {
		return err
	}
	items := make([]dto.ListingResponse, 0, len(listings))
	for i := range listings {
		items = append(items, listingResponse(&listings[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Counts GET /listings/counts.
func (h *ListingsHandler) Counts(c *fiber.Ctx) error {
	counts, err := h.service.CountByStatus(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.ListingCountsResponse{Counts: counts}})
}

// Get GET /listings/:id.
func (h *ListingsHandler) Get(c *fiber.Ctx) error {
	listing, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": listingResponse(listing)})
}

// Create POST /listings.
func (h *ListingsHandler) Create(c *fiber.Ctx) error {
	adminEmail, err := adminFromContext(c)
	if err != nil {
		return err
	}
	var req dto.ListingRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	listing, err := h.service.Create(c.Context(), adminEmail, listingInput(req))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": listingResponse(listing)})
}

// Update PUT /listings/:id.
func (h *ListingsHandler) Update(c *fiber.Ctx) error {
	var req dto.ListingRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	listing, err := h.service.Update(c.Context(), c.Params("id"), listingInput(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": listingResponse(listing)})
}

// Delete DELETE /listings/:id.
func (h *ListingsHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Validate POST /listings/:id/validate.
func (h *ListingsHandler) Validate(c *fiber.Ctx) error {
	return h.transition(c, h.service.Validate)
}

// Reject POST /listings/:id/reject.
func (h *ListingsHandler) Reject(c *fiber.Ctx) error {
	return h.transition(c, h.service.Reject)
}

// Hide POST /listings/:id/hide.
func (h *ListingsHandler) Hide(c *fiber.Ctx) error {
	return h.transition(c, h.service.Hide)
}

// Reserve POST /listings/:id/reserve.
func (h *ListingsHandler) Reserve(c *fiber.Ctx) error {
	return h.transition(c, h.service.Reserve)
}

// Sell POST /listings/:id/sell.
func (h *ListingsHandler) Sell(c *fiber.Ctx) error {
	return h.transition(c, h.service.Sell)
}

// Expire POST /listings/:id/expire.
func (h *ListingsHandler) Expire(c *fiber.Ctx) error {
	return h.transition(c, h.service.Expire)
}

func (h *ListingsHandler) transition(c *fiber.Ctx, action func(ctx context.Context, adminEmail, id string) (*domain.Listing, error)) error {
	adminEmail, err := adminFromContext(c)
	if err != nil {
		return err
	}
	listing, err := action(c.Context(), adminEmail, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": listingResponse(listing)})
}

func listingInput(req dto.ListingRequest) service.ListingInput {
	return service.ListingInput{
		Title:        req.Title,
		Description:  req.Description,
		Price:        req.Price,
		PropertyType: req.PropertyType,
		City:         req.City,
		District:     req.District,
		Images:       req.Images,
		Status:       req.Status,
	}
}

func listingResponse(listing *domain.Listing) dto.ListingResponse {
	return dto.ListingResponse{
		ID:           listing.ID,
		Title:        listing.Title,
		Description:  listing.Description,
		Price:        listing.Price,
		PropertyType: listing.PropertyType,
		City:         listing.City,
		District:     listing.District,
		Images:       listing.Images,
		Status:       listing.Status,
		CreatedBy:    listing.CreatedBy,
		CreatedAt:    listing.CreatedAt,
		UpdatedAt:    listing.UpdatedAt,
	}
}
