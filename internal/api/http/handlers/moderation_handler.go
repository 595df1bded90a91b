package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/senbim-immo/admin-service/internal/api/dto"
	"github.com/senbim-immo/admin-service/internal/domain"
	"github.com/senbim-immo/admin-service/internal/repository"
	"github.com/senbim-immo/admin-service/internal/service"
)

// ModerationHandler manages the report triage endpoints.
type ModerationHandler struct {
	service *service.ModerationService
}

// NewModerationHandler constructs handler.
func NewModerationHandler(moderationService *service.ModerationService) *ModerationHandler {
	return &ModerationHandler{service: moderationService}
}

// List GET /reports.
func (h *ModerationHandler) List(c *fiber.Ctx) error {
	filter := repository.ReportFilter{
		SearchTerm: optionalQuery(c, "search"),
	}
	if statusStr := c.Query("status"); statusStr != "" {
		status := domain.ReportStatus(statusStr)
		filter.Status = &status
	}
	if typeStr := c.Query("content_type"); typeStr != "" {
		contentType := domain.ReportContentType(typeStr)
		filter.ContentType = &contentType
	}
	filter.Limit, filter.Offset = parsePagination(c)

	reports, err := h.service.ListReports(c.Context(), filter)
	if err != nil {
		return err
	}
	items := make([]dto.ReportResponse, 0, len(reports))
	for i := range reports {
		items = append(items, reportResponse(&reports[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Counts GET /reports/counts.
func (h *ModerationHandler) Counts(c *fiber.Ctx) error {
	counts, err := h.service.CountByStatus(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": counts})
}

// Review GET /reports/:id. The response carries either a content preview or
// a tombstone when the content is gone.
func (h *ModerationHandler) Review(c *fiber.Ctx) error {
	report, content, err := h.service.Review(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	resp := dto.ReportReviewResponse{Report: reportResponse(report)}
	switch {
	case content.Listing != nil:
		listing := listingResponse(content.Listing)
		resp.Content.Listing = &listing
	case content.User != nil:
		user := userResponse(content.User)
		resp.Content.User = &user
	default:
		resp.Content.Tombstone = content.Tombstone
	}
	return c.JSON(fiber.Map{"data": resp})
}

// MarkInProgress POST /reports/:id/in-progress.
func (h *ModerationHandler) MarkInProgress(c *fiber.Ctx) error {
	report, err := h.service.MarkInProgress(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": reportResponse(report)})
}

// Resolve POST /reports/:id/resolve.
func (h *ModerationHandler) Resolve(c *fiber.Ctx) error {
	report, err := h.service.Resolve(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": reportResponse(report)})
}

// RejectListing POST /reports/:id/reject-listing.
func (h *ModerationHandler) RejectListing(c *fiber.Ctx) error {
	return h.contentAction(c, h.service.RejectListing)
}

// DeleteListing POST /reports/:id/delete-listing.
func (h *ModerationHandler) DeleteListing(c *fiber.Ctx) error {
	return h.contentAction(c, h.service.DeleteListing)
}

// SuspendUser POST /reports/:id/suspend-user.
func (h *ModerationHandler) SuspendUser(c *fiber.Ctx) error {
	return h.contentAction(c, h.service.SuspendUser)
}

// DeleteUser POST /reports/:id/delete-user.
func (h *ModerationHandler) DeleteUser(c *fiber.Ctx) error {
	return h.contentAction(c, h.service.DeleteUser)
}

func (h *ModerationHandler) contentAction(c *fiber.Ctx, action func(ctx context.Context, adminEmail, reportID string) (*domain.Report, error)) error {
	adminEmail, err := adminFromContext(c)
	if err != nil {
		return err
	}
	report, err := action(c.Context(), adminEmail, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": reportResponse(report)})
}

func reportResponse(report *domain.Report) dto.ReportResponse {
	return dto.ReportResponse{
		ID:              report.ID,
		ContentType:     report.ContentType,
		ContentID:       report.ContentID,
		Reason:          report.Reason,
		Details:         report.Details,
		ReportedByEmail: report.ReportedByEmail,
		Status:          report.Status,
		CreatedAt:       report.CreatedAt,
		UpdatedAt:       report.UpdatedAt,
	}
}
