package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/senbim-immo/admin-service/internal/api/dto"
	"github.com/senbim-immo/admin-service/internal/domain"
	"github.com/senbim-immo/admin-service/internal/repository"
	"github.com/senbim-immo/admin-service/internal/service"
	apperrors "github.com/senbim-immo/admin-service/pkg/util"
)

// ContactsHandler manages the contact-form inbox endpoints.
type ContactsHandler struct {
	service *service.ContactService
}

// NewContactsHandler constructs handler.
func NewContactsHandler(contactService *service.ContactService) *ContactsHandler {
	return &ContactsHandler{service: contactService}
}

// List GET /contact-messages.
func (h *ContactsHandler) List(c *fiber.Ctx) error {
	filter := repository.ContactMessageFilter{
		SearchTerm: optionalQuery(c, "search"),
	}
	if statusStr := c.Query("status"); statusStr != "" {
		status := domain.ContactMessageStatus(statusStr)
		filter.Status = &status
	}
	filter.Limit, filter.Offset = parsePagination(c)

	messages, err := h.service.List(c.Context(), filter)
	if err != nil {
		return err
	}
	items := make([]dto.ContactMessageResponse, 0, len(messages))
	for i := range messages {
		items = append(items, contactMessageResponse(&messages[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Get GET /contact-messages/:id. Reading a new message marks it read.
func (h *ContactsHandler) Get(c *fiber.Ctx) error {
	msg, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": contactMessageResponse(msg)})
}

// Reply POST /contact-messages/:id/reply.
func (h *ContactsHandler) Reply(c *fiber.Ctx) error {
	var req dto.ContactReplyRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	msg, err := h.service.Reply(c.Context(), c.Params("id"), req.Content)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": contactMessageResponse(msg)})
}

// Delete DELETE /contact-messages/:id.
func (h *ContactsHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func contactMessageResponse(msg *domain.ContactMessage) dto.ContactMessageResponse {
	return dto.ContactMessageResponse{
		ID:        msg.ID,
		FullName:  msg.FullName,
		Email:     msg.Email,
		Phone:     msg.Phone,
		Subject:   msg.Subject,
		Message:   msg.Message,
		Status:    msg.Status,
		CreatedAt: msg.CreatedAt,
	}
}
