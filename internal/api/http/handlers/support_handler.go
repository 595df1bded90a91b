package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/senbim-immo/admin-service/internal/api/dto"
	"github.com/senbim-immo/admin-service/internal/domain"
	"github.com/senbim-immo/admin-service/internal/repository"
	"github.com/senbim-immo/admin-service/internal/service"
	apperrors "github.com/senbim-immo/admin-service/pkg/util"
)

// SupportHandler manages support ticket endpoints.
type SupportHandler struct {
	service *service.SupportService
}

// NewSupportHandler constructs handler.
func NewSupportHandler(supportService *service.SupportService) *SupportHandler {
	return &SupportHandler{service: supportService}
}

// List GET /tickets.
func (h *SupportHandler) List(c *fiber.Ctx) error {
	filter := repository.TicketFilter{
		SearchTerm: optionalQuery(c, "search"),
	}
	if statusStr := c.Query("status"); statusStr != "" {
		status := domain.TicketStatus(statusStr)
		filter.Status = &status
	}
	if priorityStr := c.Query("priority"); priorityStr != "" {
		priority := domain.TicketPriority(priorityStr)
		filter.Priority = &priority
	}
	filter.Limit, filter.Offset = parsePagination(c)

	tickets, err := h.service.ListTickets(c.Context(), filter)
	if err != nil {
		return err
	}
	items := make([]dto.TicketResponse, 0, len(tickets))
	for i := range tickets {
		items = append(items, ticketResponse(&tickets[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Get GET /tickets/:id.
func (h *SupportHandler) Get(c *fiber.Ctx) error {
	ticket, err := h.service.GetTicket(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": ticketResponse(ticket)})
}

// Reply POST /tickets/:id/reply. The reply email is sent before the ticket
// record changes; a failed send leaves the ticket untouched.
func (h *SupportHandler) Reply(c *fiber.Ctx) error {
	adminEmail, err := adminFromContext(c)
	if err != nil {
		return err
	}
	var req dto.TicketReplyRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	ticket, err := h.service.Reply(c.Context(), adminEmail, c.Params("id"), req.Content)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": ticketResponse(ticket)})
}

// UpdateStatus PATCH /tickets/:id/status.
func (h *SupportHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.TicketStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	ticket, err := h.service.UpdateStatus(c.Context(), c.Params("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": ticketResponse(ticket)})
}

// Close POST /tickets/:id/close.
func (h *SupportHandler) Close(c *fiber.Ctx) error {
	ticket, err := h.service.Close(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": ticketResponse(ticket)})
}

func ticketResponse(ticket *domain.Ticket) dto.TicketResponse {
	responses := make([]dto.TicketResponseEntry, 0, len(ticket.Responses))
	for _, entry := range ticket.Responses {
		responses = append(responses, dto.TicketResponseEntry{
			Content:     entry.Content,
			AuthorEmail: entry.AuthorEmail,
			Date:        entry.Date,
		})
	}
	return dto.TicketResponse{
		ID:        ticket.ID,
		UserEmail: ticket.UserEmail,
		Subject:   ticket.Subject,
		Message:   ticket.Message,
		Priority:  ticket.Priority,
		Status:    ticket.Status,
		Responses: responses,
		CreatedAt: ticket.CreatedAt,
		UpdatedAt: ticket.UpdatedAt,
	}
}
