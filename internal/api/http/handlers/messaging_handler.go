package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/senbim-immo/admin-service/internal/api/dto"
	"github.com/senbim-immo/admin-service/internal/domain"
	"github.com/senbim-immo/admin-service/internal/repository"
	"github.com/senbim-immo/admin-service/internal/service"
	apperrors "github.com/senbim-immo/admin-service/pkg/util"
)

// MessagingHandler manages conversation oversight endpoints.
type MessagingHandler struct {
	service *service.MessagingService
}

// NewMessagingHandler constructs handler.
func NewMessagingHandler(messagingService *service.MessagingService) *MessagingHandler {
	return &MessagingHandler{service: messagingService}
}

// List GET /conversations.
func (h *MessagingHandler) List(c *fiber.Ctx) error {
	filter := repository.ConversationFilter{
		SearchTerm: optionalQuery(c, "search"),
	}
	if statusStr := c.Query("status"); statusStr != "" {
		status := domain.ConversationStatus(statusStr)
		filter.Status = &status
	}
	filter.Limit, filter.Offset = parsePagination(c)

	conversations, err := h.service.ListConversations(c.Context(), filter)
	if err != nil {
		return err
	}
	items := make([]dto.ConversationResponse, 0, len(conversations))
	for i := range conversations {
		items = append(items, conversationResponse(&conversations[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Counts GET /conversations/counts.
func (h *MessagingHandler) Counts(c *fiber.Ctx) error {
	counts, err := h.service.CountByStatus(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": counts})
}

// Messages GET /conversations/:id/messages.
func (h *MessagingHandler) Messages(c *fiber.Ctx) error {
	messages, err := h.service.ConversationMessages(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	items := make([]dto.PrivateMessageResponse, 0, len(messages))
	for _, msg := range messages {
		items = append(items, dto.PrivateMessageResponse{
			ID:          msg.ID,
			SenderEmail: msg.SenderEmail,
			Content:     msg.Content,
			Flagged:     msg.Flagged,
			CreatedAt:   msg.CreatedAt,
		})
	}
	return c.JSON(fiber.Map{"data": items})
}

// Block POST /conversations/:id/block.
func (h *MessagingHandler) Block(c *fiber.Ctx) error {
	adminEmail, err := adminFromContext(c)
	if err != nil {
		return err
	}
	conversation, err := h.service.Block(c.Context(), adminEmail, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": conversationResponse(conversation)})
}

// SuspendParticipant POST /conversations/:id/suspend-participant.
func (h *MessagingHandler) SuspendParticipant(c *fiber.Ctx) error {
	adminEmail, err := adminFromContext(c)
	if err != nil {
		return err
	}
	var req dto.SuspendParticipantRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Email) == "" {
		return apperrors.NewValidationError("email required", nil)
	}
	user, err := h.service.SuspendParticipant(c.Context(), adminEmail, c.Params("id"), strings.TrimSpace(req.Email))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": userResponse(user)})
}

func conversationResponse(conversation *domain.Conversation) dto.ConversationResponse {
	return dto.ConversationResponse{
		ID:                 conversation.ID,
		Participant1Email:  conversation.Participant1Email,
		Participant2Email:  conversation.Participant2Email,
		Status:             conversation.Status,
		LastMessageContent: conversation.LastMessageContent,
		LastMessageDate:    conversation.LastMessageDate,
		ReportedByEmail:    conversation.ReportedByEmail,
		ReportReason:       conversation.ReportReason,
		BlockedByAdmin:     conversation.BlockedByAdmin,
		CreatedAt:          conversation.CreatedAt,
	}
}
