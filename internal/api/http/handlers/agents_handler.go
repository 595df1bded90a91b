package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/senbim-immo/admin-service/internal/api/dto"
	"github.com/senbim-immo/admin-service/internal/domain"
	"github.com/senbim-immo/admin-service/internal/service"
	apperrors "github.com/senbim-immo/admin-service/pkg/util"
)

// AgentsHandler manages the agency team endpoints.
type AgentsHandler struct {
	service *service.AgentService
}

// NewAgentsHandler constructs handler.
func NewAgentsHandler(agentService *service.AgentService) *AgentsHandler {
	return &AgentsHandler{service: agentService}
}

// List GET /agents.
func (h *AgentsHandler) List(c *fiber.Ctx) error {
	agents, err := h.service.List(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.AgentResponse, 0, len(agents))
	for i := range agents {
		items = append(items, agentResponse(&agents[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Create POST /agents.
func (h *AgentsHandler) Create(c *fiber.Ctx) error {
	var req dto.AgentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	agent, err := h.service.Create(c.Context(), agentInput(req))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": agentResponse(agent)})
}

// Update PUT /agents/:id.
func (h *AgentsHandler) Update(c *fiber.Ctx) error {
	var req dto.AgentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	agent, err := h.service.Update(c.Context(), c.Params("id"), agentInput(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": agentResponse(agent)})
}

// Delete DELETE /agents/:id.
func (h *AgentsHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func agentInput(req dto.AgentRequest) service.AgentInput {
	return service.AgentInput{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Role:     req.Role,
		PhotoURL: req.PhotoURL,
		Active:   req.Active,
	}
}

func agentResponse(agent *domain.Agent) dto.AgentResponse {
	return dto.AgentResponse{
		ID:        agent.ID,
		FullName:  agent.FullName,
		Email:     agent.Email,
		Phone:     agent.Phone,
		Role:      agent.Role,
		PhotoURL:  agent.PhotoURL,
		Active:    agent.Active,
		CreatedAt: agent.CreatedAt,
	}
}
