package service

import (
	"context"
	"strings"

	"github.com/senbim-immo/admin-service/internal/domain"
	"github.com/senbim-immo/admin-service/internal/repository"
	apperrors "github.com/senbim-immo/admin-service/pkg/util"
)

// AgentInput carries the editable fields of an agency team member.
type AgentInput struct {
	FullName string
	Email    string
	Phone    string
	Role     string
	PhotoURL string
	Active   bool
}

// AgentService manages the agency team directory.
type AgentService struct {
	agents repository.AgentRepository
}

func NewAgentService(agents repository.AgentRepository) *AgentService {
	return &AgentService{agents: agents}
}

func (s *AgentService) List(ctx context.Context) ([]domain.Agent, error) {
	return s.agents.List(ctx)
}

func (s *AgentService) Create(ctx context.Context, in AgentInput) (*domain.Agent, error) {
	if strings.TrimSpace(in.FullName) == "" {
		return nil, apperrors.NewValidationError("agent name is required", nil)
	}
	agent := &domain.Agent{
		FullName: strings.TrimSpace(in.FullName),
		Email:    strings.TrimSpace(in.Email),
		Phone:    strings.TrimSpace(in.Phone),
		Role:     strings.TrimSpace(in.Role),
		PhotoURL: in.PhotoURL,
		Active:   in.Active,
	}
	if err := s.agents.Create(ctx, agent); err != nil {
		return nil, err
	}
	return agent, nil
}

func (s *AgentService) Update(ctx context.Context, id string, in AgentInput) (*domain.Agent, error) {
	agent, err := s.agents.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.FullName) == "" {
		return nil, apperrors.NewValidationError("agent name is required", nil)
	}
	agent.FullName = strings.TrimSpace(in.FullName)
	agent.Email = strings.TrimSpace(in.Email)
	agent.Phone = strings.TrimSpace(in.Phone)
	agent.Role = strings.TrimSpace(in.Role)
	agent.PhotoURL = in.PhotoURL
	agent.Active = in.Active
	if err := s.agents.Update(ctx, agent); err != nil {
		return nil, err
	}
	return agent, nil
}

func (s *AgentService) Delete(ctx context.Context, id string) error {
	if err := s.agents.Delete(ctx, id); err != nil {
		return err
	}
	return nil
}
