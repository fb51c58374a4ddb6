package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/AlvaroPrates/flowpay/internal/core/dispatch"
	"github.com/AlvaroPrates/flowpay/internal/models"
	"github.com/AlvaroPrates/flowpay/internal/ports/primary"
	"github.com/AlvaroPrates/flowpay/internal/ports/secondary"
)

// AgentServiceImpl implements the AgentService interface.
type AgentServiceImpl struct {
	agentRepo secondary.AgentRepository
}

// NewAgentService creates a new AgentService with injected dependencies.
func NewAgentService(agentRepo secondary.AgentRepository) *AgentServiceImpl {
	return &AgentServiceImpl{agentRepo: agentRepo}
}

// RegisterAgent registers a new agent with zero active attendances.
func (s *AgentServiceImpl) RegisterAgent(ctx context.Context, req primary.RegisterAgentRequest) (*primary.Agent, error) {
	team := models.Team(req.Team)
	if result := dispatch.CanRegisterAgent(dispatch.RegisterAgentContext{
		Team: team,
		Name: req.Name,
	}); !result.Allowed {
		return nil, result.Error()
	}

	agent := &models.Agent{
		ID:   uuid.New().String(),
		Name: req.Name,
		Team: team,
	}
	if err := s.agentRepo.Create(ctx, agent); err != nil {
		return nil, fmt.Errorf("failed to register agent: %w", err)
	}

	slog.Info("agent registered", "id", agent.ID, "name", agent.Name, "team", agent.Team)
	return agentToDTO(agent), nil
}

// GetAgent retrieves an agent by ID.
func (s *AgentServiceImpl) GetAgent(ctx context.Context, agentID string) (*primary.Agent, error) {
	agent, err := s.agentRepo.GetByID(ctx, agentID)
	if err != nil {
		return nil, err
	}
	return agentToDTO(agent), nil
}

// ListAgents lists all registered agents.
func (s *AgentServiceImpl) ListAgents(ctx context.Context) ([]*primary.Agent, error) {
	agents, err := s.agentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}
	return agentsToDTO(agents), nil
}

// ListAgentsByTeam lists all agents of a team.
func (s *AgentServiceImpl) ListAgentsByTeam(ctx context.Context, team string) ([]*primary.Agent, error) {
	parsed, err := models.ParseTeam(team)
	if err != nil {
		return nil, err
	}

	agents, err := s.agentRepo.ListByTeam(ctx, parsed)
	if err != nil {
		return nil, fmt.Errorf("failed to list agents by team: %w", err)
	}
	return agentsToDTO(agents), nil
}

// ListAvailableAgents lists the agents of a team with spare capacity.
func (s *AgentServiceImpl) ListAvailableAgents(ctx context.Context, team string) ([]*primary.Agent, error) {
	parsed, err := models.ParseTeam(team)
	if err != nil {
		return nil, err
	}

	agents, err := s.agentRepo.ListByTeam(ctx, parsed)
	if err != nil {
		return nil, fmt.Errorf("failed to list agents by team: %w", err)
	}

	var available []*primary.Agent
	for _, agent := range agents {
		if agent.Available() {
			available = append(available, agentToDTO(agent))
		}
	}
	return available, nil
}

func agentsToDTO(agents []*models.Agent) []*primary.Agent {
	result := make([]*primary.Agent, len(agents))
	for i, agent := range agents {
		result[i] = agentToDTO(agent)
	}
	return result
}

// Ensure AgentServiceImpl implements the interface
var _ primary.AgentService = (*AgentServiceImpl)(nil)
