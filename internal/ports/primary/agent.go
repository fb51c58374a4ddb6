package primary

import "context"

// AgentService defines the primary port for agent directory operations.
type AgentService interface {
	// RegisterAgent registers a new agent in a team with zero active
	// attendances.
	RegisterAgent(ctx context.Context, req RegisterAgentRequest) (*Agent, error)

	// GetAgent retrieves an agent by ID.
	GetAgent(ctx context.Context, agentID string) (*Agent, error)

	// ListAgents lists all registered agents.
	ListAgents(ctx context.Context) ([]*Agent, error)

	// ListAgentsByTeam lists all agents of a team.
	ListAgentsByTeam(ctx context.Context, team string) ([]*Agent, error)

	// ListAvailableAgents lists the agents of a team with spare capacity.
	ListAvailableAgents(ctx context.Context, team string) ([]*Agent, error)
}

// RegisterAgentRequest contains parameters for registering an agent.
type RegisterAgentRequest struct {
	Name string
	Team string
}

// Agent is the agent representation exposed to presentation layers.
type Agent struct {
	ID          string
	Name        string
	Team        string
	ActiveCount int
	MaxCapacity int
	Available   bool
}
