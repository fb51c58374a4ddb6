// Package memory contains process-local implementations of the
// repository interfaces. State lives in maps guarded by mutexes; the
// adapter provides the same atomic single-key primitives as the sqlite
// adapter so the distributor works identically against either.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/AlvaroPrates/flowpay/internal/models"
	"github.com/AlvaroPrates/flowpay/internal/ports/secondary"
)

// AgentRepository implements secondary.AgentRepository in process
// memory. Agents are kept in registration order; FindAvailable scans
// that order.
type AgentRepository struct {
	mu     sync.RWMutex
	agents map[string]*models.Agent
	order  []string
}

// NewAgentRepository creates an empty in-memory agent repository.
func NewAgentRepository() *AgentRepository {
	return &AgentRepository{
		agents: make(map[string]*models.Agent),
	}
}

func (r *AgentRepository) Create(ctx context.Context, agent *models.Agent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.agents[agent.ID]; ok {
		return fmt.Errorf("agent %s already exists", agent.ID)
	}

	stored := *agent
	r.agents[agent.ID] = &stored
	r.order = append(r.order, agent.ID)
	return nil
}

func (r *AgentRepository) GetByID(ctx context.Context, id string) (*models.Agent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	agent, ok := r.agents[id]
	if !ok {
		return nil, fmt.Errorf("%w: agent %s", models.ErrNotFound, id)
	}
	copied := *agent
	return &copied, nil
}

func (r *AgentRepository) List(ctx context.Context) ([]*models.Agent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.Agent, 0, len(r.order))
	for _, id := range r.order {
		copied := *r.agents[id]
		result = append(result, &copied)
	}
	return result, nil
}

func (r *AgentRepository) ListByTeam(ctx context.Context, team models.Team) ([]*models.Agent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*models.Agent
	for _, id := range r.order {
		if r.agents[id].Team == team {
			copied := *r.agents[id]
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *AgentRepository) FindAvailable(ctx context.Context, team models.Team) (*models.Agent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		agent := r.agents[id]
		if agent.Team == team && agent.Available() {
			copied := *agent
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *AgentRepository) IncrementActive(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	agent, ok := r.agents[id]
	if !ok {
		return fmt.Errorf("%w: agent %s", models.ErrNotFound, id)
	}
	if agent.ActiveCount >= models.MaxActiveAttendances {
		return fmt.Errorf("%w: agent %s", models.ErrCapacityExceeded, id)
	}
	agent.ActiveCount++
	return nil
}

func (r *AgentRepository) DecrementActive(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	agent, ok := r.agents[id]
	if !ok {
		return fmt.Errorf("%w: agent %s", models.ErrNotFound, id)
	}
	if agent.ActiveCount > 0 {
		agent.ActiveCount--
	}
	return nil
}

// Ensure AgentRepository implements the interface
var _ secondary.AgentRepository = (*AgentRepository)(nil)
