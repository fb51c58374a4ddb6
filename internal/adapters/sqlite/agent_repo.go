// Package sqlite contains SQLite implementations of the repository
// interfaces, backing the shared store profile. Capacity mutations are
// guarded UPDATEs so the ledger invariant holds at the store level as
// well, independent of the distributor's serialization.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/AlvaroPrates/flowpay/internal/models"
	"github.com/AlvaroPrates/flowpay/internal/ports/secondary"
)

// AgentRepository implements secondary.AgentRepository with SQLite.
type AgentRepository struct {
	db *sql.DB
}

// NewAgentRepository creates a new SQLite agent repository.
func NewAgentRepository(db *sql.DB) *AgentRepository {
	return &AgentRepository{db: db}
}

const agentColumns = "id, name, team, active_count"

// scanAgent scans an agent row into a models.Agent.
func scanAgent(scanner interface {
	Scan(dest ...any) error
}) (*models.Agent, error) {
	agent := &models.Agent{}
	var team string
	if err := scanner.Scan(&agent.ID, &agent.Name, &team, &agent.ActiveCount); err != nil {
		return nil, err
	}
	agent.Team = models.Team(team)
	return agent, nil
}

func (r *AgentRepository) Create(ctx context.Context, agent *models.Agent) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO agents (id, name, team, active_count) VALUES (?, ?, ?, ?)`,
		agent.ID, agent.Name, string(agent.Team), agent.ActiveCount,
	)
	if err != nil {
		return fmt.Errorf("failed to create agent: %w", err)
	}
	return nil
}

func (r *AgentRepository) GetByID(ctx context.Context, id string) (*models.Agent, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+agentColumns+` FROM agents WHERE id = ?`, id)

	agent, err := scanAgent(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: agent %s", models.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}
	return agent, nil
}

func (r *AgentRepository) List(ctx context.Context) ([]*models.Agent, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+agentColumns+` FROM agents ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}
	defer rows.Close()

	return collectAgents(rows)
}

func (r *AgentRepository) ListByTeam(ctx context.Context, team models.Team) ([]*models.Agent, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+agentColumns+` FROM agents WHERE team = ? ORDER BY rowid`, string(team))
	if err != nil {
		return nil, fmt.Errorf("failed to list agents by team: %w", err)
	}
	defer rows.Close()

	return collectAgents(rows)
}

func (r *AgentRepository) FindAvailable(ctx context.Context, team models.Team) (*models.Agent, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+agentColumns+` FROM agents
		 WHERE team = ? AND active_count < ?
		 ORDER BY rowid LIMIT 1`,
		string(team), models.MaxActiveAttendances)

	agent, err := scanAgent(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find available agent: %w", err)
	}
	return agent, nil
}

func (r *AgentRepository) IncrementActive(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE agents SET active_count = active_count + 1
		 WHERE id = ? AND active_count < ?`,
		id, models.MaxActiveAttendances)
	if err != nil {
		return fmt.Errorf("failed to increment active count: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return fmt.Errorf("%w: agent %s", models.ErrCapacityExceeded, id)
	}
	return nil
}

func (r *AgentRepository) DecrementActive(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE agents SET active_count = active_count - 1
		 WHERE id = ? AND active_count > 0`, id)
	if err != nil {
		return fmt.Errorf("failed to decrement active count: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		// Either the agent is unknown or already at zero; the latter is
		// a no-op by contract.
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

func collectAgents(rows *sql.Rows) ([]*models.Agent, error) {
	var agents []*models.Agent
	for rows.Next() {
		agent, err := scanAgent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan agent: %w", err)
		}
		agents = append(agents, agent)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate agents: %w", err)
	}
	return agents, nil
}

// Ensure AgentRepository implements the interface
var _ secondary.AgentRepository = (*AgentRepository)(nil)
