// Package secondary defines the secondary ports (driven adapters) for the
// application. These are the interfaces through which the application
// drives its backing stores. Two interchangeable implementations exist:
// a process-local store (adapters/memory) and a shared store
// (adapters/sqlite). The distributor is written once against these
// contracts and relies on its own per-team serialization, not on
// cross-call transactions from the store.
package secondary

import (
	"context"

	"github.com/AlvaroPrates/flowpay/internal/models"
)

// AgentRepository defines the secondary port for the agent directory and
// capacity ledger.
type AgentRepository interface {
	// Create persists a new agent with an active count of zero.
	Create(ctx context.Context, agent *models.Agent) error

	// GetByID retrieves an agent by its ID. Unknown IDs yield
	// models.ErrNotFound.
	GetByID(ctx context.Context, id string) (*models.Agent, error)

	// List retrieves all agents.
	List(ctx context.Context) ([]*models.Agent, error)

	// ListByTeam retrieves all agents of a team in registration order.
	ListByTeam(ctx context.Context, team models.Team) ([]*models.Agent, error)

	// FindAvailable returns the first agent of the team in registration
	// order with spare capacity, or nil when every agent is full or the
	// team has no agents. Registration order is an implementation detail,
	// not a fairness guarantee.
	FindAvailable(ctx context.Context, team models.Team) (*models.Agent, error)

	// IncrementActive atomically increments the agent's active count.
	// Returns models.ErrCapacityExceeded instead of moving past
	// models.MaxActiveAttendances, and models.ErrNotFound for unknown
	// agents.
	IncrementActive(ctx context.Context, id string) error

	// DecrementActive atomically decrements the agent's active count,
	// floored at zero. Returns models.ErrNotFound for unknown agents.
	DecrementActive(ctx context.Context, id string) error
}

// AttendanceRepository defines the secondary port for attendance
// persistence.
type AttendanceRepository interface {
	// Create persists a new attendance, assigning the next monotonic ID
	// on the passed struct. IDs are never reused.
	Create(ctx context.Context, attendance *models.Attendance) error

	// GetByID retrieves an attendance by ID. Unknown IDs yield
	// models.ErrNotFound.
	GetByID(ctx context.Context, id int64) (*models.Attendance, error)

	// Update persists the attendance's status, agent and timestamps.
	Update(ctx context.Context, attendance *models.Attendance) error

	// List retrieves attendances matching the given filters, ordered by
	// ID.
	List(ctx context.Context, filters AttendanceFilters) ([]*models.Attendance, error)
}

// AttendanceFilters contains filter options for querying attendances.
type AttendanceFilters struct {
	Team   models.Team
	Status models.AttendanceStatus
}

// QueueRepository defines the secondary port for the per-team FIFO
// backlogs. Backlogs are unbounded; the system always accepts work.
type QueueRepository interface {
	// Enqueue appends an attendance ID to the tail of the team's backlog.
	Enqueue(ctx context.Context, team models.Team, attendanceID int64) error

	// Dequeue removes and returns the head of the team's backlog. The
	// second return is false when the backlog is empty.
	Dequeue(ctx context.Context, team models.Team) (int64, bool, error)

	// List returns a read-only snapshot of the team's backlog in queue
	// order without mutating it.
	List(ctx context.Context, team models.Team) ([]int64, error)

	// Size returns the number of queued attendances for the team.
	Size(ctx context.Context, team models.Team) (int, error)

	// Clear empties the team's backlog and returns the number of removed
	// entries. Administrative operation, not part of the normal flow.
	Clear(ctx context.Context, team models.Team) (int, error)
}
