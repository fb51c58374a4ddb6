package secondary

import "github.com/AlvaroPrates/flowpay/internal/models"

// ChangeKind classifies a distribution state change.
type ChangeKind string

const (
	ChangeAssigned  ChangeKind = "assigned"
	ChangeQueued    ChangeKind = "queued"
	ChangeCompleted ChangeKind = "completed"
	ChangeDrained   ChangeKind = "drained"
)

// ChangeEvent describes a single distribution state change.
type ChangeEvent struct {
	Kind         ChangeKind
	Team         models.Team
	AttendanceID int64
	AgentID      string // empty for queued events
}

// ChangeNotifier defines the secondary port for the push channel that
// feeds live dashboards. Implementations must never block the caller;
// publishing is fire-and-forget and its failure never fails a core
// operation.
type ChangeNotifier interface {
	Publish(event ChangeEvent)
}
