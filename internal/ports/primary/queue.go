package primary

import "context"

// QueueService defines the primary port for backlog queries and
// administration.
type QueueService interface {
	// ListQueue returns the waiting attendances of a team in queue order.
	ListQueue(ctx context.Context, team string) ([]*Attendance, error)

	// QueueSize returns the number of queued attendances for a team.
	QueueSize(ctx context.Context, team string) (int, error)

	// ClearQueue empties a team's backlog and returns the number of
	// removed attendances. Administrative escape hatch only.
	ClearQueue(ctx context.Context, team string) (int, error)
}
