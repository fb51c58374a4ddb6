package primary

import "context"

// DashboardService defines the primary port for dashboard aggregation.
type DashboardService interface {
	// GetMetrics returns consolidated counters across all teams.
	GetMetrics(ctx context.Context) (*DashboardMetrics, error)

	// GetTeamStatus returns the detailed status of one team: its agents,
	// backlog and active attendance count.
	GetTeamStatus(ctx context.Context, team string) (*TeamStatus, error)
}

// DashboardMetrics contains consolidated counters for the whole system.
type DashboardMetrics struct {
	TotalActiveAttendances int
	TotalQueued            int
	TotalAgents            int
	AvailableAgents        int
	QueuedByTeam           map[string]int
	ActiveByTeam           map[string]int
}

// TeamStatus contains the detailed status of a single team.
type TeamStatus struct {
	Team              string
	QueueSize         int
	ActiveAttendances int
	Agents            []*Agent
	Queue             []*Attendance
}
