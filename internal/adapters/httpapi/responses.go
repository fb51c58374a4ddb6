package httpapi

import (
	"time"

	"github.com/AlvaroPrates/flowpay/internal/ports/primary"
)

type attendanceResponse struct {
	ID          int64      `json:"id"`
	Team        string     `json:"team"`
	Subject     string     `json:"subject"`
	ClientName  string     `json:"clientName"`
	Status      string     `json:"status"`
	AgentID     string     `json:"agentId,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	AssignedAt  *time.Time `json:"assignedAt,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

func toAttendanceResponse(a *primary.Attendance) attendanceResponse {
	return attendanceResponse{
		ID:          a.ID,
		Team:        a.Team,
		Subject:     a.Subject,
		ClientName:  a.ClientName,
		Status:      a.Status,
		AgentID:     a.AgentID,
		CreatedAt:   a.CreatedAt,
		AssignedAt:  a.AssignedAt,
		CompletedAt: a.CompletedAt,
	}
}

func toAttendanceResponses(attendances []*primary.Attendance) []attendanceResponse {
	result := make([]attendanceResponse, len(attendances))
	for i, a := range attendances {
		result[i] = toAttendanceResponse(a)
	}
	return result
}

type agentResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Team        string `json:"team"`
	ActiveCount int    `json:"activeCount"`
	MaxCapacity int    `json:"maxCapacity"`
	Available   bool   `json:"available"`
}

func toAgentResponse(a *primary.Agent) agentResponse {
	return agentResponse{
		ID:          a.ID,
		Name:        a.Name,
		Team:        a.Team,
		ActiveCount: a.ActiveCount,
		MaxCapacity: a.MaxCapacity,
		Available:   a.Available,
	}
}

func toAgentResponses(agents []*primary.Agent) []agentResponse {
	result := make([]agentResponse, len(agents))
	for i, a := range agents {
		result[i] = toAgentResponse(a)
	}
	return result
}

type completeResponse struct {
	Attendance attendanceResponse   `json:"attendance"`
	Drained    []attendanceResponse `json:"drained"`
}

type metricsResponse struct {
	TotalActiveAttendances int            `json:"totalActiveAttendances"`
	TotalQueued            int            `json:"totalQueued"`
	TotalAgents            int            `json:"totalAgents"`
	AvailableAgents        int            `json:"availableAgents"`
	QueuedByTeam           map[string]int `json:"queuedByTeam"`
	ActiveByTeam           map[string]int `json:"activeByTeam"`
}

func toMetricsResponse(m *primary.DashboardMetrics) metricsResponse {
	return metricsResponse{
		TotalActiveAttendances: m.TotalActiveAttendances,
		TotalQueued:            m.TotalQueued,
		TotalAgents:            m.TotalAgents,
		AvailableAgents:        m.AvailableAgents,
		QueuedByTeam:           m.QueuedByTeam,
		ActiveByTeam:           m.ActiveByTeam,
	}
}

type teamStatusResponse struct {
	Team              string               `json:"team"`
	QueueSize         int                  `json:"queueSize"`
	ActiveAttendances int                  `json:"activeAttendances"`
	Agents            []agentResponse      `json:"agents"`
	Queue             []attendanceResponse `json:"queue"`
}

func toTeamStatusResponse(s *primary.TeamStatus) teamStatusResponse {
	return teamStatusResponse{
		Team:              s.Team,
		QueueSize:         s.QueueSize,
		ActiveAttendances: s.ActiveAttendances,
		Agents:            toAgentResponses(s.Agents),
		Queue:             toAttendanceResponses(s.Queue),
	}
}
