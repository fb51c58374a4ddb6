package dispatch

import (
	"time"

	"github.com/AlvaroPrates/flowpay/internal/models"
)

// AssignmentResult describes the state changes produced by assigning an
// attendance to an agent.
type AssignmentResult struct {
	NewStatus  models.AttendanceStatus
	AgentID    string
	AssignedAt time.Time
}

// CompletionResult describes the state changes produced by completing an
// attendance.
type CompletionResult struct {
	NewStatus   models.AttendanceStatus
	CompletedAt time.Time
}

// InitialStatus returns the status of a freshly created attendance.
func InitialStatus() models.AttendanceStatus {
	return models.StatusWaiting
}

// ApplyAssignment computes the WAITING → ASSIGNED transition.
func ApplyAssignment(agentID string, now time.Time) AssignmentResult {
	return AssignmentResult{
		NewStatus:  models.StatusAssigned,
		AgentID:    agentID,
		AssignedAt: now,
	}
}

// ApplyCompletion computes the ASSIGNED → COMPLETED transition.
func ApplyCompletion(now time.Time) CompletionResult {
	return CompletionResult{
		NewStatus:   models.StatusCompleted,
		CompletedAt: now,
	}
}
