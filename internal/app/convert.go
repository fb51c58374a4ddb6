package app

import (
	"github.com/AlvaroPrates/flowpay/internal/models"
	"github.com/AlvaroPrates/flowpay/internal/ports/primary"
)

func attendanceToDTO(a *models.Attendance) *primary.Attendance {
	return &primary.Attendance{
		ID:          a.ID,
		Team:        string(a.Team),
		Subject:     a.Subject,
		ClientName:  a.ClientName,
		Status:      string(a.Status),
		AgentID:     a.AgentID,
		CreatedAt:   a.CreatedAt,
		AssignedAt:  a.AssignedAt,
		CompletedAt: a.CompletedAt,
	}
}

func agentToDTO(a *models.Agent) *primary.Agent {
	return &primary.Agent{
		ID:          a.ID,
		Name:        a.Name,
		Team:        string(a.Team),
		ActiveCount: a.ActiveCount,
		MaxCapacity: models.MaxActiveAttendances,
		Available:   a.Available(),
	}
}
