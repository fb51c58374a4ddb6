package app

import (
	"context"
	"fmt"

	"github.com/AlvaroPrates/flowpay/internal/models"
	"github.com/AlvaroPrates/flowpay/internal/ports/primary"
	"github.com/AlvaroPrates/flowpay/internal/ports/secondary"
)

// DashboardServiceImpl implements the DashboardService interface by
// aggregating raw counts from the repositories. Every read is a
// point-in-time snapshot.
type DashboardServiceImpl struct {
	attendanceRepo secondary.AttendanceRepository
	agentRepo      secondary.AgentRepository
	queueRepo      secondary.QueueRepository
	queueService   primary.QueueService
}

// NewDashboardService creates a new DashboardService with injected
// dependencies.
func NewDashboardService(
	attendanceRepo secondary.AttendanceRepository,
	agentRepo secondary.AgentRepository,
	queueRepo secondary.QueueRepository,
	queueService primary.QueueService,
) *DashboardServiceImpl {
	return &DashboardServiceImpl{
		attendanceRepo: attendanceRepo,
		agentRepo:      agentRepo,
		queueRepo:      queueRepo,
		queueService:   queueService,
	}
}

// GetMetrics returns consolidated counters across all teams.
func (s *DashboardServiceImpl) GetMetrics(ctx context.Context) (*primary.DashboardMetrics, error) {
	metrics := &primary.DashboardMetrics{
		QueuedByTeam: make(map[string]int),
		ActiveByTeam: make(map[string]int),
	}

	agents, err := s.agentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}
	metrics.TotalAgents = len(agents)
	for _, agent := range agents {
		if agent.Available() {
			metrics.AvailableAgents++
		}
	}

	for _, team := range models.AllTeams() {
		size, err := s.queueRepo.Size(ctx, team)
		if err != nil {
			return nil, fmt.Errorf("failed to get queue size: %w", err)
		}
		metrics.QueuedByTeam[string(team)] = size
		metrics.TotalQueued += size

		active, err := s.attendanceRepo.List(ctx, secondary.AttendanceFilters{
			Team:   team,
			Status: models.StatusAssigned,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list active attendances: %w", err)
		}
		metrics.ActiveByTeam[string(team)] = len(active)
		metrics.TotalActiveAttendances += len(active)
	}

	return metrics, nil
}

// GetTeamStatus returns the detailed status of one team.
func (s *DashboardServiceImpl) GetTeamStatus(ctx context.Context, team string) (*primary.TeamStatus, error) {
	parsed, err := models.ParseTeam(team)
	if err != nil {
		return nil, err
	}

	agents, err := s.agentRepo.ListByTeam(ctx, parsed)
	if err != nil {
		return nil, fmt.Errorf("failed to list agents by team: %w", err)
	}

	queue, err := s.queueService.ListQueue(ctx, team)
	if err != nil {
		return nil, err
	}

	active, err := s.attendanceRepo.List(ctx, secondary.AttendanceFilters{
		Team:   parsed,
		Status: models.StatusAssigned,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list active attendances: %w", err)
	}

	return &primary.TeamStatus{
		Team:              string(parsed),
		QueueSize:         len(queue),
		ActiveAttendances: len(active),
		Agents:            agentsToDTO(agents),
		Queue:             queue,
	}, nil
}

// Ensure DashboardServiceImpl implements the interface
var _ primary.DashboardService = (*DashboardServiceImpl)(nil)
