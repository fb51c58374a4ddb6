package app

import (
	"context"
	"errors"
	"testing"

	"github.com/AlvaroPrates/flowpay/internal/models"
)

func TestListQueue_ReturnsAttendancesInOrder(t *testing.T) {
	attendanceRepo := newMockAttendanceRepository()
	queueRepo := newMockQueueRepository()
	service := NewQueueService(queueRepo, attendanceRepo)

	first := &models.Attendance{Team: models.TeamLoans, ClientName: "Maria", Status: models.StatusWaiting}
	second := &models.Attendance{Team: models.TeamLoans, ClientName: "Joao", Status: models.StatusWaiting}
	attendanceRepo.Create(context.Background(), first)
	attendanceRepo.Create(context.Background(), second)
	queueRepo.Enqueue(context.Background(), models.TeamLoans, first.ID)
	queueRepo.Enqueue(context.Background(), models.TeamLoans, second.ID)

	queue, err := service.ListQueue(context.Background(), string(models.TeamLoans))
	if err != nil {
		t.Fatalf("ListQueue() error = %v", err)
	}
	if len(queue) != 2 {
		t.Fatalf("count = %d, want 2", len(queue))
	}
	if queue[0].ID != first.ID || queue[1].ID != second.ID {
		t.Errorf("order = [%d %d], want [%d %d]", queue[0].ID, queue[1].ID, first.ID, second.ID)
	}
}

func TestListQueue_SkipsMissingAttendances(t *testing.T) {
	attendanceRepo := newMockAttendanceRepository()
	queueRepo := newMockQueueRepository()
	service := NewQueueService(queueRepo, attendanceRepo)

	kept := &models.Attendance{Team: models.TeamCards, ClientName: "Maria", Status: models.StatusWaiting}
	attendanceRepo.Create(context.Background(), kept)
	queueRepo.Enqueue(context.Background(), models.TeamCards, 999)
	queueRepo.Enqueue(context.Background(), models.TeamCards, kept.ID)

	queue, err := service.ListQueue(context.Background(), string(models.TeamCards))
	if err != nil {
		t.Fatalf("ListQueue() error = %v", err)
	}
	if len(queue) != 1 || queue[0].ID != kept.ID {
		t.Errorf("queue = %v, want only %d", queue, kept.ID)
	}
}

func TestListQueue_UnknownTeam(t *testing.T) {
	service := NewQueueService(newMockQueueRepository(), newMockAttendanceRepository())

	_, err := service.ListQueue(context.Background(), "NOPE")
	if !errors.Is(err, models.ErrValidation) {
		t.Errorf("ListQueue() error = %v, want wrapped %v", err, models.ErrValidation)
	}
}

func TestQueueSize(t *testing.T) {
	queueRepo := newMockQueueRepository()
	service := NewQueueService(queueRepo, newMockAttendanceRepository())

	queueRepo.Enqueue(context.Background(), models.TeamOther, 1)
	queueRepo.Enqueue(context.Background(), models.TeamOther, 2)

	size, err := service.QueueSize(context.Background(), string(models.TeamOther))
	if err != nil {
		t.Fatalf("QueueSize() error = %v", err)
	}
	if size != 2 {
		t.Errorf("size = %d, want 2", size)
	}
}

func TestClearQueue(t *testing.T) {
	queueRepo := newMockQueueRepository()
	service := NewQueueService(queueRepo, newMockAttendanceRepository())

	queueRepo.Enqueue(context.Background(), models.TeamCards, 1)
	queueRepo.Enqueue(context.Background(), models.TeamCards, 2)
	queueRepo.Enqueue(context.Background(), models.TeamCards, 3)

	removed, err := service.ClearQueue(context.Background(), string(models.TeamCards))
	if err != nil {
		t.Fatalf("ClearQueue() error = %v", err)
	}
	if removed != 3 {
		t.Errorf("removed = %d, want 3", removed)
	}
	if size, _ := queueRepo.Size(context.Background(), models.TeamCards); size != 0 {
		t.Errorf("size after clear = %d, want 0", size)
	}
}
