package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/AlvaroPrates/flowpay/internal/models"
	"github.com/AlvaroPrates/flowpay/internal/ports/secondary"
)

func TestAttendanceRepo_CreateAssignsMonotonicIDs(t *testing.T) {
	repo := NewAttendanceRepository()
	ctx := context.Background()

	first := &models.Attendance{Team: models.TeamCards, ClientName: "Maria", Status: models.StatusWaiting}
	second := &models.Attendance{Team: models.TeamLoans, ClientName: "Joao", Status: models.StatusWaiting}

	repo.Create(ctx, first)
	repo.Create(ctx, second)

	if first.ID != 1 || second.ID != 2 {
		t.Errorf("IDs = %d, %d, want 1, 2", first.ID, second.ID)
	}
}

func TestAttendanceRepo_GetByID_NotFound(t *testing.T) {
	repo := NewAttendanceRepository()

	_, err := repo.GetByID(context.Background(), 7)
	if !errors.Is(err, models.ErrNotFound) {
		t.Errorf("GetByID() error = %v, want wrapped %v", err, models.ErrNotFound)
	}
}

func TestAttendanceRepo_Update(t *testing.T) {
	repo := NewAttendanceRepository()
	ctx := context.Background()

	attendance := &models.Attendance{Team: models.TeamCards, ClientName: "Maria", Status: models.StatusWaiting, CreatedAt: time.Now()}
	repo.Create(ctx, attendance)

	now := time.Now()
	attendance.Status = models.StatusAssigned
	attendance.AgentID = "a1"
	attendance.AssignedAt = &now
	if err := repo.Update(ctx, attendance); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	got, _ := repo.GetByID(ctx, attendance.ID)
	if got.Status != models.StatusAssigned || got.AgentID != "a1" || got.AssignedAt == nil {
		t.Errorf("got = %+v", got)
	}
}

func TestAttendanceRepo_Update_NotFound(t *testing.T) {
	repo := NewAttendanceRepository()

	err := repo.Update(context.Background(), &models.Attendance{ID: 99})
	if !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Update() error = %v, want wrapped %v", err, models.ErrNotFound)
	}
}

func TestAttendanceRepo_List_FiltersAndOrder(t *testing.T) {
	repo := NewAttendanceRepository()
	ctx := context.Background()

	seed := []*models.Attendance{
		{Team: models.TeamCards, ClientName: "Maria", Status: models.StatusWaiting},
		{Team: models.TeamCards, ClientName: "Joao", Status: models.StatusAssigned, AgentID: "a1"},
		{Team: models.TeamLoans, ClientName: "Ana", Status: models.StatusAssigned, AgentID: "a2"},
	}
	for _, a := range seed {
		repo.Create(ctx, a)
	}

	all, err := repo.List(ctx, secondary.AttendanceFilters{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("count = %d, want 3", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i].ID <= all[i-1].ID {
			t.Errorf("list not ordered by ID: %d after %d", all[i].ID, all[i-1].ID)
		}
	}

	cards, _ := repo.List(ctx, secondary.AttendanceFilters{Team: models.TeamCards})
	if len(cards) != 2 {
		t.Errorf("cards count = %d, want 2", len(cards))
	}

	assigned, _ := repo.List(ctx, secondary.AttendanceFilters{Status: models.StatusAssigned})
	if len(assigned) != 2 {
		t.Errorf("assigned count = %d, want 2", len(assigned))
	}

	both, _ := repo.List(ctx, secondary.AttendanceFilters{Team: models.TeamLoans, Status: models.StatusAssigned})
	if len(both) != 1 || both[0].ClientName != "Ana" {
		t.Errorf("both = %v, want only Ana's", both)
	}
}
