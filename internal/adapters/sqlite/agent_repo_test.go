package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/AlvaroPrates/flowpay/internal/adapters/sqlite"
	"github.com/AlvaroPrates/flowpay/internal/models"
)

func TestAgentRepo_CreateAndGet(t *testing.T) {
	repo := sqlite.NewAgentRepository(setupTestDB(t))
	ctx := context.Background()

	createTestAgent(t, repo, "a1", models.TeamCards)

	agent, err := repo.GetByID(ctx, "a1")
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if agent.Name != "Agent a1" || agent.Team != models.TeamCards || agent.ActiveCount != 0 {
		t.Errorf("agent = %+v", agent)
	}
}

func TestAgentRepo_GetByID_NotFound(t *testing.T) {
	repo := sqlite.NewAgentRepository(setupTestDB(t))

	_, err := repo.GetByID(context.Background(), "missing")
	if !errors.Is(err, models.ErrNotFound) {
		t.Errorf("GetByID() error = %v, want wrapped %v", err, models.ErrNotFound)
	}
}

func TestAgentRepo_FindAvailable(t *testing.T) {
	repo := sqlite.NewAgentRepository(setupTestDB(t))
	ctx := context.Background()

	agent, err := repo.FindAvailable(ctx, models.TeamCards)
	if err != nil {
		t.Fatalf("FindAvailable() error = %v", err)
	}
	if agent != nil {
		t.Errorf("FindAvailable() on empty team = %v, want nil", agent)
	}

	createTestAgent(t, repo, "a1", models.TeamCards)
	createTestAgent(t, repo, "a2", models.TeamCards)
	createTestAgent(t, repo, "a3", models.TeamLoans)

	agent, err = repo.FindAvailable(ctx, models.TeamCards)
	if err != nil {
		t.Fatalf("FindAvailable() error = %v", err)
	}
	if agent == nil || agent.ID != "a1" {
		t.Errorf("FindAvailable() = %v, want a1", agent)
	}

	for i := 0; i < models.MaxActiveAttendances; i++ {
		if err := repo.IncrementActive(ctx, "a1"); err != nil {
			t.Fatalf("IncrementActive() error = %v", err)
		}
	}
	agent, _ = repo.FindAvailable(ctx, models.TeamCards)
	if agent == nil || agent.ID != "a2" {
		t.Errorf("FindAvailable() after filling a1 = %v, want a2", agent)
	}
}

func TestAgentRepo_IncrementActive_GuardedAtCapacity(t *testing.T) {
	repo := sqlite.NewAgentRepository(setupTestDB(t))
	ctx := context.Background()

	createTestAgent(t, repo, "a1", models.TeamOther)

	for i := 0; i < models.MaxActiveAttendances; i++ {
		if err := repo.IncrementActive(ctx, "a1"); err != nil {
			t.Fatalf("IncrementActive(%d) error = %v", i, err)
		}
	}

	err := repo.IncrementActive(ctx, "a1")
	if !errors.Is(err, models.ErrCapacityExceeded) {
		t.Errorf("IncrementActive() at capacity error = %v, want wrapped %v", err, models.ErrCapacityExceeded)
	}

	agent, _ := repo.GetByID(ctx, "a1")
	if agent.ActiveCount != models.MaxActiveAttendances {
		t.Errorf("ActiveCount = %d, want %d", agent.ActiveCount, models.MaxActiveAttendances)
	}
}

func TestAgentRepo_IncrementActive_NotFound(t *testing.T) {
	repo := sqlite.NewAgentRepository(setupTestDB(t))

	err := repo.IncrementActive(context.Background(), "ghost")
	if !errors.Is(err, models.ErrNotFound) {
		t.Errorf("IncrementActive() error = %v, want wrapped %v", err, models.ErrNotFound)
	}
}

func TestAgentRepo_DecrementActive_FlooredAtZero(t *testing.T) {
	repo := sqlite.NewAgentRepository(setupTestDB(t))
	ctx := context.Background()

	createTestAgent(t, repo, "a1", models.TeamCards)

	if err := repo.DecrementActive(ctx, "a1"); err != nil {
		t.Fatalf("DecrementActive() at zero error = %v", err)
	}

	repo.IncrementActive(ctx, "a1")
	if err := repo.DecrementActive(ctx, "a1"); err != nil {
		t.Fatalf("DecrementActive() error = %v", err)
	}

	agent, _ := repo.GetByID(ctx, "a1")
	if agent.ActiveCount != 0 {
		t.Errorf("ActiveCount = %d, want 0", agent.ActiveCount)
	}
}

func TestAgentRepo_ListByTeam(t *testing.T) {
	repo := sqlite.NewAgentRepository(setupTestDB(t))
	ctx := context.Background()

	createTestAgent(t, repo, "a1", models.TeamCards)
	createTestAgent(t, repo, "a2", models.TeamLoans)
	createTestAgent(t, repo, "a3", models.TeamCards)

	agents, err := repo.ListByTeam(ctx, models.TeamCards)
	if err != nil {
		t.Fatalf("ListByTeam() error = %v", err)
	}
	if len(agents) != 2 || agents[0].ID != "a1" || agents[1].ID != "a3" {
		t.Errorf("agents = %v, want [a1 a3]", agents)
	}

	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(all) != 3 {
		t.Errorf("List() count = %d, want 3", len(all))
	}
}
