package sqlite_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/AlvaroPrates/flowpay/internal/adapters/sqlite"
	"github.com/AlvaroPrates/flowpay/internal/db"
	"github.com/AlvaroPrates/flowpay/internal/models"
)

// setupTestDB opens an in-memory database with the production schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("failed to enable foreign keys: %v", err)
	}
	if _, err := conn.Exec(db.SchemaSQL); err != nil {
		t.Fatalf("failed to install schema: %v", err)
	}

	t.Cleanup(func() {
		conn.Close()
	})

	return conn
}

// createTestAgent inserts an agent and returns it.
func createTestAgent(t *testing.T, repo *sqlite.AgentRepository, id string, team models.Team) *models.Agent {
	t.Helper()

	agent := &models.Agent{ID: id, Name: "Agent " + id, Team: team}
	if err := repo.Create(context.Background(), agent); err != nil {
		t.Fatalf("failed to create agent: %v", err)
	}
	return agent
}

// createTestAttendance inserts a waiting attendance and returns it.
func createTestAttendance(t *testing.T, repo *sqlite.AttendanceRepository, team models.Team) *models.Attendance {
	t.Helper()

	attendance := &models.Attendance{
		Team:       team,
		Subject:    "subject",
		ClientName: "Client",
		Status:     models.StatusWaiting,
		CreatedAt:  time.Now().UTC(),
	}
	if err := repo.Create(context.Background(), attendance); err != nil {
		t.Fatalf("failed to create attendance: %v", err)
	}
	return attendance
}
