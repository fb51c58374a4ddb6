package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/AlvaroPrates/flowpay/internal/models"
	"github.com/AlvaroPrates/flowpay/internal/ports/secondary"
)

// QueueRepository implements secondary.QueueRepository with SQLite.
// FIFO order comes from the AUTOINCREMENT position column; dequeue runs
// in a transaction so head-read and delete are one step.
type QueueRepository struct {
	db *sql.DB
}

// NewQueueRepository creates a new SQLite queue repository.
func NewQueueRepository(db *sql.DB) *QueueRepository {
	return &QueueRepository{db: db}
}

func (r *QueueRepository) Enqueue(ctx context.Context, team models.Team, attendanceID int64) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO team_queues (team, attendance_id) VALUES (?, ?)`,
		string(team), attendanceID)
	if err != nil {
		return fmt.Errorf("failed to enqueue attendance: %w", err)
	}
	return nil
}

func (r *QueueRepository) Dequeue(ctx context.Context, team models.Team) (int64, bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, false, fmt.Errorf("failed to begin dequeue: %w", err)
	}
	defer tx.Rollback()

	var position, attendanceID int64
	err = tx.QueryRowContext(ctx,
		`SELECT position, attendance_id FROM team_queues
		 WHERE team = ? ORDER BY position LIMIT 1`,
		string(team)).Scan(&position, &attendanceID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to read queue head: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM team_queues WHERE position = ?`, position); err != nil {
		return 0, false, fmt.Errorf("failed to remove queue head: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, false, fmt.Errorf("failed to commit dequeue: %w", err)
	}
	return attendanceID, true, nil
}

func (r *QueueRepository) List(ctx context.Context, team models.Team) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT attendance_id FROM team_queues WHERE team = ? ORDER BY position`,
		string(team))
	if err != nil {
		return nil, fmt.Errorf("failed to list queue: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan queue entry: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate queue: %w", err)
	}
	return ids, nil
}

func (r *QueueRepository) Size(ctx context.Context, team models.Team) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM team_queues WHERE team = ?`,
		string(team)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count queue: %w", err)
	}
	return count, nil
}

func (r *QueueRepository) Clear(ctx context.Context, team models.Team) (int, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM team_queues WHERE team = ?`, string(team))
	if err != nil {
		return 0, fmt.Errorf("failed to clear queue: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return int(affected), nil
}

// Ensure QueueRepository implements the interface
var _ secondary.QueueRepository = (*QueueRepository)(nil)
