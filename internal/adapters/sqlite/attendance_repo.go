package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/AlvaroPrates/flowpay/internal/models"
	"github.com/AlvaroPrates/flowpay/internal/ports/secondary"
)

// AttendanceRepository implements secondary.AttendanceRepository with
// SQLite. IDs come from the AUTOINCREMENT primary key and are never
// reused.
type AttendanceRepository struct {
	db *sql.DB
}

// NewAttendanceRepository creates a new SQLite attendance repository.
func NewAttendanceRepository(db *sql.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

const attendanceColumns = "id, team, subject, client_name, status, agent_id, created_at, assigned_at, completed_at"

// scanAttendance scans an attendance row into a models.Attendance.
func scanAttendance(scanner interface {
	Scan(dest ...any) error
}) (*models.Attendance, error) {
	var (
		team        string
		status      string
		agentID     sql.NullString
		assignedAt  sql.NullTime
		completedAt sql.NullTime
	)

	attendance := &models.Attendance{}
	err := scanner.Scan(
		&attendance.ID, &team, &attendance.Subject, &attendance.ClientName,
		&status, &agentID, &attendance.CreatedAt, &assignedAt, &completedAt,
	)
	if err != nil {
		return nil, err
	}

	attendance.Team = models.Team(team)
	attendance.Status = models.AttendanceStatus(status)
	attendance.AgentID = agentID.String
	if assignedAt.Valid {
		t := assignedAt.Time
		attendance.AssignedAt = &t
	}
	if completedAt.Valid {
		t := completedAt.Time
		attendance.CompletedAt = &t
	}
	return attendance, nil
}

func (r *AttendanceRepository) Create(ctx context.Context, attendance *models.Attendance) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO attendances (team, subject, client_name, status, agent_id, created_at, assigned_at, completed_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		string(attendance.Team), attendance.Subject, attendance.ClientName,
		string(attendance.Status), nullString(attendance.AgentID),
		attendance.CreatedAt, nullTime(attendance.AssignedAt), nullTime(attendance.CompletedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to create attendance: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read attendance id: %w", err)
	}
	attendance.ID = id
	return nil
}

func (r *AttendanceRepository) GetByID(ctx context.Context, id int64) (*models.Attendance, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+attendanceColumns+` FROM attendances WHERE id = ?`, id)

	attendance, err := scanAttendance(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: attendance %d", models.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance: %w", err)
	}
	return attendance, nil
}

func (r *AttendanceRepository) Update(ctx context.Context, attendance *models.Attendance) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE attendances
		 SET status = ?, agent_id = ?, assigned_at = ?, completed_at = ?
		 WHERE id = ?`,
		string(attendance.Status), nullString(attendance.AgentID),
		nullTime(attendance.AssignedAt), nullTime(attendance.CompletedAt),
		attendance.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: attendance %d", models.ErrNotFound, attendance.ID)
	}
	return nil
}

func (r *AttendanceRepository) List(ctx context.Context, filters secondary.AttendanceFilters) ([]*models.Attendance, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendances`
	var conditions []string
	var args []any

	if filters.Team != "" {
		conditions = append(conditions, "team = ?")
		args = append(args, string(filters.Team))
	}
	if filters.Status != "" {
		conditions = append(conditions, "status = ?")
		args = append(args, string(filters.Status))
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	var attendances []*models.Attendance
	for rows.Next() {
		attendance, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, attendance)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendances: %w", err)
	}
	return attendances, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

// Ensure AttendanceRepository implements the interface
var _ secondary.AttendanceRepository = (*AttendanceRepository)(nil)
