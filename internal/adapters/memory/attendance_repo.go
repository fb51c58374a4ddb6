package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/AlvaroPrates/flowpay/internal/models"
	"github.com/AlvaroPrates/flowpay/internal/ports/secondary"
)

// AttendanceRepository implements secondary.AttendanceRepository in
// process memory. IDs come from a monotonic counter and are never
// reused.
type AttendanceRepository struct {
	mu          sync.RWMutex
	attendances map[int64]*models.Attendance
	nextID      int64
}

// NewAttendanceRepository creates an empty in-memory attendance
// repository.
func NewAttendanceRepository() *AttendanceRepository {
	return &AttendanceRepository{
		attendances: make(map[int64]*models.Attendance),
		nextID:      1,
	}
}

func (r *AttendanceRepository) Create(ctx context.Context, attendance *models.Attendance) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	attendance.ID = r.nextID
	r.nextID++

	stored := *attendance
	r.attendances[attendance.ID] = &stored
	return nil
}

func (r *AttendanceRepository) GetByID(ctx context.Context, id int64) (*models.Attendance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	attendance, ok := r.attendances[id]
	if !ok {
		return nil, fmt.Errorf("%w: attendance %d", models.ErrNotFound, id)
	}
	copied := *attendance
	return &copied, nil
}

func (r *AttendanceRepository) Update(ctx context.Context, attendance *models.Attendance) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.attendances[attendance.ID]; !ok {
		return fmt.Errorf("%w: attendance %d", models.ErrNotFound, attendance.ID)
	}
	stored := *attendance
	r.attendances[attendance.ID] = &stored
	return nil
}

func (r *AttendanceRepository) List(ctx context.Context, filters secondary.AttendanceFilters) ([]*models.Attendance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*models.Attendance
	for _, a := range r.attendances {
		if filters.Team != "" && a.Team != filters.Team {
			continue
		}
		if filters.Status != "" && a.Status != filters.Status {
			continue
		}
		copied := *a
		result = append(result, &copied)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// Ensure AttendanceRepository implements the interface
var _ secondary.AttendanceRepository = (*AttendanceRepository)(nil)
