package memory

import (
	"context"
	"sync"

	"github.com/AlvaroPrates/flowpay/internal/models"
	"github.com/AlvaroPrates/flowpay/internal/ports/secondary"
)

// QueueRepository implements secondary.QueueRepository in process
// memory. One FIFO slice per team, unbounded.
type QueueRepository struct {
	mu     sync.RWMutex
	queues map[models.Team][]int64
}

// NewQueueRepository creates empty in-memory backlogs.
func NewQueueRepository() *QueueRepository {
	return &QueueRepository{
		queues: make(map[models.Team][]int64),
	}
}

func (r *QueueRepository) Enqueue(ctx context.Context, team models.Team, attendanceID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.queues[team] = append(r.queues[team], attendanceID)
	return nil
}

func (r *QueueRepository) Dequeue(ctx context.Context, team models.Team) (int64, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	queue := r.queues[team]
	if len(queue) == 0 {
		return 0, false, nil
	}
	head := queue[0]
	r.queues[team] = queue[1:]
	return head, true, nil
}

func (r *QueueRepository) List(ctx context.Context, team models.Team) ([]int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	queue := r.queues[team]
	snapshot := make([]int64, len(queue))
	copy(snapshot, queue)
	return snapshot, nil
}

func (r *QueueRepository) Size(ctx context.Context, team models.Team) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.queues[team]), nil
}

func (r *QueueRepository) Clear(ctx context.Context, team models.Team) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := len(r.queues[team])
	delete(r.queues, team)
	return removed, nil
}

// Ensure QueueRepository implements the interface
var _ secondary.QueueRepository = (*QueueRepository)(nil)
