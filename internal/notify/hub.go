// Package notify provides the in-process change-notification hub that
// feeds the push channel for live dashboards. Publishing never blocks:
// events to a subscriber whose buffer is full are dropped, because a
// slow dashboard must never stall the distributor.
package notify

import (
	"log/slog"
	"sync"

	"github.com/AlvaroPrates/flowpay/internal/ports/secondary"
)

const subscriberBuffer = 64

// Hub fans change events out to subscribers.
type Hub struct {
	mu     sync.RWMutex
	subs   map[int]chan secondary.ChangeEvent
	nextID int
}

// NewHub creates a hub with no subscribers.
func NewHub() *Hub {
	return &Hub{subs: make(map[int]chan secondary.ChangeEvent)}
}

// Publish delivers the event to every subscriber without blocking.
func (h *Hub) Publish(event secondary.ChangeEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for id, ch := range h.subs {
		select {
		case ch <- event:
		default:
			slog.Warn("dropping change event for slow subscriber",
				"subscriber", id, "kind", event.Kind, "attendance", event.AttendanceID)
		}
	}
}

// Subscribe registers a new subscriber and returns its event channel
// plus a cancel function. The channel is closed on cancel.
func (h *Hub) Subscribe() (<-chan secondary.ChangeEvent, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++
	ch := make(chan secondary.ChangeEvent, subscriberBuffer)
	h.subs[id] = ch

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if sub, ok := h.subs[id]; ok {
			delete(h.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// Ensure Hub implements the interface
var _ secondary.ChangeNotifier = (*Hub)(nil)
