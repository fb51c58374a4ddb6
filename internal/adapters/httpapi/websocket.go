package httpapi

import (
	"context"
	"log/slog"

	"github.com/gofiber/contrib/websocket"

	"github.com/AlvaroPrates/flowpay/internal/ports/secondary"
)

// changeMessage is the payload pushed to dashboard clients after every
// distribution state change. It carries the event plus refreshed
// aggregate metrics so clients can render without a follow-up request.
type changeMessage struct {
	Kind         string          `json:"kind"`
	Team         string          `json:"team"`
	AttendanceID int64           `json:"attendanceId"`
	AgentID      string          `json:"agentId,omitempty"`
	Metrics      metricsResponse `json:"metrics"`
}

// handleWebSocket streams change events to one dashboard client. Writes
// go through a single loop; the read side only feeds ping echoes into
// it.
func (s *Server) handleWebSocket(c *websocket.Conn) {
	events, cancel := s.hub.Subscribe()
	defer cancel()

	pongs := make(chan string, 8)
	done := make(chan struct{})

	go func() {
		defer close(done)
		for {
			mt, msg, err := c.ReadMessage()
			if err != nil {
				return
			}
			if mt == websocket.TextMessage {
				select {
				case pongs <- string(msg):
				default:
				}
			}
		}
	}()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			if err := c.WriteJSON(s.buildChangeMessage(event)); err != nil {
				return
			}
		case msg := <-pongs:
			if err := c.WriteMessage(websocket.TextMessage, []byte("pong: "+msg)); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

func (s *Server) buildChangeMessage(event secondary.ChangeEvent) changeMessage {
	message := changeMessage{
		Kind:         string(event.Kind),
		Team:         string(event.Team),
		AttendanceID: event.AttendanceID,
		AgentID:      event.AgentID,
	}

	metrics, err := s.dashboard.GetMetrics(context.Background())
	if err != nil {
		slog.Warn("failed to refresh metrics for push message", "error", err)
		return message
	}
	message.Metrics = toMetricsResponse(metrics)
	return message
}
