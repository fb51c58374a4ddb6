// Package httpapi is the HTTP presentation adapter. It shapes requests
// and responses for the primary ports and holds no distribution logic:
// every state change goes through the distributor service.
package httpapi

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/AlvaroPrates/flowpay/internal/models"
	"github.com/AlvaroPrates/flowpay/internal/notify"
	"github.com/AlvaroPrates/flowpay/internal/ports/primary"
)

// Server bundles the primary ports behind the HTTP surface.
type Server struct {
	distributor primary.DistributorService
	agents      primary.AgentService
	attendances primary.AttendanceService
	queues      primary.QueueService
	dashboard   primary.DashboardService
	hub         *notify.Hub
}

// NewServer creates a new Server with injected services.
func NewServer(
	distributor primary.DistributorService,
	agents primary.AgentService,
	attendances primary.AttendanceService,
	queues primary.QueueService,
	dashboard primary.DashboardService,
	hub *notify.Hub,
) *Server {
	return &Server{
		distributor: distributor,
		agents:      agents,
		attendances: attendances,
		queues:      queues,
		dashboard:   dashboard,
		hub:         hub,
	}
}

// App builds the fiber application with all routes registered.
func (s *Server) App(allowedOrigins []string) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "flowpay",
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(allowedOrigins, ","),
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "*",
		MaxAge:       3600,
	}))

	api := app.Group("/api")

	attendances := api.Group("/attendances")
	attendances.Post("/", s.createAttendance)
	attendances.Get("/", s.listAttendances)
	attendances.Get("/:id", s.getAttendance)
	attendances.Post("/:id/complete", s.completeAttendance)

	agents := api.Group("/agents")
	agents.Post("/", s.registerAgent)
	agents.Get("/", s.listAgents)
	agents.Get("/team/:team", s.listAgentsByTeam)
	agents.Get("/team/:team/available", s.listAvailableAgents)
	agents.Get("/:id", s.getAgent)

	queues := api.Group("/queues")
	queues.Get("/:team", s.listQueue)
	queues.Get("/:team/size", s.queueSize)
	queues.Delete("/:team", s.clearQueue)

	dashboard := api.Group("/dashboard")
	dashboard.Get("/metrics", s.getMetrics)
	dashboard.Get("/team/:team", s.getTeamStatus)

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws", websocket.New(s.handleWebSocket))

	return app
}

// errorResponse is the standardized error envelope.
type errorResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Path      string    `json:"path"`
}

// errorHandler maps domain sentinels onto HTTP statuses and renders the
// standard error envelope.
func errorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError

	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &fiberErr):
		status = fiberErr.Code
	case errors.Is(err, models.ErrValidation):
		status = fiber.StatusBadRequest
	case errors.Is(err, models.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, models.ErrInvalidState):
		status = fiber.StatusConflict
	}

	return c.Status(status).JSON(errorResponse{
		Timestamp: time.Now(),
		Status:    status,
		Error:     http.StatusText(status),
		Message:   err.Error(),
		Path:      c.Path(),
	})
}
