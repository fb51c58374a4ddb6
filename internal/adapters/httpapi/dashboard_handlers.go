package httpapi

import "github.com/gofiber/fiber/v2"

func (s *Server) getMetrics(c *fiber.Ctx) error {
	metrics, err := s.dashboard.GetMetrics(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(toMetricsResponse(metrics))
}

func (s *Server) getTeamStatus(c *fiber.Ctx) error {
	status, err := s.dashboard.GetTeamStatus(c.Context(), c.Params("team"))
	if err != nil {
		return err
	}
	return c.JSON(toTeamStatusResponse(status))
}

func (s *Server) listQueue(c *fiber.Ctx) error {
	queue, err := s.queues.ListQueue(c.Context(), c.Params("team"))
	if err != nil {
		return err
	}
	return c.JSON(toAttendanceResponses(queue))
}

func (s *Server) queueSize(c *fiber.Ctx) error {
	size, err := s.queues.QueueSize(c.Context(), c.Params("team"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"team": c.Params("team"), "size": size})
}

func (s *Server) clearQueue(c *fiber.Ctx) error {
	removed, err := s.queues.ClearQueue(c.Context(), c.Params("team"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"team": c.Params("team"), "removed": removed})
}
