package httpapi

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/AlvaroPrates/flowpay/internal/models"
	"github.com/AlvaroPrates/flowpay/internal/ports/primary"
)

type registerAgentRequest struct {
	Name string `json:"name"`
	Team string `json:"team"`
}

func (s *Server) registerAgent(c *fiber.Ctx) error {
	var req registerAgentRequest
	if err := c.BodyParser(&req); err != nil {
		return fmt.Errorf("%w: %v", models.ErrValidation, err)
	}

	agent, err := s.agents.RegisterAgent(c.Context(), primary.RegisterAgentRequest{
		Name: req.Name,
		Team: req.Team,
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(toAgentResponse(agent))
}

func (s *Server) getAgent(c *fiber.Ctx) error {
	agent, err := s.agents.GetAgent(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(toAgentResponse(agent))
}

func (s *Server) listAgents(c *fiber.Ctx) error {
	agents, err := s.agents.ListAgents(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(toAgentResponses(agents))
}

func (s *Server) listAgentsByTeam(c *fiber.Ctx) error {
	agents, err := s.agents.ListAgentsByTeam(c.Context(), c.Params("team"))
	if err != nil {
		return err
	}
	return c.JSON(toAgentResponses(agents))
}

func (s *Server) listAvailableAgents(c *fiber.Ctx) error {
	agents, err := s.agents.ListAvailableAgents(c.Context(), c.Params("team"))
	if err != nil {
		return err
	}
	return c.JSON(toAgentResponses(agents))
}
