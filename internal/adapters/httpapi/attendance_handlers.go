package httpapi

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/AlvaroPrates/flowpay/internal/models"
	"github.com/AlvaroPrates/flowpay/internal/ports/primary"
)

type createAttendanceRequest struct {
	ClientName string `json:"clientName"`
	Subject    string `json:"subject"`
	Team       string `json:"team"`
}

func (s *Server) createAttendance(c *fiber.Ctx) error {
	var req createAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return fmt.Errorf("%w: %v", models.ErrValidation, err)
	}

	attendance, err := s.distributor.Submit(c.Context(), primary.SubmitAttendanceRequest{
		Team:       req.Team,
		ClientName: req.ClientName,
		Subject:    req.Subject,
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(toAttendanceResponse(attendance))
}

func (s *Server) getAttendance(c *fiber.Ctx) error {
	id, err := parseAttendanceID(c)
	if err != nil {
		return err
	}

	attendance, err := s.attendances.GetAttendance(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(toAttendanceResponse(attendance))
}

func (s *Server) listAttendances(c *fiber.Ctx) error {
	attendances, err := s.attendances.ListAttendances(c.Context(), primary.AttendanceFilters{
		Team:   c.Query("team"),
		Status: c.Query("status"),
	})
	if err != nil {
		return err
	}
	return c.JSON(toAttendanceResponses(attendances))
}

func (s *Server) completeAttendance(c *fiber.Ctx) error {
	id, err := parseAttendanceID(c)
	if err != nil {
		return err
	}

	resp, err := s.distributor.Complete(c.Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(completeResponse{
		Attendance: toAttendanceResponse(resp.Attendance),
		Drained:    toAttendanceResponses(resp.Drained),
	})
}

func parseAttendanceID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid attendance id %q", models.ErrValidation, c.Params("id"))
	}
	return id, nil
}
