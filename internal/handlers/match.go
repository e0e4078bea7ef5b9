package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/fathima-sithara/campus-connect/internal/matcher"
	"github.com/fathima-sithara/campus-connect/internal/models"
	"github.com/fathima-sithara/campus-connect/internal/repository"
	"github.com/fathima-sithara/campus-connect/internal/service"
)

type MatchHandler struct {
	matches     *service.MatchService
	connections repository.ConnectionRepo
	log         *zap.SugaredLogger
}

func NewMatchHandler(matches *service.MatchService, connections repository.ConnectionRepo, log *zap.SugaredLogger) *MatchHandler {
	return &MatchHandler{matches: matches, connections: connections, log: log}
}

// POST /api/matches/calculate
//
// Ranks every other profile against the given student and returns the ones
// at or above the compatibility threshold, best first.
func (h *MatchHandler) Calculate(c *fiber.Ctx) error {
	var body struct {
		StudentID string `json:"studentId"`
	}
	if err := c.BodyParser(&body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if body.StudentID == "" {
		return jsonError(c, fiber.StatusBadRequest, "studentId is required")
	}
	ranked, err := h.matches.Matches(c.Context(), body.StudentID)
	if err != nil {
		return fail(c, err)
	}
	if ranked == nil {
		ranked = []matcher.Match{}
	}
	return c.JSON(ranked)
}

// POST /api/matches
//
// Persists a connection once a student acts on a computed match. The score
// is frozen as submitted; later profile edits do not rewrite history.
func (h *MatchHandler) CreateConnection(c *fiber.Ctx) error {
	var conn models.Connection
	if err := c.BodyParser(&conn); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if conn.StudentID == "" || conn.ConnectedID == "" {
		return jsonError(c, fiber.StatusBadRequest, "studentId and connectedId are required")
	}
	if conn.StudentID == conn.ConnectedID {
		return jsonError(c, fiber.StatusBadRequest, "cannot connect a student to themselves")
	}
	if conn.MatchScore < 0 || conn.MatchScore > 100 {
		return jsonError(c, fiber.StatusBadRequest, "matchScore must be between 0 and 100")
	}
	if conn.Status == "" {
		conn.Status = models.ConnectionPending
	}
	created, err := h.connections.Create(c.Context(), &conn)
	if err != nil {
		h.log.Errorw("create connection", "error", err)
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// GET /api/matches/:studentId
func (h *MatchHandler) GetConnections(c *fiber.Ctx) error {
	conns, err := h.connections.GetByStudent(c.Context(), c.Params("studentId"))
	if err != nil {
		return fail(c, err)
	}
	if conns == nil {
		conns = []*models.Connection{}
	}
	return c.JSON(conns)
}

// DELETE /api/matches/:id
func (h *MatchHandler) DeleteConnection(c *fiber.Ctx) error {
	if err := h.connections.Delete(c.Context(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
