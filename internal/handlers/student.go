package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/fathima-sithara/campus-connect/internal/models"
	"github.com/fathima-sithara/campus-connect/internal/repository"
	"github.com/fathima-sithara/campus-connect/internal/service"
)

type StudentHandler struct {
	repo    repository.StudentRepo
	matches *service.MatchService
	log     *zap.SugaredLogger
}

func NewStudentHandler(repo repository.StudentRepo, matches *service.MatchService, log *zap.SugaredLogger) *StudentHandler {
	return &StudentHandler{repo: repo, matches: matches, log: log}
}

// GET /api/students
func (h *StudentHandler) GetAll(c *fiber.Ctx) error {
	students, err := h.repo.GetAll(c.Context())
	if err != nil {
		h.log.Errorw("list students", "error", err)
		return fail(c, err)
	}
	if students == nil {
		students = []*models.Student{}
	}
	return c.JSON(students)
}

// GET /api/students/:id
func (h *StudentHandler) GetByID(c *fiber.Ctx) error {
	s, err := h.repo.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(s)
}

// POST /api/students
func (h *StudentHandler) Create(c *fiber.Ctx) error {
	var s models.Student
	if err := c.BodyParser(&s); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if s.Name == "" || s.Email == "" || s.Year == "" || s.Major == "" {
		return jsonError(c, fiber.StatusBadRequest, "name, email, year and major are required")
	}
	created, err := h.repo.Create(c.Context(), &s)
	if err != nil {
		h.log.Errorw("create student", "error", err)
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// PATCH /api/students/:id
func (h *StudentHandler) Update(c *fiber.Ctx) error {
	var upd models.StudentUpdate
	if err := c.BodyParser(&upd); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	id := c.Params("id")
	s, err := h.repo.Update(c.Context(), id, &upd)
	if err != nil {
		return fail(c, err)
	}
	// Profile changed, so any cached ranking for this student is stale.
	h.matches.InvalidateFor(c.Context(), id)
	return c.JSON(s)
}

// DELETE /api/students/:id
func (h *StudentHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.repo.Delete(c.Context(), id); err != nil {
		return fail(c, err)
	}
	h.matches.InvalidateFor(c.Context(), id)
	return c.SendStatus(fiber.StatusNoContent)
}
