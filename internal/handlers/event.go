package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/fathima-sithara/campus-connect/internal/models"
	"github.com/fathima-sithara/campus-connect/internal/repository"
)

type EventHandler struct {
	repo repository.EventRepo
	log  *zap.SugaredLogger
}

func NewEventHandler(repo repository.EventRepo, log *zap.SugaredLogger) *EventHandler {
	return &EventHandler{repo: repo, log: log}
}

// GET /api/events
func (h *EventHandler) GetAll(c *fiber.Ctx) error {
	events, err := h.repo.GetAll(c.Context())
	if err != nil {
		h.log.Errorw("list events", "error", err)
		return fail(c, err)
	}
	if events == nil {
		events = []*models.Event{}
	}
	return c.JSON(events)
}

// GET /api/events/:id
func (h *EventHandler) GetByID(c *fiber.Ctx) error {
	e, err := h.repo.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(e)
}

// POST /api/events
func (h *EventHandler) Create(c *fiber.Ctx) error {
	var e models.Event
	if err := c.BodyParser(&e); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if e.Title == "" || e.OrganizerID == "" {
		return jsonError(c, fiber.StatusBadRequest, "title and organizerId are required")
	}
	created, err := h.repo.Create(c.Context(), &e)
	if err != nil {
		h.log.Errorw("create event", "error", err)
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// PUT /api/events/:id
func (h *EventHandler) Update(c *fiber.Ctx) error {
	var e models.Event
	if err := c.BodyParser(&e); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	updated, err := h.repo.Update(c.Context(), c.Params("id"), &e)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(updated)
}

// DELETE /api/events/:id
func (h *EventHandler) Delete(c *fiber.Ctx) error {
	if err := h.repo.Delete(c.Context(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// POST /api/events/:id/rsvp
func (h *EventHandler) RSVP(c *fiber.Ctx) error {
	var body struct {
		StudentID string `json:"studentId"`
	}
	if err := c.BodyParser(&body); err != nil || body.StudentID == "" {
		return jsonError(c, fiber.StatusBadRequest, "studentId is required")
	}
	e, err := h.repo.AddAttendee(c.Context(), c.Params("id"), body.StudentID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(e)
}

// DELETE /api/events/:id/rsvp
func (h *EventHandler) CancelRSVP(c *fiber.Ctx) error {
	var body struct {
		StudentID string `json:"studentId"`
	}
	if err := c.BodyParser(&body); err != nil || body.StudentID == "" {
		return jsonError(c, fiber.StatusBadRequest, "studentId is required")
	}
	e, err := h.repo.RemoveAttendee(c.Context(), c.Params("id"), body.StudentID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(e)
}
