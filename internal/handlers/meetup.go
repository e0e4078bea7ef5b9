package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/fathima-sithara/campus-connect/internal/models"
	"github.com/fathima-sithara/campus-connect/internal/repository"
)

type MeetupHandler struct {
	repo repository.MeetupRepo
	log  *zap.SugaredLogger
}

func NewMeetupHandler(repo repository.MeetupRepo, log *zap.SugaredLogger) *MeetupHandler {
	return &MeetupHandler{repo: repo, log: log}
}

// GET /api/meetup-locations
func (h *MeetupHandler) GetAll(c *fiber.Ctx) error {
	locations, err := h.repo.GetAll(c.Context())
	if err != nil {
		h.log.Errorw("list meetup locations", "error", err)
		return fail(c, err)
	}
	if locations == nil {
		locations = []*models.MeetupLocation{}
	}
	return c.JSON(locations)
}

// GET /api/meetup-locations/:id
func (h *MeetupHandler) GetByID(c *fiber.Ctx) error {
	l, err := h.repo.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(l)
}

// POST /api/meetup-locations
func (h *MeetupHandler) Create(c *fiber.Ctx) error {
	var l models.MeetupLocation
	if err := c.BodyParser(&l); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if l.Name == "" || l.Address == "" {
		return jsonError(c, fiber.StatusBadRequest, "name and address are required")
	}
	created, err := h.repo.Create(c.Context(), &l)
	if err != nil {
		h.log.Errorw("create meetup location", "error", err)
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// DELETE /api/meetup-locations/:id
func (h *MeetupHandler) Delete(c *fiber.Ctx) error {
	if err := h.repo.Delete(c.Context(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
