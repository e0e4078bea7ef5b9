package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/fathima-sithara/campus-connect/internal/models"
	"github.com/fathima-sithara/campus-connect/internal/repository"
)

type StudyGroupHandler struct {
	repo repository.StudyGroupRepo
	log  *zap.SugaredLogger
}

func NewStudyGroupHandler(repo repository.StudyGroupRepo, log *zap.SugaredLogger) *StudyGroupHandler {
	return &StudyGroupHandler{repo: repo, log: log}
}

// GET /api/study-groups
func (h *StudyGroupHandler) GetAll(c *fiber.Ctx) error {
	groups, err := h.repo.GetAll(c.Context())
	if err != nil {
		h.log.Errorw("list study groups", "error", err)
		return fail(c, err)
	}
	if groups == nil {
		groups = []*models.StudyGroup{}
	}
	return c.JSON(groups)
}

// GET /api/study-groups/:id
func (h *StudyGroupHandler) GetByID(c *fiber.Ctx) error {
	g, err := h.repo.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(g)
}

// POST /api/study-groups
func (h *StudyGroupHandler) Create(c *fiber.Ctx) error {
	var g models.StudyGroup
	if err := c.BodyParser(&g); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if g.Name == "" || g.Course == "" || g.CreatorID == "" {
		return jsonError(c, fiber.StatusBadRequest, "name, course and creatorId are required")
	}
	created, err := h.repo.Create(c.Context(), &g)
	if err != nil {
		h.log.Errorw("create study group", "error", err)
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// PUT /api/study-groups/:id
func (h *StudyGroupHandler) Update(c *fiber.Ctx) error {
	var g models.StudyGroup
	if err := c.BodyParser(&g); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	updated, err := h.repo.Update(c.Context(), c.Params("id"), &g)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(updated)
}

// DELETE /api/study-groups/:id
func (h *StudyGroupHandler) Delete(c *fiber.Ctx) error {
	if err := h.repo.Delete(c.Context(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// POST /api/study-groups/:id/join
func (h *StudyGroupHandler) Join(c *fiber.Ctx) error {
	var body struct {
		StudentID string `json:"studentId"`
	}
	if err := c.BodyParser(&body); err != nil || body.StudentID == "" {
		return jsonError(c, fiber.StatusBadRequest, "studentId is required")
	}
	g, err := h.repo.AddMember(c.Context(), c.Params("id"), body.StudentID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(g)
}

// POST /api/study-groups/:id/leave
func (h *StudyGroupHandler) Leave(c *fiber.Ctx) error {
	var body struct {
		StudentID string `json:"studentId"`
	}
	if err := c.BodyParser(&body); err != nil || body.StudentID == "" {
		return jsonError(c, fiber.StatusBadRequest, "studentId is required")
	}
	g, err := h.repo.RemoveMember(c.Context(), c.Params("id"), body.StudentID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(g)
}
