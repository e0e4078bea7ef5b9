package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/fathima-sithara/campus-connect/internal/models"
	"github.com/fathima-sithara/campus-connect/internal/repository"
)

type NewsHandler struct {
	repo repository.NewsRepo
	log  *zap.SugaredLogger
}

func NewNewsHandler(repo repository.NewsRepo, log *zap.SugaredLogger) *NewsHandler {
	return &NewsHandler{repo: repo, log: log}
}

// GET /api/news?category=...
func (h *NewsHandler) GetAll(c *fiber.Ctx) error {
	var (
		items []*models.CampusNews
		err   error
	)
	if category := c.Query("category"); category != "" {
		items, err = h.repo.GetByCategory(c.Context(), category)
	} else {
		items, err = h.repo.GetAll(c.Context())
	}
	if err != nil {
		h.log.Errorw("list news", "error", err)
		return fail(c, err)
	}
	if items == nil {
		items = []*models.CampusNews{}
	}
	return c.JSON(items)
}

// GET /api/news/:id
func (h *NewsHandler) GetByID(c *fiber.Ctx) error {
	n, err := h.repo.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(n)
}

// POST /api/news
func (h *NewsHandler) Create(c *fiber.Ctx) error {
	var n models.CampusNews
	if err := c.BodyParser(&n); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if n.Title == "" || n.Content == "" || n.Author == "" {
		return jsonError(c, fiber.StatusBadRequest, "title, content and author are required")
	}
	if !validCategory(n.Category) {
		return jsonError(c, fiber.StatusBadRequest, "unknown category")
	}
	created, err := h.repo.Create(c.Context(), &n)
	if err != nil {
		h.log.Errorw("create news", "error", err)
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// PUT /api/news/:id
func (h *NewsHandler) Update(c *fiber.Ctx) error {
	var n models.CampusNews
	if err := c.BodyParser(&n); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if n.Category != "" && !validCategory(n.Category) {
		return jsonError(c, fiber.StatusBadRequest, "unknown category")
	}
	updated, err := h.repo.Update(c.Context(), c.Params("id"), &n)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(updated)
}

// DELETE /api/news/:id
func (h *NewsHandler) Delete(c *fiber.Ctx) error {
	if err := h.repo.Delete(c.Context(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func validCategory(category string) bool {
	for _, c := range models.NewsCategories {
		if c == category {
			return true
		}
	}
	return false
}
