// Package handlers is the HTTP surface. Handlers parse and validate fiber
// requests, call the service or repository layer, and translate sentinel
// errors to status codes. No business rules live here.
package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/fathima-sithara/campus-connect/internal/repository"
	"github.com/fathima-sithara/campus-connect/internal/service"
)

func jsonError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

// fail maps sentinel errors from the layers below onto status codes.
func fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return jsonError(c, fiber.StatusNotFound, "not found")
	case errors.Is(err, service.ErrValidation):
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	default:
		return jsonError(c, fiber.StatusInternalServerError, "internal error")
	}
}
