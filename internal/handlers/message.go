package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/fathima-sithara/campus-connect/internal/models"
	"github.com/fathima-sithara/campus-connect/internal/service"
)

type MessageHandler struct {
	chat *service.ChatService
	log  *zap.SugaredLogger
}

func NewMessageHandler(chat *service.ChatService, log *zap.SugaredLogger) *MessageHandler {
	return &MessageHandler{chat: chat, log: log}
}

// GET /api/messages/:roomId
func (h *MessageHandler) GetByRoom(c *fiber.Ctx) error {
	msgs, err := h.chat.History(c.Context(), c.Params("roomId"))
	if err != nil {
		h.log.Errorw("load history", "roomId", c.Params("roomId"), "error", err)
		return fail(c, err)
	}
	if msgs == nil {
		msgs = []*models.Message{}
	}
	return c.JSON(msgs)
}

// POST /api/messages
//
// The one-shot send path. Goes through the same compose funnel as the
// websocket frame path, so connected clients in the room see the message in
// realtime.
func (h *MessageHandler) Create(c *fiber.Ctx) error {
	var in service.ComposeInput
	if err := c.BodyParser(&in); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	msg, err := h.chat.Compose(c.Context(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(msg)
}
