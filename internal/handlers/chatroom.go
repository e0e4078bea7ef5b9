package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/fathima-sithara/campus-connect/internal/models"
	"github.com/fathima-sithara/campus-connect/internal/repository"
)

type ChatRoomHandler struct {
	rooms    repository.ChatRepo
	students repository.StudentRepo
	log      *zap.SugaredLogger
}

func NewChatRoomHandler(rooms repository.ChatRepo, students repository.StudentRepo, log *zap.SugaredLogger) *ChatRoomHandler {
	return &ChatRoomHandler{rooms: rooms, students: students, log: log}
}

// GET /api/chat-rooms?studentId=...
func (h *ChatRoomHandler) GetAll(c *fiber.Ctx) error {
	var (
		rooms []*models.ChatRoom
		err   error
	)
	if studentID := c.Query("studentId"); studentID != "" {
		rooms, err = h.rooms.GetRoomsByStudent(c.Context(), studentID)
	} else {
		rooms, err = h.rooms.GetAllRooms(c.Context())
	}
	if err != nil {
		h.log.Errorw("list chat rooms", "error", err)
		return fail(c, err)
	}
	if rooms == nil {
		rooms = []*models.ChatRoom{}
	}
	return c.JSON(rooms)
}

// GET /api/chat-rooms/:id
func (h *ChatRoomHandler) GetByID(c *fiber.Ctx) error {
	room, err := h.rooms.GetRoom(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(room)
}

// POST /api/chat-rooms
func (h *ChatRoomHandler) Create(c *fiber.Ctx) error {
	var room models.ChatRoom
	if err := c.BodyParser(&room); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if room.Name == "" || room.Type == "" {
		return jsonError(c, fiber.StatusBadRequest, "name and type are required")
	}
	created, err := h.rooms.CreateRoom(c.Context(), &room)
	if err != nil {
		h.log.Errorw("create chat room", "error", err)
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// POST /api/chat-rooms/direct
//
// Finds the direct room for a pair of students, creating it on first
// contact. Repeat calls return the same room.
func (h *ChatRoomHandler) Direct(c *fiber.Ctx) error {
	var body struct {
		Student1ID string `json:"student1Id"`
		Student2ID string `json:"student2Id"`
	}
	if err := c.BodyParser(&body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if body.Student1ID == "" || body.Student2ID == "" {
		return jsonError(c, fiber.StatusBadRequest, "student1Id and student2Id are required")
	}
	if body.Student1ID == body.Student2ID {
		return jsonError(c, fiber.StatusBadRequest, "a direct room needs two distinct students")
	}

	room, err := h.rooms.GetDirectRoom(c.Context(), body.Student1ID, body.Student2ID)
	if err == nil {
		return c.JSON(room)
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return fail(c, err)
	}

	s1, err := h.students.GetByID(c.Context(), body.Student1ID)
	if err != nil {
		return fail(c, err)
	}
	s2, err := h.students.GetByID(c.Context(), body.Student2ID)
	if err != nil {
		return fail(c, err)
	}
	created, err := h.rooms.CreateRoom(c.Context(), &models.ChatRoom{
		Name:    fmt.Sprintf("%s & %s", s1.Name, s2.Name),
		Type:    models.RoomTypeDirect,
		Members: []string{s1.ID, s2.ID},
	})
	if err != nil {
		h.log.Errorw("create direct room", "error", err)
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// GET /api/chat-rooms/:id/members
func (h *ChatRoomHandler) Members(c *fiber.Ctx) error {
	members, err := h.rooms.GetRoomMembers(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	if members == nil {
		members = []string{}
	}
	return c.JSON(members)
}

// DELETE /api/chat-rooms/:id
func (h *ChatRoomHandler) Delete(c *fiber.Ctx) error {
	if err := h.rooms.DeleteRoom(c.Context(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
