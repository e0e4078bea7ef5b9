// Package service holds the application core: the compose funnel for chat
// messages and the match computation. Dependencies are narrow interfaces so
// the mongo repositories, hub, and kafka producer stay swappable in tests.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/fathima-sithara/campus-connect/internal/metrics"
	"github.com/fathima-sithara/campus-connect/internal/models"
)

// ErrValidation marks a request rejected before any side effect.
var ErrValidation = errors.New("validation failed")

// MessageStore is the persistence surface the chat core needs. InsertMessage
// must persist the message and refresh the room's last-message cache before
// returning.
type MessageStore interface {
	GetRoom(ctx context.Context, id string) (*models.ChatRoom, error)
	InsertMessage(ctx context.Context, m *models.Message) (*models.Message, error)
	GetMessagesByRoom(ctx context.Context, roomID string) ([]*models.Message, error)
}

// Broadcaster fans a persisted message out to every live connection in a
// room. Implementations must not be handed unpersisted messages.
type Broadcaster interface {
	BroadcastMessage(roomID string, m *models.Message)
}

// EventPublisher emits message.sent events for downstream consumers.
type EventPublisher interface {
	MessageSent(ctx context.Context, m *models.Message) error
}

// ComposeInput is one message submission, from either entry path.
type ComposeInput struct {
	RoomID     string `json:"roomId"`
	SenderID   string `json:"senderId"`
	SenderName string `json:"senderName"`
	Content    string `json:"content"`
}

type ChatService struct {
	store  MessageStore
	hub    Broadcaster
	events EventPublisher // optional
	log    *zap.SugaredLogger
}

func NewChatService(store MessageStore, hub Broadcaster, events EventPublisher, log *zap.SugaredLogger) *ChatService {
	return &ChatService{store: store, hub: hub, events: events, log: log}
}

// Compose is the single funnel for both the one-shot endpoint and the
// websocket frame path: validate, persist exactly once, then broadcast the
// persisted form (composer included). Broadcast is strictly gated on the
// persist succeeding, so a failed compose is visible to nobody but the
// caller.
func (s *ChatService) Compose(ctx context.Context, in ComposeInput) (*models.Message, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	room, err := s.store.GetRoom(ctx, in.RoomID)
	if err != nil {
		return nil, err
	}

	msg := &models.Message{
		RoomID:     room.ID,
		SenderID:   in.SenderID,
		SenderName: in.SenderName,
		Content:    in.Content,
	}
	persisted, err := s.store.InsertMessage(ctx, msg)
	if err != nil {
		return nil, err
	}
	metrics.MessagesPersisted.Inc()

	if s.events != nil {
		// The message is durable at this point; a publish failure must not
		// fail the compose or suppress the broadcast.
		if err := s.events.MessageSent(ctx, persisted); err != nil {
			s.log.Warnw("message.sent publish failed", "messageId", persisted.ID, "error", err)
		}
	}

	s.hub.BroadcastMessage(persisted.RoomID, persisted)
	return persisted, nil
}

// History returns a room's messages in chronological order for backfill.
func (s *ChatService) History(ctx context.Context, roomID string) ([]*models.Message, error) {
	return s.store.GetMessagesByRoom(ctx, roomID)
}

func (in ComposeInput) validate() error {
	switch {
	case in.RoomID == "":
		return fmt.Errorf("%w: roomId is required", ErrValidation)
	case in.SenderID == "":
		return fmt.Errorf("%w: senderId is required", ErrValidation)
	case in.SenderName == "":
		return fmt.Errorf("%w: senderName is required", ErrValidation)
	case strings.TrimSpace(in.Content) == "":
		return fmt.Errorf("%w: content must not be empty", ErrValidation)
	}
	return nil
}
