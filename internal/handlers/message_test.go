package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fathima-sithara/campus-connect/internal/models"
	"github.com/fathima-sithara/campus-connect/internal/repository"
	"github.com/fathima-sithara/campus-connect/internal/service"
)

type fakeMessageStore struct {
	rooms    map[string]*models.ChatRoom
	inserted []*models.Message
}

func (f *fakeMessageStore) GetRoom(_ context.Context, id string) (*models.ChatRoom, error) {
	room, ok := f.rooms[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return room, nil
}

func (f *fakeMessageStore) InsertMessage(_ context.Context, m *models.Message) (*models.Message, error) {
	m.ID = "msg-1"
	m.CreatedAt = time.Now().UTC()
	f.inserted = append(f.inserted, m)
	return m, nil
}

func (f *fakeMessageStore) GetMessagesByRoom(_ context.Context, roomID string) ([]*models.Message, error) {
	var out []*models.Message
	for _, m := range f.inserted {
		if m.RoomID == roomID {
			out = append(out, m)
		}
	}
	return out, nil
}

type recordingBroadcaster struct {
	messages []*models.Message
}

func (r *recordingBroadcaster) BroadcastMessage(_ string, m *models.Message) {
	r.messages = append(r.messages, m)
}

func messageApp(store *fakeMessageStore, hub *recordingBroadcaster) *fiber.App {
	log := zap.NewNop().Sugar()
	chat := service.NewChatService(store, hub, nil, log)
	h := NewMessageHandler(chat, log)

	app := fiber.New()
	app.Get("/api/messages/:roomId", h.GetByRoom)
	app.Post("/api/messages", h.Create)
	return app
}

func TestMessageCreateBroadcasts(t *testing.T) {
	store := &fakeMessageStore{rooms: map[string]*models.ChatRoom{
		"room-1": {ID: "room-1", Type: models.RoomTypeDirect},
	}}
	hub := &recordingBroadcaster{}
	app := messageApp(store, hub)

	resp := doJSON(t, app, http.MethodPost, "/api/messages", service.ComposeInput{
		RoomID: "room-1", SenderID: "s1", SenderName: "Alice", Content: "hello",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var msg models.Message
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&msg))
	assert.Equal(t, "msg-1", msg.ID)

	// The one-shot path goes through the same funnel as the socket path, so
	// live clients in the room get the message too.
	require.Len(t, hub.messages, 1)
	assert.Equal(t, "msg-1", hub.messages[0].ID)
}

func TestMessageCreateValidation(t *testing.T) {
	app := messageApp(&fakeMessageStore{rooms: map[string]*models.ChatRoom{}}, &recordingBroadcaster{})

	resp := doJSON(t, app, http.MethodPost, "/api/messages", service.ComposeInput{
		RoomID: "room-1", SenderID: "s1", SenderName: "Alice", Content: "  ",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestMessageCreateUnknownRoom(t *testing.T) {
	app := messageApp(&fakeMessageStore{rooms: map[string]*models.ChatRoom{}}, &recordingBroadcaster{})

	resp := doJSON(t, app, http.MethodPost, "/api/messages", service.ComposeInput{
		RoomID: "ghost", SenderID: "s1", SenderName: "Alice", Content: "hello",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestMessageHistory(t *testing.T) {
	store := &fakeMessageStore{
		rooms: map[string]*models.ChatRoom{"room-1": {ID: "room-1"}},
		inserted: []*models.Message{
			{ID: "m1", RoomID: "room-1", Content: "first"},
			{ID: "m2", RoomID: "other", Content: "elsewhere"},
		},
	}
	app := messageApp(store, &recordingBroadcaster{})

	resp := doJSON(t, app, http.MethodGet, "/api/messages/room-1", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var msgs []models.Message
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&msgs))
	require.Len(t, msgs, 1)
	assert.Equal(t, "m1", msgs[0].ID)
}

func TestMessageHistoryEmptyIsArray(t *testing.T) {
	store := &fakeMessageStore{rooms: map[string]*models.ChatRoom{"room-1": {ID: "room-1"}}}
	app := messageApp(store, &recordingBroadcaster{})

	resp := doJSON(t, app, http.MethodGet, "/api/messages/room-1", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var msgs []models.Message
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&msgs))
	assert.Empty(t, msgs)
}
