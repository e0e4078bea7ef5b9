package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fathima-sithara/campus-connect/internal/models"
	"github.com/fathima-sithara/campus-connect/internal/repository"
)

type fakeStore struct {
	rooms     map[string]*models.ChatRoom
	inserted  []*models.Message
	history   []*models.Message
	insertErr error
}

func newFakeStore(roomIDs ...string) *fakeStore {
	f := &fakeStore{rooms: make(map[string]*models.ChatRoom)}
	for _, id := range roomIDs {
		f.rooms[id] = &models.ChatRoom{ID: id, Name: "room " + id, Type: models.RoomTypeSocial}
	}
	return f
}

func (f *fakeStore) GetRoom(_ context.Context, id string) (*models.ChatRoom, error) {
	room, ok := f.rooms[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return room, nil
}

func (f *fakeStore) InsertMessage(_ context.Context, m *models.Message) (*models.Message, error) {
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	m.ID = "msg-1"
	m.CreatedAt = time.Now().UTC()
	f.inserted = append(f.inserted, m)
	return m, nil
}

func (f *fakeStore) GetMessagesByRoom(_ context.Context, roomID string) ([]*models.Message, error) {
	return f.history, nil
}

type fakeBroadcaster struct {
	roomIDs  []string
	messages []*models.Message
}

func (f *fakeBroadcaster) BroadcastMessage(roomID string, m *models.Message) {
	f.roomIDs = append(f.roomIDs, roomID)
	f.messages = append(f.messages, m)
}

type fakePublisher struct {
	published []*models.Message
	err       error
}

func (f *fakePublisher) MessageSent(_ context.Context, m *models.Message) error {
	f.published = append(f.published, m)
	return f.err
}

func validInput() ComposeInput {
	return ComposeInput{
		RoomID:     "room-1",
		SenderID:   "student-1",
		SenderName: "Alice",
		Content:    "hey, study session tonight?",
	}
}

func TestComposePersistsThenBroadcasts(t *testing.T) {
	store := newFakeStore("room-1")
	hub := &fakeBroadcaster{}
	pub := &fakePublisher{}
	svc := NewChatService(store, hub, pub, zap.NewNop().Sugar())

	msg, err := svc.Compose(context.Background(), validInput())
	require.NoError(t, err)

	require.Len(t, store.inserted, 1)
	assert.Equal(t, "msg-1", msg.ID)
	assert.Equal(t, "room-1", msg.RoomID)
	assert.Equal(t, "Alice", msg.SenderName)
	assert.False(t, msg.CreatedAt.IsZero())

	// The broadcast carries the persisted form, ID and timestamp included.
	require.Len(t, hub.messages, 1)
	assert.Same(t, msg, hub.messages[0])
	assert.Equal(t, []string{"room-1"}, hub.roomIDs)

	require.Len(t, pub.published, 1)
	assert.Same(t, msg, pub.published[0])
}

func TestComposeValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ComposeInput)
	}{
		{"missing room", func(in *ComposeInput) { in.RoomID = "" }},
		{"missing sender id", func(in *ComposeInput) { in.SenderID = "" }},
		{"missing sender name", func(in *ComposeInput) { in.SenderName = "" }},
		{"empty content", func(in *ComposeInput) { in.Content = "" }},
		{"whitespace content", func(in *ComposeInput) { in.Content = "   \n\t" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore("room-1")
			hub := &fakeBroadcaster{}
			svc := NewChatService(store, hub, nil, zap.NewNop().Sugar())

			in := validInput()
			tt.mutate(&in)
			_, err := svc.Compose(context.Background(), in)

			assert.ErrorIs(t, err, ErrValidation)
			assert.Empty(t, store.inserted, "nothing may be persisted on a validation failure")
			assert.Empty(t, hub.messages, "nothing may be broadcast on a validation failure")
		})
	}
}

func TestComposeUnknownRoom(t *testing.T) {
	store := newFakeStore() // no rooms
	hub := &fakeBroadcaster{}
	svc := NewChatService(store, hub, nil, zap.NewNop().Sugar())

	_, err := svc.Compose(context.Background(), validInput())

	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Empty(t, store.inserted)
	assert.Empty(t, hub.messages)
}

func TestComposeStoreFailureSuppressesBroadcast(t *testing.T) {
	store := newFakeStore("room-1")
	store.insertErr = errors.New("mongo down")
	hub := &fakeBroadcaster{}
	pub := &fakePublisher{}
	svc := NewChatService(store, hub, pub, zap.NewNop().Sugar())

	_, err := svc.Compose(context.Background(), validInput())

	require.Error(t, err)
	assert.Empty(t, hub.messages, "a message that failed to persist must reach nobody")
	assert.Empty(t, pub.published)
}

func TestComposePublishFailureIsNonFatal(t *testing.T) {
	store := newFakeStore("room-1")
	hub := &fakeBroadcaster{}
	pub := &fakePublisher{err: errors.New("kafka down")}
	svc := NewChatService(store, hub, pub, zap.NewNop().Sugar())

	msg, err := svc.Compose(context.Background(), validInput())

	require.NoError(t, err)
	require.Len(t, hub.messages, 1)
	assert.Same(t, msg, hub.messages[0])
}

func TestComposeWithoutPublisher(t *testing.T) {
	store := newFakeStore("room-1")
	hub := &fakeBroadcaster{}
	svc := NewChatService(store, hub, nil, zap.NewNop().Sugar())

	_, err := svc.Compose(context.Background(), validInput())
	require.NoError(t, err)
	assert.Len(t, hub.messages, 1)
}

func TestHistory(t *testing.T) {
	store := newFakeStore("room-1")
	store.history = []*models.Message{
		{ID: "m1", RoomID: "room-1", Content: "first"},
		{ID: "m2", RoomID: "room-1", Content: "second"},
	}
	svc := NewChatService(store, &fakeBroadcaster{}, nil, zap.NewNop().Sugar())

	msgs, err := svc.History(context.Background(), "room-1")
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "m1", msgs[0].ID)
}
