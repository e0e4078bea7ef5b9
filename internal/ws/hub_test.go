package ws

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fathima-sithara/campus-connect/internal/models"
)

func testHub() *Hub {
	return NewHub(zap.NewNop().Sugar())
}

// drain pops one queued frame without blocking the test on an empty channel.
func drain(t *testing.T, c *Client) serverFrame {
	t.Helper()
	select {
	case raw := <-c.send:
		var frame serverFrame
		require.NoError(t, json.Unmarshal(raw, &frame))
		return frame
	default:
		t.Fatal("no frame queued")
		return serverFrame{}
	}
}

func TestJoinAndRoomSize(t *testing.T) {
	hub := testHub()
	a := newClient(nil)
	b := newClient(nil)

	hub.Join(a, "room-1")
	hub.Join(b, "room-1")

	assert.Equal(t, 2, hub.RoomSize("room-1"))
	assert.Equal(t, "room-1", hub.CurrentRoom(a))
}

func TestJoinSwitchesRooms(t *testing.T) {
	hub := testHub()
	c := newClient(nil)

	hub.Join(c, "room-1")
	hub.Join(c, "room-2")

	assert.Equal(t, "room-2", hub.CurrentRoom(c))
	assert.Equal(t, 0, hub.RoomSize("room-1"), "old room must not retain the client")
	assert.Equal(t, 1, hub.RoomSize("room-2"))
	assert.Equal(t, 1, hub.RoomCount(), "empty rooms are pruned")
}

func TestLeavePrunesAndClosesSend(t *testing.T) {
	hub := testHub()
	c := newClient(nil)
	hub.Join(c, "room-1")

	hub.Leave(c)

	assert.Equal(t, 0, hub.RoomSize("room-1"))
	assert.Equal(t, 0, hub.RoomCount())
	_, open := <-c.send
	assert.False(t, open, "send channel must be closed")

	// Leaving twice must not panic on a double close.
	hub.Leave(c)
}

func TestBroadcastReachesRoomMembersOnly(t *testing.T) {
	hub := testHub()
	a := newClient(nil)
	b := newClient(nil)
	other := newClient(nil)
	hub.Join(a, "room-1")
	hub.Join(b, "room-1")
	hub.Join(other, "room-2")

	msg := &models.Message{ID: "m1", RoomID: "room-1", SenderName: "Alice", Content: "hi"}
	hub.BroadcastMessage("room-1", msg)

	for _, c := range []*Client{a, b} {
		frame := drain(t, c)
		assert.Equal(t, frameMessage, frame.Type)
		require.NotNil(t, frame.Data)
		assert.Equal(t, "m1", frame.Data.ID)
		assert.Equal(t, "hi", frame.Data.Content)
	}
	assert.Empty(t, other.send, "clients in other rooms must not receive the frame")
}

func TestBroadcastToEmptyRoom(t *testing.T) {
	hub := testHub()
	// Must not panic or create the room.
	hub.BroadcastMessage("ghost", &models.Message{ID: "m1"})
	assert.Equal(t, 0, hub.RoomCount())
}

func TestBroadcastDropsSlowClient(t *testing.T) {
	hub := testHub()
	slow := newClient(nil)
	fast := newClient(nil)
	hub.Join(slow, "room-1")
	hub.Join(fast, "room-1")

	for i := 0; i < sendBuffer; i++ {
		require.True(t, slow.enqueue([]byte("{}")))
	}

	hub.BroadcastMessage("room-1", &models.Message{ID: "m1", RoomID: "room-1"})

	assert.Equal(t, 1, hub.RoomSize("room-1"), "the stalled client is removed")
	assert.Equal(t, "", hub.CurrentRoom(slow))
	assert.False(t, slow.enqueue([]byte("{}")), "dropped client's send path is closed")

	frame := drain(t, fast)
	assert.Equal(t, frameMessage, frame.Type)
}

func TestEnqueueAfterClose(t *testing.T) {
	c := newClient(nil)
	c.closeSend()
	assert.False(t, c.enqueue([]byte("{}")))
	c.closeSend() // second close is a no-op
}
