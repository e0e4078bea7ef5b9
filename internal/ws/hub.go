package ws

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"github.com/fathima-sithara/campus-connect/internal/metrics"
	"github.com/fathima-sithara/campus-connect/internal/models"
)

// Hub tracks which clients are in which room. A client is in at most one
// room at a time; joining another room leaves the previous one. Empty rooms
// are pruned immediately.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*Client]struct{}
	log   *zap.SugaredLogger
}

func NewHub(log *zap.SugaredLogger) *Hub {
	return &Hub{
		rooms: make(map[string]map[*Client]struct{}),
		log:   log,
	}
}

// Join moves the client into roomID, leaving its current room first.
func (h *Hub) Join(c *Client, roomID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(c)
	room, ok := h.rooms[roomID]
	if !ok {
		room = make(map[*Client]struct{})
		h.rooms[roomID] = room
	}
	room[c] = struct{}{}
	c.room = roomID
}

// Leave removes the client from its room and closes its send channel. Safe
// to call more than once.
func (h *Hub) Leave(c *Client) {
	h.mu.Lock()
	h.removeLocked(c)
	h.mu.Unlock()
	c.closeSend()
}

func (h *Hub) removeLocked(c *Client) {
	if c.room == "" {
		return
	}
	if room, ok := h.rooms[c.room]; ok {
		delete(room, c)
		if len(room) == 0 {
			delete(h.rooms, c.room)
		}
	}
	c.room = ""
}

// BroadcastMessage fans a persisted message out to every client in the room.
// A client whose buffer is full is dropped from the room rather than allowed
// to stall the rest; its read loop notices the closed connection and cleans
// up.
func (h *Hub) BroadcastMessage(roomID string, m *models.Message) {
	frame, err := json.Marshal(serverFrame{Type: frameMessage, Data: m})
	if err != nil {
		h.log.Errorw("marshal broadcast frame", "roomId", roomID, "error", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	room, ok := h.rooms[roomID]
	if !ok {
		return
	}
	for c := range room {
		if c.enqueue(frame) {
			metrics.BroadcastsDelivered.Inc()
			continue
		}
		h.log.Warnw("dropping slow client", "clientId", c.id, "roomId", roomID)
		delete(room, c)
		c.room = ""
		c.closeSend()
	}
	if len(room) == 0 {
		delete(h.rooms, roomID)
	}
}

// CurrentRoom returns the room the client is joined to, or "".
func (h *Hub) CurrentRoom(c *Client) string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return c.room
}

// RoomSize reports how many clients are joined to roomID.
func (h *Hub) RoomSize(roomID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[roomID])
}

// RoomCount reports how many rooms currently have at least one client.
func (h *Hub) RoomCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms)
}
