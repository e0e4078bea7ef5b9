// Package ws is the realtime transport: a hub of rooms, one goroutine pair
// per connection, and a small JSON frame protocol. Message persistence lives
// in the chat service; the hub only ever fans out already persisted messages.
package ws

import "github.com/fathima-sithara/campus-connect/internal/models"

// Client-to-server frame types.
const (
	frameJoin    = "join"
	frameMessage = "message"
)

// Server-to-client frame types.
const (
	frameJoined = "joined"
	frameError  = "error"
)

type clientFrame struct {
	Type       string `json:"type"`
	RoomID     string `json:"roomId,omitempty"`
	SenderID   string `json:"senderId,omitempty"`
	SenderName string `json:"senderName,omitempty"`
	Content    string `json:"content,omitempty"`
}

type serverFrame struct {
	Type    string          `json:"type"`
	RoomID  string          `json:"roomId,omitempty"`
	Data    *models.Message `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
}
