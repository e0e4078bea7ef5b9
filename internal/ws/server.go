package ws

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/gofiber/websocket/v2"
	"go.uber.org/zap"

	"github.com/fathima-sithara/campus-connect/internal/metrics"
	"github.com/fathima-sithara/campus-connect/internal/models"
	"github.com/fathima-sithara/campus-connect/internal/repository"
	"github.com/fathima-sithara/campus-connect/internal/service"
)

// Composer is the chat core the transport hands message frames to. Compose
// persists and then broadcasts, so the read loop never touches the store or
// the hub's fan-out directly.
type Composer interface {
	Compose(ctx context.Context, in service.ComposeInput) (*models.Message, error)
}

type Server struct {
	hub  *Hub
	chat Composer
	log  *zap.SugaredLogger

	pingInterval   time.Duration
	writeDeadline  time.Duration
	maxMessageSize int64
}

func NewServer(hub *Hub, chat Composer, log *zap.SugaredLogger, pingInterval, writeDeadline time.Duration, maxMessageSize int64) *Server {
	return &Server{
		hub:            hub,
		chat:           chat,
		log:            log,
		pingInterval:   pingInterval,
		writeDeadline:  writeDeadline,
		maxMessageSize: maxMessageSize,
	}
}

// Handler returns the connection handler for the websocket upgrade route.
func (s *Server) Handler() func(*websocket.Conn) {
	return func(conn *websocket.Conn) {
		client := newClient(conn)
		metrics.ConnectionsActive.Inc()
		defer metrics.ConnectionsActive.Dec()

		go client.writePump(s.pingInterval, s.writeDeadline)
		s.readLoop(client)
	}
}

func (s *Server) readLoop(c *Client) {
	defer func() {
		s.hub.Leave(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(s.maxMessageSize)
	readWait := s.pingInterval + s.writeDeadline
	c.conn.SetReadDeadline(time.Now().Add(readWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(readWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.log.Debugw("read failed", "clientId", c.id, "error", err)
			}
			return
		}

		var frame clientFrame
		if err := json.Unmarshal(data, &frame); err != nil {
			s.sendError(c, "malformed frame")
			continue
		}

		switch frame.Type {
		case frameJoin:
			s.handleJoin(c, frame)
		case frameMessage:
			s.handleMessage(c, frame)
		default:
			s.sendError(c, "unknown frame type")
		}
	}
}

func (s *Server) handleJoin(c *Client, frame clientFrame) {
	if frame.RoomID == "" {
		s.sendError(c, "roomId is required")
		return
	}
	s.hub.Join(c, frame.RoomID)
	ack, _ := json.Marshal(serverFrame{Type: frameJoined, RoomID: frame.RoomID})
	c.enqueue(ack)
}

// handleMessage funnels a message frame through the chat core. Compose does
// the broadcast, so this client receives its own message the same way every
// other room member does.
func (s *Server) handleMessage(c *Client, frame clientFrame) {
	roomID := s.hub.CurrentRoom(c)
	if roomID == "" {
		s.sendError(c, "join a room first")
		return
	}
	_, err := s.chat.Compose(context.Background(), service.ComposeInput{
		RoomID:     roomID,
		SenderID:   frame.SenderID,
		SenderName: frame.SenderName,
		Content:    frame.Content,
	})
	switch {
	case err == nil:
	case errors.Is(err, service.ErrValidation):
		s.sendError(c, err.Error())
	case errors.Is(err, repository.ErrNotFound):
		s.sendError(c, "room not found")
	default:
		s.log.Errorw("compose from ws failed", "clientId", c.id, "roomId", roomID, "error", err)
		s.sendError(c, "failed to send message")
	}
}

// sendError reports a per-frame failure without tearing the connection down.
func (s *Server) sendError(c *Client, msg string) {
	frame, _ := json.Marshal(serverFrame{Type: frameError, Message: msg})
	c.enqueue(frame)
}
