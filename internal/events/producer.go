// Package events publishes domain events for downstream consumers
// (notifications, analytics). The chat path emits message.sent after every
// successful persist.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/fathima-sithara/campus-connect/internal/models"
)

type Producer struct {
	writer *kafka.Writer
	log    *zap.SugaredLogger
}

func NewProducer(brokers []string, topic string, log *zap.SugaredLogger) *Producer {
	w := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
	return &Producer{writer: w, log: log}
}

// MessageSent publishes the persisted message keyed by room so per-room
// ordering survives partitioning.
func (p *Producer) MessageSent(ctx context.Context, m *models.Message) error {
	value, err := json.Marshal(m)
	if err != nil {
		return err
	}
	msg := kafka.Message{
		Key:   []byte(m.RoomID),
		Value: value,
		Time:  time.Now(),
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.log.Warnf("publish message.sent: %v", err)
		return err
	}
	return nil
}

func (p *Producer) Close() error { return p.writer.Close() }
