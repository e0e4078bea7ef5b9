// Package repository holds the MongoDB persistence layer. Collections use
// string UUID primary keys so documents round-trip cleanly through JSON.
package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// ErrNotFound is returned when a document does not exist. Callers branch on
// it with errors.Is to produce 404s distinct from validation failures.
var ErrNotFound = errors.New("not found")

// Collection names.
const (
	ColStudents    = "students"
	ColChatRooms   = "chat_rooms"
	ColMessages    = "messages"
	ColEvents      = "events"
	ColStudyGroups = "study_groups"
	ColNews        = "campus_news"
	ColMeetups     = "meetup_locations"
	ColConnections = "connections"
)

// Connect dials MongoDB and pings it before handing back the database.
func Connect(uri, dbName string, logger *zap.SugaredLogger) (*mongo.Database, *mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		logger.Errorf("mongodb connect failed: %v", err)
		return nil, nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		logger.Errorf("mongodb ping failed: %v", err)
		return nil, nil, err
	}

	logger.Infow("mongodb connected", "database", dbName)
	return client.Database(dbName), client, nil
}
