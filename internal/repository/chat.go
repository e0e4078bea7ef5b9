package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fathima-sithara/campus-connect/internal/models"
)

// ChatRepo persists rooms and messages. InsertMessage also refreshes the
// room's denormalized last-message cache; the two writes belong to the same
// compose and no broadcast may happen before InsertMessage returns.
type ChatRepo interface {
	CreateRoom(ctx context.Context, room *models.ChatRoom) (*models.ChatRoom, error)
	GetRoom(ctx context.Context, id string) (*models.ChatRoom, error)
	GetAllRooms(ctx context.Context) ([]*models.ChatRoom, error)
	GetRoomsByStudent(ctx context.Context, studentID string) ([]*models.ChatRoom, error)
	GetDirectRoom(ctx context.Context, student1ID, student2ID string) (*models.ChatRoom, error)
	GetRoomMembers(ctx context.Context, roomID string) ([]string, error)
	DeleteRoom(ctx context.Context, id string) error

	InsertMessage(ctx context.Context, m *models.Message) (*models.Message, error)
	GetMessagesByRoom(ctx context.Context, roomID string) ([]*models.Message, error)
}

type mongoChatRepo struct {
	rooms    *mongo.Collection
	messages *mongo.Collection
}

func NewChatRepo(db *mongo.Database) ChatRepo {
	rooms := db.Collection(ColChatRooms)
	messages := db.Collection(ColMessages)
	memberIdx := mongo.IndexModel{
		Keys:    bson.D{{Key: "members", Value: 1}},
		Options: options.Index().SetName("members_idx"),
	}
	_, _ = rooms.Indexes().CreateOne(context.Background(), memberIdx)
	roomIdx := mongo.IndexModel{
		Keys:    bson.D{{Key: "room_id", Value: 1}, {Key: "created_at", Value: 1}},
		Options: options.Index().SetName("room_created_idx"),
	}
	_, _ = messages.Indexes().CreateOne(context.Background(), roomIdx)
	return &mongoChatRepo{rooms: rooms, messages: messages}
}

func (r *mongoChatRepo) CreateRoom(ctx context.Context, room *models.ChatRoom) (*models.ChatRoom, error) {
	room.ID = uuid.NewString()
	room.CreatedAt = time.Now().UTC()
	if room.Members == nil {
		room.Members = []string{}
	}
	if _, err := r.rooms.InsertOne(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (r *mongoChatRepo) GetRoom(ctx context.Context, id string) (*models.ChatRoom, error) {
	var room models.ChatRoom
	if err := r.rooms.FindOne(ctx, bson.M{"_id": id}).Decode(&room); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &room, nil
}

func (r *mongoChatRepo) GetAllRooms(ctx context.Context) ([]*models.ChatRoom, error) {
	return r.findRooms(ctx, bson.M{}, nil)
}

func (r *mongoChatRepo) GetRoomsByStudent(ctx context.Context, studentID string) ([]*models.ChatRoom, error) {
	opts := options.Find().SetSort(bson.D{{Key: "last_message_time", Value: -1}})
	return r.findRooms(ctx, bson.M{"members": studentID}, opts)
}

// GetDirectRoom finds an existing direct room containing exactly this pair,
// in either order.
func (r *mongoChatRepo) GetDirectRoom(ctx context.Context, student1ID, student2ID string) (*models.ChatRoom, error) {
	filter := bson.M{
		"type":    models.RoomTypeDirect,
		"members": bson.M{"$all": bson.A{student1ID, student2ID}},
	}
	var room models.ChatRoom
	if err := r.rooms.FindOne(ctx, filter).Decode(&room); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &room, nil
}

func (r *mongoChatRepo) GetRoomMembers(ctx context.Context, roomID string) ([]string, error) {
	room, err := r.GetRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}
	return room.Members, nil
}

func (r *mongoChatRepo) DeleteRoom(ctx context.Context, id string) error {
	res, err := r.rooms.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	_, _ = r.messages.DeleteMany(ctx, bson.M{"room_id": id})
	return nil
}

func (r *mongoChatRepo) InsertMessage(ctx context.Context, m *models.Message) (*models.Message, error) {
	m.ID = uuid.NewString()
	m.CreatedAt = time.Now().UTC()
	if _, err := r.messages.InsertOne(ctx, m); err != nil {
		return nil, err
	}
	// Refresh the room's last-message cache as part of the same compose.
	_, err := r.rooms.UpdateByID(ctx, m.RoomID, bson.M{"$set": bson.M{
		"last_message":      m.Content,
		"last_message_time": m.CreatedAt,
	}})
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *mongoChatRepo) GetMessagesByRoom(ctx context.Context, roomID string) ([]*models.Message, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := r.messages.Find(ctx, bson.M{"room_id": roomID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*models.Message
	for cur.Next(ctx) {
		var m models.Message
		if err := cur.Decode(&m); err != nil {
			return nil, err
		}
		out = append(out, &m)
	}
	return out, cur.Err()
}

func (r *mongoChatRepo) findRooms(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*models.ChatRoom, error) {
	var cur *mongo.Cursor
	var err error
	if opts != nil {
		cur, err = r.rooms.Find(ctx, filter, opts)
	} else {
		cur, err = r.rooms.Find(ctx, filter)
	}
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*models.ChatRoom
	for cur.Next(ctx) {
		var room models.ChatRoom
		if err := cur.Decode(&room); err != nil {
			return nil, err
		}
		out = append(out, &room)
	}
	return out, cur.Err()
}
