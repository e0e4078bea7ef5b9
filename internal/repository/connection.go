package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fathima-sithara/campus-connect/internal/models"
)

// ConnectionRepo stores acted-on match results (pending/accepted requests).
type ConnectionRepo interface {
	GetByStudent(ctx context.Context, studentID string) ([]*models.Connection, error)
	Create(ctx context.Context, c *models.Connection) (*models.Connection, error)
	Delete(ctx context.Context, id string) error
}

type mongoConnectionRepo struct {
	coll *mongo.Collection
}

func NewConnectionRepo(db *mongo.Database) ConnectionRepo {
	return &mongoConnectionRepo{coll: db.Collection(ColConnections)}
}

// GetByStudent returns connections where the student is on either side.
func (r *mongoConnectionRepo) GetByStudent(ctx context.Context, studentID string) ([]*models.Connection, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"student_id": studentID},
		bson.M{"connected_id": studentID},
	}}
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*models.Connection
	for cur.Next(ctx) {
		var c models.Connection
		if err := cur.Decode(&c); err != nil {
			return nil, err
		}
		out = append(out, &c)
	}
	return out, cur.Err()
}

func (r *mongoConnectionRepo) Create(ctx context.Context, c *models.Connection) (*models.Connection, error) {
	c.ID = uuid.NewString()
	c.CreatedAt = time.Now().UTC()
	if _, err := r.coll.InsertOne(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *mongoConnectionRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
