package repository

import (
	"context"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fathima-sithara/campus-connect/internal/models"
)

type MeetupRepo interface {
	GetByID(ctx context.Context, id string) (*models.MeetupLocation, error)
	GetAll(ctx context.Context) ([]*models.MeetupLocation, error)
	Create(ctx context.Context, l *models.MeetupLocation) (*models.MeetupLocation, error)
	Delete(ctx context.Context, id string) error
}

type mongoMeetupRepo struct {
	coll *mongo.Collection
}

func NewMeetupRepo(db *mongo.Database) MeetupRepo {
	return &mongoMeetupRepo{coll: db.Collection(ColMeetups)}
}

func (r *mongoMeetupRepo) GetByID(ctx context.Context, id string) (*models.MeetupLocation, error) {
	var l models.MeetupLocation
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&l); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &l, nil
}

func (r *mongoMeetupRepo) GetAll(ctx context.Context) ([]*models.MeetupLocation, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*models.MeetupLocation
	for cur.Next(ctx) {
		var l models.MeetupLocation
		if err := cur.Decode(&l); err != nil {
			return nil, err
		}
		out = append(out, &l)
	}
	return out, cur.Err()
}

func (r *mongoMeetupRepo) Create(ctx context.Context, l *models.MeetupLocation) (*models.MeetupLocation, error) {
	l.ID = uuid.NewString()
	if _, err := r.coll.InsertOne(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (r *mongoMeetupRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
