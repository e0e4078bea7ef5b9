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

type EventRepo interface {
	GetByID(ctx context.Context, id string) (*models.Event, error)
	GetAll(ctx context.Context) ([]*models.Event, error)
	Create(ctx context.Context, e *models.Event) (*models.Event, error)
	Update(ctx context.Context, id string, e *models.Event) (*models.Event, error)
	Delete(ctx context.Context, id string) error
	AddAttendee(ctx context.Context, eventID, studentID string) (*models.Event, error)
	RemoveAttendee(ctx context.Context, eventID, studentID string) (*models.Event, error)
}

type mongoEventRepo struct {
	coll *mongo.Collection
}

func NewEventRepo(db *mongo.Database) EventRepo {
	return &mongoEventRepo{coll: db.Collection(ColEvents)}
}

func (r *mongoEventRepo) GetByID(ctx context.Context, id string) (*models.Event, error) {
	var e models.Event
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&e); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *mongoEventRepo) GetAll(ctx context.Context) ([]*models.Event, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*models.Event
	for cur.Next(ctx) {
		var e models.Event
		if err := cur.Decode(&e); err != nil {
			return nil, err
		}
		out = append(out, &e)
	}
	return out, cur.Err()
}

func (r *mongoEventRepo) Create(ctx context.Context, e *models.Event) (*models.Event, error) {
	e.ID = uuid.NewString()
	e.CreatedAt = time.Now().UTC()
	if e.Attendees == nil {
		e.Attendees = []string{}
	}
	if _, err := r.coll.InsertOne(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (r *mongoEventRepo) Update(ctx context.Context, id string, e *models.Event) (*models.Event, error) {
	set := bson.M{
		"title":       e.Title,
		"description": e.Description,
		"date":        e.Date,
		"location":    e.Location,
		"image":       e.Image,
		"category":    e.Category,
		"capacity":    e.Capacity,
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Event
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &updated, nil
}

func (r *mongoEventRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoEventRepo) AddAttendee(ctx context.Context, eventID, studentID string) (*models.Event, error) {
	return r.updateAttendees(ctx, eventID, bson.M{"$addToSet": bson.M{"attendees": studentID}})
}

func (r *mongoEventRepo) RemoveAttendee(ctx context.Context, eventID, studentID string) (*models.Event, error) {
	return r.updateAttendees(ctx, eventID, bson.M{"$pull": bson.M{"attendees": studentID}})
}

func (r *mongoEventRepo) updateAttendees(ctx context.Context, eventID string, update bson.M) (*models.Event, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var e models.Event
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": eventID}, update, opts).Decode(&e)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}
