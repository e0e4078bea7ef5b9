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

type NewsRepo interface {
	GetByID(ctx context.Context, id string) (*models.CampusNews, error)
	GetAll(ctx context.Context) ([]*models.CampusNews, error)
	GetByCategory(ctx context.Context, category string) ([]*models.CampusNews, error)
	Create(ctx context.Context, n *models.CampusNews) (*models.CampusNews, error)
	Update(ctx context.Context, id string, n *models.CampusNews) (*models.CampusNews, error)
	Delete(ctx context.Context, id string) error
}

type mongoNewsRepo struct {
	coll *mongo.Collection
}

func NewNewsRepo(db *mongo.Database) NewsRepo {
	return &mongoNewsRepo{coll: db.Collection(ColNews)}
}

func (r *mongoNewsRepo) GetByID(ctx context.Context, id string) (*models.CampusNews, error) {
	var n models.CampusNews
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&n); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &n, nil
}

func (r *mongoNewsRepo) GetAll(ctx context.Context) ([]*models.CampusNews, error) {
	return r.find(ctx, bson.M{})
}

func (r *mongoNewsRepo) GetByCategory(ctx context.Context, category string) ([]*models.CampusNews, error) {
	return r.find(ctx, bson.M{"category": category})
}

func (r *mongoNewsRepo) Create(ctx context.Context, n *models.CampusNews) (*models.CampusNews, error) {
	n.ID = uuid.NewString()
	n.CreatedAt = time.Now().UTC()
	if _, err := r.coll.InsertOne(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (r *mongoNewsRepo) Update(ctx context.Context, id string, n *models.CampusNews) (*models.CampusNews, error) {
	set := bson.M{
		"title":    n.Title,
		"content":  n.Content,
		"image":    n.Image,
		"author":   n.Author,
		"category": n.Category,
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.CampusNews
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &updated, nil
}

func (r *mongoNewsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// find returns items newest first.
func (r *mongoNewsRepo) find(ctx context.Context, filter bson.M) ([]*models.CampusNews, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*models.CampusNews
	for cur.Next(ctx) {
		var n models.CampusNews
		if err := cur.Decode(&n); err != nil {
			return nil, err
		}
		out = append(out, &n)
	}
	return out, cur.Err()
}
