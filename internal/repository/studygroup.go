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

type StudyGroupRepo interface {
	GetByID(ctx context.Context, id string) (*models.StudyGroup, error)
	GetAll(ctx context.Context) ([]*models.StudyGroup, error)
	Create(ctx context.Context, g *models.StudyGroup) (*models.StudyGroup, error)
	Update(ctx context.Context, id string, g *models.StudyGroup) (*models.StudyGroup, error)
	Delete(ctx context.Context, id string) error
	AddMember(ctx context.Context, groupID, studentID string) (*models.StudyGroup, error)
	RemoveMember(ctx context.Context, groupID, studentID string) (*models.StudyGroup, error)
}

type mongoStudyGroupRepo struct {
	coll *mongo.Collection
}

func NewStudyGroupRepo(db *mongo.Database) StudyGroupRepo {
	return &mongoStudyGroupRepo{coll: db.Collection(ColStudyGroups)}
}

func (r *mongoStudyGroupRepo) GetByID(ctx context.Context, id string) (*models.StudyGroup, error) {
	var g models.StudyGroup
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&g); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &g, nil
}

func (r *mongoStudyGroupRepo) GetAll(ctx context.Context) ([]*models.StudyGroup, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*models.StudyGroup
	for cur.Next(ctx) {
		var g models.StudyGroup
		if err := cur.Decode(&g); err != nil {
			return nil, err
		}
		out = append(out, &g)
	}
	return out, cur.Err()
}

func (r *mongoStudyGroupRepo) Create(ctx context.Context, g *models.StudyGroup) (*models.StudyGroup, error) {
	g.ID = uuid.NewString()
	g.CreatedAt = time.Now().UTC()
	if g.Members == nil {
		g.Members = []string{}
	}
	if g.Tags == nil {
		g.Tags = []string{}
	}
	if _, err := r.coll.InsertOne(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (r *mongoStudyGroupRepo) Update(ctx context.Context, id string, g *models.StudyGroup) (*models.StudyGroup, error) {
	set := bson.M{
		"name":        g.Name,
		"course":      g.Course,
		"description": g.Description,
		"image":       g.Image,
		"tags":        g.Tags,
		"max_members": g.MaxMembers,
		"is_private":  g.IsPrivate,
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.StudyGroup
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &updated, nil
}

func (r *mongoStudyGroupRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoStudyGroupRepo) AddMember(ctx context.Context, groupID, studentID string) (*models.StudyGroup, error) {
	return r.updateMembers(ctx, groupID, bson.M{"$addToSet": bson.M{"members": studentID}})
}

func (r *mongoStudyGroupRepo) RemoveMember(ctx context.Context, groupID, studentID string) (*models.StudyGroup, error) {
	return r.updateMembers(ctx, groupID, bson.M{"$pull": bson.M{"members": studentID}})
}

func (r *mongoStudyGroupRepo) updateMembers(ctx context.Context, groupID string, update bson.M) (*models.StudyGroup, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var g models.StudyGroup
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": groupID}, update, opts).Decode(&g)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &g, nil
}
