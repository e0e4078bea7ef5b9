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

// StudentRepo is the read/write surface for student profiles. The matcher
// only uses the two read methods.
type StudentRepo interface {
	GetByID(ctx context.Context, id string) (*models.Student, error)
	GetAll(ctx context.Context) ([]*models.Student, error)
	Create(ctx context.Context, s *models.Student) (*models.Student, error)
	Update(ctx context.Context, id string, upd *models.StudentUpdate) (*models.Student, error)
	Delete(ctx context.Context, id string) error
}

type mongoStudentRepo struct {
	coll *mongo.Collection
}

func NewStudentRepo(db *mongo.Database) StudentRepo {
	coll := db.Collection(ColStudents)
	idx := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("email_idx"),
	}
	_, _ = coll.Indexes().CreateOne(context.Background(), idx)
	return &mongoStudentRepo{coll: coll}
}

func (r *mongoStudentRepo) GetByID(ctx context.Context, id string) (*models.Student, error) {
	var s models.Student
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&s); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *mongoStudentRepo) GetAll(ctx context.Context) ([]*models.Student, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*models.Student
	for cur.Next(ctx) {
		var s models.Student
		if err := cur.Decode(&s); err != nil {
			return nil, err
		}
		out = append(out, &s)
	}
	return out, cur.Err()
}

func (r *mongoStudentRepo) Create(ctx context.Context, s *models.Student) (*models.Student, error) {
	s.ID = uuid.NewString()
	s.CreatedAt = time.Now().UTC()
	if s.Courses == nil {
		s.Courses = []string{}
	}
	if s.Interests == nil {
		s.Interests = []string{}
	}
	if s.Hobbies == nil {
		s.Hobbies = []string{}
	}
	if s.Goals == nil {
		s.Goals = []string{}
	}
	if _, err := r.coll.InsertOne(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *mongoStudentRepo) Update(ctx context.Context, id string, upd *models.StudentUpdate) (*models.Student, error) {
	set := bson.M{}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Year != nil {
		set["year"] = *upd.Year
	}
	if upd.Major != nil {
		set["major"] = *upd.Major
	}
	if upd.Bio != nil {
		set["bio"] = *upd.Bio
	}
	if upd.Avatar != nil {
		set["avatar"] = *upd.Avatar
	}
	if upd.Courses != nil {
		set["courses"] = *upd.Courses
	}
	if upd.Interests != nil {
		set["interests"] = *upd.Interests
	}
	if upd.Hobbies != nil {
		set["hobbies"] = *upd.Hobbies
	}
	if upd.Goals != nil {
		set["goals"] = *upd.Goals
	}
	if upd.Location != nil {
		set["location"] = *upd.Location
	}
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var s models.Student
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&s)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *mongoStudentRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
