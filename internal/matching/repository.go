package matching

import (
	"context"

	"github.com/Temoho9984/CareerConnect-Backend/internal/auth"
	"github.com/Temoho9984/CareerConnect-Backend/internal/jobs"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MatchRepository reads the records the matching engine scores: the student
// pool, job postings, and per-student transcript/certificate counts.
type MatchRepository struct {
	usersCollection        *mongo.Collection
	jobsCollection         *mongo.Collection
	transcriptsCollection  *mongo.Collection
	certificatesCollection *mongo.Collection
}

func NewMatchRepository(db *mongo.Database) *MatchRepository {
	return &MatchRepository{
		usersCollection:        db.Collection("users"),
		jobsCollection:         db.Collection("jobs"),
		transcriptsCollection:  db.Collection("transcripts"),
		certificatesCollection: db.Collection("certificates"),
	}
}

func (r *MatchRepository) FindStudentByID(ctx context.Context, id primitive.ObjectID) (*auth.User, error) {
	var user auth.User
	err := r.usersCollection.FindOne(ctx, bson.M{"_id": id, "role": auth.RoleStudent}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *MatchRepository) FindStudents(ctx context.Context) ([]*auth.User, error) {
	cursor, err := r.usersCollection.Find(ctx, bson.M{"role": auth.RoleStudent})
	if err != nil {
		return nil, err
	}
	var students []*auth.User
	if err := cursor.All(ctx, &students); err != nil {
		return nil, err
	}
	return students, nil
}

func (r *MatchRepository) FindJobByID(ctx context.Context, id primitive.ObjectID) (*jobs.Job, error) {
	var job jobs.Job
	err := r.jobsCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&job)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &job, nil
}

func (r *MatchRepository) CountVerifiedTranscripts(ctx context.Context, studentID primitive.ObjectID) (int, error) {
	count, err := r.transcriptsCollection.CountDocuments(ctx, bson.M{"student_id": studentID, "is_verified": true})
	return int(count), err
}

func (r *MatchRepository) CountCertificates(ctx context.Context, studentID primitive.ObjectID) (int, error) {
	count, err := r.certificatesCollection.CountDocuments(ctx, bson.M{"student_id": studentID})
	return int(count), err
}
