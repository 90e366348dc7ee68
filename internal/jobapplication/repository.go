package jobapplication

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Temoho9984/CareerConnect-Backend/internal/application"
)

type JobApplicationRepository struct {
	collection *mongo.Collection
}

func NewJobApplicationRepository(db *mongo.Database) *JobApplicationRepository {
	return &JobApplicationRepository{collection: db.Collection("jobApplications")}
}

func (r *JobApplicationRepository) Insert(ctx context.Context, app *JobApplication) error {
	_, err := r.collection.InsertOne(ctx, app)
	return err
}

func (r *JobApplicationRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*JobApplication, error) {
	var app JobApplication
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&app)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &app, nil
}

func (r *JobApplicationRepository) FindByStudent(ctx context.Context, studentID primitive.ObjectID) ([]*JobApplication, error) {
	opts := options.Find().SetSort(bson.D{{Key: "applied_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"student_id": studentID}, opts)
	if err != nil {
		return nil, err
	}
	var apps []*JobApplication
	if err := cursor.All(ctx, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *JobApplicationRepository) FindByJob(ctx context.Context, jobID primitive.ObjectID) ([]*JobApplication, error) {
	opts := options.Find().SetSort(bson.D{{Key: "applied_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"job_id": jobID}, opts)
	if err != nil {
		return nil, err
	}
	var apps []*JobApplication
	if err := cursor.All(ctx, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *JobApplicationRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status application.Status, updatedAt time.Time) error {
	_, err := r.collection.UpdateByID(ctx, id, bson.M{
		"$set": bson.M{"status": status, "updated_at": updatedAt},
	})
	return err
}

func (r *JobApplicationRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
