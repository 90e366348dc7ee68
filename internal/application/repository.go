package application

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ApplicationRepository struct {
	collection *mongo.Collection
}

func NewApplicationRepository(db *mongo.Database) *ApplicationRepository {
	return &ApplicationRepository{collection: db.Collection("applications")}
}

func (r *ApplicationRepository) Insert(ctx context.Context, app *Application) error {
	_, err := r.collection.InsertOne(ctx, app)
	return err
}

func (r *ApplicationRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*Application, error) {
	var app Application
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&app)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status Status, updatedAt time.Time) error {
	_, err := r.collection.UpdateByID(ctx, id, bson.M{
		"$set": bson.M{"status": status, "updated_at": updatedAt},
	})
	return err
}

func (r *ApplicationRepository) CountByStudentAndInstitution(ctx context.Context, studentID, institutionID primitive.ObjectID) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"student_id": studentID, "institution_id": institutionID})
}

func (r *ApplicationRepository) ExistsByStudentAndCourse(ctx context.Context, studentID, courseID primitive.ObjectID) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"student_id": studentID, "course_id": courseID})
	return count > 0, err
}

func (r *ApplicationRepository) FindByInstitution(ctx context.Context, institutionID primitive.ObjectID) ([]*Application, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"institution_id": institutionID})
	if err != nil {
		return nil, err
	}
	var apps []*Application
	if err := cursor.All(ctx, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *ApplicationRepository) FindByStudent(ctx context.Context, studentID primitive.ObjectID) ([]*Application, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"student_id": studentID})
	if err != nil {
		return nil, err
	}
	var apps []*Application
	if err := cursor.All(ctx, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}
