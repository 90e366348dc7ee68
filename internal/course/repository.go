package course

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CourseRepository struct {
	coursesCollection   *mongo.Collection
	facultiesCollection *mongo.Collection
}

func NewCourseRepository(db *mongo.Database) *CourseRepository {
	return &CourseRepository{
		coursesCollection:   db.Collection("courses"),
		facultiesCollection: db.Collection("faculties"),
	}
}

func (r *CourseRepository) FindAll(ctx context.Context) ([]*Course, error) {
	cursor, err := r.coursesCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var courses []*Course
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *CourseRepository) FindByInstitution(ctx context.Context, institutionID primitive.ObjectID) ([]*Course, error) {
	cursor, err := r.coursesCollection.Find(ctx, bson.M{"institution_id": institutionID})
	if err != nil {
		return nil, err
	}
	var courses []*Course
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *CourseRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*Course, error) {
	var course Course
	err := r.coursesCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&course)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &course, nil
}

// FindByIDs fetches the given courses with a single query. Missing ids are
// simply absent from the result map.
func (r *CourseRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*Course, error) {
	courses := make(map[primitive.ObjectID]*Course, len(ids))
	if len(ids) == 0 {
		return courses, nil
	}
	cursor, err := r.coursesCollection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	var found []*Course
	if err := cursor.All(ctx, &found); err != nil {
		return nil, err
	}
	for _, c := range found {
		courses[c.ID] = c
	}
	return courses, nil
}

// FindFacultiesByIDs fetches the given faculties with a single query.
func (r *CourseRepository) FindFacultiesByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*Faculty, error) {
	faculties := make(map[primitive.ObjectID]*Faculty, len(ids))
	if len(ids) == 0 {
		return faculties, nil
	}
	cursor, err := r.facultiesCollection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	var found []*Faculty
	if err := cursor.All(ctx, &found); err != nil {
		return nil, err
	}
	for _, f := range found {
		faculties[f.ID] = f
	}
	return faculties, nil
}
