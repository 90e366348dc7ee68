package jobs

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type JobRepository struct {
	collection *mongo.Collection
}

func NewJobRepository(db *mongo.Database) *JobRepository {
	return &JobRepository{collection: db.Collection("jobs")}
}

func (r *JobRepository) Create(ctx context.Context, job *Job) error {
	_, err := r.collection.InsertOne(ctx, job)
	return err
}

func (r *JobRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*Job, error) {
	var job Job
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&job)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepository) FindActive(ctx context.Context) ([]*Job, error) {
	opts := options.Find().SetSort(bson.D{{Key: "posted_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"is_active": true}, opts)
	if err != nil {
		return nil, err
	}
	var jobs []*Job
	if err := cursor.All(ctx, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *JobRepository) FindByCompany(ctx context.Context, companyID primitive.ObjectID) ([]*Job, error) {
	opts := options.Find().SetSort(bson.D{{Key: "posted_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"company_id": companyID}, opts)
	if err != nil {
		return nil, err
	}
	var jobs []*Job
	if err := cursor.All(ctx, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// FindByIDs fetches the given jobs with a single query. Missing ids are
// simply absent from the result map.
func (r *JobRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*Job, error) {
	found := make(map[primitive.ObjectID]*Job, len(ids))
	if len(ids) == 0 {
		return found, nil
	}
	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	var jobList []*Job
	if err := cursor.All(ctx, &jobList); err != nil {
		return nil, err
	}
	for _, job := range jobList {
		found[job.ID] = job
	}
	return found, nil
}

// Update applies a partial field merge to the job document.
func (r *JobRepository) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	_, err := r.collection.UpdateByID(ctx, id, bson.M{"$set": fields})
	return err
}

// IncrementApplications bumps the denormalized applicant counter with a
// store-side atomic increment, so concurrent applicants never lose updates.
func (r *JobRepository) IncrementApplications(ctx context.Context, id primitive.ObjectID, delta int) error {
	_, err := r.collection.UpdateByID(ctx, id, bson.M{"$inc": bson.M{"applications_count": delta}})
	return err
}
