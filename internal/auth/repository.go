package auth

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Temoho9984/CareerConnect-Backend/internal/config"
)

type UserRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	collection := db.Collection("users")
	config.UniqueEmailIndex(collection)
	return &UserRepository{collection: collection}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*User, error) {
	var user User
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// FindByIDs fetches the given users with a single query. Missing ids are
// simply absent from the result map.
func (r *UserRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*User, error) {
	users := make(map[primitive.ObjectID]*User, len(ids))
	if len(ids) == 0 {
		return users, nil
	}
	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	var found []*User
	if err := cursor.All(ctx, &found); err != nil {
		return nil, err
	}
	for _, u := range found {
		users[u.ID] = u
	}
	return users, nil
}

func (r *UserRepository) CreateUser(ctx context.Context, user *User) error {
	_, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errors.New("Email already registered")
		}
		return err
	}
	return nil
}

func (r *UserRepository) UpdateUser(ctx context.Context, user *User) error {
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": user.ID}, user)
	return err
}

// AddJobApplication records an application id on the student document.
func (r *UserRepository) AddJobApplication(ctx context.Context, studentID, applicationID primitive.ObjectID) error {
	_, err := r.collection.UpdateByID(ctx, studentID, bson.M{
		"$addToSet": bson.M{"job_applications": applicationID},
	})
	return err
}

// RemoveJobApplication drops an application id from the student document.
func (r *UserRepository) RemoveJobApplication(ctx context.Context, studentID, applicationID primitive.ObjectID) error {
	_, err := r.collection.UpdateByID(ctx, studentID, bson.M{
		"$pull": bson.M{"job_applications": applicationID},
	})
	return err
}
