package notification

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Temoho9984/CareerConnect-Backend/internal/common"
)

// listLimit caps how many notifications a single fetch returns.
const listLimit = 50

// NotificationRepository handles DB operations for notifications.
type NotificationRepository struct {
	collection *mongo.Collection
}

func NewNotificationRepository(db *mongo.Database) *NotificationRepository {
	return &NotificationRepository{collection: db.Collection("notifications")}
}

func (r *NotificationRepository) Create(ctx context.Context, n *Notification) error {
	_, err := r.collection.InsertOne(ctx, n)
	return err
}

// FindByUser returns the recipient's notifications, newest first.
func (r *NotificationRepository) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]*Notification, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(listLimit)
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	var notifications []*Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id primitive.ObjectID) error {
	update := bson.M{"$set": bson.M{"read": true, "read_at": time.Now()}}
	res, err := r.collection.UpdateByID(ctx, id, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return common.NewError(common.CodeNotFound, "notification not found", nil)
	}
	return nil
}

// MarkAllRead flips every unread notification of the recipient in one
// multi-document update, so the batch lands as a unit.
func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID primitive.ObjectID) error {
	update := bson.M{"$set": bson.M{"read": true, "read_at": time.Now()}}
	_, err := r.collection.UpdateMany(ctx, bson.M{"user_id": userID, "read": false}, update)
	return err
}

func (r *NotificationRepository) CountUnread(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"user_id": userID, "read": false})
}
