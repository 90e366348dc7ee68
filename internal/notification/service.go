package notification

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store is the persistence surface the service needs. Implemented by
// NotificationRepository; faked in tests.
type Store interface {
	Create(ctx context.Context, n *Notification) error
	FindByUser(ctx context.Context, userID primitive.ObjectID) ([]*Notification, error)
	MarkRead(ctx context.Context, id primitive.ObjectID) error
	MarkAllRead(ctx context.Context, userID primitive.ObjectID) error
	CountUnread(ctx context.Context, userID primitive.ObjectID) (int64, error)
}

// NotificationService creates and serves in-app notifications. Workflow
// services call Notify as their best-effort effect sink.
type NotificationService struct {
	store Store
}

func NewNotificationService(repo *NotificationRepository) *NotificationService {
	return &NotificationService{store: repo}
}

// Notify persists a notification for the recipient. Callers decide whether
// a failure here is fatal; for workflow effects it never is.
func (s *NotificationService) Notify(ctx context.Context, userID primitive.ObjectID, title, message, notifType, link string) error {
	n := &Notification{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		Title:     title,
		Message:   message,
		Type:      notifType,
		Link:      link,
		Read:      false,
		CreatedAt: time.Now(),
	}
	return s.store.Create(ctx, n)
}

func (s *NotificationService) List(ctx context.Context, userID primitive.ObjectID) ([]*Notification, error) {
	return s.store.FindByUser(ctx, userID)
}

func (s *NotificationService) MarkRead(ctx context.Context, id primitive.ObjectID) error {
	return s.store.MarkRead(ctx, id)
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID primitive.ObjectID) error {
	return s.store.MarkAllRead(ctx, userID)
}

func (s *NotificationService) UnreadCount(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	return s.store.CountUnread(ctx, userID)
}
