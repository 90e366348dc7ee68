package notification

import (
	"context"
	"testing"

	"github.com/Temoho9984/CareerConnect-Backend/internal/common"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeStore struct {
	created []*Notification
}

func (f *fakeStore) Create(ctx context.Context, n *Notification) error {
	f.created = append(f.created, n)
	return nil
}

func (f *fakeStore) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]*Notification, error) {
	var found []*Notification
	for _, n := range f.created {
		if n.UserID == userID {
			found = append(found, n)
		}
	}
	return found, nil
}

func (f *fakeStore) MarkRead(ctx context.Context, id primitive.ObjectID) error {
	for _, n := range f.created {
		if n.ID == id {
			n.Read = true
			return nil
		}
	}
	return common.NewError(common.CodeNotFound, "notification not found", nil)
}

func (f *fakeStore) MarkAllRead(ctx context.Context, userID primitive.ObjectID) error {
	for _, n := range f.created {
		if n.UserID == userID {
			n.Read = true
		}
	}
	return nil
}

func (f *fakeStore) CountUnread(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	var count int64
	for _, n := range f.created {
		if n.UserID == userID && !n.Read {
			count++
		}
	}
	return count, nil
}

func TestNotifyPersistsUnread(t *testing.T) {
	store := &fakeStore{}
	service := &NotificationService{store: store}
	userID := primitive.NewObjectID()

	err := service.Notify(context.Background(), userID, "Application Status Update",
		"Congratulations! You've been admitted to the program.", "info", "/student/applications")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.created) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(store.created))
	}

	n := store.created[0]
	if n.UserID != userID {
		t.Fatalf("notification addressed to wrong user")
	}
	if n.Read {
		t.Fatalf("new notifications must start unread")
	}
	if n.CreatedAt.IsZero() {
		t.Fatalf("expected createdAt to be set")
	}
}

func TestMarkReadUnknownNotification(t *testing.T) {
	store := &fakeStore{}
	service := &NotificationService{store: store}

	err := service.MarkRead(context.Background(), primitive.NewObjectID())
	if !common.Is(err, common.CodeNotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestUnreadCountTracksMarkAllRead(t *testing.T) {
	store := &fakeStore{}
	service := &NotificationService{store: store}
	ctx := context.Background()
	userID := primitive.NewObjectID()

	for i := 0; i < 3; i++ {
		if err := service.Notify(ctx, userID, "Title", "Message", "info", ""); err != nil {
			t.Fatalf("notify failed: %v", err)
		}
	}

	count, err := service.UnreadCount(ctx, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3 unread, got %d", count)
	}

	if err := service.MarkAllRead(ctx, userID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	count, err = service.UnreadCount(ctx, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected 0 unread after mark-all-read, got %d", count)
	}
}
