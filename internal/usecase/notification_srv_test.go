package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"heavenstay/internal/data/entity"
	"heavenstay/internal/dto/request"

	"github.com/google/uuid"
)

func TestNotificationInbox(t *testing.T) {
	store := newMemStore()
	repo := store.repository()
	svc := NewNotificationService(repo.Notification, testLogger())
	ctx := context.Background()
	user := store.addUser(entity.RoleUser, entity.UserStatusApproved)
	other := store.addUser(entity.RoleUser, entity.UserStatusApproved)

	var ids []uuid.UUID
	for i := 0; i < 3; i++ {
		n := newNotification(user.ID, entity.NotificationBookingStatus, "Booking updated", "Your booking changed.", uuid.Nil)
		n.CreatedAt = n.CreatedAt.Add(time.Duration(i) * time.Second)
		if err := repo.Notification.Create(ctx, n); err != nil {
			t.Fatalf("create: %v", err)
		}
		ids = append(ids, n.ID)
	}

	list, err := svc.GetNotifications(ctx, user.ID.String(), &request.PaginatedRequest{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if list.UnreadCount != 3 || list.Notifications.Pagination.Total != 3 {
		t.Fatalf("expected 3 unread, got unread=%d total=%d", list.UnreadCount, list.Notifications.Pagination.Total)
	}

	if err := svc.MarkRead(ctx, other.ID.String(), ids[0].String()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for someone else's notification, got %v", err)
	}
	if err := svc.MarkRead(ctx, user.ID.String(), ids[0].String()); err != nil {
		t.Fatalf("mark read: %v", err)
	}

	updated, err := svc.MarkAllRead(ctx, user.ID.String())
	if err != nil {
		t.Fatalf("mark all read: %v", err)
	}
	if updated != 2 {
		t.Fatalf("expected 2 notifications marked, got %d", updated)
	}

	list, err = svc.GetNotifications(ctx, user.ID.String(), &request.PaginatedRequest{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if list.UnreadCount != 0 {
		t.Fatalf("expected inbox to be read, got %d unread", list.UnreadCount)
	}
}
