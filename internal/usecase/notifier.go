package usecase

import (
	"context"
	"time"

	"heavenstay/internal/data/entity"

	"github.com/google/uuid"
)

// Notifier delivers in-app notifications after the triggering write has
// committed. Delivery is best-effort: Notify must not block and never fails
// the caller.
type Notifier interface {
	Notify(ctx context.Context, n *entity.Notification)
}

type NopNotifier struct{}

func (NopNotifier) Notify(context.Context, *entity.Notification) {}

func newNotification(userID uuid.UUID, kind entity.NotificationType, title, message string, relatedID uuid.UUID) *entity.Notification {
	n := &entity.Notification{
		BaseSimple: entity.NewBaseSimple(time.Now()),
		UserID:     userID,
		Title:      title,
		Message:    message,
		Type:       kind,
	}
	if relatedID != uuid.Nil {
		n.RelatedID = &relatedID
	}
	return n
}
