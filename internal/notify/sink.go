package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"heavenstay/internal/data/entity"
	"heavenstay/internal/data/repository"
	"heavenstay/pkg/utils"

	"github.com/go-redis/redis/v8"
)

// StoreSink persists notifications for the in-app inbox.
type StoreSink struct {
	repo repository.NotificationRepository
}

func NewStoreSink(repo repository.NotificationRepository) *StoreSink {
	return &StoreSink{repo: repo}
}

func (s *StoreSink) Name() string { return "store" }

func (s *StoreSink) Deliver(ctx context.Context, n *entity.Notification) error {
	return s.repo.Create(ctx, n)
}

// RedisSink publishes notifications so connected clients can be pushed in real time.
// Messages go to "<channel>:<user_id>".
type RedisSink struct {
	client  *redis.Client
	channel string
}

type message struct {
	ID        string                  `json:"id"`
	UserID    string                  `json:"user_id"`
	Title     string                  `json:"title"`
	Message   string                  `json:"message"`
	Type      entity.NotificationType `json:"type"`
	RelatedID *string                 `json:"related_id,omitempty"`
	CreatedAt string                  `json:"created_at"`
}

func NewRedisClient(config utils.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})
}

func NewRedisSink(client *redis.Client, channel string) *RedisSink {
	return &RedisSink{client: client, channel: channel}
}

func (s *RedisSink) Name() string { return "redis" }

func (s *RedisSink) Deliver(ctx context.Context, n *entity.Notification) error {
	msg := message{
		ID:        n.ID.String(),
		UserID:    n.UserID.String(),
		Title:     n.Title,
		Message:   n.Message,
		Type:      n.Type,
		CreatedAt: n.CreatedAt.UTC().Format(time.RFC3339),
	}
	if n.RelatedID != nil {
		related := n.RelatedID.String()
		msg.RelatedID = &related
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode notification: %w", err)
	}

	channel := fmt.Sprintf("%s:%s", s.channel, n.UserID)
	if err := s.client.Publish(ctx, channel, payload).Err(); err != nil {
		return fmt.Errorf("publish to %s: %w", channel, err)
	}
	return nil
}
