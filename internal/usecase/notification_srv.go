package usecase

import (
	"context"
	"fmt"

	"heavenstay/internal/data/repository"
	"heavenstay/internal/dto/request"
	"heavenstay/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type NotificationService interface {
	GetNotifications(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.NotificationListResponse, error)
	MarkRead(ctx context.Context, userID, notificationID string) error
	MarkAllRead(ctx context.Context, userID string) (int64, error)
}

type notificationService struct {
	notificationRepo repository.NotificationRepository
	log              *zap.Logger
}

func NewNotificationService(notificationRepo repository.NotificationRepository, log *zap.Logger) NotificationService {
	return &notificationService{
		notificationRepo: notificationRepo,
		log:              log.With(zap.String("service", "notification")),
	}
}

func (s *notificationService) GetNotifications(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.NotificationListResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user ID", ErrUnauthorized)
	}

	req.Normalize()

	notifications, err := s.notificationRepo.FindByUserID(ctx, userUUID, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}

	total, err := s.notificationRepo.CountByUserID(ctx, userUUID)
	if err != nil {
		return nil, fmt.Errorf("count notifications: %w", err)
	}

	unread, err := s.notificationRepo.CountUnread(ctx, userUUID)
	if err != nil {
		return nil, fmt.Errorf("count unread notifications: %w", err)
	}

	items := make([]response.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		items = append(items, response.NotificationToResponse(n))
	}

	return &response.NotificationListResponse{
		UnreadCount:   unread,
		Notifications: response.NewPaginatedResponse(items, req.Page, req.PerPage, total),
	}, nil
}

func (s *notificationService) MarkRead(ctx context.Context, userID, notificationID string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return fmt.Errorf("%w: invalid user ID", ErrUnauthorized)
	}
	id, err := uuid.Parse(notificationID)
	if err != nil {
		return fmt.Errorf("%w: invalid notification ID %s", ErrValidation, notificationID)
	}

	ok, err := s.notificationRepo.MarkRead(ctx, id, userUUID)
	if err != nil {
		return err
	}
	if !ok {
		return notFound("notification", id)
	}
	return nil
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid user ID", ErrUnauthorized)
	}

	return s.notificationRepo.MarkAllRead(ctx, userUUID)
}
