package usecase

import (
	"heavenstay/internal/data/repository"
	"heavenstay/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth         AuthService
	User         UserService
	Hotel        HotelService
	Room         RoomService
	Booking      BookingService
	Review       ReviewService
	Notification NotificationService
}

func NewService(repo *repository.Repository, config *utils.Config, notifier Notifier, log *zap.Logger) *Service {
	return &Service{
		Auth:         NewAuthService(repo, config, log),
		User:         NewUserService(repo.User, notifier, log),
		Hotel:        NewHotelService(repo, notifier, log),
		Room:         NewRoomService(repo, log),
		Booking:      NewBookingService(repo, config.Booking, notifier, log),
		Review:       NewReviewService(repo, notifier, log),
		Notification: NewNotificationService(repo.Notification, log),
	}
}
