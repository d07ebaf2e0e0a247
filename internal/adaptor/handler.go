package adaptor

import (
	"heavenstay/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth         *AuthHandler
	User         *UserHandler
	Hotel        *HotelHandler
	Room         *RoomHandler
	Booking      *BookingHandler
	Review       *ReviewHandler
	Notification *NotificationHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(service.Auth, log),
		User:         NewUserHandler(service.User, log),
		Hotel:        NewHotelHandler(service.Hotel, log),
		Room:         NewRoomHandler(service.Room, log),
		Booking:      NewBookingHandler(service.Booking, log),
		Review:       NewReviewHandler(service.Review, log),
		Notification: NewNotificationHandler(service.Notification, log),
	}
}
