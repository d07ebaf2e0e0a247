package entity

import (
	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationBookingCreated   NotificationType = "booking_created"
	NotificationBookingConfirmed NotificationType = "booking_confirmed"
	NotificationBookingStatus    NotificationType = "booking_status"
	NotificationBookingCancelled NotificationType = "booking_cancelled"
	NotificationReviewCreated    NotificationType = "review_created"
	NotificationAccountStatus    NotificationType = "account_status"
	NotificationHotelStatus      NotificationType = "hotel_status"
)

type Notification struct {
	BaseSimple
	UserID    uuid.UUID        `db:"user_id"`
	Title     string           `db:"title"`
	Message   string           `db:"message"`
	Type      NotificationType `db:"type"`
	IsRead    bool             `db:"is_read"`
	RelatedID *uuid.UUID       `db:"related_id"`
}
