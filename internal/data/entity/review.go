package entity

import (
	"github.com/google/uuid"
)

type Review struct {
	BaseNoDelete
	GuestID   uuid.UUID `db:"guest_id"`
	HotelID   uuid.UUID `db:"hotel_id"`
	BookingID uuid.UUID `db:"booking_id"`
	Rating    int       `db:"rating"` // 1-5
	Comment   *string   `db:"comment"`

	// GuestName is filled by listing queries only
	GuestName string `db:"-"`
}
