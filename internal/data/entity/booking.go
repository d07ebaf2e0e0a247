package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusUpcoming  BookingStatus = "upcoming"
	BookingStatusCheckedIn BookingStatus = "checked-in"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// IsActive reports whether the booking still holds a room unit.
func (s BookingStatus) IsActive() bool {
	return s == BookingStatusUpcoming || s == BookingStatusCheckedIn
}

type BookingPaymentStatus string

const (
	BookingPaymentPending  BookingPaymentStatus = "pending"
	BookingPaymentPaid     BookingPaymentStatus = "paid"
	BookingPaymentFailed   BookingPaymentStatus = "failed"
	BookingPaymentRefunded BookingPaymentStatus = "refunded"
)

type PaymentMethod string

const (
	PaymentMethodCard       PaymentMethod = "card"
	PaymentMethodEsewa      PaymentMethod = "esewa"
	PaymentMethodKhalti     PaymentMethod = "khalti"
	PaymentMethodPayAtHotel PaymentMethod = "pay_at_hotel"
)

type Booking struct {
	BaseNoDelete
	BookingCode   string               `db:"booking_code"`
	GuestID       uuid.UUID            `db:"guest_id"`
	HotelID       uuid.UUID            `db:"hotel_id"`
	RoomID        uuid.UUID            `db:"room_id"`
	CheckIn       time.Time            `db:"check_in"`  // date, midnight UTC
	CheckOut      time.Time            `db:"check_out"` // date, midnight UTC
	Guests        int                  `db:"guests"`
	Nights        int                  `db:"nights"`
	Subtotal      decimal.Decimal      `db:"subtotal"`
	Tax           decimal.Decimal      `db:"tax"`
	Total         decimal.Decimal      `db:"total"`
	PaymentMethod PaymentMethod        `db:"payment_method"`
	PaymentStatus BookingPaymentStatus `db:"payment_status"`
	Status        BookingStatus        `db:"status"`
}
