package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// Payment is the ledger row of a booking. AdminCommission + HotelierAmount == Amount.
type Payment struct {
	BaseNoDelete
	BookingID       uuid.UUID       `db:"booking_id"`
	GuestID         uuid.UUID       `db:"guest_id"`
	HotelierID      uuid.UUID       `db:"hotelier_id"`
	Amount          decimal.Decimal `db:"amount"`
	AdminCommission decimal.Decimal `db:"admin_commission"`
	HotelierAmount  decimal.Decimal `db:"hotelier_amount"`
	PaymentMethod   PaymentMethod   `db:"payment_method"`
	Status          PaymentStatus   `db:"status"`
}
