package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type HotelStatus string

const (
	HotelStatusActive    HotelStatus = "active"
	HotelStatusInactive  HotelStatus = "inactive"
	HotelStatusSuspended HotelStatus = "suspended"
)

type Hotel struct {
	BaseNoDelete
	HotelierID  uuid.UUID       `db:"hotelier_id"`
	Name        string          `db:"name"`
	Description *string         `db:"description"`
	Address     string          `db:"address"`
	City        string          `db:"city"`
	Status      HotelStatus     `db:"status"`
	Rating      decimal.Decimal `db:"rating"` // 0.0-5.0, one decimal
	ReviewCount int             `db:"review_count"`
}
