package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RoomType string

const (
	RoomTypeStandard     RoomType = "standard"
	RoomTypeDeluxe       RoomType = "deluxe"
	RoomTypeSuite        RoomType = "suite"
	RoomTypePresidential RoomType = "presidential"
)

type Room struct {
	BaseNoDelete
	HotelID     uuid.UUID       `db:"hotel_id"`
	RoomType    RoomType        `db:"room_type"`
	Description *string         `db:"description"`
	Price       decimal.Decimal `db:"price"` // per night
	Capacity    int             `db:"capacity"`
	TotalUnits  int             `db:"total_units"`
	IsAvailable bool            `db:"is_available"`
}
