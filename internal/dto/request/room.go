package request

import "github.com/shopspring/decimal"

type CreateRoomRequest struct {
	RoomType    string          `json:"room_type" validate:"required,oneof=standard deluxe suite presidential"`
	Description *string         `json:"description,omitempty" validate:"omitempty,max=2000"`
	Price       decimal.Decimal `json:"price"` // checked by the service, validator can't see decimals
	Capacity    int             `json:"capacity" validate:"required,min=1,max=20"`
	TotalUnits  int             `json:"total_units" validate:"required,min=1,max=1000"`
	IsAvailable *bool           `json:"is_available,omitempty"`
}

type UpdateRoomRequest struct {
	RoomType    string          `json:"room_type" validate:"required,oneof=standard deluxe suite presidential"`
	Description *string         `json:"description,omitempty" validate:"omitempty,max=2000"`
	Price       decimal.Decimal `json:"price"`
	Capacity    int             `json:"capacity" validate:"required,min=1,max=20"`
	TotalUnits  int             `json:"total_units" validate:"required,min=1,max=1000"`
	IsAvailable *bool           `json:"is_available,omitempty"`
}
