package response

import (
	"time"

	"heavenstay/internal/data/entity"
)

type HotelResponse struct {
	ID          string             `json:"id"`
	HotelierID  string             `json:"hotelier_id"`
	Name        string             `json:"name"`
	Description *string            `json:"description,omitempty"`
	Address     string             `json:"address"`
	City        string             `json:"city"`
	Status      entity.HotelStatus `json:"status"`
	Rating      string             `json:"rating"`
	ReviewCount int                `json:"review_count"`
	CreatedAt   time.Time          `json:"created_at"`
}

type HotelDetailResponse struct {
	HotelResponse
	Rooms []RoomResponse `json:"rooms"`
}

// HotelSummary is embedded in booking responses
type HotelSummary struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
}

type RoomResponse struct {
	ID          string          `json:"id"`
	HotelID     string          `json:"hotel_id"`
	RoomType    entity.RoomType `json:"room_type"`
	Description *string         `json:"description,omitempty"`
	Price       string          `json:"price"`
	Capacity    int             `json:"capacity"`
	TotalUnits  int             `json:"total_units"`
	IsAvailable bool            `json:"is_available"`
}

type RoomSummary struct {
	ID       string          `json:"id"`
	RoomType entity.RoomType `json:"room_type"`
	Price    string          `json:"price"`
}

// Helper converters
func HotelToResponse(hotel *entity.Hotel) HotelResponse {
	return HotelResponse{
		ID:          hotel.ID.String(),
		HotelierID:  hotel.HotelierID.String(),
		Name:        hotel.Name,
		Description: hotel.Description,
		Address:     hotel.Address,
		City:        hotel.City,
		Status:      hotel.Status,
		Rating:      hotel.Rating.StringFixed(1),
		ReviewCount: hotel.ReviewCount,
		CreatedAt:   hotel.CreatedAt,
	}
}

func HotelToSummary(hotel *entity.Hotel) *HotelSummary {
	if hotel == nil {
		return nil
	}
	return &HotelSummary{
		ID:      hotel.ID.String(),
		Name:    hotel.Name,
		Address: hotel.Address,
		City:    hotel.City,
	}
}

func RoomToResponse(room *entity.Room) RoomResponse {
	return RoomResponse{
		ID:          room.ID.String(),
		HotelID:     room.HotelID.String(),
		RoomType:    room.RoomType,
		Description: room.Description,
		Price:       room.Price.StringFixed(2),
		Capacity:    room.Capacity,
		TotalUnits:  room.TotalUnits,
		IsAvailable: room.IsAvailable,
	}
}

func RoomToSummary(room *entity.Room) *RoomSummary {
	if room == nil {
		return nil
	}
	return &RoomSummary{
		ID:       room.ID.String(),
		RoomType: room.RoomType,
		Price:    room.Price.StringFixed(2),
	}
}
