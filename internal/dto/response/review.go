package response

import (
	"time"

	"heavenstay/internal/data/entity"
)

type ReviewResponse struct {
	ID        string    `json:"id"`
	GuestID   string    `json:"guest_id"`
	GuestName string    `json:"guest_name,omitempty"`
	HotelID   string    `json:"hotel_id"`
	BookingID string    `json:"booking_id"`
	Rating    int       `json:"rating"`
	Comment   *string   `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type HotelReviewStats struct {
	AverageRating string `json:"average_rating"`
	ReviewCount   int    `json:"review_count"`
}

type HotelReviewsResponse struct {
	Stats   HotelReviewStats                   `json:"stats"`
	Reviews *PaginatedResponse[ReviewResponse] `json:"reviews"`
}

// Helper converter
func ReviewToResponse(review *entity.Review) ReviewResponse {
	return ReviewResponse{
		ID:        review.ID.String(),
		GuestID:   review.GuestID.String(),
		GuestName: review.GuestName,
		HotelID:   review.HotelID.String(),
		BookingID: review.BookingID.String(),
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
		UpdatedAt: review.UpdatedAt,
	}
}
