package request

type CreateBookingRequest struct {
	HotelID       string `json:"hotel_id" validate:"required,uuid"`
	RoomID        string `json:"room_id" validate:"required,uuid"`
	CheckIn       string `json:"check_in" validate:"required,datetime=2006-01-02"`
	CheckOut      string `json:"check_out" validate:"required,datetime=2006-01-02"`
	Guests        int    `json:"guests" validate:"required,min=1"`
	PaymentMethod string `json:"payment_method" validate:"required,oneof=card esewa khalti pay_at_hotel"`
}

type AvailabilityRequest struct {
	CheckIn  string `json:"check_in" validate:"required,datetime=2006-01-02"`
	CheckOut string `json:"check_out" validate:"required,datetime=2006-01-02"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=checked-in completed cancelled"`
}

type ListBookingsRequest struct {
	PaginatedRequest
	Status string `json:"status" validate:"omitempty,oneof=upcoming checked-in completed cancelled"`
}
