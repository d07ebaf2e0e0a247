package response

import (
	"time"

	"heavenstay/internal/data/entity"
	"heavenstay/pkg/utils"
)

type BookingResponse struct {
	ID            string                      `json:"id"`
	BookingCode   string                      `json:"booking_code"`
	GuestID       string                      `json:"guest_id"`
	HotelID       string                      `json:"hotel_id"`
	RoomID        string                      `json:"room_id"`
	CheckIn       string                      `json:"check_in"`
	CheckOut      string                      `json:"check_out"`
	Guests        int                         `json:"guests"`
	Nights        int                         `json:"nights"`
	Subtotal      string                      `json:"subtotal"`
	Tax           string                      `json:"tax"`
	Total         string                      `json:"total"`
	PaymentMethod entity.PaymentMethod        `json:"payment_method"`
	PaymentStatus entity.BookingPaymentStatus `json:"payment_status"`
	Status        entity.BookingStatus        `json:"status"`
	Hotel         *HotelSummary               `json:"hotel,omitempty"`
	Room          *RoomSummary                `json:"room,omitempty"`
	Payment       *PaymentResponse            `json:"payment,omitempty"`
	CreatedAt     time.Time                   `json:"created_at"`
	UpdatedAt     time.Time                   `json:"updated_at"`
}

type PaymentResponse struct {
	ID              string               `json:"id"`
	Amount          string               `json:"amount"`
	AdminCommission string               `json:"admin_commission"`
	HotelierAmount  string               `json:"hotelier_amount"`
	PaymentMethod   entity.PaymentMethod `json:"payment_method"`
	Status          entity.PaymentStatus `json:"status"`
}

type AvailabilityResponse struct {
	RoomID         string `json:"room_id"`
	CheckIn        string `json:"check_in"`
	CheckOut       string `json:"check_out"`
	Available      bool   `json:"available"`
	AvailableUnits int    `json:"available_units"`
	TotalUnits     int    `json:"total_units"`
	Nights         int    `json:"nights"`
	Subtotal       string `json:"subtotal"`
	Tax            string `json:"tax"`
	Total          string `json:"total"`
}

// Helper converters
func BookingToResponse(booking *entity.Booking, hotel *entity.Hotel, room *entity.Room) BookingResponse {
	return BookingResponse{
		ID:            booking.ID.String(),
		BookingCode:   booking.BookingCode,
		GuestID:       booking.GuestID.String(),
		HotelID:       booking.HotelID.String(),
		RoomID:        booking.RoomID.String(),
		CheckIn:       utils.FormatDate(booking.CheckIn),
		CheckOut:      utils.FormatDate(booking.CheckOut),
		Guests:        booking.Guests,
		Nights:        booking.Nights,
		Subtotal:      booking.Subtotal.StringFixed(2),
		Tax:           booking.Tax.StringFixed(2),
		Total:         booking.Total.StringFixed(2),
		PaymentMethod: booking.PaymentMethod,
		PaymentStatus: booking.PaymentStatus,
		Status:        booking.Status,
		Hotel:         HotelToSummary(hotel),
		Room:          RoomToSummary(room),
		CreatedAt:     booking.CreatedAt,
		UpdatedAt:     booking.UpdatedAt,
	}
}

func PaymentToResponse(payment *entity.Payment) *PaymentResponse {
	if payment == nil {
		return nil
	}
	return &PaymentResponse{
		ID:              payment.ID.String(),
		Amount:          payment.Amount.StringFixed(2),
		AdminCommission: payment.AdminCommission.StringFixed(2),
		HotelierAmount:  payment.HotelierAmount.StringFixed(2),
		PaymentMethod:   payment.PaymentMethod,
		Status:          payment.Status,
	}
}
