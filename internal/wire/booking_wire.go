package wire

import (
	"heavenstay/internal/adaptor"
	"heavenstay/internal/data/entity"
	"heavenstay/internal/data/repository"
	"heavenstay/pkg/middleware"
	"heavenstay/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/rooms/{id}/availability?check_in=2025-01-10&check_out=2025-01-12
	r.Get("/api/rooms/{id}/availability", bookingHandler.CheckAvailability)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(authenticate(repo, config, log))

		// Only guests book rooms
		r.With(middleware.RequireRole(log, entity.RoleUser)).Post("/api/bookings", bookingHandler.CreateBooking)

		r.Get("/api/user/bookings", bookingHandler.GetUserBookings)
		r.Get("/api/bookings/{id}", bookingHandler.GetBooking)
		r.Put("/api/bookings/{id}/cancel", bookingHandler.CancelBooking)

		// ==================== HOTELIER ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(log, entity.RoleHotelier))

			r.Get("/api/hotelier/bookings", bookingHandler.GetHotelierBookings)
			r.Put("/api/bookings/{id}/status", bookingHandler.UpdateBookingStatus)
		})
	})
}
