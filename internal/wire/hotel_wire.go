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

func wireHotel(
	r chi.Router,
	hotelHandler *adaptor.HotelHandler,
	roomHandler *adaptor.RoomHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/hotels", hotelHandler.GetHotels)     // ?city=&page=&per_page=
	r.Get("/api/hotels/{id}", hotelHandler.GetHotel) // hotel with its rooms
	r.Get("/api/hotels/{id}/rooms", roomHandler.GetHotelRooms)

	// ==================== HOTELIER ROUTES ====================
	// Grouped instead of mounted: /api/hotelier/bookings lives in wireBooking.
	r.Group(func(r chi.Router) {
		r.Use(authenticate(repo, config, log))
		r.Use(middleware.RequireRole(log, entity.RoleHotelier))

		r.Get("/api/hotelier/hotels", hotelHandler.GetMyHotels)
		r.Post("/api/hotelier/hotels", hotelHandler.CreateHotel)
		r.Put("/api/hotelier/hotels/{id}", hotelHandler.UpdateHotel)
		r.Delete("/api/hotelier/hotels/{id}", hotelHandler.DeactivateHotel)

		r.Post("/api/hotelier/hotels/{id}/rooms", roomHandler.CreateRoom)
		r.Put("/api/hotelier/rooms/{id}", roomHandler.UpdateRoom)
	})

	// ==================== ADMIN ROUTES ====================
	r.With(
		authenticate(repo, config, log),
		middleware.RequireRole(log, entity.RoleAdmin),
	).Put("/api/admin/hotels/{id}/status", hotelHandler.UpdateHotelStatus)
}
