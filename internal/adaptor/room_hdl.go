package adaptor

import (
	"net/http"

	"heavenstay/internal/dto/request"
	"heavenstay/internal/usecase"
	"heavenstay/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type RoomHandler struct {
	service usecase.RoomService
	log     *zap.Logger
}

func NewRoomHandler(service usecase.RoomService, log *zap.Logger) *RoomHandler {
	return &RoomHandler{
		service: service,
		log:     log.With(zap.String("handler", "room")),
	}
}

// GetHotelRooms handles GET /api/hotels/{id}/rooms (public)
func (h *RoomHandler) GetHotelRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.service.GetHotelRooms(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "list rooms")
		return
	}

	utils.ResponseSuccess(w, "success", rooms)
}

// CreateRoom handles POST /api/hotelier/hotels/{id}/rooms (hotelier)
func (h *RoomHandler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req request.CreateRoomRequest
	if !decodeBody(w, r, &req) {
		return
	}

	room, err := h.service.CreateRoom(r.Context(), userID, chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create room")
		return
	}

	utils.ResponseCreated(w, "Room created", room)
}

// UpdateRoom handles PUT /api/hotelier/rooms/{id} (hotelier)
func (h *RoomHandler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req request.UpdateRoomRequest
	if !decodeBody(w, r, &req) {
		return
	}

	room, err := h.service.UpdateRoom(r.Context(), userID, chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update room")
		return
	}

	utils.ResponseSuccess(w, "Room updated", room)
}
