package adaptor

import (
	"net/http"

	"heavenstay/internal/dto/request"
	"heavenstay/internal/usecase"
	"heavenstay/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type HotelHandler struct {
	service usecase.HotelService
	log     *zap.Logger
}

func NewHotelHandler(service usecase.HotelService, log *zap.Logger) *HotelHandler {
	return &HotelHandler{
		service: service,
		log:     log.With(zap.String("handler", "hotel")),
	}
}

// GetHotels handles GET /api/hotels (public)
func (h *HotelHandler) GetHotels(w http.ResponseWriter, r *http.Request) {
	req := &request.ListHotelsRequest{
		PaginatedRequest: paginationFromQuery(r),
		City:             r.URL.Query().Get("city"),
	}

	hotels, err := h.service.GetHotels(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "list hotels")
		return
	}

	utils.ResponseSuccess(w, "success", hotels)
}

// GetHotel handles GET /api/hotels/{id} (public)
func (h *HotelHandler) GetHotel(w http.ResponseWriter, r *http.Request) {
	hotel, err := h.service.GetHotel(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get hotel")
		return
	}

	utils.ResponseSuccess(w, "success", hotel)
}

// CreateHotel handles POST /api/hotelier/hotels (hotelier)
func (h *HotelHandler) CreateHotel(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req request.CreateHotelRequest
	if !decodeBody(w, r, &req) {
		return
	}

	hotel, err := h.service.CreateHotel(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create hotel")
		return
	}

	utils.ResponseCreated(w, "Hotel created", hotel)
}

// GetMyHotels handles GET /api/hotelier/hotels (hotelier)
func (h *HotelHandler) GetMyHotels(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	hotels, err := h.service.GetMyHotels(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "list own hotels")
		return
	}

	utils.ResponseSuccess(w, "success", hotels)
}

// UpdateHotel handles PUT /api/hotelier/hotels/{id} (hotelier)
func (h *HotelHandler) UpdateHotel(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req request.UpdateHotelRequest
	if !decodeBody(w, r, &req) {
		return
	}

	hotel, err := h.service.UpdateHotel(r.Context(), userID, chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update hotel")
		return
	}

	utils.ResponseSuccess(w, "Hotel updated", hotel)
}

// DeactivateHotel handles DELETE /api/hotelier/hotels/{id} (hotelier)
func (h *HotelHandler) DeactivateHotel(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	if err := h.service.DeactivateHotel(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "deactivate hotel")
		return
	}

	utils.ResponseSuccess(w, "Hotel deactivated", nil)
}

// UpdateHotelStatus handles PUT /api/admin/hotels/{id}/status (admin)
func (h *HotelHandler) UpdateHotelStatus(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateHotelStatusRequest
	if !decodeBody(w, r, &req) {
		return
	}

	hotel, err := h.service.UpdateHotelStatus(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update hotel status")
		return
	}

	utils.ResponseSuccess(w, "Hotel status updated", hotel)
}
