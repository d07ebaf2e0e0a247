package adaptor

import (
	"net/http"

	"heavenstay/internal/dto/request"
	"heavenstay/internal/usecase"
	"heavenstay/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With(zap.String("handler", "user")),
	}
}

// GetProfile handles GET /api/user/profile (protected)
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	profile, err := h.service.GetProfile(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get profile")
		return
	}

	utils.ResponseSuccess(w, "success", profile)
}

// ListUsers handles GET /api/admin/users (admin)
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	req := &request.ListUsersRequest{
		PaginatedRequest: paginationFromQuery(r),
		Role:             r.URL.Query().Get("role"),
		Status:           r.URL.Query().Get("status"),
	}

	users, err := h.service.GetAllUsers(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "list users")
		return
	}

	utils.ResponseSuccess(w, "success", users)
}

// UpdateUserStatus handles PUT /api/admin/users/{id}/status (admin)
func (h *UserHandler) UpdateUserStatus(w http.ResponseWriter, r *http.Request) {
	adminID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req request.UpdateUserStatusRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := h.service.UpdateUserStatus(r.Context(), adminID, chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update user status")
		return
	}

	utils.ResponseSuccess(w, "User status updated", user)
}
