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

// wireUser configures profile and account moderation routes
func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED USER ROUTES ====================
	r.With(authenticate(repo, config, log)).Get("/api/user/profile", userHandler.GetProfile)

	// ==================== ADMIN ROUTES ====================
	r.With(
		authenticate(repo, config, log),
		middleware.RequireRole(log, entity.RoleAdmin),
	).Route("/api/admin/users", func(r chi.Router) {
		r.Get("/", userHandler.ListUsers)                   // GET /api/admin/users?role=hotelier&status=pending
		r.Put("/{id}/status", userHandler.UpdateUserStatus) // PUT /api/admin/users/{id}/status
	})
}
