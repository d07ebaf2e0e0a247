package wire

import (
	"heavenstay/internal/adaptor"
	"heavenstay/internal/data/repository"
	"heavenstay/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReview(
	r chi.Router,
	reviewHandler *adaptor.ReviewHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/hotels/{id}/reviews", reviewHandler.GetHotelReviews)

	// ==================== PROTECTED ROUTES ====================
	r.Route("/api/reviews", func(r chi.Router) {
		r.Use(authenticate(repo, config, log))

		r.Post("/", reviewHandler.CreateReview)
		r.Put("/{id}", reviewHandler.UpdateReview)
		r.Delete("/{id}", reviewHandler.DeleteReview) // author or admin
	})
}
