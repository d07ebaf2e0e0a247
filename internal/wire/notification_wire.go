package wire

import (
	"heavenstay/internal/adaptor"
	"heavenstay/internal/data/repository"
	"heavenstay/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireNotification(
	r chi.Router,
	notificationHandler *adaptor.NotificationHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/notifications", func(r chi.Router) {
		r.Use(authenticate(repo, config, log))

		r.Get("/", notificationHandler.GetNotifications)
		r.Put("/read-all", notificationHandler.MarkAllRead)
		r.Put("/{id}/read", notificationHandler.MarkRead)
	})
}
