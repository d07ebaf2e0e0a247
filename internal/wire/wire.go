// internal/wire/wire.go
package wire

import (
	"net/http"

	"heavenstay/internal/adaptor"
	"heavenstay/internal/data/repository"
	"heavenstay/internal/usecase"
	"heavenstay/pkg/middleware"
	"heavenstay/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired router and services
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

// Wiring builds services, handlers and routes on top of the repositories
func Wiring(repo *repository.Repository, config *utils.Config, notifier usecase.Notifier, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, notifier, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router:  router,
		Service: service,
	}
}

// setupRouter configures the chi router
func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.App.AllowedOrigins))

	wireAuth(r, handler.Auth)
	wireUser(r, handler.User, repo, config, logger)
	wireHotel(r, handler.Hotel, handler.Room, repo, config, logger)
	wireBooking(r, handler.Booking, repo, config, logger)
	wireReview(r, handler.Review, repo, config, logger)
	wireNotification(r, handler.Notification, repo, config, logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}

// authenticate returns the JWT middleware bound to the user repository
func authenticate(repo *repository.Repository, config *utils.Config, log *zap.Logger) func(http.Handler) http.Handler {
	return middleware.Authenticate(config.JWT.Secret, repo.User, log)
}
