package middleware

import (
	"net/http"
	"slices"
	"strings"

	"heavenstay/internal/data/entity"
	"heavenstay/internal/data/repository"
	"heavenstay/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Authenticate validates the bearer JWT and loads the account, so suspended
// or deleted users lose access before their token expires.
func Authenticate(secret string, userRepo repository.UserRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			scheme, token, found := strings.Cut(authHeader, " ")
			if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			claims, err := utils.ParseToken(token, secret)
			if err != nil {
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			userID, _ := uuid.Parse(claims.UserID) // checked by ParseToken
			user, err := userRepo.FindByID(r.Context(), userID)
			if err != nil {
				logger.Error("Failed to load user for token", zap.Error(err), zap.String("user_id", claims.UserID))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}
			if user == nil {
				utils.ResponseUnauthorized(w, "Account no longer exists")
				return
			}
			if !user.CanSignIn() {
				logger.Warn("Blocked request from inactive account",
					zap.String("user_id", claims.UserID),
					zap.String("status", string(user.Status)))
				utils.ResponseForbidden(w, "Account is "+string(user.Status))
				return
			}

			// role comes from the database, not the token
			ctx := utils.SetUserContext(r.Context(), user.ID, string(user.Role))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole must run after Authenticate.
func RequireRole(logger *zap.Logger, roles ...entity.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := utils.PrincipalFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			if !slices.Contains(roles, entity.UserRole(principal.Role)) {
				logger.Warn("Role check failed",
					zap.String("user_id", principal.UserID.String()),
					zap.String("role", principal.Role),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Insufficient permissions")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
