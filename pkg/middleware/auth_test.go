package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"heavenstay/internal/data/entity"
	"heavenstay/internal/data/repository"
	"heavenstay/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const testSecret = "testsecret"

type stubUserRepo struct {
	repository.UserRepository
	users map[uuid.UUID]*entity.User
}

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	return r.users[id], nil
}

func (r *stubUserRepo) add(role entity.UserRole, status entity.UserStatus) *entity.User {
	user := &entity.User{Base: entity.NewBase(time.Now()), Role: role, Status: status}
	r.users[user.ID] = user
	return user
}

// signTestToken returns a signed JWT carrying the given role claim
func signTestToken(t *testing.T, userID uuid.UUID, role entity.UserRole) string {
	t.Helper()
	token, _, err := utils.GenerateToken(userID, string(role), utils.JWTConfig{Secret: testSecret, ExpiryHours: 1}, time.Now())
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func buildTestRouter(repo repository.UserRepository) *chi.Mux {
	log := zap.NewNop()
	r := chi.NewRouter()
	r.With(Authenticate(testSecret, repo, log), RequireRole(log, entity.RoleAdmin)).
		Get("/api/admin/users", func(w http.ResponseWriter, r *http.Request) {
			role, _ := utils.GetRoleFromContext(r.Context())
			w.Write([]byte(role))
		})
	return r
}

func TestAdminRoutesRBAC(t *testing.T) {
	repo := &stubUserRepo{users: make(map[uuid.UUID]*entity.User)}
	router := buildTestRouter(repo)

	admin := repo.add(entity.RoleAdmin, entity.UserStatusApproved)
	guest := repo.add(entity.RoleUser, entity.UserStatusApproved)
	suspended := repo.add(entity.RoleAdmin, entity.UserStatusSuspended)
	demoted := repo.add(entity.RoleUser, entity.UserStatusApproved)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"no token", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + signTestToken(t, admin.ID, entity.RoleAdmin), http.StatusUnauthorized},
		{"bad token", "Bearer not-a-jwt", http.StatusUnauthorized},
		{"unknown account", "Bearer " + signTestToken(t, uuid.New(), entity.RoleAdmin), http.StatusUnauthorized},
		{"guest role", "Bearer " + signTestToken(t, guest.ID, entity.RoleUser), http.StatusForbidden},
		{"suspended admin", "Bearer " + signTestToken(t, suspended.ID, entity.RoleAdmin), http.StatusForbidden},
		// the stored role wins over the claim
		{"stale admin claim", "Bearer " + signTestToken(t, demoted.ID, entity.RoleAdmin), http.StatusForbidden},
		{"admin", "Bearer " + signTestToken(t, admin.ID, entity.RoleAdmin), http.StatusOK},
		{"lowercase scheme", "bearer " + signTestToken(t, admin.ID, entity.RoleAdmin), http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.want {
				t.Fatalf("expected %d, got %d: %s", tt.want, rec.Code, rec.Body.String())
			}
			if tt.want == http.StatusOK && rec.Body.String() != string(entity.RoleAdmin) {
				t.Fatalf("expected admin role in context, got %q", rec.Body.String())
			}
		})
	}
}

func TestRecoverReturns500(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Recover(zap.NewNop()))
	r.Get("/boom", func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}
