package usecase

import (
	"context"
	"errors"
	"testing"

	"heavenstay/internal/data/entity"
	"heavenstay/internal/data/repository"
	"heavenstay/internal/dto/request"
	"heavenstay/pkg/utils"
)

func testConfig() *utils.Config {
	return &utils.Config{
		JWT:     utils.JWTConfig{Secret: "test-secret", ExpiryHours: 1},
		Admin:   utils.AdminConfig{Email: "Admin@Example.com", Password: "admin-password"},
		Booking: testBookingConfig(),
	}
}

func TestRegisterGuestSignsIn(t *testing.T) {
	store := newMemStore()
	svc := NewAuthService(store.repository(), testConfig(), testLogger())

	resp, err := svc.Register(context.Background(), &request.RegisterRequest{
		Name:     "Sita Sharma",
		Email:    " Sita@Example.com ",
		Password: "correct-horse",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Token == "" || resp.ExpiresAt == nil {
		t.Fatal("expected a token for a guest account")
	}
	if resp.User.Email != "sita@example.com" || resp.User.Role != entity.RoleUser {
		t.Fatalf("unexpected user: %+v", resp.User)
	}

	claims, err := utils.ParseToken(resp.Token, "test-secret")
	if err != nil {
		t.Fatalf("token does not parse: %v", err)
	}
	if claims.UserID != resp.User.ID || claims.Role != string(entity.RoleUser) {
		t.Fatalf("unexpected claims: %+v", claims)
	}

	_, err = svc.Register(context.Background(), &request.RegisterRequest{
		Name:     "Someone Else",
		Email:    "sita@example.com",
		Password: "another-pass",
	})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict for duplicate email, got %v", err)
	}
}

func TestHotelierWaitsForApproval(t *testing.T) {
	store := newMemStore()
	repo := store.repository()
	config := testConfig()
	auth := NewAuthService(repo, config, testLogger())
	notifier := &recordingNotifier{}
	users := NewUserService(repo.User, notifier, testLogger())
	ctx := context.Background()

	registered, err := auth.Register(ctx, &request.RegisterRequest{
		Name:     "Ram Thapa",
		Email:    "ram@example.com",
		Password: "hotelier-pass",
		Role:     "hotelier",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if registered.Token != "" || registered.User.Status != entity.UserStatusPending {
		t.Fatalf("expected pending hotelier without token, got %+v", registered)
	}

	login := &request.LoginRequest{Email: "ram@example.com", Password: "hotelier-pass"}
	if _, err := auth.Login(ctx, login); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden before approval, got %v", err)
	}

	if err := auth.SeedAdmin(ctx); err != nil {
		t.Fatalf("seed admin: %v", err)
	}
	admin, _ := repo.User.FindByEmail(ctx, "admin@example.com")
	if admin == nil || admin.Role != entity.RoleAdmin {
		t.Fatalf("expected seeded admin, got %+v", admin)
	}

	approved, err := users.UpdateUserStatus(ctx, admin.ID.String(), registered.User.ID,
		&request.UpdateUserStatusRequest{Status: "approved"})
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if approved.Status != entity.UserStatusApproved {
		t.Fatalf("expected approved, got %s", approved.Status)
	}
	if len(notifier.sent) != 1 || notifier.sent[0].Type != entity.NotificationAccountStatus {
		t.Fatalf("expected one account status notification, got %d", len(notifier.sent))
	}

	if _, err := auth.Login(ctx, login); err != nil {
		t.Fatalf("login after approval: %v", err)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	store := newMemStore()
	svc := NewAuthService(store.repository(), testConfig(), testLogger())
	ctx := context.Background()

	if _, err := svc.Register(ctx, &request.RegisterRequest{
		Name: "Guest", Email: "guest@example.com", Password: "right-password",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	for _, req := range []*request.LoginRequest{
		{Email: "guest@example.com", Password: "wrong-password"},
		{Email: "nobody@example.com", Password: "right-password"},
	} {
		if _, err := svc.Login(ctx, req); !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("%s: expected ErrUnauthorized, got %v", req.Email, err)
		}
	}
}

func TestSeedAdminIsIdempotent(t *testing.T) {
	store := newMemStore()
	repo := store.repository()
	svc := NewAuthService(repo, testConfig(), testLogger())
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := svc.SeedAdmin(ctx); err != nil {
			t.Fatalf("seed %d: %v", i+1, err)
		}
	}

	count, _ := repo.User.CountAll(ctx, repository.UserFilter{Role: entity.RoleAdmin})
	if count != 1 {
		t.Fatalf("expected one admin, got %d", count)
	}
}

func TestUpdateUserStatusGuards(t *testing.T) {
	store := newMemStore()
	repo := store.repository()
	svc := NewUserService(repo.User, nil, testLogger())
	ctx := context.Background()

	admin := store.addUser(entity.RoleAdmin, entity.UserStatusApproved)
	guest := store.addUser(entity.RoleUser, entity.UserStatusApproved)
	otherAdmin := store.addUser(entity.RoleAdmin, entity.UserStatusApproved)

	_, err := svc.UpdateUserStatus(ctx, admin.ID.String(), admin.ID.String(), &request.UpdateUserStatusRequest{Status: "suspended"})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("self change: expected ErrForbidden, got %v", err)
	}

	_, err = svc.UpdateUserStatus(ctx, admin.ID.String(), otherAdmin.ID.String(), &request.UpdateUserStatusRequest{Status: "suspended"})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("other admin: expected ErrForbidden, got %v", err)
	}

	_, err = svc.UpdateUserStatus(ctx, admin.ID.String(), guest.ID.String(), &request.UpdateUserStatusRequest{Status: "rejected"})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("reject guest: expected ErrValidation, got %v", err)
	}

	suspended, err := svc.UpdateUserStatus(ctx, admin.ID.String(), guest.ID.String(), &request.UpdateUserStatusRequest{Status: "suspended"})
	if err != nil {
		t.Fatalf("suspend guest: %v", err)
	}
	if suspended.Status != entity.UserStatusSuspended {
		t.Fatalf("expected suspended, got %s", suspended.Status)
	}

	list, err := svc.GetAllUsers(ctx, &request.ListUsersRequest{Status: "suspended"})
	if err != nil {
		t.Fatalf("list users: %v", err)
	}
	if list.Pagination.Total != 1 || list.Data[0].ID != guest.ID.String() {
		t.Fatalf("expected only the suspended guest, got %+v", list.Data)
	}
}
