package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"heavenstay/internal/data/entity"
	"heavenstay/internal/data/repository"
	"heavenstay/internal/dto/request"
	"heavenstay/internal/dto/response"
	"heavenstay/pkg/utils"

	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	// SeedAdmin creates the configured admin account if it does not exist yet.
	SeedAdmin(ctx context.Context) error
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(repo *repository.Repository, config *utils.Config, log *zap.Logger) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, validationError(errs)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	// 2. Email must be free
	existingUser, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existingUser != nil {
		return nil, fmt.Errorf("%w: email already registered", ErrConflict)
	}

	// 3. Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	// 4. Hoteliers wait for admin approval, guests are approved right away
	role, status := entity.RoleUser, entity.UserStatusApproved
	if req.Role == string(entity.RoleHotelier) {
		role, status = entity.RoleHotelier, entity.UserStatusPending
	}

	user := &entity.User{
		Base:         entity.NewBase(time.Now()),
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: hashedPassword,
		Phone:        req.Phone,
		Role:         role,
		Status:       status,
	}

	// 5. Save user
	if err := s.repo.User.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("%w: email already registered", ErrConflict)
		}
		return nil, err
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(user.Role)),
		zap.String("status", string(user.Status)),
	)

	// 6. Auto login unless approval is pending
	if !user.CanSignIn() {
		return &response.AuthResponse{User: response.UserToResponse(user)}, nil
	}
	return s.issueToken(user)
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, validationError(errs)
	}

	user, err := s.repo.User.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	if user == nil || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid login attempt", zap.String("email", req.Email))
		return nil, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}

	if !user.CanSignIn() {
		s.log.Warn("Login blocked by account status",
			zap.String("user_id", user.ID.String()),
			zap.String("status", string(user.Status)),
		)
		return nil, fmt.Errorf("%w: account is %s", ErrForbidden, user.Status)
	}

	s.log.Info("User logged in", zap.String("user_id", user.ID.String()))

	return s.issueToken(user)
}

func (s *authService) SeedAdmin(ctx context.Context) error {
	email := strings.ToLower(strings.TrimSpace(s.config.Admin.Email))
	if email == "" || s.config.Admin.Password == "" {
		return nil
	}

	existing, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("check admin: %w", err)
	}
	if existing != nil {
		return nil
	}

	hashedPassword, err := utils.HashPassword(s.config.Admin.Password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := &entity.User{
		Base:         entity.NewBase(time.Now()),
		Name:         "Administrator",
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         entity.RoleAdmin,
		Status:       entity.UserStatusApproved,
	}
	if err := s.repo.User.Create(ctx, admin); err != nil && !errors.Is(err, repository.ErrDuplicate) {
		return err
	}

	s.log.Info("Admin account seeded", zap.String("email", email))
	return nil
}

// ==================== HELPER METHODS ====================

func (s *authService) issueToken(user *entity.User) (*response.AuthResponse, error) {
	token, expiresAt, err := utils.GenerateToken(user.ID, string(user.Role), s.config.JWT, time.Now())
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, err
	}

	return &response.AuthResponse{
		Token:     token,
		ExpiresAt: &expiresAt,
		User:      response.UserToResponse(user),
	}, nil
}
