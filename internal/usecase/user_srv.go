package usecase

import (
	"context"
	"fmt"

	"heavenstay/internal/data/entity"
	"heavenstay/internal/data/repository"
	"heavenstay/internal/dto/request"
	"heavenstay/internal/dto/response"
	"heavenstay/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	GetProfile(ctx context.Context, userID string) (*response.UserResponse, error)

	// Admin
	GetAllUsers(ctx context.Context, req *request.ListUsersRequest) (*response.PaginatedResponse[response.UserResponse], error)
	UpdateUserStatus(ctx context.Context, adminID, userID string, req *request.UpdateUserStatusRequest) (*response.UserResponse, error)
}

type userService struct {
	userRepo repository.UserRepository
	notifier Notifier
	log      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, notifier Notifier, log *zap.Logger) UserService {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &userService{
		userRepo: userRepo,
		notifier: notifier,
		log:      log.With(zap.String("service", "user")),
	}
}

func (us *userService) GetProfile(ctx context.Context, userID string) (*response.UserResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user ID", ErrUnauthorized)
	}

	user, err := us.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, notFound("user", id)
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (us *userService) GetAllUsers(ctx context.Context, req *request.ListUsersRequest) (*response.PaginatedResponse[response.UserResponse], error) {
	req.Normalize()
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	filter := repository.UserFilter{
		Role:   entity.UserRole(req.Role),
		Status: entity.UserStatus(req.Status),
	}

	users, err := us.userRepo.FindAll(ctx, filter, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	total, err := us.userRepo.CountAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	items := make([]response.UserResponse, 0, len(users))
	for _, user := range users {
		items = append(items, response.UserToResponse(user))
	}

	return response.NewPaginatedResponse(items, req.Page, req.PerPage, total), nil
}

// UpdateUserStatus drives the hotelier approval workflow and account suspension.
func (us *userService) UpdateUserStatus(ctx context.Context, adminID, userID string, req *request.UpdateUserStatusRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user ID %s", ErrValidation, userID)
	}
	if adminID == userID {
		return nil, fmt.Errorf("%w: admins cannot change their own status", ErrForbidden)
	}

	user, err := us.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, notFound("user", id)
	}

	status := entity.UserStatus(req.Status)
	if status == entity.UserStatusRejected && user.Role != entity.RoleHotelier {
		return nil, fmt.Errorf("%w: only hotelier applications can be rejected", ErrValidation)
	}
	if user.Role == entity.RoleAdmin {
		return nil, fmt.Errorf("%w: admin accounts cannot be changed here", ErrForbidden)
	}

	if err := us.userRepo.UpdateStatus(ctx, user.ID, status); err != nil {
		return nil, err
	}
	user.Status = status

	us.log.Info("User status changed",
		zap.String("user_id", user.ID.String()),
		zap.String("status", string(status)),
		zap.String("admin_id", adminID),
	)

	us.notifier.Notify(ctx, newNotification(user.ID, entity.NotificationAccountStatus,
		"Account status changed",
		fmt.Sprintf("Your account is now %s.", status),
		uuid.Nil))

	resp := response.UserToResponse(user)
	return &resp, nil
}
