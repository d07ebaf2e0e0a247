package usecase

import (
	"context"
	"fmt"
	"time"

	"heavenstay/internal/data/entity"
	"heavenstay/internal/data/repository"
	"heavenstay/internal/dto/request"
	"heavenstay/internal/dto/response"
	"heavenstay/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type HotelService interface {
	// Public
	GetHotels(ctx context.Context, req *request.ListHotelsRequest) (*response.PaginatedResponse[response.HotelResponse], error)
	GetHotel(ctx context.Context, hotelID string) (*response.HotelDetailResponse, error)

	// Hotelier
	CreateHotel(ctx context.Context, hotelierID string, req *request.CreateHotelRequest) (*response.HotelResponse, error)
	UpdateHotel(ctx context.Context, hotelierID, hotelID string, req *request.UpdateHotelRequest) (*response.HotelResponse, error)
	DeactivateHotel(ctx context.Context, hotelierID, hotelID string) error
	GetMyHotels(ctx context.Context, hotelierID string) ([]response.HotelResponse, error)

	// Admin
	UpdateHotelStatus(ctx context.Context, hotelID string, req *request.UpdateHotelStatusRequest) (*response.HotelResponse, error)
}

type hotelService struct {
	repo     *repository.Repository
	notifier Notifier
	log      *zap.Logger
}

func NewHotelService(repo *repository.Repository, notifier Notifier, log *zap.Logger) HotelService {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &hotelService{
		repo:     repo,
		notifier: notifier,
		log:      log.With(zap.String("service", "hotel")),
	}
}

func (s *hotelService) GetHotels(ctx context.Context, req *request.ListHotelsRequest) (*response.PaginatedResponse[response.HotelResponse], error) {
	req.Normalize()
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	hotels, err := s.repo.Hotel.FindActive(ctx, req.City, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("list hotels: %w", err)
	}

	total, err := s.repo.Hotel.CountActive(ctx, req.City)
	if err != nil {
		return nil, fmt.Errorf("count hotels: %w", err)
	}

	items := make([]response.HotelResponse, 0, len(hotels))
	for _, hotel := range hotels {
		items = append(items, response.HotelToResponse(hotel))
	}

	return response.NewPaginatedResponse(items, req.Page, req.PerPage, total), nil
}

func (s *hotelService) GetHotel(ctx context.Context, hotelID string) (*response.HotelDetailResponse, error) {
	hotel, err := s.findHotel(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	if hotel.Status != entity.HotelStatusActive {
		return nil, notFound("hotel", hotel.ID)
	}

	rooms, err := s.repo.Room.FindByHotelID(ctx, hotel.ID)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}

	detail := &response.HotelDetailResponse{
		HotelResponse: response.HotelToResponse(hotel),
		Rooms:         make([]response.RoomResponse, 0, len(rooms)),
	}
	for _, room := range rooms {
		detail.Rooms = append(detail.Rooms, response.RoomToResponse(room))
	}

	return detail, nil
}

func (s *hotelService) CreateHotel(ctx context.Context, hotelierID string, req *request.CreateHotelRequest) (*response.HotelResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create hotel validation failed", zap.Any("errors", errs))
		return nil, validationError(errs)
	}

	hotelierUUID, err := uuid.Parse(hotelierID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user ID", ErrUnauthorized)
	}

	hotel := &entity.Hotel{
		BaseNoDelete: entity.NewBaseNoDelete(time.Now()),
		HotelierID:   hotelierUUID,
		Name:         req.Name,
		Description:  req.Description,
		Address:      req.Address,
		City:         req.City,
		Status:       entity.HotelStatusActive,
		Rating:       decimal.Zero,
	}

	if err := s.repo.Hotel.Create(ctx, hotel); err != nil {
		return nil, err
	}

	s.log.Info("Hotel created",
		zap.String("hotel_id", hotel.ID.String()),
		zap.String("hotelier_id", hotelierUUID.String()),
	)

	resp := response.HotelToResponse(hotel)
	return &resp, nil
}

func (s *hotelService) UpdateHotel(ctx context.Context, hotelierID, hotelID string, req *request.UpdateHotelRequest) (*response.HotelResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	hotel, err := s.findOwnedHotel(ctx, hotelierID, hotelID)
	if err != nil {
		return nil, err
	}

	hotel.Name = req.Name
	hotel.Description = req.Description
	hotel.Address = req.Address
	hotel.City = req.City
	hotel.UpdatedAt = time.Now()

	if err := s.repo.Hotel.Update(ctx, hotel); err != nil {
		return nil, err
	}

	s.log.Info("Hotel updated", zap.String("hotel_id", hotel.ID.String()))

	resp := response.HotelToResponse(hotel)
	return &resp, nil
}

// DeactivateHotel hides the hotel from listings. Bookings are kept.
func (s *hotelService) DeactivateHotel(ctx context.Context, hotelierID, hotelID string) error {
	hotel, err := s.findOwnedHotel(ctx, hotelierID, hotelID)
	if err != nil {
		return err
	}
	if hotel.Status == entity.HotelStatusSuspended {
		return fmt.Errorf("%w: suspended hotels can only be changed by an admin", ErrConflict)
	}

	if err := s.repo.Hotel.UpdateStatus(ctx, hotel.ID, entity.HotelStatusInactive); err != nil {
		return err
	}

	s.log.Info("Hotel deactivated", zap.String("hotel_id", hotel.ID.String()))
	return nil
}

func (s *hotelService) GetMyHotels(ctx context.Context, hotelierID string) ([]response.HotelResponse, error) {
	hotelierUUID, err := uuid.Parse(hotelierID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user ID", ErrUnauthorized)
	}

	hotels, err := s.repo.Hotel.FindByHotelierID(ctx, hotelierUUID)
	if err != nil {
		return nil, fmt.Errorf("list hotels: %w", err)
	}

	items := make([]response.HotelResponse, 0, len(hotels))
	for _, hotel := range hotels {
		items = append(items, response.HotelToResponse(hotel))
	}
	return items, nil
}

func (s *hotelService) UpdateHotelStatus(ctx context.Context, hotelID string, req *request.UpdateHotelStatusRequest) (*response.HotelResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	hotel, err := s.findHotel(ctx, hotelID)
	if err != nil {
		return nil, err
	}

	status := entity.HotelStatus(req.Status)
	if err := s.repo.Hotel.UpdateStatus(ctx, hotel.ID, status); err != nil {
		return nil, err
	}
	hotel.Status = status

	s.log.Info("Hotel status changed by admin",
		zap.String("hotel_id", hotel.ID.String()),
		zap.String("status", string(status)),
	)

	s.notifier.Notify(ctx, newNotification(hotel.HotelierID, entity.NotificationHotelStatus,
		"Hotel status changed",
		fmt.Sprintf("%s is now %s.", hotel.Name, status),
		hotel.ID))

	resp := response.HotelToResponse(hotel)
	return &resp, nil
}

// ==================== HELPER METHODS ====================

func (s *hotelService) findHotel(ctx context.Context, hotelID string) (*entity.Hotel, error) {
	hotelUUID, err := uuid.Parse(hotelID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid hotel ID %s", ErrValidation, hotelID)
	}

	hotel, err := s.repo.Hotel.FindByID(ctx, hotelUUID)
	if err != nil {
		return nil, fmt.Errorf("find hotel: %w", err)
	}
	if hotel == nil {
		return nil, notFound("hotel", hotelUUID)
	}
	return hotel, nil
}

func (s *hotelService) findOwnedHotel(ctx context.Context, hotelierID, hotelID string) (*entity.Hotel, error) {
	hotelierUUID, err := uuid.Parse(hotelierID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user ID", ErrUnauthorized)
	}

	hotel, err := s.findHotel(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	if hotel.HotelierID != hotelierUUID {
		return nil, fmt.Errorf("%w: hotel belongs to another hotelier", ErrForbidden)
	}
	return hotel, nil
}
