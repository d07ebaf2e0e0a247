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

type RoomService interface {
	GetHotelRooms(ctx context.Context, hotelID string) ([]response.RoomResponse, error)
	CreateRoom(ctx context.Context, hotelierID, hotelID string, req *request.CreateRoomRequest) (*response.RoomResponse, error)
	UpdateRoom(ctx context.Context, hotelierID, roomID string, req *request.UpdateRoomRequest) (*response.RoomResponse, error)
}

type roomService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRoomService(repo *repository.Repository, log *zap.Logger) RoomService {
	return &roomService{
		repo: repo,
		log:  log.With(zap.String("service", "room")),
	}
}

func (s *roomService) GetHotelRooms(ctx context.Context, hotelID string) ([]response.RoomResponse, error) {
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

	rooms, err := s.repo.Room.FindByHotelID(ctx, hotelUUID)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}

	items := make([]response.RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		items = append(items, response.RoomToResponse(room))
	}
	return items, nil
}

func (s *roomService) CreateRoom(ctx context.Context, hotelierID, hotelID string, req *request.CreateRoomRequest) (*response.RoomResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create room validation failed", zap.Any("errors", errs))
		return nil, validationError(errs)
	}
	if err := validatePrice(req.Price); err != nil {
		return nil, err
	}

	hotelierUUID, err := uuid.Parse(hotelierID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user ID", ErrUnauthorized)
	}
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
	if hotel.HotelierID != hotelierUUID {
		return nil, fmt.Errorf("%w: hotel belongs to another hotelier", ErrForbidden)
	}

	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	room := &entity.Room{
		BaseNoDelete: entity.NewBaseNoDelete(time.Now()),
		HotelID:      hotel.ID,
		RoomType:     entity.RoomType(req.RoomType),
		Description:  req.Description,
		Price:        req.Price.Round(2),
		Capacity:     req.Capacity,
		TotalUnits:   req.TotalUnits,
		IsAvailable:  isAvailable,
	}

	if err := s.repo.Room.Create(ctx, room); err != nil {
		return nil, err
	}

	s.log.Info("Room created",
		zap.String("room_id", room.ID.String()),
		zap.String("hotel_id", hotel.ID.String()),
		zap.String("price", room.Price.String()),
	)

	resp := response.RoomToResponse(room)
	return &resp, nil
}

// UpdateRoom changes future pricing and inventory only; existing bookings
// keep the amounts they were created with.
func (s *roomService) UpdateRoom(ctx context.Context, hotelierID, roomID string, req *request.UpdateRoomRequest) (*response.RoomResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}
	if err := validatePrice(req.Price); err != nil {
		return nil, err
	}

	hotelierUUID, err := uuid.Parse(hotelierID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user ID", ErrUnauthorized)
	}
	roomUUID, err := uuid.Parse(roomID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid room ID %s", ErrValidation, roomID)
	}

	room, err := s.repo.Room.FindByID(ctx, roomUUID)
	if err != nil {
		return nil, fmt.Errorf("find room: %w", err)
	}
	if room == nil {
		return nil, notFound("room", roomUUID)
	}

	hotel, err := s.repo.Hotel.FindByID(ctx, room.HotelID)
	if err != nil {
		return nil, fmt.Errorf("find hotel: %w", err)
	}
	if hotel == nil || hotel.HotelierID != hotelierUUID {
		return nil, fmt.Errorf("%w: room belongs to another hotelier", ErrForbidden)
	}

	room.RoomType = entity.RoomType(req.RoomType)
	room.Description = req.Description
	room.Price = req.Price.Round(2)
	room.Capacity = req.Capacity
	room.TotalUnits = req.TotalUnits
	if req.IsAvailable != nil {
		room.IsAvailable = *req.IsAvailable
	}
	room.UpdatedAt = time.Now()

	if err := s.repo.Room.Update(ctx, room); err != nil {
		return nil, err
	}

	s.log.Info("Room updated", zap.String("room_id", room.ID.String()))

	resp := response.RoomToResponse(room)
	return &resp, nil
}

func validatePrice(price decimal.Decimal) error {
	if !price.IsPositive() {
		return fmt.Errorf("%w: price: must be greater than 0", ErrValidation)
	}
	if price.GreaterThanOrEqual(decimal.New(1, 10)) {
		return fmt.Errorf("%w: price: too large", ErrValidation)
	}
	return nil
}
