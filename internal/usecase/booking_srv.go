package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"heavenstay/internal/data/entity"
	"heavenstay/internal/data/repository"
	"heavenstay/internal/dto/request"
	"heavenstay/internal/dto/response"
	"heavenstay/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// booking code collisions are retried with a fresh code
const maxBookingCodeAttempts = 3

type BookingService interface {
	// Public
	CheckAvailability(ctx context.Context, roomID string, req *request.AvailabilityRequest) (*response.AvailabilityResponse, error)

	// Guest
	CreateBooking(ctx context.Context, guestID string, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetUserBookings(ctx context.Context, guestID string, req *request.ListBookingsRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	CancelBooking(ctx context.Context, guestID, bookingID string) (*response.BookingResponse, error)

	// Hotelier
	GetHotelierBookings(ctx context.Context, hotelierID string, req *request.ListBookingsRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	UpdateStatus(ctx context.Context, hotelierID, bookingID string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error)

	// Guest, owning hotelier or admin
	GetBookingByID(ctx context.Context, userID string, role entity.UserRole, bookingID string) (*response.BookingResponse, error)
}

type bookingService struct {
	repo     *repository.Repository
	policy   PricingPolicy
	config   utils.BookingConfig
	notifier Notifier
	log      *zap.Logger
	now      func() time.Time
}

func NewBookingService(repo *repository.Repository, config utils.BookingConfig, notifier Notifier, log *zap.Logger) BookingService {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &bookingService{
		repo: repo,
		policy: PricingPolicy{
			TaxRate:        config.TaxRate,
			CommissionRate: config.CommissionRate,
		},
		config:   config,
		notifier: notifier,
		log:      log.With(zap.String("service", "booking")),
		now:      time.Now,
	}
}

func (s *bookingService) CheckAvailability(ctx context.Context, roomID string, req *request.AvailabilityRequest) (*response.AvailabilityResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	roomUUID, err := uuid.Parse(roomID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid room ID %s", ErrValidation, roomID)
	}

	stay, err := ParseDateRange(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
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
	if hotel == nil {
		return nil, notFound("hotel", room.HotelID)
	}

	overlapping, err := s.repo.Booking.CountOverlapping(ctx, room.ID, stay.CheckIn, stay.CheckOut)
	if err != nil {
		return nil, fmt.Errorf("count overlapping bookings: %w", err)
	}

	quote, err := s.policy.Quote(room.Price, stay.CheckIn, stay.CheckOut)
	if err != nil {
		return nil, err
	}

	// same gates as lockBookableRoom
	remaining := RemainingUnits(room.TotalUnits, overlapping)
	if !room.IsAvailable || hotel.Status != entity.HotelStatusActive {
		remaining = 0
	}

	return &response.AvailabilityResponse{
		RoomID:         room.ID.String(),
		CheckIn:        utils.FormatDate(stay.CheckIn),
		CheckOut:       utils.FormatDate(stay.CheckOut),
		Available:      remaining > 0,
		AvailableUnits: remaining,
		TotalUnits:     room.TotalUnits,
		Nights:         quote.Nights,
		Subtotal:       quote.Subtotal.StringFixed(2),
		Tax:            quote.Tax.StringFixed(2),
		Total:          quote.Total.StringFixed(2),
	}, nil
}

func (s *bookingService) CreateBooking(ctx context.Context, guestID string, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, validationError(errs)
	}

	// Parse IDs
	guestUUID, err := uuid.Parse(guestID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user ID", ErrUnauthorized)
	}
	hotelID, err := uuid.Parse(req.HotelID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid hotel ID %s", ErrValidation, req.HotelID)
	}
	roomID, err := uuid.Parse(req.RoomID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid room ID %s", ErrValidation, req.RoomID)
	}

	stay, err := ParseDateRange(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}

	method := entity.PaymentMethod(req.PaymentMethod)

	var (
		booking *entity.Booking
		payment *entity.Payment
		hotel   *entity.Hotel
		room    *entity.Room
	)

	for attempt := 1; attempt <= maxBookingCodeAttempts; attempt++ {
		err = s.repo.WithTx(ctx, func(tx *repository.Repository) error {
			var txErr error
			hotel, room, txErr = s.lockBookableRoom(ctx, tx, hotelID, roomID, req.Guests)
			if txErr != nil {
				return txErr
			}

			// Room row is locked: concurrent bookings of this room wait here
			overlapping, txErr := tx.Booking.CountOverlapping(ctx, room.ID, stay.CheckIn, stay.CheckOut)
			if txErr != nil {
				return fmt.Errorf("count overlapping bookings: %w", txErr)
			}
			if RemainingUnits(room.TotalUnits, overlapping) == 0 {
				return fmt.Errorf("%w: room is not available for the selected dates", ErrConflict)
			}

			booking, payment, txErr = s.buildBooking(guestUUID, hotel, room, stay, req.Guests, method)
			if txErr != nil {
				return txErr
			}

			if txErr = tx.Booking.Create(ctx, booking); txErr != nil {
				return txErr
			}
			return tx.Payment.Create(ctx, payment)
		})

		if !errors.Is(err, repository.ErrDuplicate) {
			break
		}
		s.log.Warn("Retrying booking with a new code", zap.Int("attempt", attempt))
	}

	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("%w: could not allocate a booking code", ErrConflict)
		}
		return nil, err
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("booking_code", booking.BookingCode),
		zap.String("guest_id", guestUUID.String()),
		zap.String("room_id", room.ID.String()),
		zap.String("total", booking.Total.String()),
	)

	s.notifier.Notify(ctx, newNotification(hotel.HotelierID, entity.NotificationBookingCreated,
		"New booking",
		fmt.Sprintf("Booking %s for %s, %s to %s (%d guests).",
			booking.BookingCode, hotel.Name, utils.FormatDate(booking.CheckIn), utils.FormatDate(booking.CheckOut), booking.Guests),
		booking.ID))
	s.notifier.Notify(ctx, newNotification(guestUUID, entity.NotificationBookingConfirmed,
		"Booking confirmed",
		fmt.Sprintf("Your stay at %s is booked. Booking code %s, total %s.",
			hotel.Name, booking.BookingCode, booking.Total.StringFixed(2)),
		booking.ID))

	resp := response.BookingToResponse(booking, hotel, room)
	resp.Payment = response.PaymentToResponse(payment)
	return &resp, nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, guestID string, req *request.ListBookingsRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	guestUUID, err := uuid.Parse(guestID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user ID", ErrUnauthorized)
	}

	req.Normalize()
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}
	status := entity.BookingStatus(req.Status)

	bookings, err := s.repo.Booking.FindByGuestID(ctx, guestUUID, status, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	total, err := s.repo.Booking.CountByGuestID(ctx, guestUUID, status)
	if err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	items, err := s.toResponses(ctx, bookings)
	if err != nil {
		return nil, err
	}

	return response.NewPaginatedResponse(items, req.Page, req.PerPage, total), nil
}

func (s *bookingService) GetHotelierBookings(ctx context.Context, hotelierID string, req *request.ListBookingsRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	hotelierUUID, err := uuid.Parse(hotelierID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user ID", ErrUnauthorized)
	}

	req.Normalize()
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}
	status := entity.BookingStatus(req.Status)

	bookings, err := s.repo.Booking.FindByHotelierID(ctx, hotelierUUID, status, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	total, err := s.repo.Booking.CountByHotelierID(ctx, hotelierUUID, status)
	if err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	items, err := s.toResponses(ctx, bookings)
	if err != nil {
		return nil, err
	}

	return response.NewPaginatedResponse(items, req.Page, req.PerPage, total), nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, userID string, role entity.UserRole, bookingID string) (*response.BookingResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user ID", ErrUnauthorized)
	}
	bookingUUID, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid booking ID %s", ErrValidation, bookingID)
	}

	booking, err := s.repo.Booking.FindByID(ctx, bookingUUID)
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, notFound("booking", bookingUUID)
	}

	hotel, err := s.repo.Hotel.FindByID(ctx, booking.HotelID)
	if err != nil {
		return nil, fmt.Errorf("find hotel: %w", err)
	}

	allowed := role == entity.RoleAdmin ||
		booking.GuestID == userUUID ||
		(hotel != nil && hotel.HotelierID == userUUID)
	if !allowed {
		return nil, fmt.Errorf("%w: booking belongs to another account", ErrForbidden)
	}

	room, err := s.repo.Room.FindByID(ctx, booking.RoomID)
	if err != nil {
		return nil, fmt.Errorf("find room: %w", err)
	}
	payment, err := s.repo.Payment.FindByBookingID(ctx, booking.ID)
	if err != nil {
		return nil, fmt.Errorf("find payment: %w", err)
	}

	resp := response.BookingToResponse(booking, hotel, room)
	resp.Payment = response.PaymentToResponse(payment)
	return &resp, nil
}

// UpdateStatus is the hotelier side of the booking lifecycle.
func (s *bookingService) UpdateStatus(ctx context.Context, hotelierID, bookingID string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	hotelierUUID, err := uuid.Parse(hotelierID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user ID", ErrUnauthorized)
	}
	bookingUUID, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid booking ID %s", ErrValidation, bookingID)
	}

	target := entity.BookingStatus(req.Status)

	var (
		booking *entity.Booking
		hotel   *entity.Hotel
	)
	err = s.repo.WithTx(ctx, func(tx *repository.Repository) error {
		var txErr error
		booking, txErr = tx.Booking.FindByID(ctx, bookingUUID)
		if txErr != nil {
			return fmt.Errorf("find booking: %w", txErr)
		}
		if booking == nil {
			return notFound("booking", bookingUUID)
		}

		hotel, txErr = tx.Hotel.FindByID(ctx, booking.HotelID)
		if txErr != nil {
			return fmt.Errorf("find hotel: %w", txErr)
		}
		if hotel == nil || hotel.HotelierID != hotelierUUID {
			return fmt.Errorf("%w: booking is not for one of your hotels", ErrForbidden)
		}

		if txErr = checkTransition(booking.Status, target); txErr != nil {
			return txErr
		}

		return s.applyTransition(ctx, tx, booking, target)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Booking status updated",
		zap.String("booking_id", booking.ID.String()),
		zap.String("status", string(booking.Status)),
		zap.String("hotelier_id", hotelierUUID.String()),
	)

	s.notifier.Notify(ctx, newNotification(booking.GuestID, entity.NotificationBookingStatus,
		"Booking updated",
		fmt.Sprintf("Your booking %s at %s is now %s.", booking.BookingCode, hotel.Name, booking.Status),
		booking.ID))

	resp := response.BookingToResponse(booking, hotel, nil)
	return &resp, nil
}

// CancelBooking is the guest side: only the guest, only while the stay is
// active, only outside the cancellation window.
func (s *bookingService) CancelBooking(ctx context.Context, guestID, bookingID string) (*response.BookingResponse, error) {
	guestUUID, err := uuid.Parse(guestID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user ID", ErrUnauthorized)
	}
	bookingUUID, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid booking ID %s", ErrValidation, bookingID)
	}

	var (
		booking *entity.Booking
		hotel   *entity.Hotel
	)
	err = s.repo.WithTx(ctx, func(tx *repository.Repository) error {
		var txErr error
		booking, txErr = tx.Booking.FindByID(ctx, bookingUUID)
		if txErr != nil {
			return fmt.Errorf("find booking: %w", txErr)
		}
		if booking == nil {
			return notFound("booking", bookingUUID)
		}
		if booking.GuestID != guestUUID {
			return fmt.Errorf("%w: booking belongs to another guest", ErrForbidden)
		}

		if txErr = checkTransition(booking.Status, entity.BookingStatusCancelled); txErr != nil {
			return txErr
		}
		if txErr = CheckCancellationWindow(booking.CheckIn, s.now(), s.config.Location, s.config.CancellationWindow); txErr != nil {
			return txErr
		}

		hotel, txErr = tx.Hotel.FindByID(ctx, booking.HotelID)
		if txErr != nil {
			return fmt.Errorf("find hotel: %w", txErr)
		}

		return s.applyTransition(ctx, tx, booking, entity.BookingStatusCancelled)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Booking cancelled by guest",
		zap.String("booking_id", booking.ID.String()),
		zap.String("guest_id", guestUUID.String()),
	)

	if hotel != nil {
		s.notifier.Notify(ctx, newNotification(hotel.HotelierID, entity.NotificationBookingCancelled,
			"Booking cancelled",
			fmt.Sprintf("Booking %s (%s to %s) was cancelled by the guest.",
				booking.BookingCode, utils.FormatDate(booking.CheckIn), utils.FormatDate(booking.CheckOut)),
			booking.ID))
	}

	resp := response.BookingToResponse(booking, hotel, nil)
	return &resp, nil
}

// ==================== HELPER METHODS ====================

func (s *bookingService) lockBookableRoom(ctx context.Context, tx *repository.Repository, hotelID, roomID uuid.UUID, guests int) (*entity.Hotel, *entity.Room, error) {
	hotel, err := tx.Hotel.FindByID(ctx, hotelID)
	if err != nil {
		return nil, nil, fmt.Errorf("find hotel: %w", err)
	}
	if hotel == nil {
		return nil, nil, notFound("hotel", hotelID)
	}
	if hotel.Status != entity.HotelStatusActive {
		return nil, nil, fmt.Errorf("%w: hotel is not accepting bookings", ErrConflict)
	}

	room, err := tx.Room.FindByIDForUpdate(ctx, roomID)
	if err != nil {
		return nil, nil, fmt.Errorf("lock room: %w", err)
	}
	if room == nil || room.HotelID != hotel.ID {
		return nil, nil, notFound("room", roomID)
	}
	if !room.IsAvailable {
		return nil, nil, fmt.Errorf("%w: room is not open for booking", ErrConflict)
	}
	if guests > room.Capacity {
		return nil, nil, fmt.Errorf("%w: room sleeps at most %d guests", ErrValidation, room.Capacity)
	}

	return hotel, room, nil
}

func (s *bookingService) buildBooking(guestID uuid.UUID, hotel *entity.Hotel, room *entity.Room, stay DateRange, guests int, method entity.PaymentMethod) (*entity.Booking, *entity.Payment, error) {
	quote, err := s.policy.Quote(room.Price, stay.CheckIn, stay.CheckOut)
	if err != nil {
		return nil, nil, err
	}
	split := s.policy.Split(quote.Total)

	bookingPayment, paymentStatus := entity.BookingPaymentPaid, entity.PaymentStatusCompleted
	if method == entity.PaymentMethodPayAtHotel && s.config.PayAtHotelPending {
		bookingPayment, paymentStatus = entity.BookingPaymentPending, entity.PaymentStatusPending
	}

	now := s.now()
	booking := &entity.Booking{
		BaseNoDelete:  entity.NewBaseNoDelete(now),
		BookingCode:   utils.GenerateBookingCode(now),
		GuestID:       guestID,
		HotelID:       hotel.ID,
		RoomID:        room.ID,
		CheckIn:       stay.CheckIn,
		CheckOut:      stay.CheckOut,
		Guests:        guests,
		Nights:        quote.Nights,
		Subtotal:      quote.Subtotal,
		Tax:           quote.Tax,
		Total:         quote.Total,
		PaymentMethod: method,
		PaymentStatus: bookingPayment,
		Status:        entity.BookingStatusUpcoming,
	}

	payment := &entity.Payment{
		BaseNoDelete:    entity.NewBaseNoDelete(now),
		BookingID:       booking.ID,
		GuestID:         guestID,
		HotelierID:      hotel.HotelierID,
		Amount:          quote.Total,
		AdminCommission: split.Commission,
		HotelierAmount:  split.HotelierAmount,
		PaymentMethod:   method,
		Status:          paymentStatus,
	}

	return booking, payment, nil
}

// applyTransition writes the new status and keeps the payment in step:
// cancellation refunds, check-in or completion settles a pending payment.
func (s *bookingService) applyTransition(ctx context.Context, tx *repository.Repository, booking *entity.Booking, target entity.BookingStatus) error {
	paymentStatus := booking.PaymentStatus
	var ledgerStatus entity.PaymentStatus

	switch {
	case target == entity.BookingStatusCancelled:
		paymentStatus, ledgerStatus = entity.BookingPaymentRefunded, entity.PaymentStatusRefunded
	case booking.PaymentStatus == entity.BookingPaymentPending:
		paymentStatus, ledgerStatus = entity.BookingPaymentPaid, entity.PaymentStatusCompleted
	}

	err := tx.Booking.TransitionStatus(ctx, booking.ID, booking.Status, target, paymentStatus)
	if errors.Is(err, repository.ErrStaleState) {
		return fmt.Errorf("%w: booking was modified by another request", ErrConflict)
	}
	if err != nil {
		return err
	}

	if ledgerStatus != "" {
		if err := tx.Payment.UpdateStatusByBookingID(ctx, booking.ID, ledgerStatus); err != nil {
			return err
		}
	}

	booking.Status = target
	booking.PaymentStatus = paymentStatus
	booking.UpdatedAt = s.now()
	return nil
}

func (s *bookingService) toResponses(ctx context.Context, bookings []*entity.Booking) ([]response.BookingResponse, error) {
	hotels := make(map[uuid.UUID]*entity.Hotel)
	rooms := make(map[uuid.UUID]*entity.Room)

	items := make([]response.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		hotel, ok := hotels[booking.HotelID]
		if !ok {
			var err error
			if hotel, err = s.repo.Hotel.FindByID(ctx, booking.HotelID); err != nil {
				return nil, fmt.Errorf("find hotel: %w", err)
			}
			hotels[booking.HotelID] = hotel
		}

		room, ok := rooms[booking.RoomID]
		if !ok {
			var err error
			if room, err = s.repo.Room.FindByID(ctx, booking.RoomID); err != nil {
				return nil, fmt.Errorf("find room: %w", err)
			}
			rooms[booking.RoomID] = room
		}

		items = append(items, response.BookingToResponse(booking, hotel, room))
	}

	return items, nil
}
