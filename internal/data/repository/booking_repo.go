package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"heavenstay/internal/data/entity"
	"heavenstay/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByGuestID(ctx context.Context, guestID uuid.UUID, status entity.BookingStatus, limit, offset int) ([]*entity.Booking, error)
	CountByGuestID(ctx context.Context, guestID uuid.UUID, status entity.BookingStatus) (int64, error)
	FindByHotelierID(ctx context.Context, hotelierID uuid.UUID, status entity.BookingStatus, limit, offset int) ([]*entity.Booking, error)
	CountByHotelierID(ctx context.Context, hotelierID uuid.UUID, status entity.BookingStatus) (int64, error)

	// Business queries
	// CountOverlapping counts active bookings of the room whose stay intersects [checkIn, checkOut).
	CountOverlapping(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (int, error)
	// TransitionStatus moves the booking from one status to another and fails
	// with ErrStaleState when the stored status is no longer from.
	TransitionStatus(ctx context.Context, id uuid.UUID, from, to entity.BookingStatus, paymentStatus entity.BookingPaymentStatus) error
}

type bookingRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewBookingRepository(db database.Querier, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `b.id, b.booking_code, b.guest_id, b.hotel_id, b.room_id, b.check_in, b.check_out,
	b.guests, b.nights, b.subtotal, b.tax, b.total, b.payment_method, b.payment_status, b.status,
	b.created_at, b.updated_at`

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.BookingCode,
		&booking.GuestID,
		&booking.HotelID,
		&booking.RoomID,
		&booking.CheckIn,
		&booking.CheckOut,
		&booking.Guests,
		&booking.Nights,
		&booking.Subtotal,
		&booking.Tax,
		&booking.Total,
		&booking.PaymentMethod,
		&booking.PaymentStatus,
		&booking.Status,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, booking_code, guest_id, hotel_id, room_id, check_in, check_out,
		                      guests, nights, subtotal, tax, total, payment_method, payment_status, status,
		                      created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.BookingCode,
		booking.GuestID,
		booking.HotelID,
		booking.RoomID,
		booking.CheckIn,
		booking.CheckOut,
		booking.Guests,
		booking.Nights,
		booking.Subtotal,
		booking.Tax,
		booking.Total,
		booking.PaymentMethod,
		booking.PaymentStatus,
		booking.Status,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if isUniqueViolation(err) {
		r.log.Warn("Booking code collision", zap.String("booking_code", booking.BookingCode))
		return fmt.Errorf("create booking %s: %w", booking.BookingCode, ErrDuplicate)
	}
	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("booking_code", booking.BookingCode),
			zap.String("guest_id", booking.GuestID.String()),
		)
		return fmt.Errorf("create booking %s: %w", booking.BookingCode, err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings b WHERE b.id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id, err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByGuestID(ctx context.Context, guestID uuid.UUID, status entity.BookingStatus, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings b
		WHERE b.guest_id = $1
		  AND ($2::text = '' OR b.status = $2::text)
		ORDER BY b.created_at DESC
		LIMIT $3 OFFSET $4
	`

	rows, err := r.db.Query(ctx, query, guestID, string(status), limit, offset)
	if err != nil {
		r.log.Error("Failed to find bookings by guest ID",
			zap.Error(err),
			zap.String("guest_id", guestID.String()),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find bookings by guest ID %s: %w", guestID, err)
	}

	return r.collect(rows)
}

func (r *bookingRepository) CountByGuestID(ctx context.Context, guestID uuid.UUID, status entity.BookingStatus) (int64, error) {
	query := `
		SELECT COUNT(*) FROM bookings b
		WHERE b.guest_id = $1
		  AND ($2::text = '' OR b.status = $2::text)
	`

	var count int64
	if err := r.db.QueryRow(ctx, query, guestID, string(status)).Scan(&count); err != nil {
		r.log.Error("Failed to count bookings by guest ID", zap.Error(err), zap.String("guest_id", guestID.String()))
		return 0, fmt.Errorf("count bookings by guest ID %s: %w", guestID, err)
	}

	return count, nil
}

func (r *bookingRepository) FindByHotelierID(ctx context.Context, hotelierID uuid.UUID, status entity.BookingStatus, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings b
		JOIN hotels h ON h.id = b.hotel_id
		WHERE h.hotelier_id = $1
		  AND ($2::text = '' OR b.status = $2::text)
		ORDER BY b.check_in DESC, b.created_at DESC
		LIMIT $3 OFFSET $4
	`

	rows, err := r.db.Query(ctx, query, hotelierID, string(status), limit, offset)
	if err != nil {
		r.log.Error("Failed to find bookings by hotelier ID",
			zap.Error(err),
			zap.String("hotelier_id", hotelierID.String()),
		)
		return nil, fmt.Errorf("find bookings by hotelier ID %s: %w", hotelierID, err)
	}

	return r.collect(rows)
}

func (r *bookingRepository) CountByHotelierID(ctx context.Context, hotelierID uuid.UUID, status entity.BookingStatus) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM bookings b
		JOIN hotels h ON h.id = b.hotel_id
		WHERE h.hotelier_id = $1
		  AND ($2::text = '' OR b.status = $2::text)
	`

	var count int64
	if err := r.db.QueryRow(ctx, query, hotelierID, string(status)).Scan(&count); err != nil {
		r.log.Error("Failed to count bookings by hotelier ID", zap.Error(err), zap.String("hotelier_id", hotelierID.String()))
		return 0, fmt.Errorf("count bookings by hotelier ID %s: %w", hotelierID, err)
	}

	return count, nil
}

func (r *bookingRepository) CountOverlapping(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (int, error) {
	// same predicate as usecase.DateRange.Overlaps, half-open [check_in, check_out)
	query := `
		SELECT COUNT(*)
		FROM bookings
		WHERE room_id = $1
		  AND status IN ('upcoming', 'checked-in')
		  AND check_in < $3
		  AND check_out > $2
	`

	var count int
	if err := r.db.QueryRow(ctx, query, roomID, checkIn, checkOut).Scan(&count); err != nil {
		r.log.Error("Failed to count overlapping bookings",
			zap.Error(err),
			zap.String("room_id", roomID.String()),
			zap.Time("check_in", checkIn),
			zap.Time("check_out", checkOut),
		)
		return 0, fmt.Errorf("count overlapping bookings for room %s: %w", roomID, err)
	}

	return count, nil
}

func (r *bookingRepository) TransitionStatus(ctx context.Context, id uuid.UUID, from, to entity.BookingStatus, paymentStatus entity.BookingPaymentStatus) error {
	query := `
		UPDATE bookings
		SET status = $3, payment_status = $4, updated_at = $5
		WHERE id = $1 AND status = $2
	`

	result, err := r.db.Exec(ctx, query, id, from, to, paymentStatus, time.Now())
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", id.String()),
			zap.String("from", string(from)),
			zap.String("to", string(to)),
		)
		return fmt.Errorf("update booking status %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s is no longer %s: %w", id, from, ErrStaleState)
	}

	return nil
}

func (r *bookingRepository) collect(rows pgx.Rows) ([]*entity.Booking, error) {
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, rows.Err()
}
