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

type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Payment, error)

	// Business queries
	UpdateStatusByBookingID(ctx context.Context, bookingID uuid.UUID, status entity.PaymentStatus) error
}

type paymentRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewPaymentRepository(db database.Querier, log *zap.Logger) PaymentRepository {
	return &paymentRepository{
		db:  db,
		log: log.With(zap.String("repository", "payment")),
	}
}

func (r *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	query := `
		INSERT INTO payments (id, booking_id, guest_id, hotelier_id, amount, admin_commission, hotelier_amount,
		                      payment_method, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		payment.ID,
		payment.BookingID,
		payment.GuestID,
		payment.HotelierID,
		payment.Amount,
		payment.AdminCommission,
		payment.HotelierAmount,
		payment.PaymentMethod,
		payment.Status,
		payment.CreatedAt,
		payment.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create payment",
			zap.Error(err),
			zap.String("booking_id", payment.BookingID.String()),
			zap.String("amount", payment.Amount.String()),
		)
		return fmt.Errorf("create payment for booking %s: %w", payment.BookingID, err)
	}

	return nil
}

func (r *paymentRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Payment, error) {
	query := `
		SELECT id, booking_id, guest_id, hotelier_id, amount, admin_commission, hotelier_amount,
		       payment_method, status, created_at, updated_at
		FROM payments
		WHERE booking_id = $1
	`

	var payment entity.Payment
	err := r.db.QueryRow(ctx, query, bookingID).Scan(
		&payment.ID,
		&payment.BookingID,
		&payment.GuestID,
		&payment.HotelierID,
		&payment.Amount,
		&payment.AdminCommission,
		&payment.HotelierAmount,
		&payment.PaymentMethod,
		&payment.Status,
		&payment.CreatedAt,
		&payment.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find payment by booking ID",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return nil, fmt.Errorf("find payment by booking ID %s: %w", bookingID, err)
	}

	return &payment, nil
}

func (r *paymentRepository) UpdateStatusByBookingID(ctx context.Context, bookingID uuid.UUID, status entity.PaymentStatus) error {
	query := `UPDATE payments SET status = $2, updated_at = $3 WHERE booking_id = $1`

	result, err := r.db.Exec(ctx, query, bookingID, status, time.Now())
	if err != nil {
		r.log.Error("Failed to update payment status",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update payment status for booking %s: %w", bookingID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("payment for booking %s not found", bookingID)
	}

	return nil
}
