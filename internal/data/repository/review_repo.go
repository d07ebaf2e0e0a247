package repository

import (
	"context"
	"errors"
	"fmt"

	"heavenstay/internal/data/entity"
	"heavenstay/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Review, error)
	FindByHotelID(ctx context.Context, hotelID uuid.UUID, limit, offset int) ([]*entity.Review, error)
	CountByHotelID(ctx context.Context, hotelID uuid.UUID) (int64, error)
	Update(ctx context.Context, review *entity.Review) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Business queries
	GetHotelReviewStats(ctx context.Context, hotelID uuid.UUID) (decimal.Decimal, int, error) // unrounded average, count
}

type reviewRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewReviewRepository(db database.Querier, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

const reviewColumns = `rv.id, rv.guest_id, rv.hotel_id, rv.booking_id, rv.rating, rv.comment, rv.created_at, rv.updated_at`

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (id, guest_id, hotel_id, booking_id, rating, comment, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		review.ID,
		review.GuestID,
		review.HotelID,
		review.BookingID,
		review.Rating,
		review.Comment,
		review.CreatedAt,
		review.UpdatedAt,
	)

	if isUniqueViolation(err) {
		return fmt.Errorf("create review for booking %s: %w", review.BookingID, ErrDuplicate)
	}
	if err != nil {
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("booking_id", review.BookingID.String()),
			zap.String("hotel_id", review.HotelID.String()),
		)
		return fmt.Errorf("create review for booking %s: %w", review.BookingID, err)
	}

	return nil
}

func (r *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	return r.findOne(ctx, `SELECT `+reviewColumns+` FROM reviews rv WHERE rv.id = $1`, id)
}

func (r *reviewRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Review, error) {
	return r.findOne(ctx, `SELECT `+reviewColumns+` FROM reviews rv WHERE rv.booking_id = $1`, bookingID)
}

func (r *reviewRepository) findOne(ctx context.Context, query string, arg uuid.UUID) (*entity.Review, error) {
	var review entity.Review
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&review.ID,
		&review.GuestID,
		&review.HotelID,
		&review.BookingID,
		&review.Rating,
		&review.Comment,
		&review.CreatedAt,
		&review.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review", zap.Error(err), zap.String("id", arg.String()))
		return nil, fmt.Errorf("find review %s: %w", arg, err)
	}

	return &review, nil
}

func (r *reviewRepository) FindByHotelID(ctx context.Context, hotelID uuid.UUID, limit, offset int) ([]*entity.Review, error) {
	query := `
		SELECT ` + reviewColumns + `, u.name
		FROM reviews rv
		JOIN users u ON u.id = rv.guest_id
		WHERE rv.hotel_id = $1
		ORDER BY rv.created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, hotelID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find reviews by hotel ID",
			zap.Error(err),
			zap.String("hotel_id", hotelID.String()),
		)
		return nil, fmt.Errorf("find reviews by hotel ID %s: %w", hotelID, err)
	}
	defer rows.Close()

	var reviews []*entity.Review
	for rows.Next() {
		var review entity.Review
		err := rows.Scan(
			&review.ID,
			&review.GuestID,
			&review.HotelID,
			&review.BookingID,
			&review.Rating,
			&review.Comment,
			&review.CreatedAt,
			&review.UpdatedAt,
			&review.GuestName,
		)
		if err != nil {
			r.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("scan review: %w", err)
		}
		reviews = append(reviews, &review)
	}

	return reviews, rows.Err()
}

func (r *reviewRepository) CountByHotelID(ctx context.Context, hotelID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM reviews WHERE hotel_id = $1`, hotelID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count reviews", zap.Error(err), zap.String("hotel_id", hotelID.String()))
		return 0, fmt.Errorf("count reviews for hotel %s: %w", hotelID, err)
	}

	return count, nil
}

func (r *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	query := `UPDATE reviews SET rating = $2, comment = $3, updated_at = $4 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, review.ID, review.Rating, review.Comment, review.UpdatedAt)
	if err != nil {
		r.log.Error("Failed to update review", zap.Error(err), zap.String("review_id", review.ID.String()))
		return fmt.Errorf("update review %s: %w", review.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("review %s not found", review.ID)
	}

	return nil
}

func (r *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete review", zap.Error(err), zap.String("review_id", id.String()))
		return fmt.Errorf("delete review %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("review %s not found", id)
	}

	return nil
}

func (r *reviewRepository) GetHotelReviewStats(ctx context.Context, hotelID uuid.UUID) (decimal.Decimal, int, error) {
	query := `
		SELECT COALESCE(AVG(rating), 0)::numeric, COUNT(*)
		FROM reviews
		WHERE hotel_id = $1
	`

	var avg decimal.Decimal
	var count int
	if err := r.db.QueryRow(ctx, query, hotelID).Scan(&avg, &count); err != nil {
		r.log.Error("Failed to get hotel review stats",
			zap.Error(err),
			zap.String("hotel_id", hotelID.String()),
		)
		return decimal.Zero, 0, fmt.Errorf("get review stats for hotel %s: %w", hotelID, err)
	}

	return avg, count, nil
}
