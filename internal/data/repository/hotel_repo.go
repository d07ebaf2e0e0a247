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
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type HotelRepository interface {
	Create(ctx context.Context, hotel *entity.Hotel) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Hotel, error)
	// FindByIDForUpdate locks the hotel row until the surrounding transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Hotel, error)
	FindActive(ctx context.Context, city string, limit, offset int) ([]*entity.Hotel, error)
	CountActive(ctx context.Context, city string) (int64, error)
	FindByHotelierID(ctx context.Context, hotelierID uuid.UUID) ([]*entity.Hotel, error)
	Update(ctx context.Context, hotel *entity.Hotel) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.HotelStatus) error
	UpdateRating(ctx context.Context, id uuid.UUID, rating decimal.Decimal, reviewCount int) error
}

type hotelRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewHotelRepository(db database.Querier, log *zap.Logger) HotelRepository {
	return &hotelRepository{
		db:  db,
		log: log.With(zap.String("repository", "hotel")),
	}
}

const hotelColumns = `id, hotelier_id, name, description, address, city, status, rating, review_count, created_at, updated_at`

func scanHotel(row pgx.Row) (*entity.Hotel, error) {
	var hotel entity.Hotel
	err := row.Scan(
		&hotel.ID,
		&hotel.HotelierID,
		&hotel.Name,
		&hotel.Description,
		&hotel.Address,
		&hotel.City,
		&hotel.Status,
		&hotel.Rating,
		&hotel.ReviewCount,
		&hotel.CreatedAt,
		&hotel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &hotel, nil
}

func (r *hotelRepository) Create(ctx context.Context, hotel *entity.Hotel) error {
	query := `
		INSERT INTO hotels (id, hotelier_id, name, description, address, city, status, rating, review_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		hotel.ID,
		hotel.HotelierID,
		hotel.Name,
		hotel.Description,
		hotel.Address,
		hotel.City,
		hotel.Status,
		hotel.Rating,
		hotel.ReviewCount,
		hotel.CreatedAt,
		hotel.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create hotel",
			zap.Error(err),
			zap.String("name", hotel.Name),
			zap.String("hotelier_id", hotel.HotelierID.String()),
		)
		return fmt.Errorf("create hotel %s: %w", hotel.Name, err)
	}

	return nil
}

func (r *hotelRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Hotel, error) {
	return r.findOne(ctx, `SELECT `+hotelColumns+` FROM hotels WHERE id = $1`, id)
}

func (r *hotelRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Hotel, error) {
	return r.findOne(ctx, `SELECT `+hotelColumns+` FROM hotels WHERE id = $1 FOR UPDATE`, id)
}

func (r *hotelRepository) findOne(ctx context.Context, query string, id uuid.UUID) (*entity.Hotel, error) {
	hotel, err := scanHotel(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find hotel by ID", zap.Error(err), zap.String("hotel_id", id.String()))
		return nil, fmt.Errorf("find hotel by ID %s: %w", id, err)
	}

	return hotel, nil
}

func (r *hotelRepository) FindActive(ctx context.Context, city string, limit, offset int) ([]*entity.Hotel, error) {
	query := `
		SELECT ` + hotelColumns + `
		FROM hotels
		WHERE status = 'active'
		  AND ($1::text = '' OR LOWER(city) = LOWER($1::text))
		ORDER BY rating DESC, name ASC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, city, limit, offset)
	if err != nil {
		r.log.Error("Failed to list hotels", zap.Error(err), zap.String("city", city))
		return nil, fmt.Errorf("list hotels: %w", err)
	}

	return r.collect(rows)
}

func (r *hotelRepository) CountActive(ctx context.Context, city string) (int64, error) {
	query := `
		SELECT COUNT(*) FROM hotels
		WHERE status = 'active'
		  AND ($1::text = '' OR LOWER(city) = LOWER($1::text))
	`

	var count int64
	if err := r.db.QueryRow(ctx, query, city).Scan(&count); err != nil {
		r.log.Error("Failed to count hotels", zap.Error(err), zap.String("city", city))
		return 0, fmt.Errorf("count hotels: %w", err)
	}

	return count, nil
}

func (r *hotelRepository) FindByHotelierID(ctx context.Context, hotelierID uuid.UUID) ([]*entity.Hotel, error) {
	query := `SELECT ` + hotelColumns + ` FROM hotels WHERE hotelier_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, hotelierID)
	if err != nil {
		r.log.Error("Failed to list hotels by hotelier", zap.Error(err), zap.String("hotelier_id", hotelierID.String()))
		return nil, fmt.Errorf("list hotels of hotelier %s: %w", hotelierID, err)
	}

	return r.collect(rows)
}

func (r *hotelRepository) Update(ctx context.Context, hotel *entity.Hotel) error {
	query := `
		UPDATE hotels
		SET name = $2, description = $3, address = $4, city = $5, updated_at = $6
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		hotel.ID,
		hotel.Name,
		hotel.Description,
		hotel.Address,
		hotel.City,
		hotel.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update hotel", zap.Error(err), zap.String("hotel_id", hotel.ID.String()))
		return fmt.Errorf("update hotel %s: %w", hotel.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("hotel %s not found", hotel.ID)
	}

	return nil
}

func (r *hotelRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.HotelStatus) error {
	query := `UPDATE hotels SET status = $2, updated_at = $3 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, status, time.Now())
	if err != nil {
		r.log.Error("Failed to update hotel status",
			zap.Error(err),
			zap.String("hotel_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update hotel status %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("hotel %s not found", id)
	}

	return nil
}

func (r *hotelRepository) UpdateRating(ctx context.Context, id uuid.UUID, rating decimal.Decimal, reviewCount int) error {
	query := `UPDATE hotels SET rating = $2, review_count = $3, updated_at = $4 WHERE id = $1`

	if _, err := r.db.Exec(ctx, query, id, rating, reviewCount, time.Now()); err != nil {
		r.log.Error("Failed to update hotel rating",
			zap.Error(err),
			zap.String("hotel_id", id.String()),
			zap.String("rating", rating.String()),
		)
		return fmt.Errorf("update hotel rating %s: %w", id, err)
	}

	return nil
}

func (r *hotelRepository) collect(rows pgx.Rows) ([]*entity.Hotel, error) {
	defer rows.Close()

	var hotels []*entity.Hotel
	for rows.Next() {
		hotel, err := scanHotel(rows)
		if err != nil {
			r.log.Error("Failed to scan hotel row", zap.Error(err))
			return nil, fmt.Errorf("scan hotel: %w", err)
		}
		hotels = append(hotels, hotel)
	}

	return hotels, rows.Err()
}
