package repository

import (
	"context"
	"errors"
	"fmt"

	"heavenstay/internal/data/entity"
	"heavenstay/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type RoomRepository interface {
	Create(ctx context.Context, room *entity.Room) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error)
	// FindByIDForUpdate locks the room row until the surrounding transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Room, error)
	FindByHotelID(ctx context.Context, hotelID uuid.UUID) ([]*entity.Room, error)
	Update(ctx context.Context, room *entity.Room) error
}

type roomRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewRoomRepository(db database.Querier, log *zap.Logger) RoomRepository {
	return &roomRepository{
		db:  db,
		log: log.With(zap.String("repository", "room")),
	}
}

const roomColumns = `id, hotel_id, room_type, description, price, capacity, total_units, is_available, created_at, updated_at`

func scanRoom(row pgx.Row) (*entity.Room, error) {
	var room entity.Room
	err := row.Scan(
		&room.ID,
		&room.HotelID,
		&room.RoomType,
		&room.Description,
		&room.Price,
		&room.Capacity,
		&room.TotalUnits,
		&room.IsAvailable,
		&room.CreatedAt,
		&room.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) Create(ctx context.Context, room *entity.Room) error {
	query := `
		INSERT INTO rooms (id, hotel_id, room_type, description, price, capacity, total_units, is_available, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		room.ID,
		room.HotelID,
		room.RoomType,
		room.Description,
		room.Price,
		room.Capacity,
		room.TotalUnits,
		room.IsAvailable,
		room.CreatedAt,
		room.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create room",
			zap.Error(err),
			zap.String("hotel_id", room.HotelID.String()),
			zap.String("room_type", string(room.RoomType)),
		)
		return fmt.Errorf("create room for hotel %s: %w", room.HotelID, err)
	}

	return nil
}

func (r *roomRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	return r.findOne(ctx, `SELECT `+roomColumns+` FROM rooms WHERE id = $1`, id)
}

func (r *roomRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	return r.findOne(ctx, `SELECT `+roomColumns+` FROM rooms WHERE id = $1 FOR UPDATE`, id)
}

func (r *roomRepository) findOne(ctx context.Context, query string, id uuid.UUID) (*entity.Room, error) {
	room, err := scanRoom(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find room by ID", zap.Error(err), zap.String("room_id", id.String()))
		return nil, fmt.Errorf("find room by ID %s: %w", id, err)
	}

	return room, nil
}

func (r *roomRepository) FindByHotelID(ctx context.Context, hotelID uuid.UUID) ([]*entity.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE hotel_id = $1 ORDER BY price ASC`

	rows, err := r.db.Query(ctx, query, hotelID)
	if err != nil {
		r.log.Error("Failed to list rooms", zap.Error(err), zap.String("hotel_id", hotelID.String()))
		return nil, fmt.Errorf("list rooms of hotel %s: %w", hotelID, err)
	}
	defer rows.Close()

	var rooms []*entity.Room
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			r.log.Error("Failed to scan room row", zap.Error(err))
			return nil, fmt.Errorf("scan room: %w", err)
		}
		rooms = append(rooms, room)
	}

	return rooms, rows.Err()
}

func (r *roomRepository) Update(ctx context.Context, room *entity.Room) error {
	query := `
		UPDATE rooms
		SET room_type = $2, description = $3, price = $4, capacity = $5,
		    total_units = $6, is_available = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		room.ID,
		room.RoomType,
		room.Description,
		room.Price,
		room.Capacity,
		room.TotalUnits,
		room.IsAvailable,
		room.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update room", zap.Error(err), zap.String("room_id", room.ID.String()))
		return fmt.Errorf("update room %s: %w", room.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("room %s not found", room.ID)
	}

	return nil
}
