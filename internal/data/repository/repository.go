package repository

import (
	"context"
	"errors"

	"heavenstay/pkg/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

var (
	// ErrDuplicate is returned when an insert or update hits a unique constraint.
	ErrDuplicate = errors.New("duplicate record")
	// ErrStaleState is returned by conditional updates whose expected prior state no longer holds.
	ErrStaleState = errors.New("record changed concurrently")
)

// TxFunc runs fn with repositories bound to a single transaction.
type TxFunc func(ctx context.Context, fn func(tx *Repository) error) error

type Repository struct {
	User         UserRepository
	Hotel        HotelRepository
	Room         RoomRepository
	Booking      BookingRepository
	Payment      PaymentRepository
	Review       ReviewRepository
	Notification NotificationRepository

	// RunInTx is nil for repositories already inside a transaction.
	RunInTx TxFunc
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	repo := newRepository(db, log)
	repo.RunInTx = func(ctx context.Context, fn func(tx *Repository) error) error {
		return database.WithTx(ctx, db, func(tx pgx.Tx) error {
			return fn(newRepository(tx, log))
		})
	}
	return repo
}

func newRepository(db database.Querier, log *zap.Logger) *Repository {
	return &Repository{
		User:         NewUserRepository(db, log),
		Hotel:        NewHotelRepository(db, log),
		Room:         NewRoomRepository(db, log),
		Booking:      NewBookingRepository(db, log),
		Payment:      NewPaymentRepository(db, log),
		Review:       NewReviewRepository(db, log),
		Notification: NewNotificationRepository(db, log),
	}
}

// WithTx executes fn atomically. Inside an existing transaction fn joins it.
func (r *Repository) WithTx(ctx context.Context, fn func(tx *Repository) error) error {
	if r.RunInTx == nil {
		return fn(r)
	}
	return r.RunInTx(ctx, fn)
}

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
