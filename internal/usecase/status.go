package usecase

import (
	"fmt"
	"slices"
	"time"

	"heavenstay/internal/data/entity"
)

// upcoming -> completed is allowed: hoteliers may close a stay without
// recording the check-in.
var bookingTransitions = map[entity.BookingStatus][]entity.BookingStatus{
	entity.BookingStatusUpcoming: {
		entity.BookingStatusCheckedIn,
		entity.BookingStatusCompleted,
		entity.BookingStatusCancelled,
	},
	entity.BookingStatusCheckedIn: {
		entity.BookingStatusCompleted,
		entity.BookingStatusCancelled,
	},
}

func CanTransition(from, to entity.BookingStatus) bool {
	return slices.Contains(bookingTransitions[from], to)
}

func checkTransition(from, to entity.BookingStatus) error {
	if !CanTransition(from, to) {
		return fmt.Errorf("%w: cannot move booking from %s to %s", ErrIllegalStatusTransition, from, to)
	}
	return nil
}

// CheckCancellationWindow allows a guest cancellation only while the start of
// the check-in day in loc is strictly more than window away from now.
func CheckCancellationWindow(checkIn, now time.Time, loc *time.Location, window time.Duration) error {
	if loc == nil {
		loc = time.UTC
	}

	start := time.Date(checkIn.Year(), checkIn.Month(), checkIn.Day(), 0, 0, 0, 0, loc)
	if start.Sub(now) <= window {
		return fmt.Errorf("%w: bookings can only be cancelled more than %s before check-in",
			ErrCancellationWindowExpired, window)
	}
	return nil
}
