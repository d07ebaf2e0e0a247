package usecase

import (
	"fmt"
	"time"

	"heavenstay/pkg/utils"
)

// DateRange is a half-open stay [CheckIn, CheckOut) of calendar dates.
type DateRange struct {
	CheckIn  time.Time
	CheckOut time.Time
}

func NewDateRange(checkIn, checkOut time.Time) (DateRange, error) {
	if !checkOut.After(checkIn) {
		return DateRange{}, fmt.Errorf("%w: check-out must be after check-in", ErrInvalidDateRange)
	}
	return DateRange{CheckIn: checkIn, CheckOut: checkOut}, nil
}

// ParseDateRange parses two YYYY-MM-DD dates.
func ParseDateRange(checkIn, checkOut string) (DateRange, error) {
	in, err := utils.ParseDate(checkIn)
	if err != nil {
		return DateRange{}, fmt.Errorf("%w: check_in: %v", ErrValidation, err)
	}
	out, err := utils.ParseDate(checkOut)
	if err != nil {
		return DateRange{}, fmt.Errorf("%w: check_out: %v", ErrValidation, err)
	}
	return NewDateRange(in, out)
}

// Overlaps is the only overlap predicate in the system; the SQL in
// BookingRepository.CountOverlapping is the same expression.
// Back-to-back stays (one checks out the day the other checks in) do not overlap.
func (r DateRange) Overlaps(other DateRange) bool {
	return r.CheckIn.Before(other.CheckOut) && r.CheckOut.After(other.CheckIn)
}

// RemainingUnits never goes below zero.
func RemainingUnits(totalUnits, overlapping int) int {
	if remaining := totalUnits - overlapping; remaining > 0 {
		return remaining
	}
	return 0
}
