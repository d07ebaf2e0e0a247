package usecase

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const day = 24 * time.Hour

// minor units of the currency
const moneyPlaces = 2

type Quote struct {
	Nights   int
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

type Split struct {
	Commission     decimal.Decimal
	HotelierAmount decimal.Decimal
}

// PricingPolicy holds the platform rates. Amounts are rounded half away from
// zero to two places, and derived amounts are computed from rounded inputs so
// Total == Subtotal + Tax and Commission + HotelierAmount == Total hold exactly.
type PricingPolicy struct {
	TaxRate        decimal.Decimal
	CommissionRate decimal.Decimal
}

// NightsBetween is the ceiling of the stay length in whole days.
func NightsBetween(checkIn, checkOut time.Time) (int, error) {
	if !checkOut.After(checkIn) {
		return 0, fmt.Errorf("%w: check-out %s must be after check-in %s",
			ErrInvalidDateRange, checkOut.Format(time.DateOnly), checkIn.Format(time.DateOnly))
	}

	span := checkOut.Sub(checkIn)
	nights := int(span / day)
	if span%day != 0 {
		nights++
	}
	return nights, nil
}

func (p PricingPolicy) Quote(nightlyRate decimal.Decimal, checkIn, checkOut time.Time) (Quote, error) {
	if nightlyRate.IsNegative() {
		return Quote{}, fmt.Errorf("%w: nightly rate %s is negative", ErrValidation, nightlyRate)
	}

	nights, err := NightsBetween(checkIn, checkOut)
	if err != nil {
		return Quote{}, err
	}

	subtotal := nightlyRate.Mul(decimal.NewFromInt(int64(nights))).Round(moneyPlaces)
	tax := subtotal.Mul(p.TaxRate).Round(moneyPlaces)

	return Quote{
		Nights:   nights,
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}, nil
}

func (p PricingPolicy) Split(total decimal.Decimal) Split {
	commission := total.Mul(p.CommissionRate).Round(moneyPlaces)
	return Split{
		Commission:     commission,
		HotelierAmount: total.Sub(commission),
	}
}
