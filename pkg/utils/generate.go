package utils

import (
	"math/rand/v2"
	"strings"
	"time"
)

// no 0/O or 1/I, codes get read out over the phone
const bookingCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const bookingCodeSuffixLen = 6

// GenerateBookingCode returns a human readable code, e.g. HS-20250101-K7Q2MX.
// Uniqueness is enforced by the database, callers retry on collision.
func GenerateBookingCode(now time.Time) string {
	var b strings.Builder
	b.WriteString("HS-")
	b.WriteString(now.UTC().Format("20060102"))
	b.WriteByte('-')
	for i := 0; i < bookingCodeSuffixLen; i++ {
		b.WriteByte(bookingCodeAlphabet[rand.IntN(len(bookingCodeAlphabet))])
	}
	return b.String()
}
