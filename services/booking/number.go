package booking

import (
	"fmt"
	"math/rand"
	"time"
)

const bookingNumberPrefix = "BK"

// BookingNumber builds a human-readable display number: prefix, the last
// six digits of a millisecond timestamp, and a three-digit random suffix.
// It is for display only: not a uniqueness guarantee, never a storage key.
func BookingNumber(now time.Time) string {
	millis := now.UnixMilli() % 1_000_000
	return fmt.Sprintf("%s%06d%03d", bookingNumberPrefix, millis, rand.Intn(1000))
}
