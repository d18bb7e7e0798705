// Package mockdata holds the small helpers shared by the stub tool
// generators: fake identifiers, timestamps, and random picks. Nothing here
// talks to a real service.
package mockdata

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ID returns a fake identifier like "msg_1a2b3c4d" built from a UUID.
func ID(prefix string) string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("%s_%s", prefix, raw[:8])
}

// NumericID returns a fake numeric identifier in Discord/Trello style.
func NumericID() string {
	return fmt.Sprintf("%d", 100000000000000000+rand.Int63n(899999999999999999))
}

// Timestamp returns an RFC3339 timestamp the given number of hours in the past.
func Timestamp(hoursAgo int) string {
	return time.Now().UTC().Add(-time.Duration(hoursAgo) * time.Hour).Format(time.RFC3339)
}

// Pick returns a random element of the given options.
func Pick(options ...string) string {
	return options[rand.Intn(len(options))]
}

// Count returns a random integer in [min, max].
func Count(min, max int) int {
	if max <= min {
		return min
	}
	return min + rand.Intn(max-min+1)
}

// Price returns a random price with two decimals in [min, max).
func Price(min, max float64) float64 {
	v := min + rand.Float64()*(max-min)
	return float64(int(v*100)) / 100
}
