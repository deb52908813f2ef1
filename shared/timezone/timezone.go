package timezone

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

const fallbackZone = "UTC"

var (
	mu       sync.RWMutex
	location = time.UTC
	clock    = time.Now
)

// Init sets the rental desk's timezone. Unknown or empty names leave the desk on UTC.
func Init(name string) {
	if name == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")

		name = fallbackZone
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().Err(err).Str("timezone", name).
			Msg("Failed to load timezone, falling back to UTC. Use IANA names like 'America/Los_Angeles'")

		loc = time.UTC
	}

	mu.Lock()
	location = loc
	mu.Unlock()

	log.Debug().Str("timezone", loc.String()).Msg("Application timezone initialized")
}

func Location() *time.Location {
	mu.RLock()
	defer mu.RUnlock()

	return location
}

// Now is the current instant on the rental desk's wall clock.
func Now() time.Time {
	mu.RLock()
	now := clock
	mu.RUnlock()

	return now().In(Location())
}

// Today is midnight of the rental desk's current calendar day.
func Today() time.Time {
	now := Now()

	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// SetClock replaces the time source until the returned restore func is called.
func SetClock(now func() time.Time) (restore func()) {
	mu.Lock()
	previous := clock
	clock = now
	mu.Unlock()

	return func() {
		mu.Lock()
		clock = previous
		mu.Unlock()
	}
}
