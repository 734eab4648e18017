package timezone

import (
	"time"

	"github.com/rs/zerolog/log"

	"vetclinic/config"
)

const defaultZone = "UTC"

var (
	appLocation *time.Location
)

func init() {
	name := config.Get().App.Timezone
	if name == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")

		name = defaultZone
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", name).
			Msg("Failed to load timezone, falling back to UTC. Use IANA names like 'Europe/Warsaw' or 'UTC'")

		appLocation = time.UTC

		return
	}

	appLocation = loc

	log.Info().
		Str("timezone", name).
		Msg("Application timezone initialized")
}

// GetLocation returns the application zone, UTC when it failed to load.
func GetLocation() *time.Location {
	if appLocation == nil {
		return time.UTC
	}

	return appLocation
}

// Now returns the current time in the application timezone.
func Now() time.Time {
	return time.Now().In(GetLocation())
}

// ToAppTime returns the same instant in the application timezone.
func ToAppTime(t time.Time) time.Time {
	return t.In(GetLocation())
}

// ParseRFC3339 parses an instant that carries its own offset. The offset is kept so
// callers can reason about the wall-clock time the requester meant.
func ParseRFC3339(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, err //nolint:wrapcheck
	}

	return t, nil
}

// Format formats t in the application timezone.
func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}
