// Package timeofday models a wall-clock time with a fixed UTC offset, the shape of a
// vet's working hours. Values compare by the instant they denote on a common day,
// so 08:00+02:00 equals 06:00Z. Normalized seconds are not wrapped into one day, so
// values sharing an offset compare as their wall clocks do: 00:30+02:00 to
// 08:00+02:00 is a valid window even though it spans midnight in UTC. Comparison
// never wraps around midnight in the values' own offset, so a window whose end is
// before its start contains nothing. Mixing offsets between the two ends of a
// window compares instants, which can shift such a window across midnight.
package timeofday

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const secondsPerDay = 24 * 60 * 60

var layouts = []string{
	"15:04:05Z07:00",
	"15:04Z07:00",
	"15:04:05-07",
	"15:04:05.999999-07",
	"15:04:05.999999Z07:00",
	"15:04:05",
	"15:04",
}

type TimeOfDay struct {
	seconds int
	offset  int
}

// New builds a TimeOfDay; offset is in seconds east of UTC.
func New(hour, minute, second, offset int) TimeOfDay {
	return TimeOfDay{seconds: hour*3600 + minute*60 + second, offset: offset}
}

// Of returns the wall-clock time of t in t's own location.
func Of(t time.Time) TimeOfDay {
	_, offset := t.Zone()

	return New(t.Hour(), t.Minute(), t.Second(), offset)
}

// At returns the wall-clock time of instant as seen at a fixed UTC offset.
func At(instant time.Time, offset int) TimeOfDay {
	return Of(instant.In(time.FixedZone("", offset)))
}

func Parse(value string) (TimeOfDay, error) {
	for _, layout := range layouts {
		t, err := time.Parse(layout, strings.TrimSpace(value))
		if err == nil {
			return Of(t), nil
		}
	}

	return TimeOfDay{}, fmt.Errorf("invalid time of day %q", value)
}

func MustParse(value string) TimeOfDay {
	t, err := Parse(value)
	if err != nil {
		panic(err)
	}

	return t
}

// Offset returns the UTC offset in seconds east of UTC.
func (t TimeOfDay) Offset() int {
	return t.offset
}

// Normalized returns the UTC seconds of day, which may fall outside [0, 86400).
func (t TimeOfDay) Normalized() int {
	return t.seconds - t.offset
}

func (t TimeOfDay) Compare(other TimeOfDay) int {
	a, b := t.Normalized(), other.Normalized()

	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.Compare(other) < 0
}

func (t TimeOfDay) After(other TimeOfDay) bool {
	return t.Compare(other) > 0
}

func (t TimeOfDay) IsZero() bool {
	return t == TimeOfDay{}
}

// Within reports whether t lies in [from, to], both ends included.
func (t TimeOfDay) Within(from, to TimeOfDay) bool {
	return !t.Before(from) && !t.After(to)
}

func (t TimeOfDay) String() string {
	return t.clock().Format("15:04:05Z07:00")
}

func (t TimeOfDay) clock() time.Time {
	zone := time.UTC
	if t.offset != 0 {
		zone = time.FixedZone("", t.offset)
	}

	sec := ((t.seconds % secondsPerDay) + secondsPerDay) % secondsPerDay

	return time.Date(0, 1, 1, sec/3600, (sec/60)%60, sec%60, 0, zone)
}

// Scan reads a postgres timetz column.
func (t *TimeOfDay) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*t = Of(v)

		return nil
	case []byte:
		return t.scanString(string(v))
	case string:
		return t.scanString(v)
	case nil:
		*t = TimeOfDay{}

		return nil
	default:
		return fmt.Errorf("cannot scan %T into TimeOfDay", src)
	}
}

func (t *TimeOfDay) scanString(value string) error {
	parsed, err := Parse(value)
	if err != nil {
		return err
	}

	*t = parsed

	return nil
}

func (t TimeOfDay) Value() (driver.Value, error) {
	return t.String(), nil
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("time of day must be a string: %w", err)
	}

	return t.scanString(value)
}
