package timerange

import "time"

// Range is a closed interval [Start, End].
type Range struct {
	Start time.Time
	End   time.Time
}

func New(start time.Time, duration time.Duration) Range {
	return Range{Start: start, End: start.Add(duration)}
}

// Overlaps reports whether r and other share at least one instant.
// Touching endpoints count as overlap.
func (r Range) Overlaps(other Range) bool {
	return Overlaps(r.Start, r.End, other.Start, other.End)
}

// Within reports whether r lies fully inside outer, endpoints included.
func (r Range) Within(outer Range) bool {
	return !r.Start.Before(outer.Start) && !r.End.After(outer.End)
}

// Overlaps is the closed-interval test a<=d && c<=b for [a,b] and [c,d].
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !bStart.After(aEnd)
}
