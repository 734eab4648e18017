package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"vetclinic/shared/clock"
)

func TestFixed(t *testing.T) {
	start := time.Date(2021, 4, 14, 10, 0, 0, 0, time.UTC)
	fixed := clock.NewFixed(start)

	assert.Equal(t, start, fixed.Now())

	fixed.Advance(90 * time.Minute)
	assert.Equal(t, start.Add(90*time.Minute), fixed.Now())

	fixed.Set(start)
	assert.Equal(t, start, fixed.Now())
}

func TestSystem(t *testing.T) {
	before := time.Now()
	now := clock.New().Now()

	assert.False(t, now.Before(before.Add(-time.Second)))
}
