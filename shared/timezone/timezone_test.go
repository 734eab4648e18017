package timezone_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vetclinic/shared/timezone"
)

func TestTimezoneInit(t *testing.T) {
	assert.False(t, timezone.Now().IsZero())
	assert.NotNil(t, timezone.GetLocation())
}

func TestToAppTime(t *testing.T) {
	utcTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	appTime := timezone.ToAppTime(utcTime)

	assert.True(t, appTime.Equal(utcTime))
	assert.Equal(t, timezone.GetLocation(), appTime.Location())
}

func TestFormat(t *testing.T) {
	testTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	formatted := timezone.Format(testTime, time.RFC3339)

	parsed, err := timezone.ParseRFC3339(formatted)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(testTime))
}

func TestParseRFC3339_KeepsOffset(t *testing.T) {
	parsed, err := timezone.ParseRFC3339("2021-04-14T09:00:00+02:00")
	require.NoError(t, err)

	_, offset := parsed.Zone()
	assert.Equal(t, 2*3600, offset)
	assert.True(t, parsed.Equal(time.Date(2021, 4, 14, 7, 0, 0, 0, time.UTC)))

	_, err = timezone.ParseRFC3339("2021-04-14 09:00")
	assert.Error(t, err)
}
