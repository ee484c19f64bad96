package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInclusiveDateRange(t *testing.T) {
	dates, err := InclusiveDateRange("2025-05-01", "2025-05-03")
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-05-01", "2025-05-02", "2025-05-03"}, dates)
}

func TestInclusiveDateRange_SingleDay(t *testing.T) {
	dates, err := InclusiveDateRange("2025-05-01", "2025-05-01")
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-05-01"}, dates)
}

func TestInclusiveDateRange_CrossesMonthBoundary(t *testing.T) {
	dates, err := InclusiveDateRange("2025-01-30", "2025-02-02")
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-01-30", "2025-01-31", "2025-02-01", "2025-02-02"}, dates)
}

func TestInclusiveDateRange_InvalidInput(t *testing.T) {
	_, err := InclusiveDateRange("05/01/2025", "2025-05-03")
	assert.Error(t, err)

	_, err = InclusiveDateRange("2025-05-01", "tomorrow")
	assert.Error(t, err)
}

func TestTripDurationDays(t *testing.T) {
	assert.Equal(t, 3, TripDurationDays("2025-05-01", "2025-05-03"))
	assert.Equal(t, 1, TripDurationDays("2025-05-01", "2025-05-01"))
	// Unparseable input defaults to a 1-day trip.
	assert.Equal(t, 1, TripDurationDays("bad", "2025-05-03"))
}
