package request_models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTravelDatesValidate(t *testing.T) {
	assert.True(t, TravelDates{StartDate: "2025-05-01", EndDate: "2025-05-03"}.Validate())

	// End must be strictly after start.
	assert.False(t, TravelDates{StartDate: "2025-05-01", EndDate: "2025-05-01"}.Validate())
	assert.False(t, TravelDates{StartDate: "2025-05-03", EndDate: "2025-05-01"}.Validate())

	assert.False(t, TravelDates{StartDate: "05/01/2025", EndDate: "2025-05-03"}.Validate())
	assert.False(t, TravelDates{StartDate: "2025-05-01", EndDate: ""}.Validate())
}
