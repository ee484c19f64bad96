package utils

import (
	"fmt"
	"math"
	"time"
)

const DateLayout = "2006-01-02"

// InclusiveDateRange returns every calendar date from start to end inclusive,
// formatted as yyyy-MM-dd. It is the ground truth the schedule normalizer
// reconciles the model output against.
func InclusiveDateRange(startDate, endDate string) ([]string, error) {
	start, err := time.Parse(DateLayout, startDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q: %w", startDate, err)
	}
	end, err := time.Parse(DateLayout, endDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end date %q: %w", endDate, err)
	}

	var dates []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(DateLayout))
	}
	return dates, nil
}

// TripDurationDays computes the inclusive day count of a trip:
// ceil(|end - start| in days) + 1. A same-day trip is 1 day.
func TripDurationDays(startDate, endDate string) int {
	start, err := time.Parse(DateLayout, startDate)
	if err != nil {
		return 1
	}
	end, err := time.Parse(DateLayout, endDate)
	if err != nil {
		return 1
	}
	diff := math.Abs(end.Sub(start).Hours() / 24)
	return int(math.Ceil(diff)) + 1
}
