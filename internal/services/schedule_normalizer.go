package services

import (
	"tripnote/internal/models/plan_models"
	"tripnote/pkg/utils"
)

// NormalizeSchedule reconciles a model-produced schedule against the requested
// date span. The model's own dates are untrusted and always overridden with
// the ground-truth calendar dates; surplus days are dropped and missing
// trailing days are padded with empty activity lists. The result always has
// exactly one entry per calendar date, which makes the function idempotent.
func NormalizeSchedule(schedule []plan_models.TravelDayPlan, startDate, endDate string) ([]plan_models.TravelDayPlan, error) {
	dates, err := utils.InclusiveDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	normalized := make([]plan_models.TravelDayPlan, 0, len(dates))
	for i, date := range dates {
		if i < len(schedule) {
			dayPlan := schedule[i]
			if dayPlan.Day == 0 {
				dayPlan.Day = i + 1
			}
			dayPlan.Date = date
			if dayPlan.Activities == nil {
				dayPlan.Activities = []plan_models.TravelActivity{}
			}
			normalized = append(normalized, dayPlan)
			continue
		}

		normalized = append(normalized, plan_models.TravelDayPlan{
			Day:        i + 1,
			Date:       date,
			Activities: []plan_models.TravelActivity{},
		})
	}

	return normalized, nil
}
