package request_models

import (
	"time"

	"tripnote/internal/models/plan_models"
)

type TravelDates struct {
	StartDate string `json:"startDate" binding:"required"` // yyyy-MM-dd
	EndDate   string `json:"endDate" binding:"required"`   // yyyy-MM-dd
}

// Validate enforces the input-boundary invariant: both dates parse and the
// end date is strictly after the start date.
func (d TravelDates) Validate() bool {
	start, err := time.Parse("2006-01-02", d.StartDate)
	if err != nil {
		return false
	}
	end, err := time.Parse("2006-01-02", d.EndDate)
	if err != nil {
		return false
	}
	return end.After(start)
}

type ScheduleRecommendRequest struct {
	Departure   string      `json:"departure" binding:"required"`
	Destination string      `json:"destination" binding:"required"`
	Companions  string      `json:"companions" binding:"required"` // ex) 가족, 친구, 연인, 혼자
	Dates       TravelDates `json:"dates" binding:"required"`
	Concepts    []string    `json:"concepts" binding:"required"` // ex) 맛집, 관광지, 자연, 휴식
	Preferences string      `json:"preferences"`
}

type ScheduleCreateRequest struct {
	WorkspaceID string                      `json:"workspaceId" binding:"required"`
	Schedule    []plan_models.TravelDayPlan `json:"schedule" binding:"required"`
}
