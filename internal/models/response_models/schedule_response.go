package response_models

import "tripnote/internal/models/plan_models"

type ScheduleRecommendResponse struct {
	RecommendedDestinations []string                    `json:"recommendedDestinations"`
	Schedule                []plan_models.TravelDayPlan `json:"schedule"`
	Summary                 string                      `json:"summary"`
}
