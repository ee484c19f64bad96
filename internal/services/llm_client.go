package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"tripnote/internal/models/plan_models"
	"tripnote/pkg/logger"
	"tripnote/pkg/utils"
)

type LLMClientInterface interface {
	GenerateTravelPlan(ctx context.Context, input plan_models.TravelPlanLLMInput) (*plan_models.TravelPlanLLMResponse, error)
}

// LLMBackend is the raw model invocation: prompt in, JSON text out. Gemini
// and OpenAI implementations live in their own files; tests use a stub.
type LLMBackend interface {
	GenerateJSON(ctx context.Context, prompt string) (string, error)
}

type TravelPlanClient struct {
	backend LLMBackend
	log     logger.Logger
}

func NewTravelPlanClient(backend LLMBackend, log logger.Logger) LLMClientInterface {
	return &TravelPlanClient{
		backend: backend,
		log:     log,
	}
}

func (c *TravelPlanClient) GenerateTravelPlan(ctx context.Context, input plan_models.TravelPlanLLMInput) (*plan_models.TravelPlanLLMResponse, error) {
	prompt := BuildTravelPlanPrompt(input)

	c.log.Infof("[LLM] Generating travel plan: %s -> %s (%s ~ %s)",
		input.Departure, input.Destination, input.StartDate, input.EndDate)

	raw, err := c.backend.GenerateJSON(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrGenerationFailed, err)
	}

	result, err := parseTravelPlanResponse(raw, input)
	if err != nil {
		return nil, err
	}

	c.log.Infof("[LLM] Travel plan generated: %d day(s), %d recommended place(s)",
		len(result.Schedule), len(result.RecommendedPlaces))

	return result, nil
}

// parseTravelPlanResponse turns the untrusted model output into a validated
// plan. One total coercion pass: every optional field gets a default up
// front, nothing here panics on malformed values. Day-count reconciliation
// is delegated to NormalizeSchedule.
func parseTravelPlanResponse(raw string, input plan_models.TravelPlanLLMInput) (*plan_models.TravelPlanLLMResponse, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &top); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrResponseFormat, err)
	}

	var recommendedPlaces []string
	if msg, ok := top["recommendedPlaces"]; ok {
		if err := json.Unmarshal(msg, &recommendedPlaces); err != nil {
			return nil, fmt.Errorf("%w: recommendedPlaces is not a string array", utils.ErrInvalidResponseShape)
		}
	} else {
		return nil, fmt.Errorf("%w: recommendedPlaces missing", utils.ErrInvalidResponseShape)
	}

	rawScheduleMsg, ok := top["schedule"]
	if !ok {
		return nil, fmt.Errorf("%w: schedule missing", utils.ErrInvalidResponseShape)
	}
	var rawDays []map[string]json.RawMessage
	if err := json.Unmarshal(rawScheduleMsg, &rawDays); err != nil {
		return nil, fmt.Errorf("%w: schedule is not an array", utils.ErrInvalidResponseShape)
	}

	schedule := make([]plan_models.TravelDayPlan, 0, len(rawDays))
	for i, rawDay := range rawDays {
		schedule = append(schedule, coerceDayPlan(rawDay, i))
	}

	normalized, err := NormalizeSchedule(schedule, input.StartDate, input.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrGenerationFailed, err)
	}

	return &plan_models.TravelPlanLLMResponse{
		RecommendedPlaces: recommendedPlaces,
		Schedule:          normalized,
		Summary:           rawString(top, "summary"),
	}, nil
}

func coerceDayPlan(raw map[string]json.RawMessage, index int) plan_models.TravelDayPlan {
	day := index + 1
	if d := rawIntPtr(raw, "day"); d != nil && *d > 0 {
		day = *d
	}

	activities := []plan_models.TravelActivity{}
	if msg, ok := raw["activities"]; ok {
		var rawActivities []map[string]json.RawMessage
		if err := json.Unmarshal(msg, &rawActivities); err == nil {
			for i, rawActivity := range rawActivities {
				activities = append(activities, coerceActivity(rawActivity, i))
			}
		}
	}

	return plan_models.TravelDayPlan{
		Day:        day,
		Date:       rawString(raw, "date"),
		Activities: activities,
	}
}

func coerceActivity(raw map[string]json.RawMessage, index int) plan_models.TravelActivity {
	order := index
	if o := rawIntPtr(raw, "order"); o != nil {
		order = *o
	}

	startTime := rawStringPtr(raw, "activityStartTime")
	endTime := rawStringPtr(raw, "activityEndTime")
	if startTime == nil && endTime == nil {
		// Older model revisions emit a combined "time": "09:00-12:00" field.
		startTime, endTime = splitTimeRange(rawString(raw, "time"))
	}

	categories := rawStringSlice(raw, "categories")
	if categories == nil {
		categories = []string{}
	}

	return plan_models.TravelActivity{
		Order:             order,
		ActivityStartTime: startTime,
		ActivityEndTime:   endTime,
		Location:          rawString(raw, "location"),
		PlaceSearchQuery:  rawString(raw, "placeSearchQuery"),
		Categories:        categories,
		PlaceID:           rawString(raw, "placeId"),
		Rating:            rawFloatPtr(raw, "rating"),
		TravelTime:        rawIntPtr(raw, "travelTime"),
		Description:       rawString(raw, "description"),
		Coordinates:       plan_models.TravelCoordinates{},
	}
}

func splitTimeRange(timeRange string) (*string, *string) {
	parts := strings.SplitN(timeRange, "-", 2)
	if len(parts) != 2 {
		return nil, nil
	}
	start := strings.TrimSpace(parts[0])
	end := strings.TrimSpace(parts[1])
	if start == "" || end == "" {
		return nil, nil
	}
	return &start, &end
}

func rawString(raw map[string]json.RawMessage, key string) string {
	msg, ok := raw[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(msg, &s); err != nil {
		return ""
	}
	return s
}

func rawStringPtr(raw map[string]json.RawMessage, key string) *string {
	msg, ok := raw[key]
	if !ok {
		return nil
	}
	var s string
	if err := json.Unmarshal(msg, &s); err != nil || s == "" {
		return nil
	}
	return &s
}

func rawIntPtr(raw map[string]json.RawMessage, key string) *int {
	msg, ok := raw[key]
	if !ok {
		return nil
	}
	var f float64
	if err := json.Unmarshal(msg, &f); err != nil {
		return nil
	}
	n := int(f)
	return &n
}

func rawFloatPtr(raw map[string]json.RawMessage, key string) *float64 {
	msg, ok := raw[key]
	if !ok {
		return nil
	}
	var f float64
	if err := json.Unmarshal(msg, &f); err != nil {
		return nil
	}
	return &f
}

func rawStringSlice(raw map[string]json.RawMessage, key string) []string {
	msg, ok := raw[key]
	if !ok {
		return nil
	}
	var values []string
	if err := json.Unmarshal(msg, &values); err != nil {
		return nil
	}
	return values
}
