package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripnote/internal/models/plan_models"
	"tripnote/pkg/logger"
	"tripnote/pkg/utils"
)

type stubBackend struct {
	response string
	err      error
	prompt   string
}

func (s *stubBackend) GenerateJSON(_ context.Context, prompt string) (string, error) {
	s.prompt = prompt
	return s.response, s.err
}

func llmInput() plan_models.TravelPlanLLMInput {
	return plan_models.TravelPlanLLMInput{
		Departure:   "서울",
		Destination: "부산",
		Companions:  "친구",
		StartDate:   "2025-05-01",
		EndDate:     "2025-05-02",
		Concepts:    []string{"맛집"},
	}
}

func TestGenerateTravelPlan_BackendError(t *testing.T) {
	client := NewTravelPlanClient(&stubBackend{err: errors.New("quota exceeded")}, logger.NewStdLogger())

	_, err := client.GenerateTravelPlan(context.Background(), llmInput())
	assert.ErrorIs(t, err, utils.ErrGenerationFailed)
}

func TestGenerateTravelPlan_NonJSONResponse(t *testing.T) {
	client := NewTravelPlanClient(&stubBackend{response: "I'm sorry, here is your plan:"}, logger.NewStdLogger())

	_, err := client.GenerateTravelPlan(context.Background(), llmInput())
	assert.ErrorIs(t, err, utils.ErrResponseFormat)
}

func TestGenerateTravelPlan_MissingArrays(t *testing.T) {
	cases := map[string]string{
		"no recommendedPlaces": `{"schedule": []}`,
		"no schedule":          `{"recommendedPlaces": []}`,
		"schedule not array":   `{"recommendedPlaces": [], "schedule": {"day": 1}}`,
		"places not array":     `{"recommendedPlaces": "부산", "schedule": []}`,
	}

	for name, response := range cases {
		t.Run(name, func(t *testing.T) {
			client := NewTravelPlanClient(&stubBackend{response: response}, logger.NewStdLogger())
			_, err := client.GenerateTravelPlan(context.Background(), llmInput())
			assert.ErrorIs(t, err, utils.ErrInvalidResponseShape)
		})
	}
}

func TestGenerateTravelPlan_HappyPath(t *testing.T) {
	response := `{
		"recommendedPlaces": ["해운대", "광안리"],
		"schedule": [
			{
				"day": 1,
				"date": "2020-01-01",
				"activities": [
					{
						"order": 0,
						"activityStartTime": "09:00",
						"activityEndTime": "11:00",
						"location": "해운대 해수욕장",
						"placeSearchQuery": "해운대 해수욕장, Busan",
						"categories": ["명소"],
						"travelTime": 25,
						"description": "바다 산책"
					},
					{
						"location": "광안리",
						"travelTime": null
					}
				]
			}
		],
		"summary": "부산 1박 2일"
	}`
	client := NewTravelPlanClient(&stubBackend{response: response}, logger.NewStdLogger())

	result, err := client.GenerateTravelPlan(context.Background(), llmInput())
	require.NoError(t, err)

	assert.Equal(t, []string{"해운대", "광안리"}, result.RecommendedPlaces)
	assert.Equal(t, "부산 1박 2일", result.Summary)

	// Two calendar days requested: day 2 is padded.
	require.Len(t, result.Schedule, 2)
	assert.Equal(t, "2025-05-01", result.Schedule[0].Date)
	assert.Equal(t, "2025-05-02", result.Schedule[1].Date)
	assert.Empty(t, result.Schedule[1].Activities)

	first := result.Schedule[0].Activities[0]
	assert.Equal(t, 0, first.Order)
	require.NotNil(t, first.ActivityStartTime)
	assert.Equal(t, "09:00", *first.ActivityStartTime)
	require.NotNil(t, first.TravelTime)
	assert.Equal(t, 25, *first.TravelTime)
	assert.False(t, first.Coordinates.Resolved())

	// Second activity omitted order: defaults to its index. Omitted
	// categories default to an empty slice.
	second := result.Schedule[0].Activities[1]
	assert.Equal(t, 1, second.Order)
	assert.NotNil(t, second.Categories)
	assert.Empty(t, second.Categories)
	assert.Nil(t, second.TravelTime)
}

func TestGenerateTravelPlan_LegacyTimeRange(t *testing.T) {
	response := `{
		"recommendedPlaces": [],
		"schedule": [
			{"activities": [{"location": "카페", "time": "13:00 - 15:00"}]}
		]
	}`
	client := NewTravelPlanClient(&stubBackend{response: response}, logger.NewStdLogger())

	result, err := client.GenerateTravelPlan(context.Background(), llmInput())
	require.NoError(t, err)

	activity := result.Schedule[0].Activities[0]
	require.NotNil(t, activity.ActivityStartTime)
	require.NotNil(t, activity.ActivityEndTime)
	assert.Equal(t, "13:00", *activity.ActivityStartTime)
	assert.Equal(t, "15:00", *activity.ActivityEndTime)
}

func TestGenerateTravelPlan_MalformedValuesCoerced(t *testing.T) {
	// Wrong types never abort the parse, they degrade to defaults.
	response := `{
		"recommendedPlaces": [],
		"schedule": [
			{
				"day": "one",
				"activities": [
					{"order": "first", "location": 42, "rating": "good", "travelTime": "soon", "categories": "맛집"}
				]
			}
		]
	}`
	client := NewTravelPlanClient(&stubBackend{response: response}, logger.NewStdLogger())

	result, err := client.GenerateTravelPlan(context.Background(), llmInput())
	require.NoError(t, err)

	activity := result.Schedule[0].Activities[0]
	assert.Equal(t, 0, activity.Order)
	assert.Equal(t, "", activity.Location)
	assert.Nil(t, activity.Rating)
	assert.Nil(t, activity.TravelTime)
	assert.Empty(t, activity.Categories)
	assert.Equal(t, 1, result.Schedule[0].Day)
}

func TestGenerateTravelPlan_PromptReachesBackend(t *testing.T) {
	backend := &stubBackend{response: `{"recommendedPlaces": [], "schedule": []}`}
	client := NewTravelPlanClient(backend, logger.NewStdLogger())

	_, err := client.GenerateTravelPlan(context.Background(), llmInput())
	require.NoError(t, err)
	assert.Equal(t, BuildTravelPlanPrompt(llmInput()), backend.prompt)
}

func TestSplitTimeRange(t *testing.T) {
	start, end := splitTimeRange("09:00-12:00")
	require.NotNil(t, start)
	require.NotNil(t, end)
	assert.Equal(t, "09:00", *start)
	assert.Equal(t, "12:00", *end)

	start, end = splitTimeRange("오전 내내")
	assert.Nil(t, start)
	assert.Nil(t, end)

	start, end = splitTimeRange("")
	assert.Nil(t, start)
	assert.Nil(t, end)
}
