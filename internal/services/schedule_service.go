package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"tripnote/internal/models/db_models"
	"tripnote/internal/models/plan_models"
	"tripnote/internal/models/request_models"
	"tripnote/internal/models/response_models"
	"tripnote/internal/repositories"
	"tripnote/pkg/logger"
	"tripnote/pkg/utils"
)

type ScheduleServiceInterface interface {
	RecommendSchedule(ctx context.Context, userID string, request request_models.ScheduleRecommendRequest) (*response_models.ScheduleRecommendResponse, error)
	CreateSchedule(ctx context.Context, userID string, request request_models.ScheduleCreateRequest) (*response_models.ScheduleRecommendResponse, error)
	GetSchedule(ctx context.Context, userID string, workspaceID string) (*response_models.ScheduleRecommendResponse, error)
}

type ScheduleService struct {
	llmClient     LLMClientInterface
	placesClient  PlacesClientInterface
	workspaceRepo repositories.WorkspaceRepository
	scheduleRepo  repositories.ScheduleRepository
	uow           repositories.ScheduleUnitOfWork
	log           logger.Logger
}

func NewScheduleService(
	llmClient LLMClientInterface,
	placesClient PlacesClientInterface,
	workspaceRepo repositories.WorkspaceRepository,
	scheduleRepo repositories.ScheduleRepository,
	uow repositories.ScheduleUnitOfWork,
	log logger.Logger,
) ScheduleServiceInterface {
	return &ScheduleService{
		llmClient:     llmClient,
		placesClient:  placesClient,
		workspaceRepo: workspaceRepo,
		scheduleRepo:  scheduleRepo,
		uow:           uow,
		log:           log,
	}
}

// RecommendSchedule generates an itinerary, enriches it with place lookups,
// then persists workspace + schedule in one transaction. Generation and
// enrichment finish before the transaction opens so external latency never
// holds a database transaction.
func (s *ScheduleService) RecommendSchedule(ctx context.Context, userID string, request request_models.ScheduleRecommendRequest) (*response_models.ScheduleRecommendResponse, error) {
	input := plan_models.TravelPlanLLMInput{
		Departure:   request.Departure,
		Destination: request.Destination,
		Companions:  request.Companions,
		StartDate:   request.Dates.StartDate,
		EndDate:     request.Dates.EndDate,
		Concepts:    request.Concepts,
		Preferences: request.Preferences,
	}

	result, err := s.llmClient.GenerateTravelPlan(ctx, input)
	if err != nil {
		return nil, err
	}

	enriched := s.enrichSchedule(ctx, result.Schedule)

	workspaceName := fmt.Sprintf("%s~%s %s 여행", request.Dates.StartDate, request.Dates.EndDate, request.Destination)

	err = s.uow.Do(ctx, func(workspaces repositories.WorkspaceRepository, schedules repositories.ScheduleRepository) error {
		workspace := &db_models.Workspace{
			Name:    workspaceName,
			OwnerID: userID,
		}
		if err := workspaces.Insert(ctx, workspace); err != nil {
			return err
		}

		blob, err := serializeSchedule(enriched)
		if err != nil {
			return err
		}

		return schedules.Insert(ctx, &db_models.Schedule{
			WorkspaceID: workspace.ID,
			Schedule:    blob,
		})
	})
	if err != nil {
		s.log.Errorf("[SCHEDULE] Persisting recommended schedule failed: %v", err)
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	return &response_models.ScheduleRecommendResponse{
		RecommendedDestinations: result.RecommendedPlaces,
		Schedule:                enriched,
		Summary:                 result.Summary,
	}, nil
}

// CreateSchedule persists a caller-supplied plan into an existing workspace.
// Only the owner may write.
func (s *ScheduleService) CreateSchedule(ctx context.Context, userID string, request request_models.ScheduleCreateRequest) (*response_models.ScheduleRecommendResponse, error) {
	workspace, err := s.workspaceRepo.FindByID(ctx, request.WorkspaceID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if workspace == nil {
		return nil, utils.ErrWorkspaceNotFound
	}
	if workspace.OwnerID != userID {
		return nil, utils.ErrForbidden
	}

	blob, err := serializeSchedule(request.Schedule)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrInvalidInput, err)
	}

	if err := s.scheduleRepo.Insert(ctx, &db_models.Schedule{
		WorkspaceID: workspace.ID,
		Schedule:    blob,
	}); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	return &response_models.ScheduleRecommendResponse{
		RecommendedDestinations: []string{},
		Schedule:                request.Schedule,
		Summary:                 "",
	}, nil
}

// GetSchedule returns the workspace's schedule to the owner or any member.
func (s *ScheduleService) GetSchedule(ctx context.Context, userID string, workspaceID string) (*response_models.ScheduleRecommendResponse, error) {
	workspace, err := s.workspaceRepo.FindByID(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if workspace == nil {
		return nil, utils.ErrWorkspaceNotFound
	}
	if workspace.OwnerID != userID && !workspace.HasMember(userID) {
		return nil, utils.ErrForbidden
	}

	schedule, err := s.scheduleRepo.FindByWorkspaceID(ctx, workspace.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if schedule == nil {
		return nil, utils.ErrScheduleNotFound
	}

	var persisted []plan_models.PersistedDayPlan
	if err := json.Unmarshal([]byte(schedule.Schedule), &persisted); err != nil {
		s.log.Errorf("[SCHEDULE] Stored schedule blob is corrupt: workspace=%s, %v", workspaceID, err)
		return nil, fmt.Errorf("%w: stored schedule unreadable", utils.ErrDatabaseError)
	}

	days := make([]plan_models.TravelDayPlan, 0, len(persisted))
	for _, day := range persisted {
		activities := make([]plan_models.TravelActivity, 0, len(day.Activities))
		for _, a := range day.Activities {
			activities = append(activities, plan_models.TravelActivity{
				Order:             a.Order,
				ActivityStartTime: a.ActivityStartTime,
				ActivityEndTime:   a.ActivityEndTime,
				Location:          a.Location,
				PlaceSearchQuery:  a.PlaceSearchQuery,
				Categories:        a.Categories,
				PlaceID:           a.PlaceID,
				Rating:            a.Rating,
				OperatingHours:    a.OperatingHours,
				TravelTime:        a.TravelTime,
				Description:       a.Description,
				Coordinates:       a.Coordinates,
			})
		}
		days = append(days, plan_models.TravelDayPlan{
			Day:        day.Day,
			Date:       day.Date,
			Activities: activities,
		})
	}

	return &response_models.ScheduleRecommendResponse{
		RecommendedDestinations: []string{},
		Schedule:                days,
		Summary:                 "",
	}, nil
}

// enrichSchedule fans out one place lookup per activity. Each goroutine writes
// only its own index, so no locking is needed; lookups that fail leave the
// activity unchanged.
func (s *ScheduleService) enrichSchedule(ctx context.Context, schedule []plan_models.TravelDayPlan) []plan_models.TravelDayPlan {
	enriched := make([]plan_models.TravelDayPlan, len(schedule))

	var wg sync.WaitGroup
	for di, day := range schedule {
		enriched[di] = plan_models.TravelDayPlan{
			Day:        day.Day,
			Date:       day.Date,
			Activities: make([]plan_models.TravelActivity, len(day.Activities)),
		}

		for ai, activity := range day.Activities {
			wg.Add(1)
			go func(di, ai int, activity plan_models.TravelActivity) {
				defer wg.Done()

				var detail *PlaceDetail
				if activity.PlaceSearchQuery != "" {
					detail = s.placesClient.GetPlaceDetails(ctx, activity.PlaceSearchQuery)
				}
				enriched[di].Activities[ai] = mergeActivityDetail(activity, detail)
			}(di, ai, activity)
		}
	}
	wg.Wait()

	return enriched
}

// mergeActivityDetail folds a lookup result into an activity. Coordinates the
// model already resolved are authoritative; everything else prefers the
// lookup and falls back to the model's value.
func mergeActivityDetail(activity plan_models.TravelActivity, detail *PlaceDetail) plan_models.TravelActivity {
	if detail == nil {
		return activity
	}

	if !activity.Coordinates.Resolved() {
		lat, lng := detail.Latitude, detail.Longitude
		activity.Coordinates = plan_models.TravelCoordinates{
			Latitude:  &lat,
			Longitude: &lng,
		}
	}

	if detail.PlaceID != "" {
		activity.PlaceID = detail.PlaceID
	}
	if detail.Rating != nil {
		activity.Rating = detail.Rating
	}
	if len(detail.OpeningHoursText) > 0 {
		activity.OperatingHours = detail.OpeningHoursText
	}

	return activity
}

// serializeSchedule converts day plans into the persisted blob, deriving a
// GeoJSON point for every activity with resolved coordinates.
func serializeSchedule(schedule []plan_models.TravelDayPlan) (string, error) {
	persisted := make([]plan_models.PersistedDayPlan, 0, len(schedule))
	for _, day := range schedule {
		activities := make([]plan_models.PersistedActivity, 0, len(day.Activities))
		for _, a := range day.Activities {
			pa := plan_models.PersistedActivity{
				Order:             a.Order,
				ActivityStartTime: a.ActivityStartTime,
				ActivityEndTime:   a.ActivityEndTime,
				Location:          a.Location,
				PlaceSearchQuery:  a.PlaceSearchQuery,
				Categories:        a.Categories,
				PlaceID:           a.PlaceID,
				Rating:            a.Rating,
				OperatingHours:    a.OperatingHours,
				TravelTime:        a.TravelTime,
				Description:       a.Description,
				Coordinates:       a.Coordinates,
			}
			if a.Coordinates.Resolved() {
				pa.LocationGeoJSON = &plan_models.GeoJSONPoint{
					Type:        "Point",
					Coordinates: [2]float64{*a.Coordinates.Longitude, *a.Coordinates.Latitude},
				}
			}
			activities = append(activities, pa)
		}
		persisted = append(persisted, plan_models.PersistedDayPlan{
			Day:        day.Day,
			Date:       day.Date,
			Activities: activities,
		})
	}

	encoded, err := json.Marshal(persisted)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}
