package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tripnote/internal/models/request_models"
	"tripnote/internal/services"
	"tripnote/pkg/utils"
)

type ScheduleController struct {
	scheduleService services.ScheduleServiceInterface
}

func NewScheduleController(scheduleService services.ScheduleServiceInterface) *ScheduleController {
	return &ScheduleController{
		scheduleService: scheduleService,
	}
}

// RecommendSchedule godoc
// @Summary Generate a travel schedule
// @Description Generate an itinerary for the given trip parameters and save it into a new workspace
// @Tags Schedules
// @Accept json
// @Produce json
// @Param request body request_models.ScheduleRecommendRequest true "Trip parameters"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /schedules/recommend [post]
func (s *ScheduleController) RecommendSchedule(c *gin.Context) {
	var req request_models.ScheduleRecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	if !req.Dates.Validate() {
		utils.RespondError(c, http.StatusBadRequest, "endDate must be after startDate")
		return
	}

	userID := c.GetString("user_id")

	response, err := s.scheduleService.RecommendSchedule(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response, "Schedule generated successfully")
}

// CreateSchedule godoc
// @Summary Save a schedule
// @Description Save a caller-supplied schedule into an existing workspace
// @Tags Schedules
// @Accept json
// @Produce json
// @Param request body request_models.ScheduleCreateRequest true "Schedule payload"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /schedules [post]
func (s *ScheduleController) CreateSchedule(c *gin.Context) {
	var req request_models.ScheduleCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	userID := c.GetString("user_id")

	response, err := s.scheduleService.CreateSchedule(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response, "Schedule saved successfully")
}

// GetSchedule godoc
// @Summary Get a workspace's schedule
// @Description Return the schedule stored in the given workspace
// @Tags Schedules
// @Produce json
// @Param workspaceId query string true "Workspace id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /schedules [get]
func (s *ScheduleController) GetSchedule(c *gin.Context) {
	workspaceID := c.Query("workspaceId")
	if workspaceID == "" {
		utils.RespondError(c, http.StatusBadRequest, "workspaceId is required")
		return
	}

	userID := c.GetString("user_id")

	response, err := s.scheduleService.GetSchedule(c.Request.Context(), userID, workspaceID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response, "Schedule fetched successfully")
}
