package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tripnote/internal/models/request_models"
	"tripnote/internal/services"
	"tripnote/pkg/utils"
)

type WorkspaceController struct {
	workspaceService services.WorkspaceServiceInterface
}

func NewWorkspaceController(workspaceService services.WorkspaceServiceInterface) *WorkspaceController {
	return &WorkspaceController{
		workspaceService: workspaceService,
	}
}

// GetMyWorkspaces godoc
// @Summary List my workspaces
// @Description List the workspaces owned by the authenticated user
// @Tags Workspaces
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /workspaces [get]
func (w *WorkspaceController) GetMyWorkspaces(c *gin.Context) {
	userID := c.GetString("user_id")

	workspaces, err := w.workspaceService.ListWorkspacesByUser(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, workspaces, "Workspaces fetched successfully")
}

// InviteMember godoc
// @Summary Invite a member to a workspace
// @Description Add an existing account to a workspace's member list (owner only)
// @Tags Workspaces
// @Accept json
// @Produce json
// @Param request body request_models.InviteMemberRequest true "Invite payload"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /workspaces/invite [post]
func (w *WorkspaceController) InviteMember(c *gin.Context) {
	var req request_models.InviteMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	userID := c.GetString("user_id")

	if err := w.workspaceService.InviteMember(c.Request.Context(), userID, req.WorkspaceID, req.MemberUserID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Member invited successfully")
}
