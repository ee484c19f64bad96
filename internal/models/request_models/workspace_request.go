package request_models

type InviteMemberRequest struct {
	WorkspaceID  string `json:"workspaceId" binding:"required"`
	MemberUserID string `json:"memberUserId" binding:"required"`
}
