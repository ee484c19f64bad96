package response_models

type WorkspaceResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	OwnerID       string   `json:"ownerId"`
	MemberUserIDs []string `json:"memberUserIds"`
}
