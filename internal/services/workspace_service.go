package services

import (
	"context"

	"tripnote/internal/models/response_models"
	"tripnote/internal/repositories"
	"tripnote/pkg/utils"
)

type WorkspaceServiceInterface interface {
	ListWorkspacesByUser(ctx context.Context, userID string) ([]response_models.WorkspaceResponse, error)
	InviteMember(ctx context.Context, userID string, workspaceID string, memberUserID string) error
}

type WorkspaceService struct {
	workspaceRepo repositories.WorkspaceRepository
	accountRepo   repositories.AccountRepository
}

func NewWorkspaceService(workspaceRepo repositories.WorkspaceRepository, accountRepo repositories.AccountRepository) WorkspaceServiceInterface {
	return &WorkspaceService{
		workspaceRepo: workspaceRepo,
		accountRepo:   accountRepo,
	}
}

func (w *WorkspaceService) ListWorkspacesByUser(ctx context.Context, userID string) ([]response_models.WorkspaceResponse, error) {
	workspaces, err := w.workspaceRepo.ListByOwnerID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.WorkspaceResponse, 0, len(workspaces))
	for _, workspace := range workspaces {
		members := workspace.MemberIDs()
		if members == nil {
			members = []string{}
		}
		responses = append(responses, response_models.WorkspaceResponse{
			ID:            workspace.ID.String(),
			Name:          workspace.Name,
			OwnerID:       workspace.OwnerID,
			MemberUserIDs: members,
		})
	}

	return responses, nil
}

// InviteMember adds an existing account to a workspace's member list. Only
// the owner may invite; inviting an existing member is a no-op.
func (w *WorkspaceService) InviteMember(ctx context.Context, userID string, workspaceID string, memberUserID string) error {
	workspace, err := w.workspaceRepo.FindByID(ctx, workspaceID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if workspace == nil {
		return utils.ErrWorkspaceNotFound
	}
	if workspace.OwnerID != userID {
		return utils.ErrForbidden
	}

	member, err := w.accountRepo.FindByID(ctx, memberUserID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if member == nil {
		return utils.ErrAccountNotFound
	}

	if err := workspace.AddMemberID(memberUserID); err != nil {
		return utils.ErrInvalidInput
	}

	if err := w.workspaceRepo.Update(ctx, workspace); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}
