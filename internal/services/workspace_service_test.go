package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tripnote/internal/models/db_models"
	"tripnote/pkg/utils"
)

func TestListWorkspacesByUser(t *testing.T) {
	workspaceRepo := new(MockWorkspaceRepo)
	accountRepo := new(MockAccountRepo)
	service := NewWorkspaceService(workspaceRepo, accountRepo)

	first := db_models.Workspace{Name: "2025-05-01~2025-05-03 부산 여행", OwnerID: "user-1", MemberUserIDs: `["friend"]`}
	first.ID = uuid.New()
	second := db_models.Workspace{Name: "2025-06-01~2025-06-02 제주 여행", OwnerID: "user-1"}
	second.ID = uuid.New()

	workspaceRepo.On("ListByOwnerID", mock.Anything, "user-1").Return([]db_models.Workspace{first, second}, nil)

	responses, err := service.ListWorkspacesByUser(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, responses, 2)

	assert.Equal(t, first.ID.String(), responses[0].ID)
	assert.Equal(t, []string{"friend"}, responses[0].MemberUserIDs)
	// Empty member list serializes as [], not null.
	assert.NotNil(t, responses[1].MemberUserIDs)
	assert.Empty(t, responses[1].MemberUserIDs)
}

func TestInviteMember_OwnerOnly(t *testing.T) {
	workspaceID := uuid.New()
	workspace := &db_models.Workspace{OwnerID: "owner"}
	workspace.ID = workspaceID

	t.Run("stranger forbidden", func(t *testing.T) {
		workspaceRepo := new(MockWorkspaceRepo)
		accountRepo := new(MockAccountRepo)
		service := NewWorkspaceService(workspaceRepo, accountRepo)

		workspaceRepo.On("FindByID", mock.Anything, workspaceID.String()).Return(workspace, nil)

		err := service.InviteMember(context.Background(), "stranger", workspaceID.String(), "friend")
		assert.ErrorIs(t, err, utils.ErrForbidden)
	})

	t.Run("unknown invitee", func(t *testing.T) {
		workspaceRepo := new(MockWorkspaceRepo)
		accountRepo := new(MockAccountRepo)
		service := NewWorkspaceService(workspaceRepo, accountRepo)

		workspaceRepo.On("FindByID", mock.Anything, workspaceID.String()).Return(workspace, nil)
		accountRepo.On("FindByID", mock.Anything, "ghost").Return(nil, nil)

		err := service.InviteMember(context.Background(), "owner", workspaceID.String(), "ghost")
		assert.ErrorIs(t, err, utils.ErrAccountNotFound)
	})

	t.Run("workspace missing", func(t *testing.T) {
		workspaceRepo := new(MockWorkspaceRepo)
		accountRepo := new(MockAccountRepo)
		service := NewWorkspaceService(workspaceRepo, accountRepo)

		workspaceRepo.On("FindByID", mock.Anything, workspaceID.String()).Return(nil, nil)

		err := service.InviteMember(context.Background(), "owner", workspaceID.String(), "friend")
		assert.ErrorIs(t, err, utils.ErrWorkspaceNotFound)
	})

	t.Run("owner invites", func(t *testing.T) {
		workspaceRepo := new(MockWorkspaceRepo)
		accountRepo := new(MockAccountRepo)
		service := NewWorkspaceService(workspaceRepo, accountRepo)

		fresh := &db_models.Workspace{OwnerID: "owner"}
		fresh.ID = workspaceID

		workspaceRepo.On("FindByID", mock.Anything, workspaceID.String()).Return(fresh, nil)
		accountRepo.On("FindByID", mock.Anything, "friend").Return(&db_models.Account{Name: "친구"}, nil)
		workspaceRepo.On("Update", mock.Anything, mock.MatchedBy(func(w *db_models.Workspace) bool {
			return w.HasMember("friend")
		})).Return(nil)

		err := service.InviteMember(context.Background(), "owner", workspaceID.String(), "friend")
		require.NoError(t, err)
		workspaceRepo.AssertExpectations(t)
	})
}
