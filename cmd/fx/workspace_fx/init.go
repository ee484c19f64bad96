package workspace_fx

import (
	"go.uber.org/fx"
	"tripnote/internal/repositories"
	"tripnote/internal/services"
)

var Module = fx.Provide(
	provideWorkspaceService)

func provideWorkspaceService(workspaceRepo repositories.WorkspaceRepository, accountRepo repositories.AccountRepository) services.WorkspaceServiceInterface {
	return services.NewWorkspaceService(workspaceRepo, accountRepo)
}
