package schedule_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"tripnote/internal/repositories"
	"tripnote/internal/services"
	"tripnote/pkg/logger"
)

var Module = fx.Provide(
	provideWorkspaceRepo, provideScheduleRepo, provideUnitOfWork, provideScheduleService)

func provideWorkspaceRepo(db *gorm.DB) repositories.WorkspaceRepository {
	return repositories.NewWorkspaceRepository(db)
}

func provideScheduleRepo(db *gorm.DB) repositories.ScheduleRepository {
	return repositories.NewScheduleRepository(db)
}

func provideUnitOfWork(db *gorm.DB) repositories.ScheduleUnitOfWork {
	return repositories.NewScheduleUnitOfWork(db)
}

func provideScheduleService(
	llmClient services.LLMClientInterface,
	placesClient services.PlacesClientInterface,
	workspaceRepo repositories.WorkspaceRepository,
	scheduleRepo repositories.ScheduleRepository,
	uow repositories.ScheduleUnitOfWork,
	log logger.Logger,
) services.ScheduleServiceInterface {
	return services.NewScheduleService(llmClient, placesClient, workspaceRepo, scheduleRepo, uow, log)
}
