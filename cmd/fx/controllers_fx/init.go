package controllers_fx

import (
	"go.uber.org/fx"
	"tripnote/internal/api/controllers"
	"tripnote/internal/services"
)

var Module = fx.Provide(
	provideAccountController, provideScheduleController, provideWorkspaceController)

func provideAccountController(accountService services.AccountServiceInterface) *controllers.AccountController {
	return controllers.NewAccountController(accountService)
}

func provideScheduleController(scheduleService services.ScheduleServiceInterface) *controllers.ScheduleController {
	return controllers.NewScheduleController(scheduleService)
}

func provideWorkspaceController(workspaceService services.WorkspaceServiceInterface) *controllers.WorkspaceController {
	return controllers.NewWorkspaceController(workspaceService)
}
