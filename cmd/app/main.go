package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"tripnote/cmd/fx/account_fx"
	"tripnote/cmd/fx/controllers_fx"
	"tripnote/cmd/fx/db_fx"
	"tripnote/cmd/fx/llm_fx"
	"tripnote/cmd/fx/logger_fx"
	"tripnote/cmd/fx/places_fx"
	"tripnote/cmd/fx/schedule_fx"
	"tripnote/cmd/fx/workspace_fx"
	"tripnote/internal/api/controllers"
	"tripnote/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	app := fx.New(
		logger_fx.Module,
		db_fx.Module,
		account_fx.Module,
		llm_fx.Module,
		places_fx.Module,
		schedule_fx.Module,
		workspace_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	scheduleController *controllers.ScheduleController,
	workspaceController *controllers.WorkspaceController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, accountController, scheduleController, workspaceController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	scheduleController *controllers.ScheduleController,
	workspaceController *controllers.WorkspaceController) {

	accountGroup := r.Group("/accounts")
	accountGroup.POST("/register", accountController.Register)
	accountGroup.POST("/login", accountController.Login)

	scheduleGroup := r.Group("/schedules")
	scheduleGroup.Use(middleware.JWTAuthMiddleware())
	scheduleGroup.POST("/recommend", scheduleController.RecommendSchedule)
	scheduleGroup.POST("", scheduleController.CreateSchedule)
	scheduleGroup.GET("", scheduleController.GetSchedule)

	workspaceGroup := r.Group("/workspaces")
	workspaceGroup.Use(middleware.JWTAuthMiddleware())
	workspaceGroup.GET("", workspaceController.GetMyWorkspaces)
	workspaceGroup.POST("/invite", workspaceController.InviteMember)
}
