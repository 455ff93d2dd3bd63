package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/majoduan/poa-backend/internal/handlers"
	"github.com/majoduan/poa-backend/internal/middleware"
	"github.com/majoduan/poa-backend/internal/repositories"
	"github.com/majoduan/poa-backend/internal/services"
	"github.com/majoduan/poa-backend/pkg/config"
	"github.com/majoduan/poa-backend/pkg/database"
	"github.com/majoduan/poa-backend/pkg/logger"
)

func main() {
	// Load configuration
	if err := config.Load(); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	gin.SetMode(config.AppConfig.Server.Mode)
	logger.Init()

	// Initialize database
	if err := database.Init(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	// Repositories
	userRepo := repositories.NewUserRepository(database.DB)
	roleRepo := repositories.NewRoleRepository(database.DB)
	projectRepo := repositories.NewProjectRepository(database.DB)
	projectTypeRepo := repositories.NewProjectTypeRepository(database.DB)
	projectStatusRepo := repositories.NewProjectStatusRepository(database.DB)
	periodRepo := repositories.NewPeriodRepository(database.DB)
	poaRepo := repositories.NewPOARepository(database.DB)
	poaTypeRepo := repositories.NewPOATypeRepository(database.DB)
	poaStatusRepo := repositories.NewPOAStatusRepository(database.DB)
	activityRepo := repositories.NewActivityRepository(database.DB)
	taskRepo := repositories.NewTaskRepository(database.DB)
	taskDetailRepo := repositories.NewTaskDetailRepository(database.DB)
	budgetItemRepo := repositories.NewBudgetItemRepository(database.DB)
	scheduleRepo := repositories.NewMonthlyScheduleRepository(database.DB)
	reformRepo := repositories.NewReformRepository(database.DB)

	// Business rule store backed by the repositories
	store := repositories.NewSQLStore(projectTypeRepo, projectStatusRepo, projectRepo, periodRepo,
		poaTypeRepo, poaRepo, roleRepo, userRepo, activityRepo, taskDetailRepo, taskRepo)

	// Services
	userService := services.NewUserService(userRepo, roleRepo, store)
	projectService := services.NewProjectService(projectRepo, store)
	periodService := services.NewPeriodService(periodRepo, store)
	poaService := services.NewPOAService(poaRepo, store)
	activityService := services.NewActivityService(activityRepo, store)
	taskService := services.NewTaskService(taskRepo, activityRepo, scheduleRepo, store)
	scheduleService := services.NewMonthlyScheduleService(scheduleRepo, store)
	reformService := services.NewReformService(reformRepo, poaRepo, store)
	reportService := services.NewReportService(poaService, projectService, periodService,
		activityRepo, taskRepo, scheduleRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService)
	projectHandler := handlers.NewProjectHandler(projectService)
	periodHandler := handlers.NewPeriodHandler(periodService)
	poaHandler := handlers.NewPOAHandler(poaService)
	activityHandler := handlers.NewActivityHandler(activityService)
	taskHandler := handlers.NewTaskHandler(taskService)
	scheduleHandler := handlers.NewMonthlyScheduleHandler(scheduleService)
	reformHandler := handlers.NewReformHandler(reformService)
	reportHandler := handlers.NewReportHandler(reportService, poaService)
	catalogHandler := handlers.NewCatalogHandler(userService, projectTypeRepo, projectStatusRepo,
		poaTypeRepo, poaStatusRepo, taskDetailRepo, budgetItemRepo)
	healthHandler := handlers.NewHealthHandler(database.DB)

	// Initialize router
	router := gin.Default()

	setupRoutes(router, authHandler, projectHandler, periodHandler, poaHandler, activityHandler,
		taskHandler, scheduleHandler, reformHandler, reportHandler, catalogHandler, healthHandler)

	// Setup server
	server := &http.Server{
		Addr:         ":" + config.AppConfig.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(config.AppConfig.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(config.AppConfig.Server.WriteTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Infof("Server starting on :%s", config.AppConfig.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("Forced shutdown")
	}
	logger.Info("Server stopped")
}

func setupRoutes(router *gin.Engine, authHandler *handlers.AuthHandler, projectHandler *handlers.ProjectHandler,
	periodHandler *handlers.PeriodHandler, poaHandler *handlers.POAHandler, activityHandler *handlers.ActivityHandler,
	taskHandler *handlers.TaskHandler, scheduleHandler *handlers.MonthlyScheduleHandler,
	reformHandler *handlers.ReformHandler, reportHandler *handlers.ReportHandler,
	catalogHandler *handlers.CatalogHandler, healthHandler *handlers.HealthHandler) {

	// Public routes
	router.POST("/login", authHandler.Login)
	router.POST("/register", authHandler.Register)
	router.GET("/health", healthHandler.HealthCheck)

	// Authenticated API
	api := router.Group("/")
	api.Use(middleware.RequireAuth())
	{
		api.GET("/profile", authHandler.Profile)

		// Catalogs
		api.GET("/roles", catalogHandler.ListRoles)
		api.GET("/project-types", catalogHandler.ListProjectTypes)
		api.GET("/project-statuses", catalogHandler.ListProjectStatuses)
		api.GET("/poa-types", catalogHandler.ListPOATypes)
		api.GET("/poa-statuses", catalogHandler.ListPOAStatuses)
		api.GET("/task-details", catalogHandler.ListTaskDetails)

		// Projects
		api.POST("/projects", projectHandler.CreateProject)
		api.GET("/projects", projectHandler.ListProjects)
		api.GET("/projects/:id", projectHandler.GetProject)
		api.PUT("/projects/:id", projectHandler.UpdateProject)
		api.GET("/projects/:id/poas", poaHandler.ListProjectPOAs)

		// Periods
		api.POST("/periods", periodHandler.CreatePeriod)
		api.GET("/periods", periodHandler.ListPeriods)
		api.GET("/periods/:id", periodHandler.GetPeriod)
		api.PUT("/periods/:id", periodHandler.UpdatePeriod)

		// POAs
		api.POST("/poas", poaHandler.CreatePOA)
		api.GET("/poas", poaHandler.ListPOAs)
		api.GET("/poas/:id", poaHandler.GetPOA)
		api.PUT("/poas/:id", poaHandler.UpdatePOA)
		api.GET("/poas/:id/report.xlsx", reportHandler.DownloadPOAReport)

		// Activities
		api.POST("/poas/:id/activities", activityHandler.CreateActivities)
		api.GET("/poas/:id/activities", activityHandler.ListPOAActivities)
		api.PUT("/activities/:id", activityHandler.UpdateActivity)
		api.DELETE("/activities/:id", activityHandler.DeleteActivity)

		// Tasks
		api.POST("/activities/:id/tasks", taskHandler.CreateTask)
		api.GET("/activities/:id/tasks", taskHandler.ListActivityTasks)
		api.GET("/tasks/:id", taskHandler.GetTask)
		api.PUT("/tasks/:id", taskHandler.UpdateTask)
		api.DELETE("/tasks/:id", taskHandler.DeleteTask)
		api.GET("/tasks/:id/budget-item", catalogHandler.GetTaskBudgetItem)

		// Monthly schedules
		api.POST("/monthly-schedules", scheduleHandler.CreateSchedule)
		api.PUT("/monthly-schedules/:id", scheduleHandler.UpdateSchedule)
		api.GET("/tasks/:id/monthly-schedules", scheduleHandler.ListTaskSchedules)

		// Reforms
		api.POST("/poas/:id/reforms", reformHandler.CreateReform)
		api.GET("/poas/:id/reforms", reformHandler.ListPOAReforms)
		api.GET("/reforms/:id", reformHandler.GetReform)
		api.POST("/reforms/:id/approve", reformHandler.ApproveReform)
	}
}
