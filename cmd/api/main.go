package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hod-management-backend/config"
	"hod-management-backend/internal/database"
	"hod-management-backend/internal/mailer"
	"hod-management-backend/internal/middleware"
	"hod-management-backend/internal/repository"
	"hod-management-backend/internal/routes"
	"hod-management-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if logFile := config.InitLogging(cfg.LogFile); logFile != nil {
		defer logFile.Close()
	}

	db, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	users := usecase.NewUserUsecase(repository.NewUserRepository(db), mailer.New(cfg), cfg)

	app := fiber.New(fiber.Config{AppName: "HOD Management API"})

	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(middleware.RequestID())
	app.Use(logger.New(logger.Config{
		Format: "${time} [${locals:request_id}] ${status} - ${latency} ${method} ${path}\n",
		Output: config.LogWriter,
	}))

	routes.SetupHealthRoutes(app)
	routes.SetupAuthRoutes(app, users)
	routes.SetupUserRoutes(app, users)
	routes.SetupDashboardRoutes(app, db, users, usecase.FallbacksFromConfig(cfg))
	routes.SetupCategoryRoutes(app, db)
	routes.SetupHODRoutes(app, db, users)
	routes.SetupSchemeRoutes(app, db, users)
	routes.SetupStaffRoutes(app, db, users)
	routes.SetupBudgetRoutes(app, db, users)
	routes.SetupReportRoutes(app, db, users)
	routes.SetupAttendanceRoutes(app, db, users)
	routes.SetupRevenueRoutes(app, db, users)
	routes.SetupKPIRoutes(app, db, users)
	routes.SetupNodalOfficerRoutes(app, db)
	routes.SetupLocationRoutes(app, db)
	routes.SetupSearchRoutes(app, db)
	routes.SetupNotificationRoutes(app, db, users)

	go func() {
		log.Printf("Server running on port %s", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Println("Server stopped")
}
