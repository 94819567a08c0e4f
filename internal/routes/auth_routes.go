package routes

import (
	delivery "hod-management-backend/internal/delivery/http"
	"hod-management-backend/internal/middleware"
	"hod-management-backend/internal/model"
	"hod-management-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App, users *usecase.UserUsecase) {
	hdl := delivery.NewUserHandler(users)

	api := app.Group("/api/auth", middleware.OptionalAuth(users))
	api.Post("/login", hdl.Login)
	api.Get("/verify", hdl.Verify)
	api.Get("/me", hdl.Me)
	api.Post("/change-password", hdl.ChangePassword)
	api.Post("/register-user", middleware.Auth(users), middleware.Role(model.RoleAdmin), hdl.RegisterUser)
}

func SetupUserRoutes(app *fiber.App, users *usecase.UserUsecase) {
	hdl := delivery.NewUserHandler(users)

	api := app.Group("/api/users", middleware.Auth(users), middleware.Role(model.RoleAdmin))
	api.Get("/", hdl.ListUsers)
}
