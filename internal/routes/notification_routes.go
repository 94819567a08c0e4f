package routes

import (
	"hod-management-backend/internal/handler"
	"hod-management-backend/internal/middleware"
	"hod-management-backend/internal/model"
	"hod-management-backend/internal/repository"
	"hod-management-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupNotificationRoutes(app *fiber.App, db *gorm.DB, sessions middleware.TokenParser) {
	repo := repository.NewNotificationRepository(db)
	uc := usecase.NewNotificationUsecase(repository.NewUserRepository(db), repo)
	hdl := handler.NewNotificationHandler(repo, uc)

	adminOnly := []fiber.Handler{middleware.Auth(sessions), middleware.Role(model.RoleAdmin)}

	notifications := app.Group("/api/notifications", middleware.OptionalAuth(sessions))
	notifications.Get("/", hdl.GetNotifications)
	notifications.Put("/:id/read", hdl.MarkNotificationRead)
	notifications.Post("/send", append(adminOnly, hdl.SendNotification)...)

	messages := app.Group("/api/messages", middleware.OptionalAuth(sessions))
	messages.Get("/", hdl.GetMessages)
	messages.Put("/:id/read", hdl.MarkMessageRead)
	messages.Post("/send", append(adminOnly, hdl.SendMessage)...)
}
