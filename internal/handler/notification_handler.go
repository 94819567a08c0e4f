package handler

import (
	"errors"
	"fmt"
	"log"
	"strconv"

	"hod-management-backend/internal/dto"
	"hod-management-backend/internal/helper"
	"hod-management-backend/internal/middleware"
	"hod-management-backend/internal/model"
	"hod-management-backend/internal/repository"
	"hod-management-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type NotificationHandler struct {
	repo    repository.NotificationRepository
	usecase *usecase.NotificationUsecase
}

func NewNotificationHandler(repo repository.NotificationRepository, uc *usecase.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{repo: repo, usecase: uc}
}

// inboxOwner is the session user, else the userId query parameter. Nil means
// the broadcast inbox.
func inboxOwner(c *fiber.Ctx) *uint {
	if s := middleware.Session(c); s != nil {
		id := s.UserID
		return &id
	}
	if raw := c.Query("userId"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
			v := uint(id)
			return &v
		}
	}
	return nil
}

func isSendInputError(err error) bool {
	return errors.Is(err, usecase.ErrMissingFields) ||
		errors.Is(err, usecase.ErrRoleRequired) ||
		errors.Is(err, usecase.ErrUserIDRequired) ||
		errors.Is(err, usecase.ErrNoRecipients)
}

// GetNotifications never fails the request; a broken store yields an empty inbox.
func (h *NotificationHandler) GetNotifications(c *fiber.Ctx) error {
	rows, err := h.repo.GetNotifications(inboxOwner(c))
	if err != nil {
		log.Printf("Notifications error: %v", err)
		return c.JSON([]model.Notification{})
	}
	return c.JSON(rows)
}

func (h *NotificationHandler) MarkNotificationRead(c *fiber.Ctx) error {
	id, ok := helper.ParamID(c, "id")
	if !ok {
		return helper.InvalidID(c)
	}
	if err := h.repo.MarkNotificationRead(id); err != nil {
		return helper.ServerError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *NotificationHandler) SendNotification(c *fiber.Ctx) error {
	var req dto.SendNotificationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.BadRequest(c, "Invalid request body")
	}

	n, err := h.usecase.SendNotification(usecase.NotificationInput{
		Type:     req.Type,
		Title:    req.Title,
		Message:  req.Message,
		Audience: usecase.Audience{Type: req.RecipientType, Role: req.Role, UserID: req.UserID},
	})
	if err != nil {
		if isSendInputError(err) {
			return helper.BadRequest(c, err.Error())
		}
		return helper.ServerError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "message": fmt.Sprintf("Notification sent to %d user(s)", n)})
}

func (h *NotificationHandler) GetMessages(c *fiber.Ctx) error {
	rows, err := h.repo.GetMessages(inboxOwner(c))
	if err != nil {
		log.Printf("Messages error: %v", err)
		return c.JSON([]model.MessageListItem{})
	}
	return c.JSON(rows)
}

func (h *NotificationHandler) MarkMessageRead(c *fiber.Ctx) error {
	id, ok := helper.ParamID(c, "id")
	if !ok {
		return helper.InvalidID(c)
	}
	if err := h.repo.MarkMessageRead(id); err != nil {
		return helper.ServerError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *NotificationHandler) SendMessage(c *fiber.Ctx) error {
	var req dto.SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.BadRequest(c, "Invalid request body")
	}

	var from *uint
	if s := middleware.Session(c); s != nil {
		id := s.UserID
		from = &id
	}

	n, err := h.usecase.SendMessage(usecase.MessageInput{
		Subject:  req.Subject,
		Message:  req.Message,
		Audience: usecase.Audience{Type: req.RecipientType, Role: req.Role, UserID: req.UserID},
	}, from)
	if err != nil {
		if isSendInputError(err) {
			return helper.BadRequest(c, err.Error())
		}
		return helper.ServerError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "message": fmt.Sprintf("Message sent to %d user(s)", n)})
}
