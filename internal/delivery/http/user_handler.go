package http

import (
	"errors"
	"strconv"

	"hod-management-backend/internal/dto"
	"hod-management-backend/internal/helper"
	"hod-management-backend/internal/middleware"
	"hod-management-backend/internal/repository"
	"hod-management-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	usecase *usecase.UserUsecase
}

func NewUserHandler(u *usecase.UserUsecase) *UserHandler {
	return &UserHandler{usecase: u}
}

func (h *UserHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginRequest
	if err := c.BodyParser(&input); err != nil || input.Username == "" || input.Password == "" {
		return helper.BadRequest(c, "Username/Email and password are required")
	}

	res, err := h.usecase.Login(input.Username, input.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
		}
		return helper.ServerError(c, err)
	}
	return c.JSON(res)
}

func (h *UserHandler) Verify(c *fiber.Ctx) error {
	token := c.Get(fiber.HeaderAuthorization)
	if token == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "No token provided"})
	}
	if _, err := h.usecase.ParseToken(token); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"valid": true})
}

// Me answers for the session user, or for ?userId= on anonymous calls.
func (h *UserHandler) Me(c *fiber.Ctx) error {
	var userID uint
	if s := middleware.Session(c); s != nil {
		userID = s.UserID
	} else if id, err := strconv.ParseUint(c.Query("userId"), 10, 64); err == nil {
		userID = uint(id)
	}
	if userID == 0 {
		return helper.BadRequest(c, "User ID required")
	}

	profile, err := h.usecase.Me(userID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return helper.ServerError(c, err)
	}
	return c.JSON(profile)
}

func (h *UserHandler) ChangePassword(c *fiber.Ctx) error {
	var input dto.ChangePasswordRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.BadRequest(c, "Invalid request body")
	}
	if s := middleware.Session(c); s != nil {
		input.UserID = s.UserID
	}
	if input.UserID == 0 || input.CurrentPassword == "" || input.NewPassword == "" {
		return helper.BadRequest(c, "All fields are required")
	}

	err := h.usecase.ChangePassword(input.UserID, input.CurrentPassword, input.NewPassword)
	switch {
	case err == nil:
		return c.JSON(fiber.Map{"success": true, "message": "Password changed successfully"})
	case errors.Is(err, usecase.ErrPasswordTooShort):
		return helper.BadRequest(c, err.Error())
	case errors.Is(err, usecase.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, usecase.ErrWrongPassword):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	default:
		return helper.ServerError(c, err)
	}
}

func isRegistrationInputError(err error) bool {
	for _, target := range []error{
		usecase.ErrUserExists,
		usecase.ErrInvalidRole,
		usecase.ErrCategoryRequired,
		usecase.ErrHODRequired,
		repository.ErrInvalidCategory,
		repository.ErrInvalidHOD,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// RegisterUser creates an account together with its HOD or staff row.
// Storage failures are reported with their own message.
func (h *UserHandler) RegisterUser(c *fiber.Ctx) error {
	var input dto.RegisterUserRequest
	if ok, err := helper.Bind(c, &input); !ok {
		return err
	}

	user, err := h.usecase.Register(usecase.RegisterInput{
		Username:   input.Username,
		Email:      input.Email,
		Password:   input.Password,
		Name:       input.Name,
		Role:       input.Role,
		HODID:      input.HODID,
		StaffID:    input.StaffID,
		CategoryID: input.CategoryID,
	})
	if err != nil {
		if isRegistrationInputError(err) {
			return helper.BadRequest(c, err.Error())
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"id":      user.ID,
		"message": "User registered successfully. Registration email sent.",
		"user": fiber.Map{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
			"name":     user.Name,
			"role":     user.Role,
			"hod_id":   user.HODID,
			"staff_id": user.StaffID,
		},
	})
}

func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.usecase.ListActive()
	if err != nil {
		return helper.ServerError(c, err)
	}
	return c.JSON(users)
}
