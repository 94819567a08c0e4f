package dto

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type ChangePasswordRequest struct {
	UserID          uint   `json:"userId"`
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required"`
}

type RegisterUserRequest struct {
	Username   string `json:"username" validate:"required,max=100" conform:"trim"`
	Email      string `json:"email" validate:"required,email" conform:"email"`
	Password   string `json:"password" validate:"required"`
	Name       string `json:"name" validate:"required" conform:"trim"`
	Role       string `json:"role" validate:"required,oneof=admin hod staff"`
	HODID      *uint  `json:"hod_id"`
	StaffID    *uint  `json:"staff_id"`
	CategoryID *uint  `json:"category_id"`
}

type SendNotificationRequest struct {
	Type          string `json:"type"`
	Title         string `json:"title"`
	Message       string `json:"message"`
	RecipientType string `json:"recipientType"`
	Role          string `json:"role"`
	UserID        *uint  `json:"userId"`
}

type SendMessageRequest struct {
	Subject       string `json:"subject"`
	Message       string `json:"message"`
	RecipientType string `json:"recipientType"`
	Role          string `json:"role"`
	UserID        *uint  `json:"userId"`
}
