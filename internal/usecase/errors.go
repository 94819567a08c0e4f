package usecase

import "errors"

var (
	ErrInvalidCredentials = errors.New("Invalid username/email or password")
	ErrUserNotFound       = errors.New("User not found")
	ErrWrongPassword      = errors.New("Current password is incorrect")
	ErrPasswordTooShort   = errors.New("New password must be at least 6 characters long")
	ErrUserExists         = errors.New("Username or email already exists")
	ErrInvalidRole        = errors.New("Invalid role")
	ErrCategoryRequired   = errors.New("Category is required for HOD")
	ErrHODRequired        = errors.New("HOD is required for Staff")
	ErrInvalidToken       = errors.New("Invalid or expired token")

	ErrMissingFields  = errors.New("All required fields must be provided")
	ErrRoleRequired   = errors.New("Role is required")
	ErrUserIDRequired = errors.New("User ID is required")
	ErrNoRecipients   = errors.New("No recipients found")
)
