package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrDocumentTaken      = errors.New("document number already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTooManyAttempts    = errors.New("too many login attempts")

	ErrRoleNotFound     = errors.New("role not found")
	ErrMenuNotFound     = errors.New("menu not found")
	ErrMenuItemNotFound = errors.New("menu item not found")
	ErrModuleNotFound   = errors.New("module not found")
	ErrProductNotFound  = errors.New("product not found")
)
