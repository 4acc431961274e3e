package http

import (
	"ai-task-manager/internal/auth"
	pkgErrors "ai-task-manager/pkg/errors"
)

// mapError translates auth domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case auth.ErrEmailTaken:
		return pkgErrors.NewHTTPError(409, "email already registered")
	case auth.ErrInvalidCredentials:
		return pkgErrors.NewHTTPError(401, "invalid email or password")
	case auth.ErrInvalidToken:
		return pkgErrors.NewHTTPError(401, "invalid or expired token")
	case auth.ErrWeakPassword:
		return pkgErrors.NewHTTPError(400, "password must be at least 8 characters")
	case auth.ErrUserNotFound:
		return pkgErrors.NewHTTPError(404, "user not found")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
