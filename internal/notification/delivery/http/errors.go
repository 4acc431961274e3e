package http

import (
	"ai-task-manager/internal/notification"
	pkgErrors "ai-task-manager/pkg/errors"
)

// mapError translates notification domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case notification.ErrTaskNotFound:
		return pkgErrors.NewHTTPError(404, "task not found")
	case notification.ErrMailerUnavailable:
		return pkgErrors.NewHTTPError(503, "email is not configured")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
