package http

import (
	"ai-task-manager/internal/admin"
	pkgErrors "ai-task-manager/pkg/errors"
)

// mapError translates admin domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case admin.ErrForbidden:
		return pkgErrors.NewHTTPError(403, "admin access required")
	case admin.ErrUserNotFound:
		return pkgErrors.NewHTTPError(404, "user not found")
	case admin.ErrInvalidRole:
		return pkgErrors.NewHTTPError(400, "invalid role")
	case admin.ErrCannotDeleteSelf:
		return pkgErrors.NewHTTPError(400, "cannot delete your own account")
	case admin.ErrNoFieldsToUpdate:
		return pkgErrors.NewHTTPError(400, "no fields to update")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
