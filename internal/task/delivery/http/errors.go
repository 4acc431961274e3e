package http

import (
	"ai-task-manager/internal/task"
	pkgErrors "ai-task-manager/pkg/errors"
)

// mapError translates task domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case task.ErrTaskNotFound:
		return pkgErrors.NewHTTPError(404, "task not found")
	case task.ErrEmptyTitle:
		return pkgErrors.NewHTTPError(400, "task title is required")
	case task.ErrInvalidStatus:
		return pkgErrors.NewHTTPError(400, "invalid task status")
	case task.ErrInvalidPriority:
		return pkgErrors.NewHTTPError(400, "invalid task priority")
	case task.ErrNoFieldsToUpdate:
		return pkgErrors.NewHTTPError(400, "no fields to update")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
