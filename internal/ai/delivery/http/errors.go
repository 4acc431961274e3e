package http

import (
	"errors"

	"ai-task-manager/internal/ai"
	pkgErrors "ai-task-manager/pkg/errors"
	"ai-task-manager/pkg/llmprovider"
)

// mapError translates AI domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case err == ai.ErrEmptyText, err == ai.ErrEmptyQuery:
		return pkgErrors.NewHTTPError(400, err.Error())
	case err == ai.ErrBadModelOutput:
		return pkgErrors.NewHTTPError(502, "model returned unparseable output")
	case err == ai.ErrSearchUnavailable:
		return pkgErrors.NewHTTPError(503, "semantic search is not configured")
	case errors.Is(err, llmprovider.ErrNoProvidersConfigured):
		return pkgErrors.NewHTTPError(503, "no AI providers configured")
	case errors.Is(err, llmprovider.ErrAllProvidersFailed):
		return pkgErrors.NewHTTPError(502, "all AI providers failed")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
