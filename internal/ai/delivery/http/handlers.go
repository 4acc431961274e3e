package http

import (
	"github.com/gin-gonic/gin"

	"ai-task-manager/internal/middleware"
	"ai-task-manager/pkg/response"
)

// ParseTask godoc
// @Summary     Create a task from natural language
// @Description Extracts a task from free text, resolves relative due dates, and persists it for the caller.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body parseReq true "Natural-language description"
// @Success     201 {object} parseResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     502 {object} response.Resp "Bad Gateway - model failure"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/ai/parse-task [POST]
func (h *handler) ParseTask(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ParseTask(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ParseTask: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, h.newParseResp(output))
}

// Suggest godoc
// @Summary     Suggest tasks
// @Description Proposes new tasks based on the caller's recent ones. Nothing is persisted.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body suggestReq true "Suggestion options"
// @Success     200 {object} suggestResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     502 {object} response.Resp "Bad Gateway - model failure"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/ai/suggestions [POST]
func (h *handler) Suggest(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processSuggestReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.SuggestTasks(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SuggestTasks: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSuggestResp(output))
}

// Enhance godoc
// @Summary     Enhance a task description
// @Description Rewrites a description to be clear and actionable.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body enhanceReq true "Title and current description"
// @Success     200 {object} enhanceResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     502 {object} response.Resp "Bad Gateway - model failure"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/ai/enhance [POST]
func (h *handler) Enhance(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processEnhanceReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.EnhanceDescription(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.EnhanceDescription: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newEnhanceResp(output))
}

// Search godoc
// @Summary     Semantic task search
// @Description Finds the caller's tasks nearest to the query by meaning.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body searchReq true "Search query"
// @Success     200 {object} searchResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     503 {object} response.Resp "Service Unavailable - search not configured"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/ai/search [POST]
func (h *handler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processSearchReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.SemanticSearch(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SemanticSearch: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSearchResp(output))
}
