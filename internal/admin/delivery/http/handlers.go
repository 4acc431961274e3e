package http

import (
	"github.com/gin-gonic/gin"

	"ai-task-manager/internal/middleware"
	"ai-task-manager/pkg/response"
)

// Stats godoc
// @Summary     Admin dashboard statistics
// @Description Returns user counts and task aggregates across every account.
// @Tags        Admin
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} statsResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/admin/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.Stats(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Stats: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newStatsResp(output))
}

// ListUsers godoc
// @Summary     List accounts
// @Description Returns one page of accounts with their task counts.
// @Tags        Admin
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default: 1)"
// @Param       page_size query int false "Page size (default: 20, max: 100)"
// @Success     200 {object} listUsersResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/admin/users [GET]
func (h *handler) ListUsers(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processListUsersReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ListUsers(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListUsers: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListUsersResp(output))
}

// UserDetail godoc
// @Summary     Get account detail
// @Description Returns one account with its task count.
// @Tags        Admin
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "User ID"
// @Success     200 {object} userDetailResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/admin/users/{id} [GET]
func (h *handler) UserDetail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.UserDetail(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.UserDetail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newUserDetailResp(output))
}

// UpdateUser godoc
// @Summary     Update an account
// @Description Partially updates an account's name or role.
// @Tags        Admin
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path string        true "User ID"
// @Param       body body updateUserReq true "Fields to update"
// @Success     200 {object} updateUserResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/admin/users/{id} [PUT]
func (h *handler) UpdateUser(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processUpdateUserReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.UpdateUser(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateUser: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newUpdateUserResp(output))
}

// DeleteUser godoc
// @Summary     Delete an account
// @Description Removes an account and every task it owns.
// @Tags        Admin
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "User ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/admin/users/{id} [DELETE]
func (h *handler) DeleteUser(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	if err := h.uc.DeleteUser(ctx, sc, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.DeleteUser: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
