package http

import (
	"github.com/gin-gonic/gin"

	"ai-task-manager/internal/middleware"
	"ai-task-manager/internal/notification"
	"ai-task-manager/pkg/response"
)

type sendReminderReq struct {
	TaskID string `json:"task_id" binding:"required"`
}

type sendReminderResp struct {
	TaskID string `json:"task_id"`
	To     string `json:"to"`
}

// SendReminder godoc
// @Summary     Send a task reminder email
// @Description Mails the caller a reminder for one of their tasks.
// @Tags        Notification
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body sendReminderReq true "Task to remind about"
// @Success     200 {object} sendReminderResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     503 {object} response.Resp "Service Unavailable - email not configured"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/notifications/reminder [POST]
func (h *handler) SendReminder(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req sendReminderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.SendReminder(ctx, sc, notification.SendReminderInput{TaskID: req.TaskID})
	if err != nil {
		h.l.Errorf(ctx, "uc.SendReminder: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, sendReminderResp{TaskID: output.Task.ID, To: output.To})
}

// TestEmail godoc
// @Summary     Send a test email
// @Description Sends a throwaway reminder so the caller can verify mail settings.
// @Tags        Notification
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} response.Resp "OK"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     503 {object} response.Resp "Service Unavailable - email not configured"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/notifications/test [POST]
func (h *handler) TestEmail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	if err := h.uc.TestEmail(ctx, sc); err != nil {
		h.l.Errorf(ctx, "uc.TestEmail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
