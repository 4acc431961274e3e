package http

import (
	"github.com/gin-gonic/gin"
)

// processListUsersReq binds the user list query parameters.
func (h *handler) processListUsersReq(c *gin.Context) (listUsersReq, error) {
	var req listUsersReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processUpdateUserReq binds the update user request body + URI param.
func (h *handler) processUpdateUserReq(c *gin.Context) (updateUserReq, error) {
	var req updateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	return req, nil
}
