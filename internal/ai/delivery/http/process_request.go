package http

import (
	"github.com/gin-gonic/gin"
)

// processParseReq binds and validates the parse-task request body.
func (h *handler) processParseReq(c *gin.Context) (parseReq, error) {
	var req parseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processSuggestReq binds and validates the suggestions request body.
func (h *handler) processSuggestReq(c *gin.Context) (suggestReq, error) {
	var req suggestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processEnhanceReq binds and validates the enhance request body.
func (h *handler) processEnhanceReq(c *gin.Context) (enhanceReq, error) {
	var req enhanceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processSearchReq binds and validates the semantic search request body.
func (h *handler) processSearchReq(c *gin.Context) (searchReq, error) {
	var req searchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
