package handlers

import (
	"net/http"

	"numerica-backend/internal/domain/models"
	"numerica-backend/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// RespondPage emits the uniform list envelope every dashboard consumer
// parses: data plus pagination, success always true on this path.
func RespondPage(c *gin.Context, items any, pagination models.Pagination) {
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       items,
		"pagination": pagination,
	})
}

// RespondData emits the envelope for non-paginated payloads.
func RespondData(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
	})
}

// RespondError sends the failure envelope. No partial data travels with it.
func RespondError(c *gin.Context, status int, code, message string) {
	payload := gin.H{
		"success": false,
		"error":   message,
		"code":    code,
	}
	if reqID := middleware.GetRequestID(c); reqID != "" {
		payload["request_id"] = reqID
	}
	c.JSON(status, payload)
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "validation_error", "empty body")
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "validation_error", "invalid payload")
		return false
	}
	return true
}
