package handlers

import (
	"net/http"

	"backoffice/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// Respond wraps successful payloads in the standard envelope.
func Respond(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}

// RespondError sends the failure envelope with request_id included. The form
// keeps its unsaved edits on failure, so no partial data is echoed back.
func RespondError(c *gin.Context, status int, message string, err error) {
	payload := gin.H{
		"success":    false,
		"error":      message,
		"request_id": middleware.GetRequestID(c),
	}
	if err != nil {
		payload["detail"] = err.Error()
	}
	c.JSON(status, payload)
}

// BindJSONOrError ensures the body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "empty body", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid payload", err)
		return false
	}
	return true
}
