package response

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody is the JSON shape of every failed request.
type ErrorBody struct {
	Message   string      `json:"message"`
	Error     interface{} `json:"error,omitempty"`
	RequestID string      `json:"requestId,omitempty"`
}

// Success writes data as the bare response body.
func Success(c *gin.Context, code int, data interface{}) {
	c.JSON(code, data)
}

// Error sends an error response
func Error(c *gin.Context, code int, message string, err interface{}) {
	reqID, _ := c.Get("RequestID")
	idStr, _ := reqID.(string)

	c.JSON(code, ErrorBody{
		Message:   message,
		Error:     err,
		RequestID: idStr,
	})
}
