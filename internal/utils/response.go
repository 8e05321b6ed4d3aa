package utils

import (
	"github.com/gin-gonic/gin"
)

// Response defines the standard API response envelope.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Success writes a success response with the standard envelope.
func Success(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Error writes an error response with the standard envelope.
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Success: false,
		Message: message,
	})
}

// ErrorWithDetail writes an error response carrying the underlying error text.
// Used only outside production.
func ErrorWithDetail(c *gin.Context, code int, message string, err error) {
	resp := Response{Success: false, Message: message}
	if err != nil {
		resp.Error = err.Error()
	}
	c.JSON(code, resp)
}

// RequestID returns the id assigned by the logging middleware.
func RequestID(c *gin.Context) string {
	return c.GetString("request_id")
}
