package response

import (
	"github.com/gin-gonic/gin"
)

// Envelope is the uniform shape of every API outcome, success or failure.
type Envelope struct {
	Message    string `json:"message"`
	Data       any    `json:"data"`
	StatusCode int    `json:"statusCode"`
}

// JSON writes the envelope. The status code is always set explicitly by
// the caller; 200 for reads, updates and deletes, 201 for creates.
func JSON(c *gin.Context, code int, message string, data any) {
	if data == nil {
		data = gin.H{}
	}
	c.JSON(code, Envelope{
		Message:    message,
		Data:       data,
		StatusCode: code,
	})
}
