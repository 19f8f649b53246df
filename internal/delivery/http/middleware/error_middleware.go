package middleware

import (
	"errors"
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) && appErr.Code < http.StatusInternalServerError {
				response.JSON(c, appErr.Code, appErr.Message, appErr.Data)
				return
			}
			// Never expose internal error details to clients. Log the
			// actual error server-side and send a generic envelope.
			logger.Log.Error("internal server error", "error", err, "path", c.Request.URL.Path)
			response.JSON(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
		}
	}
}
