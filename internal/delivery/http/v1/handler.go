package v1

import (
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// asNotFound maps a repository miss to a 404 that echoes the requested
// identifier; other errors pass through untouched.
func asNotFound(err error, message, id string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound(message, id)
	}
	return err
}

func callerEmail(c *gin.Context) string {
	return c.GetString(string(domain.KeyUserEmail))
}
