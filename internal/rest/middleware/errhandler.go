package middleware

import (
	ierr "github.com/flexprice/rentalbilling/internal/errors"
	"github.com/flexprice/rentalbilling/internal/logger"
	"github.com/gin-gonic/gin"
)

// ErrorHandler middleware renders the last error a handler attached to the
// context. Server side failures are logged with the full error chain.
func ErrorHandler(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		status := ierr.HTTPStatusFromErr(err)

		if status >= 500 && log != nil {
			log.WithContext(c.Request.Context()).Errorw("request failed",
				"path", c.FullPath(),
				"status", status,
				"error", err,
			)
		}

		c.JSON(status, ierr.ErrorResponse{
			Success: false,
			Error:   ierr.NewErrorDetail(err),
		})
	}
}
