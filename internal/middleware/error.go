package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "farmledger/internal/errors"
	"farmledger/internal/logger"
	"farmledger/internal/metrics"
)

// ErrorHandler returns a Gin middleware that handles the errors a handler
// recorded with c.Error. Every error is counted by code and logged with the
// request id when it carries an internal cause; if the handler has not
// written a response yet, the error is rendered with WriteError.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		appErr := resolve(err)
		metrics.APIErrors.WithLabelValues(appErr.Code).Inc()

		if appErr.Internal != nil {
			logger.Get().Errorw("request failed",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"request_id", RequestID(c),
			)
		}

		if !c.Writer.Written() {
			WriteError(c, appErr)
		}
	}
}

// WriteError renders err as {"error": {"code", "message"}}. Errors that are
// not AppErrors are reported as a generic internal error.
func WriteError(c *gin.Context, err error) {
	appErr := resolve(err)
	c.JSON(appErr.StatusCode, gin.H{
		"error": gin.H{
			"code":    appErr.Code,
			"message": appErr.Message,
		},
	})
}

func resolve(err error) *apperrors.AppError {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return apperrors.Wrap(apperrors.ErrInternalServer, err)
}
