package middleware

import (
	"errors"
	"net/http"

	"jobready-backend/internal/delivery/http/response"
	"jobready-backend/pkg/apperror"
	"jobready-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Code >= http.StatusInternalServerError && appErr.Err != nil {
				logger.Log.Errorw("Request failed",
					"path", c.Request.URL.Path,
					"request_id", c.GetString("RequestID"),
					"error", appErr.Err,
				)
			}
			response.Error(c, appErr.Code, appErr.Message, appErr.Details)
			return
		}

		// Internal details stay in the log.
		logger.Log.Errorw("Internal server error",
			"path", c.Request.URL.Path,
			"request_id", c.GetString("RequestID"),
			"error", err,
		)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
