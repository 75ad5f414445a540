package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"pickme-backend/internal/delivery/http/response"
	"pickme-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				if appErr.Code >= http.StatusInternalServerError {
					slog.Error("request failed",
						"error", appErr.Error(),
						"path", c.FullPath(),
						"request_id", c.GetString("RequestID"),
					)
				}
				response.Error(c, appErr.Code, appErr.Message, nil)
				return
			}

			// Never expose internal error details to clients. Log the actual
			// error server-side and send a generic message to the user.
			slog.Error("unhandled error",
				"error", err.Error(),
				"path", c.FullPath(),
				"request_id", c.GetString("RequestID"),
			)
			response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
		}
	}
}
