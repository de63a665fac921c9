package middleware

import (
	"errors"
	"net/http"

	"go-culturematch-backend/internal/delivery/http/response"
	"go-culturematch-backend/pkg/apperror"
	"go-culturematch-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				response.Error(c, appErr.Code, appErr.Message, nil)
				return
			}
			// Never expose internal error details to clients. Log the
			// actual error server-side and send a generic message.
			logger.Log.Error("Internal server error",
				"path", c.Request.URL.Path,
				"request_id", c.GetString("RequestID"),
				"error", err,
			)
			response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
		}
	}
}
