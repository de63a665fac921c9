package middleware

import (
	"context"

	"go-culturematch-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// Identity copies the caller identity asserted by the API gateway
// (X-User-ID / X-User-Role) and the preferred locale into the request
// context. Authentication itself happens upstream; this service only
// consumes the already-verified identity headers.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader("X-User-ID")
		role := c.GetHeader("X-User-Role")
		locale := c.GetHeader("Accept-Language")
		if locale == "" {
			locale = c.Query("lang")
		}

		// Gin handler shortcuts (c.GetString) read from Keys.
		c.Set(string(domain.KeyUserID), userID)
		c.Set(string(domain.KeyUserRole), role)
		c.Set(string(domain.KeyLocale), locale)

		// Usecases receive a plain context.Context and read typed keys.
		ctx := c.Request.Context()
		ctx = context.WithValue(ctx, domain.KeyUserID, userID)
		ctx = context.WithValue(ctx, domain.KeyUserRole, role)
		ctx = context.WithValue(ctx, domain.KeyLocale, locale)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
