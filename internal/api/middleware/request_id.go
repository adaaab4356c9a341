package middleware

import (
	"context"

	"curr-backend/internal/logger"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader is the header carrying the request id in both directions
const RequestIDHeader = "X-Request-ID"

// RequestID reuses the caller's X-Request-ID or generates one, and exposes it
// on the gin context, the request context and the response.
func RequestID() gin.HandlerFunc {
	return requestid.New(
		requestid.WithGenerator(uuid.NewString),
		requestid.WithCustomHeaderStrKey(RequestIDHeader),
		requestid.WithHandler(func(c *gin.Context, id string) {
			c.Set(string(logger.RequestIDKey), id)
			c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), logger.RequestIDKey, id))
		}),
	)
}
