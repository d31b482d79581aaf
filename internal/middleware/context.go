package middleware

import (
	"context"
	"time"

	"github.com/MentorBridge/backend/internal/constants"
	ctxutil "github.com/MentorBridge/backend/pkg/context"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestContextMiddleware seeds the request context with a request ID,
// client metadata and the start time, and echoes the request ID back in the
// response headers.
func RequestContextMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(constants.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		ctx := c.Request.Context()
		ctx = context.WithValue(ctx, ctxutil.RequestIDKey, requestID)
		ctx = context.WithValue(ctx, ctxutil.ClientIPKey, c.ClientIP())
		ctx = context.WithValue(ctx, ctxutil.UserAgentKey, c.GetHeader(constants.HeaderUserAgent))
		ctx = context.WithValue(ctx, ctxutil.StartTimeKey, time.Now())

		c.Request = c.Request.WithContext(ctx)
		c.Header(constants.HeaderXRequestID, requestID)

		c.Next()
	}
}

// RequestTimeoutMiddleware bounds each request's context lifetime.
func RequestTimeoutMiddleware(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := ctxutil.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
