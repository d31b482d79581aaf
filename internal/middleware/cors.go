package middleware

import (
	"time"

	"github.com/MentorBridge/backend/internal/constants"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS configures cross-origin access for browser clients.
func CORS() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{
			constants.HeaderContentType,
			constants.HeaderAuthorization,
			constants.HeaderXRequestID,
			"Accept",
			"Origin",
			"Cache-Control",
			"X-Requested-With",
		},
		ExposeHeaders: []string{constants.HeaderXRequestID},
		MaxAge:        12 * time.Hour,
	})
}
