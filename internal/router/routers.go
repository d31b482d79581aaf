package router

import (
	"time"

	"github.com/MentorBridge/backend/config"
	"github.com/MentorBridge/backend/internal/handler"
	"github.com/MentorBridge/backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type Router struct {
	authHandler   *handler.AuthHandler
	userHandler   *handler.UserHandler
	healthHandler *handler.HealthHandler

	validMw *middleware.ValidationMiddleware
	jwtMw   *middleware.JWTMiddleware
	config  *config.Config
}

func NewRouter(
	auth *handler.AuthHandler,
	user *handler.UserHandler,
	health *handler.HealthHandler,
	validMw *middleware.ValidationMiddleware,
	jwtMw *middleware.JWTMiddleware,
	config *config.Config,
) *Router {
	return &Router{
		authHandler:   auth,
		userHandler:   user,
		healthHandler: health,
		validMw:       validMw,
		jwtMw:         jwtMw,
		config:        config,
	}
}

func (r *Router) SetupRoutes() *gin.Engine {
	if r.config.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.LoggingMiddleware())
	router.Use(gin.Recovery())
	router.Use(middleware.RequestContextMiddleware())
	router.Use(middleware.RequestTimeoutMiddleware(r.config.App.Timeout))
	router.Use(middleware.CORS())

	api := router.Group("/api")
	{
		api.GET("/health", r.healthHandler.Health)

		api.Use(middleware.RateLimit(
			r.config.RateLimit.Request,
			time.Duration(r.config.RateLimit.Duration)*time.Second,
		))

		r.authRoutes(api)
		r.userRoutes(api)
	}

	return router
}
