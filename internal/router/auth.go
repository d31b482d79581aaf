package router

import (
	"github.com/MentorBridge/backend/internal/dto"
	"github.com/gin-gonic/gin"
)

func (r *Router) authRoutes(api *gin.RouterGroup) {
	auth := api.Group("/auth")
	{
		// Public routes (no authentication required)
		auth.POST("/register",
			r.validMw.ValidateRequestBody(func() interface{} { return &dto.RegisterRequest{} }),
			r.authHandler.Register)
		auth.POST("/login",
			r.validMw.ValidateRequestBody(func() interface{} { return &dto.LoginRequest{} }),
			r.authHandler.Login)

		// Protected routes (JWT authentication required)
		protected := auth.Group("")
		protected.Use(r.jwtMw.RequireAuth())
		{
			protected.GET("/me", r.authHandler.Me)
			protected.PUT("/change-password",
				r.validMw.ValidateRequestBody(func() interface{} { return &dto.ChangePasswordRequest{} }),
				r.authHandler.ChangePassword)
			protected.POST("/logout", r.authHandler.Logout)
			protected.GET("/verify-token", r.authHandler.VerifyToken)
		}
	}
}
