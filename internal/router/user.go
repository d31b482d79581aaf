package router

import (
	"github.com/MentorBridge/backend/internal/constants"
	"github.com/MentorBridge/backend/internal/dto"
	"github.com/gin-gonic/gin"
)

func (r *Router) userRoutes(api *gin.RouterGroup) {
	users := api.Group("/users")
	users.Use(r.jwtMw.RequireAuth())
	{
		users.GET("/profile", r.userHandler.GetProfile)
		users.PUT("/profile",
			r.validMw.ValidateRequestBody(func() interface{} { return &dto.UpdateProfileRequest{} }),
			r.userHandler.UpdateProfile)

		users.GET("/mentors", r.userHandler.GetMentors)
		users.GET("/mentees", r.jwtMw.RequireRole(constants.RoleMentor), r.userHandler.GetMentees)
		users.GET("/search", r.userHandler.Search)
		users.GET("/stats", r.userHandler.GetStats)

		users.DELETE("/account", r.userHandler.DeactivateAccount)

		// Registered last so the static siblings above take precedence.
		users.GET("/:id", r.userHandler.GetByID)
	}
}
