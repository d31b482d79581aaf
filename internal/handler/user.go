package handler

import (
	"net/http"
	"strings"

	"github.com/MentorBridge/backend/internal/constants"
	"github.com/MentorBridge/backend/internal/dto"
	apperrors "github.com/MentorBridge/backend/internal/errors"
	"github.com/MentorBridge/backend/internal/middleware"
	"github.com/MentorBridge/backend/internal/service"
	ctxutil "github.com/MentorBridge/backend/pkg/context"
	"github.com/MentorBridge/backend/pkg/logger"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// GetProfile returns the authenticated user's own record
func (h *UserHandler) GetProfile(c *gin.Context) {
	ctx := ctxutil.NewContext(c.Request.Context(), "handler", "GetProfile")

	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, constants.BuildErrorResponse(constants.MsgUnauthorized))
		return
	}

	user, err := h.userService.GetProfile(ctx, userID)
	if err != nil {
		c.JSON(apperrors.ToHTTPStatus(err), constants.BuildErrorResponse(apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, constants.BuildDataResponse(map[string]any{
		"user": user,
	}))
}

// UpdateProfile applies a partial update to the authenticated user's record
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	ctx := ctxutil.NewContext(c.Request.Context(), "handler", "UpdateProfile")

	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, constants.BuildErrorResponse(constants.MsgUnauthorized))
		return
	}
	role := c.GetString(constants.GinKeyUserRole)

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.WarnWithContext(ctx, "Invalid profile update request").
			Err(err).
			Log()
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Invalid request format"))
		return
	}

	user, err := h.userService.UpdateProfile(ctx, userID, role, &req)
	if err != nil {
		c.JSON(apperrors.ToHTTPStatus(err), constants.BuildErrorResponse(apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, constants.BuildDataResponse(map[string]any{
		constants.ResponseFieldMessage: "Profile updated successfully",
		"user":                         user,
	}))
}

// GetMentors lists active mentors, optionally filtered by expertise
func (h *UserHandler) GetMentors(c *gin.Context) {
	ctx := ctxutil.NewContext(c.Request.Context(), "handler", "GetMentors")

	params := constants.ParsePaginationParams(c)
	expertise := strings.TrimSpace(c.Query(constants.QueryParamExpertise))

	mentors, total, err := h.userService.ListByRole(ctx, constants.RoleMentor, expertise, params.Limit, params.Offset)
	if err != nil {
		c.JSON(apperrors.ToHTTPStatus(err), constants.BuildErrorResponse(apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, constants.BuildListResponse("mentors", mentors,
		constants.NewPagination(params.Page, params.Limit, total)))
}

// GetMentees lists active mentees. Mentor-only; the role check runs in the
// route middleware.
func (h *UserHandler) GetMentees(c *gin.Context) {
	ctx := ctxutil.NewContext(c.Request.Context(), "handler", "GetMentees")

	params := constants.ParsePaginationParams(c)

	mentees, total, err := h.userService.ListByRole(ctx, constants.RoleMentee, "", params.Limit, params.Offset)
	if err != nil {
		c.JSON(apperrors.ToHTTPStatus(err), constants.BuildErrorResponse(apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, constants.BuildListResponse("mentees", mentees,
		constants.NewPagination(params.Page, params.Limit, total)))
}

// Search matches active users against the query across name, email and
// expertise. The query is required.
func (h *UserHandler) Search(c *gin.Context) {
	ctx := ctxutil.NewContext(c.Request.Context(), "handler", "Search")

	query := strings.TrimSpace(c.Query(constants.QueryParamQuery))
	if query == "" {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Search query is required"))
		return
	}

	role := strings.TrimSpace(c.Query(constants.QueryParamRole))
	if role != constants.RoleMentor && role != constants.RoleMentee {
		role = ""
	}

	params := constants.ParsePaginationParams(c)

	users, total, err := h.userService.SearchUsers(ctx, query, role, params.Limit, params.Offset)
	if err != nil {
		c.JSON(apperrors.ToHTTPStatus(err), constants.BuildErrorResponse(apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, constants.BuildListResponse("users", users,
		constants.NewPagination(params.Page, params.Limit, total)))
}

// GetStats returns the aggregated account counts
func (h *UserHandler) GetStats(c *gin.Context) {
	ctx := ctxutil.NewContext(c.Request.Context(), "handler", "GetStats")

	stats, err := h.userService.GetStats(ctx)
	if err != nil {
		c.JSON(apperrors.ToHTTPStatus(err), constants.BuildErrorResponse(apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, constants.BuildDataResponse(map[string]any{
		"stats": stats,
	}))
}

// GetByID returns the public projection of an active user
func (h *UserHandler) GetByID(c *gin.Context) {
	ctx := ctxutil.NewContext(c.Request.Context(), "handler", "GetByID")

	user, err := h.userService.GetUserByID(ctx, c.Param("id"))
	if err != nil {
		c.JSON(apperrors.ToHTTPStatus(err), constants.BuildErrorResponse(apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, constants.BuildDataResponse(map[string]any{
		"user": user,
	}))
}

// DeactivateAccount soft-deletes the authenticated user's own account
func (h *UserHandler) DeactivateAccount(c *gin.Context) {
	ctx := ctxutil.NewContext(c.Request.Context(), "handler", "DeactivateAccount")

	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, constants.BuildErrorResponse(constants.MsgUnauthorized))
		return
	}

	if err := h.userService.DeactivateAccount(ctx, userID); err != nil {
		c.JSON(apperrors.ToHTTPStatus(err), constants.BuildErrorResponse(apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, constants.BuildSuccessResponse("Account deactivated successfully"))
}
