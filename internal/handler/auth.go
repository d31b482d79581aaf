package handler

import (
	"net/http"

	"github.com/MentorBridge/backend/internal/constants"
	"github.com/MentorBridge/backend/internal/dto"
	apperrors "github.com/MentorBridge/backend/internal/errors"
	"github.com/MentorBridge/backend/internal/middleware"
	"github.com/MentorBridge/backend/internal/service"
	ctxutil "github.com/MentorBridge/backend/pkg/context"
	"github.com/MentorBridge/backend/pkg/logger"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	userService *service.UserService
}

func NewAuthHandler(userService *service.UserService) *AuthHandler {
	return &AuthHandler{
		userService: userService,
	}
}

// Register handles account creation
func (h *AuthHandler) Register(c *gin.Context) {
	ctx := ctxutil.NewContext(c.Request.Context(), "handler", "Register")

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.WarnWithContext(ctx, "Invalid register request").
			Err(err).
			Log()
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Invalid request format"))
		return
	}

	logger.InfoWithContext(ctx, "Registration attempt").
		String("email", req.Email).
		String("role", req.Role).
		Log()

	token, user, err := h.userService.Register(ctx, &req)
	if err != nil {
		logger.WarnWithContext(ctx, "Registration failed").
			String("email", req.Email).
			Err(err).
			Log()
		c.JSON(apperrors.ToHTTPStatus(err), constants.BuildErrorResponse(apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusCreated, constants.BuildDataResponse(map[string]any{
		constants.ResponseFieldMessage: "User registered successfully",
		"token":                        token,
		"user":                         user,
	}))
}

// Login handles user authentication
func (h *AuthHandler) Login(c *gin.Context) {
	ctx := ctxutil.NewContext(c.Request.Context(), "handler", "Login")

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.WarnWithContext(ctx, "Invalid login request").
			Err(err).
			Log()
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Invalid request format"))
		return
	}
	req.Normalize()

	logger.InfoWithContext(ctx, "Login attempt").
		String("email", req.Email).
		Log()

	token, user, err := h.userService.Login(ctx, req.Email, req.Password)
	if err != nil {
		c.JSON(apperrors.ToHTTPStatus(err), constants.BuildErrorResponse(apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, constants.BuildDataResponse(map[string]any{
		constants.ResponseFieldMessage: "Login successful",
		"token":                        token,
		"user":                         user,
	}))
}

// Me returns the authenticated user's own record
func (h *AuthHandler) Me(c *gin.Context) {
	ctx := ctxutil.NewContext(c.Request.Context(), "handler", "Me")

	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, constants.BuildErrorResponse(constants.MsgUnauthorized))
		return
	}

	user, err := h.userService.GetProfile(ctx, userID)
	if err != nil {
		logger.WarnWithContext(ctx, "Failed to load current user").
			Err(err).
			Log()
		c.JSON(apperrors.ToHTTPStatus(err), constants.BuildErrorResponse(apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, constants.BuildDataResponse(map[string]any{
		"user": user,
	}))
}

// ChangePassword verifies the current password and stores the new one
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	ctx := ctxutil.NewContext(c.Request.Context(), "handler", "ChangePassword")

	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, constants.BuildErrorResponse(constants.MsgUnauthorized))
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.WarnWithContext(ctx, "Invalid change password request").
			Err(err).
			Log()
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Invalid request format"))
		return
	}

	if err := h.userService.ChangePassword(ctx, userID, &req); err != nil {
		c.JSON(apperrors.ToHTTPStatus(err), constants.BuildErrorResponse(apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, constants.BuildSuccessResponse("Password updated successfully"))
}

// Logout acknowledges the logout. Tokens are stateless; the client discards
// its copy and deactivated accounts are rejected on the next request anyway.
func (h *AuthHandler) Logout(c *gin.Context) {
	ctx := ctxutil.NewContext(c.Request.Context(), "handler", "Logout")

	logger.InfoWithContext(ctx, "User logged out").
		Log()

	c.JSON(http.StatusOK, constants.BuildSuccessResponse("Logged out successfully"))
}

// VerifyToken reports the identity behind a valid token
func (h *AuthHandler) VerifyToken(c *gin.Context) {
	identity := dto.TokenIdentity{
		Email: c.GetString(constants.GinKeyUserEmail),
		Role:  c.GetString(constants.GinKeyUserRole),
	}
	if userID, ok := middleware.CurrentUserID(c); ok {
		identity.ID = userID.Hex()
	}

	c.JSON(http.StatusOK, constants.BuildDataResponse(map[string]any{
		constants.ResponseFieldMessage: "Token is valid",
		"user":                         identity,
	}))
}
