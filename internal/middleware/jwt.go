package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/MentorBridge/backend/internal/constants"
	"github.com/MentorBridge/backend/internal/model"
	"github.com/MentorBridge/backend/internal/service"
	ctxutil "github.com/MentorBridge/backend/pkg/context"
	"github.com/MentorBridge/backend/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ActiveUserLookup resolves the current account record behind a token. The
// user repository satisfies it.
type ActiveUserLookup interface {
	GetActiveByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)
}

type JWTMiddleware struct {
	jwtService *service.JWTService
	users      ActiveUserLookup
}

func NewJWTMiddleware(jwtService *service.JWTService, users ActiveUserLookup) *JWTMiddleware {
	return &JWTMiddleware{
		jwtService: jwtService,
		users:      users,
	}
}

// RequireAuth validates the bearer token, re-reads the account record and
// rejects missing or deactivated accounts. Identity lands in both the Gin
// context and the request context.
func (m *JWTMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := extractBearerToken(c)
		if !ok {
			logger.GetLogger().Warn("Missing or malformed Authorization header",
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method))
			abortUnauthorized(c)
			return
		}

		identity, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			logger.GetLogger().Warn("Invalid or expired token",
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method),
				zap.Error(err))
			abortUnauthorized(c)
			return
		}

		userID, err := primitive.ObjectIDFromHex(identity.ID)
		if err != nil {
			logger.GetLogger().Warn("Invalid user ID in token",
				zap.String("path", c.Request.URL.Path),
				zap.String("token_user_id", identity.ID))
			abortUnauthorized(c)
			return
		}

		// A valid token is not enough: the account may have been deactivated
		// after issuance.
		ctx := c.Request.Context()
		user, err := m.users.GetActiveByID(ctx, userID)
		if err != nil {
			logger.GetLogger().Error("Failed to load user for auth check",
				zap.String("path", c.Request.URL.Path),
				zap.String("user_id", identity.ID),
				zap.Error(err))
			abortUnauthorized(c)
			return
		}
		if user == nil {
			logger.GetLogger().Warn("Token references missing or inactive account",
				zap.String("path", c.Request.URL.Path),
				zap.String("user_id", identity.ID))
			abortUnauthorized(c)
			return
		}

		c.Set(constants.GinKeyUserID, user.ID)
		c.Set(constants.GinKeyUserEmail, user.Email)
		c.Set(constants.GinKeyUserRole, user.Role)

		ctx = ctxutil.WithUserID(ctx, user.ID.Hex())
		ctx = ctxutil.WithUserRole(ctx, user.Role)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRole restricts a route to one of the given roles. Must run after
// RequireAuth.
func (m *JWTMiddleware) RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(constants.GinKeyUserRole)
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		logger.GetLogger().Warn("Role not permitted for route",
			zap.String("path", c.Request.URL.Path),
			zap.String("role", role))
		c.JSON(http.StatusForbidden, constants.BuildErrorResponse(constants.MsgForbidden))
		c.Abort()
	}
}

func extractBearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader(constants.HeaderAuthorization)
	if authHeader == "" {
		return "", false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != constants.BearerScheme || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func abortUnauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, constants.BuildErrorResponse(constants.MsgUnauthorized))
	c.Abort()
}

// CurrentUserID returns the authenticated user's ID set by RequireAuth.
func CurrentUserID(c *gin.Context) (primitive.ObjectID, bool) {
	value, exists := c.Get(constants.GinKeyUserID)
	if !exists {
		return primitive.NilObjectID, false
	}
	id, ok := value.(primitive.ObjectID)
	return id, ok
}
