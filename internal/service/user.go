package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MentorBridge/backend/internal/constants"
	"github.com/MentorBridge/backend/internal/dto"
	apperrors "github.com/MentorBridge/backend/internal/errors"
	"github.com/MentorBridge/backend/internal/model"
	ctxutil "github.com/MentorBridge/backend/pkg/context"
	"github.com/MentorBridge/backend/pkg/logger"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// UserStore is the persistence surface the user service relies on. The
// MongoDB repository satisfies it; tests substitute an in-memory fake.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	GetActiveByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	GetByIDWithPassword(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetActiveByEmailWithPassword(ctx context.Context, email string) (*model.User, error)
	UpdateProfile(ctx context.Context, id primitive.ObjectID, req *dto.UpdateProfileRequest, allowExpertise bool) (*model.User, error)
	UpdatePassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error
	RecordLogin(ctx context.Context, id primitive.ObjectID) error
	Deactivate(ctx context.Context, id primitive.ObjectID) error
	FindByRole(ctx context.Context, role, expertise string, limit, offset int) ([]model.User, int64, error)
	Search(ctx context.Context, query, role string, limit, offset int) ([]model.User, int64, error)
	CountActive(ctx context.Context) (int64, error)
	CountActiveByRole(ctx context.Context, role string) (int64, error)
	CountRegisteredSince(ctx context.Context, since time.Time) (int64, error)
}

// StatsCache is the cache surface used for the stats aggregate. Nil disables
// caching.
type StatsCache interface {
	GetJSON(ctx context.Context, key string, dest any) error
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

type UserService struct {
	store      UserStore
	jwtService *JWTService
	cache      StatsCache
	statsTTL   time.Duration
}

func NewUserService(store UserStore, jwtService *JWTService) *UserService {
	return &UserService{
		store:      store,
		jwtService: jwtService,
	}
}

// WithStatsCache enables cached stats aggregates with the given TTL.
func (s *UserService) WithStatsCache(cache StatsCache, ttl time.Duration) *UserService {
	s.cache = cache
	s.statsTTL = ttl
	return s
}

// hashPassword hashes a plaintext password with the fixed work factor. Runs
// only when the stored password value changes.
func (s *UserService) hashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), constants.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashedPassword), nil
}

// checkPassword verifies a plaintext password against a stored hash.
func (s *UserService) checkPassword(hashedPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}

// Register creates a new account, records the initial login event and issues
// a token. Duplicate emails are rejected across active and inactive records.
func (s *UserService) Register(ctx context.Context, req *dto.RegisterRequest) (string, *dto.UserResponse, error) {
	ctx = ctxutil.NewContext(ctx, "service", "Register")

	req.Normalize()

	// Explicit pre-save mentor check; the declarative rules run before this,
	// but trimming may have emptied the expertise list.
	if req.Role == constants.RoleMentor && len(req.Expertise) == 0 {
		logger.WarnWithContext(ctx, "Mentor registration without expertise").
			String("email", req.Email).
			Log()
		return "", nil, apperrors.ErrMentorExpertise
	}

	existing, err := s.store.GetByEmail(ctx, req.Email)
	if err != nil {
		logger.ErrorWithContext(ctx, "Failed to check email availability").
			String("email", req.Email).
			Err(err).
			Log()
		return "", nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	if existing != nil {
		logger.WarnWithContext(ctx, "Registration with existing email").
			String("email", req.Email).
			Log()
		return "", nil, apperrors.ErrEmailExists
	}

	hashedPassword, err := s.hashPassword(req.Password)
	if err != nil {
		logger.ErrorWithContext(ctx, "Failed to hash password").
			String("email", req.Email).
			Err(err).
			Log()
		return "", nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	user := &model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashedPassword,
		Role:     req.Role,
		IsActive: true,
	}
	if req.Role == constants.RoleMentor {
		user.Expertise = req.Expertise
		user.MenteeEmail = req.MenteeEmail
	}

	if err := s.store.Create(ctx, user); err != nil {
		logger.ErrorWithContext(ctx, "Failed to create user").
			String("email", req.Email).
			Err(err).
			Log()
		return "", nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	if err := s.recordLogin(ctx, user); err != nil {
		// Login bookkeeping failure does not fail the registration.
		logger.WarnWithContext(ctx, "Failed to record registration login event").
			String("user_id", user.ID.Hex()).
			Err(err).
			Log()
	}

	token, err := s.jwtService.GenerateToken(user.ID.Hex(), user.Email, user.Role)
	if err != nil {
		logger.ErrorWithContext(ctx, "Failed to generate token").
			String("user_id", user.ID.Hex()).
			Err(err).
			Log()
		return "", nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	logger.InfoWithContext(ctx, "User registered").
		String("user_id", user.ID.Hex()).
		String("email", user.Email).
		String("role", user.Role).
		Log()

	return token, dto.NewUserResponse(user), nil
}

// Login authenticates an active account. Unknown email and wrong password
// fail identically so neither case is distinguishable by the caller.
func (s *UserService) Login(ctx context.Context, email, password string) (string, *dto.UserResponse, error) {
	ctx = ctxutil.NewContext(ctx, "service", "Login")

	user, err := s.store.GetActiveByEmailWithPassword(ctx, email)
	if err != nil {
		logger.ErrorWithContext(ctx, "Failed to look up user for login").
			String("email", email).
			Err(err).
			Log()
		return "", nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	if user == nil {
		logger.InfoWithContext(ctx, "Login failed: unknown or inactive email").
			String("email", email).
			Log()
		return "", nil, apperrors.ErrInvalidCredentials
	}

	if !s.checkPassword(user.Password, password) {
		logger.InfoWithContext(ctx, "Login failed: password mismatch").
			String("user_id", user.ID.Hex()).
			Log()
		return "", nil, apperrors.ErrInvalidCredentials
	}

	if err := s.recordLogin(ctx, user); err != nil {
		logger.WarnWithContext(ctx, "Failed to record login event").
			String("user_id", user.ID.Hex()).
			Err(err).
			Log()
	}

	token, err := s.jwtService.GenerateToken(user.ID.Hex(), user.Email, user.Role)
	if err != nil {
		logger.ErrorWithContext(ctx, "Failed to generate token").
			String("user_id", user.ID.Hex()).
			Err(err).
			Log()
		return "", nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	logger.InfoWithContext(ctx, "User logged in").
		String("user_id", user.ID.Hex()).
		Log()

	return token, dto.NewUserResponse(user), nil
}

func (s *UserService) recordLogin(ctx context.Context, user *model.User) error {
	if err := s.store.RecordLogin(ctx, user.ID); err != nil {
		return err
	}
	now := time.Now().UTC()
	user.LastLogin = &now
	user.LoginCount++
	return nil
}

// GetProfile loads the caller's own record, mentorship pairs included.
func (s *UserService) GetProfile(ctx context.Context, id primitive.ObjectID) (*dto.UserResponse, error) {
	ctx = ctxutil.NewContext(ctx, "service", "GetProfile")

	user, err := s.store.GetByID(ctx, id)
	if err != nil {
		logger.ErrorWithContext(ctx, "Failed to fetch profile").
			String("user_id", id.Hex()).
			Err(err).
			Log()
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}

	return dto.NewUserResponse(user), nil
}

// UpdateProfile applies a partial update. Expertise changes are accepted
// only for mentor-role accounts; for everyone else the field is ignored.
func (s *UserService) UpdateProfile(ctx context.Context, id primitive.ObjectID, role string, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	ctx = ctxutil.NewContext(ctx, "service", "UpdateProfile")

	req.Normalize()

	allowExpertise := role == constants.RoleMentor
	user, err := s.store.UpdateProfile(ctx, id, req, allowExpertise)
	if err != nil {
		logger.ErrorWithContext(ctx, "Failed to update profile").
			String("user_id", id.Hex()).
			Err(err).
			Log()
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}

	logger.InfoWithContext(ctx, "Profile updated").
		String("user_id", id.Hex()).
		Log()

	return dto.NewUserResponse(user), nil
}

// ChangePassword verifies the current password before re-hashing and storing
// the new one. The stored hash is untouched when verification fails.
func (s *UserService) ChangePassword(ctx context.Context, id primitive.ObjectID, req *dto.ChangePasswordRequest) error {
	ctx = ctxutil.NewContext(ctx, "service", "ChangePassword")

	if req.NewPassword != req.ConfirmPassword {
		return apperrors.ErrPasswordMismatch
	}

	user, err := s.store.GetByIDWithPassword(ctx, id)
	if err != nil {
		logger.ErrorWithContext(ctx, "Failed to fetch user for password change").
			String("user_id", id.Hex()).
			Err(err).
			Log()
		return apperrors.WrapError(apperrors.ErrInternal, err)
	}
	if user == nil {
		return apperrors.ErrUserNotFound
	}

	if !s.checkPassword(user.Password, req.CurrentPassword) {
		logger.InfoWithContext(ctx, "Password change rejected: current password mismatch").
			String("user_id", id.Hex()).
			Log()
		return apperrors.ErrIncorrectPassword
	}

	hashedPassword, err := s.hashPassword(req.NewPassword)
	if err != nil {
		logger.ErrorWithContext(ctx, "Failed to hash new password").
			String("user_id", id.Hex()).
			Err(err).
			Log()
		return apperrors.WrapError(apperrors.ErrInternal, err)
	}

	if err := s.store.UpdatePassword(ctx, id, hashedPassword); err != nil {
		logger.ErrorWithContext(ctx, "Failed to store new password").
			String("user_id", id.Hex()).
			Err(err).
			Log()
		return apperrors.WrapError(apperrors.ErrInternal, err)
	}

	logger.InfoWithContext(ctx, "Password changed").
		String("user_id", id.Hex()).
		Log()

	return nil
}

// DeactivateAccount soft-deletes the account. Deactivating an already
// inactive account succeeds and leaves isActive false. Existing tokens are
// not proactively invalidated; the auth middleware rejects inactive accounts
// on their next request.
func (s *UserService) DeactivateAccount(ctx context.Context, id primitive.ObjectID) error {
	ctx = ctxutil.NewContext(ctx, "service", "DeactivateAccount")

	if err := s.store.Deactivate(ctx, id); err != nil {
		logger.ErrorWithContext(ctx, "Failed to deactivate account").
			String("user_id", id.Hex()).
			Err(err).
			Log()
		return apperrors.WrapError(apperrors.ErrInternal, err)
	}

	logger.InfoWithContext(ctx, "Account deactivated").
		String("user_id", id.Hex()).
		Log()

	return nil
}

// ListByRole pages through active users of a role, newest first. The
// expertise filter applies a case-insensitive substring match.
func (s *UserService) ListByRole(ctx context.Context, role, expertise string, limit, offset int) ([]dto.UserResponse, int64, error) {
	ctx = ctxutil.NewContext(ctx, "service", "ListByRole")

	users, total, err := s.store.FindByRole(ctx, role, expertise, limit, offset)
	if err != nil {
		logger.ErrorWithContext(ctx, "Failed to list users by role").
			String("role", role).
			Err(err).
			Log()
		return nil, 0, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	return dto.NewUserResponseList(users), total, nil
}

// SearchUsers matches the query case-insensitively against name, email and
// expertise of active users.
func (s *UserService) SearchUsers(ctx context.Context, query, role string, limit, offset int) ([]dto.UserResponse, int64, error) {
	ctx = ctxutil.NewContext(ctx, "service", "SearchUsers")

	users, total, err := s.store.Search(ctx, query, role, limit, offset)
	if err != nil {
		logger.ErrorWithContext(ctx, "Failed to search users").
			String("query", query).
			Err(err).
			Log()
		return nil, 0, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	return dto.NewUserResponseList(users), total, nil
}

// GetUserByID returns the public projection of an active user.
func (s *UserService) GetUserByID(ctx context.Context, idHex string) (*dto.UserResponse, error) {
	ctx = ctxutil.NewContext(ctx, "service", "GetUserByID")

	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	user, err := s.store.GetActiveByID(ctx, id)
	if err != nil {
		logger.ErrorWithContext(ctx, "Failed to fetch user").
			String("user_id", idHex).
			Err(err).
			Log()
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}

	return dto.NewUserResponse(user), nil
}

// GetStats aggregates discovery-visible account counts, served from the
// cache when fresh.
func (s *UserService) GetStats(ctx context.Context) (*dto.UserStats, error) {
	ctx = ctxutil.NewContext(ctx, "service", "GetStats")

	if s.cache != nil {
		var cached dto.UserStats
		if err := s.cache.GetJSON(ctx, constants.CacheKeyStats, &cached); err == nil {
			return &cached, nil
		}
	}

	stats := &dto.UserStats{}
	var err error

	if stats.TotalUsers, err = s.store.CountActive(ctx); err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	if stats.TotalMentors, err = s.store.CountActiveByRole(ctx, constants.RoleMentor); err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	if stats.TotalMentees, err = s.store.CountActiveByRole(ctx, constants.RoleMentee); err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	thirtyDaysAgo := time.Now().UTC().Add(-30 * 24 * time.Hour)
	if stats.RecentRegistrations, err = s.store.CountRegisteredSince(ctx, thirtyDaysAgo); err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, constants.CacheKeyStats, stats, s.statsTTL); err != nil {
			logger.WarnWithContext(ctx, "Failed to cache user stats").
				Err(err).
				Log()
		}
	}

	return stats, nil
}
