package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/MentorBridge/backend/internal/dto"
	apperrors "github.com/MentorBridge/backend/internal/errors"
	"github.com/MentorBridge/backend/internal/model"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeUserStore is an in-memory UserStore with the same read/write semantics
// as the MongoDB repository: nil for missing records, soft delete via
// isActive, partial profile updates.
type fakeUserStore struct {
	users map[primitive.ObjectID]*model.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[primitive.ObjectID]*model.User)}
}

func (s *fakeUserStore) Create(_ context.Context, user *model.User) error {
	now := time.Now().UTC()
	user.ID = primitive.NewObjectID()
	user.CreatedAt = now
	user.UpdatedAt = now
	copied := *user
	s.users[user.ID] = &copied
	return nil
}

func (s *fakeUserStore) GetByID(_ context.Context, id primitive.ObjectID) (*model.User, error) {
	if u, ok := s.users[id]; ok {
		return s.project(u), nil
	}
	return nil, nil
}

func (s *fakeUserStore) GetActiveByID(_ context.Context, id primitive.ObjectID) (*model.User, error) {
	if u, ok := s.users[id]; ok && u.IsActive {
		return s.project(u), nil
	}
	return nil, nil
}

func (s *fakeUserStore) GetByIDWithPassword(_ context.Context, id primitive.ObjectID) (*model.User, error) {
	if u, ok := s.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, nil
}

func (s *fakeUserStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return s.project(u), nil
		}
	}
	return nil, nil
}

func (s *fakeUserStore) GetActiveByEmailWithPassword(_ context.Context, email string) (*model.User, error) {
	for _, u := range s.users {
		if u.Email == email && u.IsActive {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *fakeUserStore) UpdateProfile(_ context.Context, id primitive.ObjectID, req *dto.UpdateProfileRequest, allowExpertise bool) (*model.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	if req.Name != nil && *req.Name != "" {
		u.Name = *req.Name
	}
	if req.Bio != nil {
		u.Bio = *req.Bio
	}
	if req.ProfileImage != nil {
		u.ProfileImage = *req.ProfileImage
	}
	if req.Expertise != nil && allowExpertise {
		u.Expertise = req.Expertise
	}
	u.UpdatedAt = time.Now().UTC()
	return s.project(u), nil
}

func (s *fakeUserStore) UpdatePassword(_ context.Context, id primitive.ObjectID, passwordHash string) error {
	if u, ok := s.users[id]; ok {
		u.Password = passwordHash
		u.UpdatedAt = time.Now().UTC()
	}
	return nil
}

func (s *fakeUserStore) RecordLogin(_ context.Context, id primitive.ObjectID) error {
	if u, ok := s.users[id]; ok {
		now := time.Now().UTC()
		u.LastLogin = &now
		u.LoginCount++
	}
	return nil
}

func (s *fakeUserStore) Deactivate(_ context.Context, id primitive.ObjectID) error {
	if u, ok := s.users[id]; ok {
		u.IsActive = false
		u.UpdatedAt = time.Now().UTC()
	}
	return nil
}

func (s *fakeUserStore) FindByRole(_ context.Context, role, expertise string, limit, offset int) ([]model.User, int64, error) {
	var matched []model.User
	for _, u := range s.users {
		if !u.IsActive || u.Role != role {
			continue
		}
		if expertise != "" && !hasExpertiseSubstring(u.Expertise, expertise) {
			continue
		}
		matched = append(matched, *s.project(u))
	}
	return pageUsers(matched, limit, offset)
}

func (s *fakeUserStore) Search(_ context.Context, query, role string, limit, offset int) ([]model.User, int64, error) {
	q := strings.ToLower(query)
	var matched []model.User
	for _, u := range s.users {
		if !u.IsActive {
			continue
		}
		if role != "" && u.Role != role {
			continue
		}
		if strings.Contains(strings.ToLower(u.Name), q) ||
			strings.Contains(strings.ToLower(u.Email), q) ||
			hasExpertiseSubstring(u.Expertise, q) {
			matched = append(matched, *s.project(u))
		}
	}
	return pageUsers(matched, limit, offset)
}

func (s *fakeUserStore) CountActive(_ context.Context) (int64, error) {
	var n int64
	for _, u := range s.users {
		if u.IsActive {
			n++
		}
	}
	return n, nil
}

func (s *fakeUserStore) CountActiveByRole(_ context.Context, role string) (int64, error) {
	var n int64
	for _, u := range s.users {
		if u.IsActive && u.Role == role {
			n++
		}
	}
	return n, nil
}

func (s *fakeUserStore) CountRegisteredSince(_ context.Context, since time.Time) (int64, error) {
	var n int64
	for _, u := range s.users {
		if u.IsActive && !u.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

// project mimics the repository's password-excluding projection.
func (s *fakeUserStore) project(u *model.User) *model.User {
	copied := *u
	copied.Password = ""
	return &copied
}

func hasExpertiseSubstring(expertise []string, substr string) bool {
	needle := strings.ToLower(substr)
	for _, e := range expertise {
		if strings.Contains(strings.ToLower(e), needle) {
			return true
		}
	}
	return false
}

func pageUsers(users []model.User, limit, offset int) ([]model.User, int64, error) {
	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt.After(users[j].CreatedAt)
	})
	total := int64(len(users))
	if offset >= len(users) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(users) {
		end = len(users)
	}
	return users[offset:end], total, nil
}

func newTestUserService(store UserStore) *UserService {
	return NewUserService(store, NewJWTService("user-service-test-secret", time.Hour))
}

// seedUser inserts a user directly, bypassing the registration pipeline, for
// tests that need many records without the hashing cost.
func seedUser(store *fakeUserStore, name, email, role string, expertise []string) {
	id := primitive.NewObjectID()
	now := time.Now().UTC()
	store.users[id] = &model.User{
		ID:        id,
		Name:      name,
		Email:     email,
		Role:      role,
		Expertise: expertise,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func mentorRequest(email string) *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Name:        "Ada Mentor",
		Email:       email,
		Password:    "secret99",
		Role:        "mentor",
		MenteeEmail: "paired.mentee@example.com",
		Expertise:   []string{"Go", "Databases"},
	}
}

func menteeRequest(email string) *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Name:     "Mo Mentee",
		Email:    email,
		Password: "secret99",
		Role:     "mentee",
	}
}

func TestUserService_RegisterAndLogin(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestUserService(store)
	ctx := context.Background()

	token, user, err := svc.Register(ctx, mentorRequest("ada@example.com"))
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if token == "" {
		t.Error("Expected token from registration")
	}
	if user.Email != "ada@example.com" {
		t.Errorf("Expected email ada@example.com, got %s", user.Email)
	}

	// Registration counts as a login event.
	stored, _ := store.GetByID(ctx, mustObjectID(t, user.ID))
	if stored.LoginCount != 1 {
		t.Errorf("Expected login count 1 after registration, got %d", stored.LoginCount)
	}
	if stored.LastLogin == nil {
		t.Error("Expected lastLogin to be set after registration")
	}

	// The stored password must be a hash, not the plaintext.
	withPassword, _ := store.GetByIDWithPassword(ctx, mustObjectID(t, user.ID))
	if withPassword.Password == "secret99" {
		t.Error("Password stored as plaintext")
	}

	loginToken, loginUser, err := svc.Login(ctx, "ada@example.com", "secret99")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if loginToken == "" {
		t.Error("Expected token from login")
	}
	if loginUser.ID != user.ID {
		t.Errorf("Expected same user ID, got %s and %s", loginUser.ID, user.ID)
	}

	// The issued token verifies back to the same identity and role.
	identity, err := svc.jwtService.ValidateToken(loginToken)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if identity.ID != user.ID || identity.Email != user.Email || identity.Role != "mentor" {
		t.Errorf("Token identity mismatch: %+v vs user %s/%s", identity, user.ID, user.Email)
	}
}

func TestUserService_RegisterNormalizesEmail(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestUserService(store)

	req := menteeRequest("  MO@Example.COM ")
	_, user, err := svc.Register(context.Background(), req)
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.Email != "mo@example.com" {
		t.Errorf("Expected normalized email, got %s", user.Email)
	}
}

func TestUserService_RegisterMentorWithoutExpertise(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestUserService(store)

	tests := []struct {
		name      string
		expertise []string
	}{
		{"nil expertise", nil},
		{"empty list", []string{}},
		{"blank entries only", []string{"  ", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := mentorRequest("mentor@example.com")
			req.Expertise = tt.expertise
			_, _, err := svc.Register(context.Background(), req)
			if !errors.Is(err, apperrors.ErrMentorExpertise) {
				t.Errorf("Expected ErrMentorExpertise, got %v", err)
			}
		})
	}
}

func TestUserService_RegisterDuplicateEmail(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestUserService(store)
	ctx := context.Background()

	if _, _, err := svc.Register(ctx, menteeRequest("dup@example.com")); err != nil {
		t.Fatalf("First registration failed: %v", err)
	}

	_, _, err := svc.Register(ctx, menteeRequest("dup@example.com"))
	if !errors.Is(err, apperrors.ErrEmailExists) {
		t.Errorf("Expected ErrEmailExists, got %v", err)
	}

	// A deactivated account still reserves its email.
	_, user, err := svc.Register(ctx, menteeRequest("gone@example.com"))
	if err != nil {
		t.Fatalf("Registration failed: %v", err)
	}
	if err := svc.DeactivateAccount(ctx, mustObjectID(t, user.ID)); err != nil {
		t.Fatalf("Deactivate failed: %v", err)
	}
	_, _, err = svc.Register(ctx, menteeRequest("gone@example.com"))
	if !errors.Is(err, apperrors.ErrEmailExists) {
		t.Errorf("Expected ErrEmailExists for deactivated account's email, got %v", err)
	}
}

func TestUserService_LoginFailuresAreUniform(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestUserService(store)
	ctx := context.Background()

	if _, _, err := svc.Register(ctx, menteeRequest("mo@example.com")); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"unknown email", "nobody@example.com", "secret99"},
		{"wrong password", "mo@example.com", "wrong999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Login(ctx, tt.email, tt.password)
			if !errors.Is(err, apperrors.ErrInvalidCredentials) {
				t.Errorf("Expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}

func TestUserService_DeactivateIsIdempotentAndBlocksLogin(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestUserService(store)
	ctx := context.Background()

	_, user, err := svc.Register(ctx, menteeRequest("mo@example.com"))
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	id := mustObjectID(t, user.ID)

	if err := svc.DeactivateAccount(ctx, id); err != nil {
		t.Fatalf("First deactivation failed: %v", err)
	}
	if err := svc.DeactivateAccount(ctx, id); err != nil {
		t.Fatalf("Second deactivation failed: %v", err)
	}

	_, _, err = svc.Login(ctx, "mo@example.com", "secret99")
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("Expected ErrInvalidCredentials after deactivation, got %v", err)
	}
}

func TestUserService_UpdateProfilePartial(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestUserService(store)
	ctx := context.Background()

	_, user, err := svc.Register(ctx, mentorRequest("ada@example.com"))
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	id := mustObjectID(t, user.ID)

	bio := "Ten years of backend work"
	if _, err := svc.UpdateProfile(ctx, id, "mentor", &dto.UpdateProfileRequest{Bio: &bio}); err != nil {
		t.Fatalf("UpdateProfile failed: %v", err)
	}

	updated, err := svc.GetProfile(ctx, id)
	if err != nil {
		t.Fatalf("GetProfile failed: %v", err)
	}
	if updated.Bio != bio {
		t.Errorf("Expected bio to be updated, got %q", updated.Bio)
	}
	if updated.Name != "Ada Mentor" {
		t.Errorf("Expected name untouched, got %q", updated.Name)
	}
	if len(updated.Expertise) != 2 {
		t.Errorf("Expected expertise untouched, got %v", updated.Expertise)
	}
}

func TestUserService_UpdateProfileExpertiseIgnoredForMentee(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestUserService(store)
	ctx := context.Background()

	_, user, err := svc.Register(ctx, menteeRequest("mo@example.com"))
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	id := mustObjectID(t, user.ID)

	updated, err := svc.UpdateProfile(ctx, id, "mentee", &dto.UpdateProfileRequest{
		Expertise: []string{"Go"},
	})
	if err != nil {
		t.Fatalf("UpdateProfile failed: %v", err)
	}
	if len(updated.Expertise) != 0 {
		t.Errorf("Expected expertise ignored for mentee, got %v", updated.Expertise)
	}
}

func TestUserService_ChangePassword(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestUserService(store)
	ctx := context.Background()

	_, user, err := svc.Register(ctx, menteeRequest("mo@example.com"))
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	id := mustObjectID(t, user.ID)

	t.Run("wrong current password", func(t *testing.T) {
		err := svc.ChangePassword(ctx, id, &dto.ChangePasswordRequest{
			CurrentPassword: "wrong999",
			NewPassword:     "fresh123",
			ConfirmPassword: "fresh123",
		})
		if !errors.Is(err, apperrors.ErrIncorrectPassword) {
			t.Errorf("Expected ErrIncorrectPassword, got %v", err)
		}
		// The stored hash is untouched; the original password still works.
		if _, _, err := svc.Login(ctx, "mo@example.com", "secret99"); err != nil {
			t.Errorf("Expected original password to remain valid, got %v", err)
		}
	})

	t.Run("confirmation mismatch", func(t *testing.T) {
		err := svc.ChangePassword(ctx, id, &dto.ChangePasswordRequest{
			CurrentPassword: "secret99",
			NewPassword:     "fresh123",
			ConfirmPassword: "other456",
		})
		if !errors.Is(err, apperrors.ErrPasswordMismatch) {
			t.Errorf("Expected ErrPasswordMismatch, got %v", err)
		}
	})

	t.Run("success rotates the credential", func(t *testing.T) {
		err := svc.ChangePassword(ctx, id, &dto.ChangePasswordRequest{
			CurrentPassword: "secret99",
			NewPassword:     "fresh123",
			ConfirmPassword: "fresh123",
		})
		if err != nil {
			t.Fatalf("ChangePassword failed: %v", err)
		}

		if _, _, err := svc.Login(ctx, "mo@example.com", "secret99"); !errors.Is(err, apperrors.ErrInvalidCredentials) {
			t.Errorf("Expected old password rejected, got %v", err)
		}
		if _, _, err := svc.Login(ctx, "mo@example.com", "fresh123"); err != nil {
			t.Errorf("Expected new password accepted, got %v", err)
		}
	})
}

func TestUserService_ListByRoleWithExpertiseFilter(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestUserService(store)
	ctx := context.Background()

	goMentor := mentorRequest("go@example.com")
	goMentor.Expertise = []string{"Go", "Distributed Systems"}
	rustMentor := mentorRequest("rust@example.com")
	rustMentor.Expertise = []string{"Rust"}

	for _, req := range []*dto.RegisterRequest{goMentor, rustMentor, menteeRequest("mo@example.com")} {
		if _, _, err := svc.Register(ctx, req); err != nil {
			t.Fatalf("Register failed: %v", err)
		}
	}

	mentors, total, err := svc.ListByRole(ctx, "mentor", "", 10, 0)
	if err != nil {
		t.Fatalf("ListByRole failed: %v", err)
	}
	if total != 2 || len(mentors) != 2 {
		t.Errorf("Expected 2 mentors, got total=%d len=%d", total, len(mentors))
	}

	filtered, total, err := svc.ListByRole(ctx, "mentor", "rust", 10, 0)
	if err != nil {
		t.Fatalf("ListByRole with filter failed: %v", err)
	}
	if total != 1 || len(filtered) != 1 {
		t.Fatalf("Expected 1 rust mentor, got total=%d len=%d", total, len(filtered))
	}
	if filtered[0].Email != "rust@example.com" {
		t.Errorf("Expected rust mentor, got %s", filtered[0].Email)
	}
}

func TestUserService_ListByRolePagination(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestUserService(store)
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		seedUser(store, fmt.Sprintf("Mentee %02d", i), fmt.Sprintf("mentee%02d@example.com", i), "mentee", nil)
	}

	page2, total, err := svc.ListByRole(ctx, "mentee", "", 10, 10)
	if err != nil {
		t.Fatalf("ListByRole failed: %v", err)
	}
	if total != 25 {
		t.Errorf("Expected total 25, got %d", total)
	}
	if len(page2) != 10 {
		t.Errorf("Expected 10 records on page 2, got %d", len(page2))
	}

	lastPage, _, err := svc.ListByRole(ctx, "mentee", "", 10, 20)
	if err != nil {
		t.Fatalf("ListByRole failed: %v", err)
	}
	if len(lastPage) != 5 {
		t.Errorf("Expected 5 records on the last page, got %d", len(lastPage))
	}
}

func TestUserService_SearchIsCaseInsensitive(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestUserService(store)
	ctx := context.Background()

	seedUser(store, "Ada Mentor", "ada@example.com", "mentor", []string{"mentor-skill"})

	users, total, err := svc.SearchUsers(ctx, "MENTOR", "", 10, 0)
	if err != nil {
		t.Fatalf("SearchUsers failed: %v", err)
	}
	if total != 1 || len(users) != 1 {
		t.Fatalf("Expected 1 match, got total=%d len=%d", total, len(users))
	}
}

func TestUserService_SearchExcludesInactive(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestUserService(store)
	ctx := context.Background()

	if _, _, err := svc.Register(ctx, mentorRequest("ada@example.com")); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	_, gone, err := svc.Register(ctx, menteeRequest("ada.gone@example.com"))
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if err := svc.DeactivateAccount(ctx, mustObjectID(t, gone.ID)); err != nil {
		t.Fatalf("Deactivate failed: %v", err)
	}

	users, total, err := svc.SearchUsers(ctx, "ada", "", 10, 0)
	if err != nil {
		t.Fatalf("SearchUsers failed: %v", err)
	}
	if total != 1 || len(users) != 1 {
		t.Fatalf("Expected only the active user, got total=%d len=%d", total, len(users))
	}
	if users[0].Email != "ada@example.com" {
		t.Errorf("Expected active user, got %s", users[0].Email)
	}
}

func TestUserService_GetUserByID(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestUserService(store)
	ctx := context.Background()

	_, user, err := svc.Register(ctx, menteeRequest("mo@example.com"))
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	found, err := svc.GetUserByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetUserByID failed: %v", err)
	}
	if found.Email != "mo@example.com" {
		t.Errorf("Expected mo@example.com, got %s", found.Email)
	}

	t.Run("invalid hex id reads as not found", func(t *testing.T) {
		if _, err := svc.GetUserByID(ctx, "not-a-hex-id"); !errors.Is(err, apperrors.ErrUserNotFound) {
			t.Errorf("Expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("deactivated user is not visible", func(t *testing.T) {
		if err := svc.DeactivateAccount(ctx, mustObjectID(t, user.ID)); err != nil {
			t.Fatalf("Deactivate failed: %v", err)
		}
		if _, err := svc.GetUserByID(ctx, user.ID); !errors.Is(err, apperrors.ErrUserNotFound) {
			t.Errorf("Expected ErrUserNotFound, got %v", err)
		}
	})
}

// fakeStatsCache records cache traffic for assertions.
type fakeStatsCache struct {
	stored map[string]dto.UserStats
	hits   int
	sets   int
}

func newFakeStatsCache() *fakeStatsCache {
	return &fakeStatsCache{stored: make(map[string]dto.UserStats)}
}

func (c *fakeStatsCache) GetJSON(_ context.Context, key string, dest any) error {
	if stats, ok := c.stored[key]; ok {
		c.hits++
		*dest.(*dto.UserStats) = stats
		return nil
	}
	return errors.New("cache miss")
}

func (c *fakeStatsCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	c.sets++
	c.stored[key] = *value.(*dto.UserStats)
	return nil
}

func TestUserService_GetStats(t *testing.T) {
	store := newFakeUserStore()
	cache := newFakeStatsCache()
	svc := newTestUserService(store).WithStatsCache(cache, time.Minute)
	ctx := context.Background()

	for _, req := range []*dto.RegisterRequest{
		mentorRequest("m1@example.com"),
		mentorRequest("m2@example.com"),
		menteeRequest("e1@example.com"),
	} {
		if _, _, err := svc.Register(ctx, req); err != nil {
			t.Fatalf("Register failed: %v", err)
		}
	}

	stats, err := svc.GetStats(ctx)
	if err != nil {
		t.Fatalf("GetStats failed: %v", err)
	}
	if stats.TotalUsers != 3 {
		t.Errorf("Expected 3 total users, got %d", stats.TotalUsers)
	}
	if stats.TotalMentors != 2 {
		t.Errorf("Expected 2 mentors, got %d", stats.TotalMentors)
	}
	if stats.TotalMentees != 1 {
		t.Errorf("Expected 1 mentee, got %d", stats.TotalMentees)
	}
	if stats.RecentRegistrations != 3 {
		t.Errorf("Expected 3 recent registrations, got %d", stats.RecentRegistrations)
	}
	if cache.sets != 1 {
		t.Errorf("Expected one cache write, got %d", cache.sets)
	}

	// Second call is served from the cache.
	if _, err := svc.GetStats(ctx); err != nil {
		t.Fatalf("Second GetStats failed: %v", err)
	}
	if cache.hits != 1 {
		t.Errorf("Expected one cache hit, got %d", cache.hits)
	}
}

func TestUserService_GetStatsWithoutCache(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestUserService(store)
	ctx := context.Background()

	if _, _, err := svc.Register(ctx, menteeRequest("mo@example.com")); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	stats, err := svc.GetStats(ctx)
	if err != nil {
		t.Fatalf("GetStats failed: %v", err)
	}
	if stats.TotalUsers != 1 {
		t.Errorf("Expected 1 total user, got %d", stats.TotalUsers)
	}
}

func mustObjectID(t *testing.T, hex string) primitive.ObjectID {
	t.Helper()
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		t.Fatalf("Invalid ObjectID %q: %v", hex, err)
	}
	return id
}
