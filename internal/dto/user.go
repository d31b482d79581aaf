package dto

import (
	"strings"
	"time"

	"github.com/MentorBridge/backend/internal/model"
)

// UpdateProfileRequest carries partial update semantics: only fields present
// in the payload are modified, so optional fields are pointers.
type UpdateProfileRequest struct {
	Name         *string  `json:"name" validate:"omitempty,min=2,max=50"`
	Bio          *string  `json:"bio" validate:"omitempty,max=500"`
	Expertise    []string `json:"expertise" validate:"omitempty,dive,notblank"`
	ProfileImage *string  `json:"profileImage"`
}

func (r *UpdateProfileRequest) Normalize() {
	if r.Name != nil {
		trimmed := strings.TrimSpace(*r.Name)
		r.Name = &trimmed
	}
	if r.Bio != nil {
		trimmed := strings.TrimSpace(*r.Bio)
		r.Bio = &trimmed
	}
	if r.Expertise != nil {
		expertise := make([]string, 0, len(r.Expertise))
		for _, exp := range r.Expertise {
			if trimmed := strings.TrimSpace(exp); trimmed != "" {
				expertise = append(expertise, trimmed)
			}
		}
		r.Expertise = expertise
	}
}

// UserResponse is the outward projection of a user document. The password
// hash is never part of any read path.
type UserResponse struct {
	ID              string                 `json:"id"`
	Name            string                 `json:"name"`
	Email           string                 `json:"email"`
	Role            string                 `json:"role"`
	Expertise       []string               `json:"expertise"`
	MenteeEmail     string                 `json:"menteeEmail,omitempty"`
	ProfileImage    string                 `json:"profileImage"`
	Bio             string                 `json:"bio"`
	IsEmailVerified bool                   `json:"isEmailVerified"`
	MentorshipPairs []model.MentorshipPair `json:"mentorshipPairs,omitempty"`
	LastLogin       *time.Time             `json:"lastLogin,omitempty"`
	CreatedAt       time.Time              `json:"createdAt"`
}

// NewUserResponse projects a user document for API responses.
func NewUserResponse(user *model.User) *UserResponse {
	expertise := user.Expertise
	if expertise == nil {
		expertise = []string{}
	}
	return &UserResponse{
		ID:              user.ID.Hex(),
		Name:            user.Name,
		Email:           user.Email,
		Role:            user.Role,
		Expertise:       expertise,
		MenteeEmail:     user.MenteeEmail,
		ProfileImage:    user.ProfileImage,
		Bio:             user.Bio,
		IsEmailVerified: user.IsEmailVerified,
		MentorshipPairs: user.MentorshipPairs,
		LastLogin:       user.LastLogin,
		CreatedAt:       user.CreatedAt,
	}
}

// NewUserResponseList projects a slice of user documents.
func NewUserResponseList(users []model.User) []UserResponse {
	res := make([]UserResponse, 0, len(users))
	for i := range users {
		res = append(res, *NewUserResponse(&users[i]))
	}
	return res
}

// TokenIdentity is the compact identity payload returned by verify-token.
type TokenIdentity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// UserStats aggregates discovery-visible account counts.
type UserStats struct {
	TotalUsers          int64 `json:"totalUsers"`
	TotalMentors        int64 `json:"totalMentors"`
	TotalMentees        int64 `json:"totalMentees"`
	RecentRegistrations int64 `json:"recentRegistrations"`
}
