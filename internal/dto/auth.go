package dto

import "strings"

// RegisterRequest is the payload for POST /api/auth/register. The mentor-only
// fields are validated conditionally on Role.
type RegisterRequest struct {
	Name        string   `json:"name" validate:"required,min=2,max=50"`
	Email       string   `json:"email" validate:"required,email"`
	Password    string   `json:"password" validate:"required,min=6,passwd"`
	Role        string   `json:"role" validate:"required,oneof=mentor mentee"`
	MenteeEmail string   `json:"menteeEmail" validate:"required_if=Role mentor,omitempty,email"`
	Expertise   []string `json:"expertise" validate:"required_if=Role mentor,omitempty,dive,notblank"`
}

// Normalize trims and lowercases the values that passed validation. Empty
// expertise entries left over after trimming are dropped.
func (r *RegisterRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.MenteeEmail = strings.ToLower(strings.TrimSpace(r.MenteeEmail))

	expertise := make([]string, 0, len(r.Expertise))
	for _, exp := range r.Expertise {
		if trimmed := strings.TrimSpace(exp); trimmed != "" {
			expertise = append(expertise, trimmed)
		}
	}
	r.Expertise = expertise
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6,passwd"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=NewPassword"`
}
