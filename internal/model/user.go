package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MentorshipPair tracks a relationship with another user. It is a
// back-reference only; no ownership is implied between paired users.
type MentorshipPair struct {
	User      primitive.ObjectID `bson:"user" json:"user"`
	Status    string             `bson:"status" json:"status"` // pending | active | completed | cancelled
	StartDate time.Time          `bson:"startDate" json:"startDate"`
	EndDate   *time.Time         `bson:"endDate,omitempty" json:"endDate,omitempty"`
}

// User is the persisted account document. The password hash is stored on the
// document but never serialized outward; read paths project it away.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password,omitempty" json:"-"`
	Role     string             `bson:"role" json:"role"` // mentor | mentee

	// Mentor-specific fields
	Expertise   []string `bson:"expertise,omitempty" json:"expertise,omitempty"`
	MenteeEmail string   `bson:"menteeEmail,omitempty" json:"menteeEmail,omitempty"`

	// Profile information
	ProfileImage string `bson:"profileImage" json:"profileImage"`
	Bio          string `bson:"bio" json:"bio"`

	// Status and verification
	IsActive        bool `bson:"isActive" json:"isActive"`
	IsEmailVerified bool `bson:"isEmailVerified" json:"isEmailVerified"`

	// Mentorship tracking
	MentorshipPairs []MentorshipPair `bson:"mentorshipPairs,omitempty" json:"mentorshipPairs,omitempty"`

	// Login tracking
	LastLogin  *time.Time `bson:"lastLogin,omitempty" json:"lastLogin,omitempty"`
	LoginCount int        `bson:"loginCount" json:"loginCount"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// IsMentor reports whether the account carries the mentor role.
func (u *User) IsMentor() bool {
	return u.Role == "mentor"
}
