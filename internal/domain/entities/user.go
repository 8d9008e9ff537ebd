package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// UserRole represents user roles
type UserRole string

const (
	UserRoleStudent UserRole = "student"
	UserRoleAdmin   UserRole = "admin"
)

// Valid reports whether r is a known role.
func (r UserRole) Valid() bool {
	return r == UserRoleStudent || r == UserRoleAdmin
}

// User represents a user entity
type User struct {
	ID             uuid.UUID   `json:"id"`
	Email          string      `json:"email"`
	PasswordHash   string      `json:"-"`
	FirstName      string      `json:"firstName"`
	LastName       string      `json:"lastName"`
	University     null.String `json:"university"`
	Role           UserRole    `json:"role"`
	IsVerified     bool        `json:"isVerified"`
	CampusLocation null.String `json:"campusLocation"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}

// PublicUser is the profile shown to other users: no email, no credentials.
type PublicUser struct {
	ID             uuid.UUID   `json:"id"`
	FirstName      string      `json:"firstName"`
	LastName       string      `json:"lastName"`
	University     null.String `json:"university"`
	IsVerified     bool        `json:"isVerified"`
	CampusLocation null.String `json:"campusLocation"`
	CreatedAt      time.Time   `json:"createdAt"`
}

// Public returns the public projection of the user.
func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:             u.ID,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		University:     u.University,
		IsVerified:     u.IsVerified,
		CampusLocation: u.CampusLocation,
		CreatedAt:      u.CreatedAt,
	}
}

// RegisterInput represents input for creating a user
type RegisterInput struct {
	Email          string  `json:"email" binding:"required,email"`
	Password       string  `json:"password" binding:"required,min=8"`
	FirstName      string  `json:"firstName" binding:"required,min=1,max=100"`
	LastName       string  `json:"lastName" binding:"required,min=1,max=100"`
	University     *string `json:"university" binding:"omitempty,max=200"`
	CampusLocation *string `json:"campusLocation" binding:"omitempty,max=200"`
}

// LoginInput represents input for user login
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AdminUpdateUserInput is the partial update administrators can apply to a user.
type AdminUpdateUserInput struct {
	FirstName      *string `json:"firstName" binding:"omitempty,min=1,max=100"`
	LastName       *string `json:"lastName" binding:"omitempty,min=1,max=100"`
	University     *string `json:"university" binding:"omitempty,max=200"`
	CampusLocation *string `json:"campusLocation" binding:"omitempty,max=200"`
	Role           *string `json:"role" binding:"omitempty,oneof=student admin"`
	IsVerified     *bool   `json:"isVerified"`
}
