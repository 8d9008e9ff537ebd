package entities

import "github.com/google/uuid"

// AuthContext identifies the caller of an authenticated request.
type AuthContext struct {
	UserID    uuid.UUID
	Role      UserRole
	SessionID string
}

// IsAdmin reports whether the caller holds the admin role.
func (a *AuthContext) IsAdmin() bool {
	return a != nil && a.Role == UserRoleAdmin
}
