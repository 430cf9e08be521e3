package domain

import "strings"

type Role string

const (
	RoleUser      Role = "USER"
	RoleAdmin     Role = "ADMIN"
	RoleModerator Role = "MODERATOR"
)

// ParseRole is case-insensitive and falls back to RoleUser.
func ParseRole(s string) Role {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(RoleAdmin):
		return RoleAdmin
	case string(RoleModerator):
		return RoleModerator
	default:
		return RoleUser
	}
}

// Identity is the authenticated session's user record.
type Identity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// IsAdmin is a display hint only. Authorization is enforced by the backend.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// SameIdentity reports whether a and b denote the same session owner. Two nils are the same.
func SameIdentity(a, b *Identity) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.ID == b.ID
}
