package domain

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User models a registered actor. The password never leaves the server:
// only the bcrypt hash is stored, and the field is excluded from JSON.
type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	Gender       string    `json:"gender,omitempty"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// IsAdmin reports whether the user holds the administrator role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// ProfilePatch is a field-level partial update of a user's own record.
// ID and Role are deliberately absent: neither is patchable.
type ProfilePatch struct {
	Username *string
	Name     *string
	Email    *string
	Phone    *string
	Gender   *string
}
