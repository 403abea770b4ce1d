package domain

import "time"

// RoleCardOwner is required to reach any /cashcards endpoint. Ownership of
// individual records is enforced per-query in the card service, not by role.
const RoleCardOwner = "card-owner"

// User is an authenticatable principal.
type User struct {
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // Never expose
	Roles        []string  `json:"roles"`
	CreatedAt    time.Time `json:"created_at"`
}

// HasRole reports whether the user carries the given role.
func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}
