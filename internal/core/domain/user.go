package domain

import "time"

// Role is the organizational role of a user. Roles are externally managed:
// the API never changes a role after the account exists.
type Role string

const (
	RoleEmployee Role = "EMPLOYEE"
	RoleManager  Role = "MANAGER"
	RoleHR       Role = "HR"
	RoleAdmin    Role = "ADMIN"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleEmployee, RoleManager, RoleHR, RoleAdmin:
		return true
	}
	return false
}

// User models an actor in the system. TeamID is a reference, not
// ownership: team membership is derived by querying users by team.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	TeamID       string    `json:"team_id"`
	CreatedAt    time.Time `json:"created_at"`
}
