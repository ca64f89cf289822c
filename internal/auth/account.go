package auth

import (
	"github.com/rock-369/student-performance-mental-health-dashboard/internal/session"
)

// Account represents an authenticated user record returned by the
// credential service. It contains facts only, no decisions.
type Account struct {
	UserID string       // internal user identifier
	Name   string       // display name
	Email  string       // login identifier
	Role   session.Role // student, teacher or counselor
}

// Session builds the fully-populated session handed to the session
// store after a successful login.
func (a Account) Session(token string) session.Session {
	return session.Session{
		Token:       token,
		Role:        a.Role,
		UserID:      a.UserID,
		DisplayName: a.Name,
	}
}
