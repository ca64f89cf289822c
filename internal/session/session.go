package session

// Role identifies which dashboard and which routes a user may reach.
type Role string

const (
	RoleStudent   Role = "student"
	RoleTeacher   Role = "teacher"
	RoleCounselor Role = "counselor"
)

// Session represents the authenticated identity of the current user.
// It intentionally stores identity facts only, no auth decisions.
// A session is either fully populated or absent (nil); a token without
// a role is not a valid session.
type Session struct {
	Token       string // opaque credential issued by the login collaborator
	Role        Role   // drives every routing decision
	UserID      string // display/attribution only, never authorization
	DisplayName string // presentation only
}

// ParseRole maps a raw role string to a known Role. Callers that feed
// sessions into the store must validate roles here first; the store
// itself trusts what it is handed.
func ParseRole(raw string) (Role, bool) {
	switch Role(raw) {
	case RoleStudent, RoleTeacher, RoleCounselor:
		return Role(raw), true
	}
	return "", false
}

// Persisted storage field names. The session store is the sole reader
// and writer of these keys.
const (
	KeyToken    = "token"
	KeyRole     = "role"
	KeyUserID   = "user_id"
	KeyUserName = "user_name"
)
