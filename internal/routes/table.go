package routes

import (
	"github.com/rock-369/student-performance-mental-health-dashboard/internal/session"
)

// View names a renderable unit. The shell maps each view to an opaque
// page; the authorizer only selects which one.
type View string

const (
	ViewLoginPage          View = "login"
	ViewSignupPage         View = "signup"
	ViewStudentDashboard   View = "student-dashboard"
	ViewTeacherDashboard   View = "teacher-dashboard"
	ViewCounselorDashboard View = "counselor-dashboard"
	ViewChat               View = "chat"

	// ViewHome is a placeholder in the route table; Decide resolves it
	// to the dashboard bound to the session's role.
	ViewHome View = "home"
)

// Access classifies who may reach a route.
type Access int

const (
	// AccessPublic routes are reachable only while anonymous.
	AccessPublic Access = iota
	// AccessAuthenticated routes require any active session.
	AccessAuthenticated
	// AccessRole routes require the session role to be in Roles.
	AccessRole
)

// Route is one declared entry of the navigation table. The table is
// configuration data, fixed at startup and never mutated.
type Route struct {
	Path   string
	Access Access
	Roles  []session.Role
	View   View
}

// DefaultTable declares every route the shell knows about.
func DefaultTable() []Route {
	return []Route{
		{Path: "/login", Access: AccessPublic, View: ViewLoginPage},
		{Path: "/signup", Access: AccessPublic, View: ViewSignupPage},
		{Path: "/", Access: AccessAuthenticated, View: ViewHome},
		{Path: "/student", Access: AccessRole, Roles: []session.Role{session.RoleStudent}, View: ViewStudentDashboard},
		{Path: "/teacher", Access: AccessRole, Roles: []session.Role{session.RoleTeacher}, View: ViewTeacherDashboard},
		{Path: "/counselor", Access: AccessRole, Roles: []session.Role{session.RoleCounselor}, View: ViewCounselorDashboard},
		{Path: "/chat", Access: AccessAuthenticated, View: ViewChat},
	}
}
