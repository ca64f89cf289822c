package routes

import (
	"github.com/rock-369/student-performance-mental-health-dashboard/internal/session"
)

// DecisionKind distinguishes rendering the requested path from sending
// the client elsewhere.
type DecisionKind int

const (
	Render DecisionKind = iota
	Redirect
)

// Decision is the authorizer's verdict for one navigation. When Kind
// is Render, View holds the unit to display and Path the rendered
// path; when Kind is Redirect, Path holds the target.
type Decision struct {
	Kind DecisionKind
	Path string
	View View
}

func render(v View, path string) Decision {
	return Decision{Kind: Render, Path: path, View: v}
}

func redirect(path string) Decision {
	return Decision{Kind: Redirect, Path: path}
}

// Authorizer evaluates navigations against the declared route table.
// It holds no session state of its own; every decision is derived from
// the session value passed in.
type Authorizer struct {
	byPath map[string]Route
}

func NewAuthorizer(table []Route) *Authorizer {
	byPath := make(map[string]Route, len(table))
	for _, r := range table {
		byPath[r.Path] = r
	}
	return &Authorizer{byPath: byPath}
}

// Decide maps (session, requested path) to a decision. It never fails:
// any path the table does not declare resolves to a redirect, so the
// whole input domain is covered.
//
// Precedence, first match wins:
//  1. public path, anonymous: render it
//  2. public path, authenticated: redirect home
//  3. anonymous anywhere else: redirect to login
//  4. home: render the dashboard bound to the role
//  5. role-restricted path, wrong role: redirect home
//  6. any-authenticated path: render it
//  7. undeclared path: redirect home
func (a *Authorizer) Decide(sess *session.Session, path string) Decision {
	route, declared := a.byPath[path]

	if declared && route.Access == AccessPublic {
		if sess == nil {
			return render(route.View, path)
		}
		return redirect("/")
	}

	if sess == nil {
		return redirect("/login")
	}

	if !declared {
		return redirect("/")
	}

	if route.View == ViewHome {
		return render(dashboardFor(sess.Role), path)
	}

	if route.Access == AccessRole && !roleAllowed(route.Roles, sess.Role) {
		return redirect("/")
	}

	return render(route.View, path)
}

// dashboardFor binds a role to its dashboard. Any role that is not
// student or teacher lands on the counselor dashboard; that fallback
// is the product's documented default for unrecognized roles.
func dashboardFor(role session.Role) View {
	switch role {
	case session.RoleStudent:
		return ViewStudentDashboard
	case session.RoleTeacher:
		return ViewTeacherDashboard
	default:
		return ViewCounselorDashboard
	}
}

func roleAllowed(allowed []session.Role, role session.Role) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}
