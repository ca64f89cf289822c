// Package view holds the opaque renderable units the authorizer
// selects between. Their content is deliberately minimal; the shell
// only cares which one is shown, not what is in it.
package view

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rock-369/student-performance-mental-health-dashboard/internal/routes"
)

var titles = map[routes.View]string{
	routes.ViewLoginPage:          "Login",
	routes.ViewSignupPage:         "Sign Up",
	routes.ViewStudentDashboard:   "Student Dashboard",
	routes.ViewTeacherDashboard:   "Teacher Dashboard",
	routes.ViewCounselorDashboard: "Counselor Dashboard",
	routes.ViewChat:               "Chat",
}

// Render writes the page for the given view. Unknown views fall back
// to the counselor dashboard, matching the authorizer's role fallback.
func Render(c *gin.Context, v routes.View) {
	title, ok := titles[v]
	if !ok {
		title = titles[routes.ViewCounselorDashboard]
		v = routes.ViewCounselorDashboard
	}

	page := fmt.Sprintf(
		`<!doctype html><html><head><title>%s</title></head><body data-view=%q><h1>%s</h1></body></html>`,
		title, string(v), title,
	)
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}
