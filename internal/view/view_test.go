package view

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/rock-369/student-performance-mental-health-dashboard/internal/routes"
)

func render(t *testing.T, v routes.View) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	Render(c, v)
	return w
}

func TestRenderKnownViews(t *testing.T) {
	for v, marker := range map[routes.View]string{
		routes.ViewLoginPage:          `data-view="login"`,
		routes.ViewStudentDashboard:   `data-view="student-dashboard"`,
		routes.ViewTeacherDashboard:   `data-view="teacher-dashboard"`,
		routes.ViewCounselorDashboard: `data-view="counselor-dashboard"`,
		routes.ViewChat:               `data-view="chat"`,
	} {
		w := render(t, v)
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), marker) {
			t.Fatalf("view %q: got %d %q", v, w.Code, w.Body.String())
		}
	}
}

func TestRenderUnknownViewFallsBack(t *testing.T) {
	w := render(t, routes.View("mystery"))
	if !strings.Contains(w.Body.String(), `data-view="counselor-dashboard"`) {
		t.Fatalf("unknown view must fall back to counselor dashboard, got %q", w.Body.String())
	}
}
