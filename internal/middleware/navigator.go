package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/rock-369/student-performance-mental-health-dashboard/internal/logger"
	"github.com/rock-369/student-performance-mental-health-dashboard/internal/routes"
	"github.com/rock-369/student-performance-mental-health-dashboard/internal/session"
	"github.com/rock-369/student-performance-mental-health-dashboard/internal/view"
)

// Navigator applies authorizer decisions to incoming navigations. It
// remembers the last requested path so that session mutations can
// re-evaluate it: the session store's change hook lands here.
type Navigator struct {
	mu       sync.Mutex
	auth     *routes.Authorizer
	sessions *session.Store
	current  string
	last     routes.Decision
}

func NewNavigator(auth *routes.Authorizer, sessions *session.Store) *Navigator {
	n := &Navigator{
		auth:     auth,
		sessions: sessions,
		current:  "/",
	}
	sessions.OnChange(n.reevaluate)
	return n
}

// reevaluate recomputes the decision for the active navigation after a
// login or logout. Decisions are never cached beyond this; the next
// request derives a fresh one.
func (n *Navigator) reevaluate(sess *session.Session) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.last = n.auth.Decide(sess, n.current)

	logger.Info("navigation re-evaluated", map[string]any{
		"path":     n.current,
		"redirect": n.last.Kind == routes.Redirect,
		"target":   n.last.Path,
	})
}

// Last returns the decision for the active navigation under the
// current session. Handlers use it to pick the post-mutation target.
func (n *Navigator) Last() routes.Decision {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.last
}

// Navigate is the gin handler behind every declared GET route and the
// catch-all. It refuses to decide before the session store has
// hydrated, then renders or redirects per the authorizer.
func (n *Navigator) Navigate(c *gin.Context) {
	if !n.sessions.Ready() {
		c.Header("Retry-After", "1")
		c.String(http.StatusServiceUnavailable, "starting")
		return
	}

	path := c.Request.URL.Path

	n.mu.Lock()
	n.current = path
	decision := n.auth.Decide(n.sessions.Current(), path)
	n.last = decision
	n.mu.Unlock()

	if decision.Kind == routes.Redirect {
		c.Redirect(http.StatusFound, decision.Path)
		return
	}

	view.Render(c, decision.View)
}
