package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rock-369/student-performance-mental-health-dashboard/internal/auth"
	"github.com/rock-369/student-performance-mental-health-dashboard/internal/auth/credentials"
	"github.com/rock-369/student-performance-mental-health-dashboard/internal/logger"
	"github.com/rock-369/student-performance-mental-health-dashboard/internal/middleware"
	"github.com/rock-369/student-performance-mental-health-dashboard/internal/session"
)

// Handler owns the login/signup/logout endpoints. It is the only
// writer of the session store besides bootstrap.
type Handler struct {
	credentialService *credentials.Service
	tokens            *auth.TokenIssuer
	sessions          *session.Store
	navigator         *middleware.Navigator
}

func NewHandler(
	credentialService *credentials.Service,
	tokens *auth.TokenIssuer,
	sessions *session.Store,
	navigator *middleware.Navigator,
) *Handler {
	return &Handler{
		credentialService: credentialService,
		tokens:            tokens,
		sessions:          sessions,
		navigator:         navigator,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/auth/login", h.Login)
	r.POST("/auth/signup", h.Signup)
	r.POST("/auth/logout", h.Logout)
}

func (h *Handler) Logout(c *gin.Context) {
	// Clearing is idempotent; logging out while anonymous is a no-op
	// with the same response.
	if err := h.sessions.Logout(c.Request.Context()); err != nil {
		logger.Warn("logout: failed to clear persisted session", map[string]any{
			"error": err.Error(),
		})
	}

	c.Status(http.StatusNoContent)
}
