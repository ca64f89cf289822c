package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rock-369/student-performance-mental-health-dashboard/internal/logger"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	acct, err := h.credentialService.Authenticate(
		c.Request.Context(),
		req.Email,
		req.Password,
	)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "incorrect email or password"})
		return
	}

	token, err := h.tokens.Issue(acct)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "session error"})
		return
	}

	if err := h.sessions.Login(c.Request.Context(), acct.Session(token)); err != nil {
		logger.Warn("login: failed to persist session", map[string]any{
			"error": err.Error(),
		})
	}

	logger.Info("login succeeded", map[string]any{
		"user_id": acct.UserID,
		"role":    string(acct.Role),
	})

	// The session mutation already re-evaluated the active navigation;
	// tell the client where it landed.
	c.JSON(http.StatusOK, gin.H{
		"status":  "logged_in",
		"role":    string(acct.Role),
		"user_id": acct.UserID,
		"name":    acct.Name,
		"next":    h.navigator.Last().Path,
	})
}
