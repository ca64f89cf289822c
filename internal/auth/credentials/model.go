package credentials

import (
	"time"

	"github.com/rock-369/student-performance-mental-health-dashboard/internal/session"
)

type User struct {
	ID           string
	Name         string
	Email        string
	Role         session.Role
	PasswordHash string
	CreatedAt    time.Time
}
