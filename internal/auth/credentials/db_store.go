package credentials

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/rock-369/student-performance-mental-health-dashboard/internal/db"
	"github.com/rock-369/student-performance-mental-health-dashboard/internal/session"
)

// DBStore is the canonical UserStore, backed by the users table.
type DBStore struct {
	db *db.DB
}

func NewDBStore(db *db.DB) *DBStore {
	return &DBStore{db: db}
}

func (s *DBStore) FindByEmail(ctx context.Context, email string) (*User, error) {
	var (
		id   uuid.UUID
		user User
		role string
	)

	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, email, role, password_hash, created_at
		FROM users
		WHERE LOWER(email) = LOWER($1)
	`, email).Scan(
		&id,
		&user.Name,
		&user.Email,
		&role,
		&user.PasswordHash,
		&user.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	user.ID = id.String()
	user.Role = session.Role(role)
	return &user, nil
}

func (s *DBStore) Create(ctx context.Context, u User) (string, error) {
	var id uuid.UUID

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO users (name, email, role, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`,
		u.Name,
		u.Email,
		string(u.Role),
		u.PasswordHash,
	).Scan(&id)

	if err != nil {
		return "", err
	}

	return id.String(), nil
}
