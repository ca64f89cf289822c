package credentials

import "context"

// UserStore abstracts where user records live so the service can be
// exercised without a database.
type UserStore interface {
	// FindByEmail returns nil, nil when no user exists with that email.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// Create inserts the user and returns its generated id.
	Create(ctx context.Context, u User) (string, error)
}
