package credentials

import (
	"context"
	"errors"

	"github.com/rock-369/student-performance-mental-health-dashboard/internal/auth"
	"github.com/rock-369/student-performance-mental-health-dashboard/internal/session"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAlreadyRegistered  = errors.New("email already registered")
)

// Service is the login/signup collaborator. It hands fully-populated
// accounts to the caller and never touches session state itself.
type Service struct {
	users UserStore
}

func NewService(users UserStore) *Service {
	return &Service{users: users}
}

func (s *Service) Register(
	ctx context.Context,
	name string,
	email string,
	password string,
	role session.Role,
) (auth.Account, error) {

	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return auth.Account{}, err
	}
	if existing != nil {
		return auth.Account{}, ErrAlreadyRegistered
	}

	hash, err := HashPassword(password)
	if err != nil {
		return auth.Account{}, err
	}

	userID, err := s.users.Create(ctx, User{
		Name:         name,
		Email:        email,
		Role:         role,
		PasswordHash: hash,
	})
	if err != nil {
		return auth.Account{}, err
	}

	return auth.Account{
		UserID: userID,
		Name:   name,
		Email:  email,
		Role:   role,
	}, nil
}

func (s *Service) Authenticate(
	ctx context.Context,
	email string,
	password string,
) (auth.Account, error) {

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return auth.Account{}, err
	}

	// hide whether the user exists or not
	if user == nil {
		return auth.Account{}, ErrInvalidCredentials
	}

	if err := VerifyPassword(user.PasswordHash, password); err != nil {
		return auth.Account{}, ErrInvalidCredentials
	}

	return auth.Account{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
	}, nil
}
