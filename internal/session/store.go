package session

import (
	"context"
	"sync"

	"github.com/rock-369/student-performance-mental-health-dashboard/internal/logger"
	"github.com/rock-369/student-performance-mental-health-dashboard/internal/storage"
)

// Store is the single source of truth for who is logged in. It owns
// the in-memory session and the persisted copy of it; nothing else
// touches the storage keys.
//
// Reads and mutations are serialized with a RWMutex so the store keeps
// single-writer semantics under concurrent HTTP handlers.
type Store struct {
	mu       sync.RWMutex
	storage  storage.Store
	current  *Session
	hydrated bool
	onChange func(*Session)
}

func NewStore(st storage.Store) *Store {
	return &Store{storage: st}
}

// OnChange registers the hook invoked after every mutation (login,
// logout) with the new current session, nil when cleared. This is the
// only coupling between the store and the route authorizer: the hook
// re-evaluates the active navigation. Must be set before Bootstrap.
func (s *Store) OnChange(fn func(*Session)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

// Bootstrap hydrates the store from persisted storage. It never fails:
// malformed or partial storage means "no session", not an error. A
// token without a role (or vice versa) is discarded.
func (s *Store) Bootstrap(ctx context.Context) {
	token := s.readField(ctx, KeyToken)
	role := s.readField(ctx, KeyRole)
	userID := s.readField(ctx, KeyUserID)
	userName := s.readField(ctx, KeyUserName)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.hydrated = true

	if token == "" || role == "" {
		s.current = nil
		return
	}

	s.current = &Session{
		Token:       token,
		Role:        Role(role),
		UserID:      userID,
		DisplayName: userName,
	}
}

func (s *Store) readField(ctx context.Context, key string) string {
	val, err := s.storage.Get(ctx, key)
	if err != nil {
		// Unreadable storage degrades to an absent field.
		logger.Warn("session: storage read failed", map[string]any{
			"key":   key,
			"error": err.Error(),
		})
		return ""
	}
	return val
}

// Ready reports whether the initial hydration has completed. No route
// may be evaluated before it has, or a stored session would be routed
// to login.
func (s *Store) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hydrated
}

// Current returns the active session, nil when anonymous. The returned
// value is a copy; callers cannot mutate the store through it.
func (s *Store) Current() *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	copied := *s.current
	return &copied
}

// Login replaces the current session and persists it. The session's
// contents are not validated here; the login collaborator guarantees
// a fully-populated session.
func (s *Store) Login(ctx context.Context, sess Session) error {
	s.mu.Lock()
	copied := sess
	s.current = &copied
	hook := s.onChange
	s.mu.Unlock()

	fields := map[string]string{
		KeyToken:    sess.Token,
		KeyRole:     string(sess.Role),
		KeyUserID:   sess.UserID,
		KeyUserName: sess.DisplayName,
	}
	var persistErr error
	for key, value := range fields {
		if err := s.storage.Set(ctx, key, value); err != nil {
			persistErr = err
		}
	}

	if hook != nil {
		hook(s.Current())
	}
	return persistErr
}

// Logout clears the current session and erases the persisted fields.
// Idempotent: a second call is a no-op with the same outcome.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.current = nil
	hook := s.onChange
	s.mu.Unlock()

	err := s.storage.Delete(ctx, KeyToken, KeyRole, KeyUserID, KeyUserName)

	if hook != nil {
		hook(nil)
	}
	return err
}
