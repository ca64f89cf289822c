package session

import (
	"context"
	"testing"

	"github.com/rock-369/student-performance-mental-health-dashboard/internal/storage"
)

func newTestStore(t *testing.T, seed map[string]string) (*Store, *storage.Memory) {
	t.Helper()

	mem := storage.NewMemory()
	ctx := context.Background()
	for k, v := range seed {
		if err := mem.Set(ctx, k, v); err != nil {
			t.Fatalf("seed storage: %v", err)
		}
	}

	return NewStore(mem), mem
}

func TestBootstrapWithoutTokenIsAnonymous(t *testing.T) {
	store, _ := newTestStore(t, map[string]string{
		KeyRole: "student",
	})

	store.Bootstrap(context.Background())

	if !store.Ready() {
		t.Fatal("store must be ready after bootstrap")
	}
	if store.Current() != nil {
		t.Fatalf("expected no session, got %+v", store.Current())
	}
}

func TestBootstrapWithoutRoleIsAnonymous(t *testing.T) {
	store, _ := newTestStore(t, map[string]string{
		KeyToken:    "abc",
		KeyUserID:   "7",
		KeyUserName: "Ann",
	})

	store.Bootstrap(context.Background())

	if store.Current() != nil {
		t.Fatalf("token without role must not form a session, got %+v", store.Current())
	}
}

func TestBootstrapHydratesFullSession(t *testing.T) {
	store, _ := newTestStore(t, map[string]string{
		KeyToken:    "abc",
		KeyRole:     "teacher",
		KeyUserID:   "7",
		KeyUserName: "Ann",
	})

	store.Bootstrap(context.Background())

	got := store.Current()
	if got == nil {
		t.Fatal("expected a hydrated session")
	}
	want := Session{Token: "abc", Role: RoleTeacher, UserID: "7", DisplayName: "Ann"}
	if *got != want {
		t.Fatalf("hydrated session = %+v, want %+v", *got, want)
	}
}

func TestNotReadyBeforeBootstrap(t *testing.T) {
	store, _ := newTestStore(t, nil)

	if store.Ready() {
		t.Fatal("store must not be ready before bootstrap")
	}
}

func TestLoginReplacesSessionAndPersists(t *testing.T) {
	store, mem := newTestStore(t, nil)
	ctx := context.Background()
	store.Bootstrap(ctx)

	sess := Session{Token: "abc", Role: RoleStudent, UserID: "1", DisplayName: "Bea"}
	if err := store.Login(ctx, sess); err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	got := store.Current()
	if got == nil || *got != sess {
		t.Fatalf("Current() = %+v, want %+v", got, sess)
	}

	for key, want := range map[string]string{
		KeyToken:    "abc",
		KeyRole:     "student",
		KeyUserID:   "1",
		KeyUserName: "Bea",
	} {
		val, err := mem.Get(ctx, key)
		if err != nil {
			t.Fatalf("Get(%q) failed: %v", key, err)
		}
		if val != want {
			t.Fatalf("persisted %q = %q, want %q", key, val, want)
		}
	}
}

func TestLogoutIsIdempotent(t *testing.T) {
	store, mem := newTestStore(t, nil)
	ctx := context.Background()
	store.Bootstrap(ctx)

	sess := Session{Token: "abc", Role: RoleStudent, UserID: "1", DisplayName: "Bea"}
	if err := store.Login(ctx, sess); err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	if err := store.Logout(ctx); err != nil {
		t.Fatalf("first Logout failed: %v", err)
	}
	if err := store.Logout(ctx); err != nil {
		t.Fatalf("second Logout failed: %v", err)
	}

	if store.Current() != nil {
		t.Fatalf("expected cleared session, got %+v", store.Current())
	}

	for _, key := range []string{KeyToken, KeyRole, KeyUserID, KeyUserName} {
		val, err := mem.Get(ctx, key)
		if err != nil {
			t.Fatalf("Get(%q) failed: %v", key, err)
		}
		if val != "" {
			t.Fatalf("key %q still persisted after logout: %q", key, val)
		}
	}
}

func TestMutationsInvokeChangeHook(t *testing.T) {
	store, _ := newTestStore(t, nil)
	ctx := context.Background()
	store.Bootstrap(ctx)

	var calls []*Session
	store.OnChange(func(s *Session) {
		calls = append(calls, s)
	})

	sess := Session{Token: "abc", Role: RoleTeacher, UserID: "2", DisplayName: "Cy"}
	if err := store.Login(ctx, sess); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if err := store.Logout(ctx); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}

	if len(calls) != 2 {
		t.Fatalf("expected 2 hook calls, got %d", len(calls))
	}
	if calls[0] == nil || calls[0].Role != RoleTeacher {
		t.Fatalf("login hook got %+v, want teacher session", calls[0])
	}
	if calls[1] != nil {
		t.Fatalf("logout hook got %+v, want nil", calls[1])
	}
}

func TestCurrentReturnsCopy(t *testing.T) {
	store, _ := newTestStore(t, nil)
	ctx := context.Background()
	store.Bootstrap(ctx)

	sess := Session{Token: "abc", Role: RoleStudent, UserID: "1", DisplayName: "Bea"}
	if err := store.Login(ctx, sess); err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	first := store.Current()
	first.Role = RoleTeacher

	if store.Current().Role != RoleStudent {
		t.Fatal("mutating the returned session must not affect the store")
	}
}
