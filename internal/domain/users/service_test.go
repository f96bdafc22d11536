package users

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"pet-care-hub/internal/ports/auth"
)

// -------------------------
// Fakes
// -------------------------

type testRepo struct {
	byID map[string]User
}

func newTestRepo() *testRepo { return &testRepo{byID: map[string]User{}} }

func (r *testRepo) Create(_ context.Context, u User) error {
	r.byID[u.ID] = u
	return nil
}

func (r *testRepo) Update(_ context.Context, u User) error {
	if _, ok := r.byID[u.ID]; !ok {
		return ErrNotFound
	}
	r.byID[u.ID] = u
	return nil
}

func (r *testRepo) GetByID(_ context.Context, id string) (User, error) {
	u, ok := r.byID[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

func (r *testRepo) GetByEmail(_ context.Context, email string) (User, error) {
	for _, u := range r.byID {
		if u.Email == strings.ToLower(email) {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

type anyAuth struct{}

func (anyAuth) Authenticate(_ context.Context, email, password string) (auth.Identity, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return auth.Identity{}, auth.ErrInvalidCredentials
	}
	return auth.Identity{Subject: email, Email: email}, nil
}

type mapSessions map[string]auth.Session

func (m mapSessions) Save(_ context.Context, s auth.Session) error { m[s.ID] = s; return nil }
func (m mapSessions) Delete(_ context.Context, id string) error    { delete(m, id); return nil }
func (m mapSessions) Get(_ context.Context, id string) (auth.Session, error) {
	s, ok := m[id]
	if !ok {
		return auth.Session{}, auth.ErrSessionNotFound
	}
	return s, nil
}

type plainIssuer struct{}

func (plainIssuer) Issue(s auth.Session) (string, error) { return "tok-" + s.ID, nil }

func newTestService() (*Service, mapSessions) {
	sessions := mapSessions{}
	svc := NewService(newTestRepo(), anyAuth{}, sessions, plainIssuer{}, Options{
		SessionTTL:  time.Hour,
		AdminEmails: []string{"Boss@Example.com"},
	})
	svc.now = func() time.Time { return time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC) }
	return svc, sessions
}

func sessionIDOf(s Session) string { return strings.TrimPrefix(s.Token, "tok-") }

// -------------------------
// Tests
// -------------------------

func TestLogin_CreatesUserOnFirstLoginAndReusesIt(t *testing.T) {
	svc, sessions := newTestService()
	ctx := context.Background()

	s1, err := svc.Login(ctx, "ana@example.com", "x")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if s1.User.DisplayName != "ana" || s1.User.Role != RoleOwner {
		t.Fatalf("unexpected user: %#v", s1.User)
	}
	if !s1.ExpiresAt.Equal(svc.now().Add(time.Hour)) {
		t.Fatalf("unexpected expiry %v", s1.ExpiresAt)
	}

	s2, err := svc.Login(ctx, "ANA@example.com", "other")
	if err != nil {
		t.Fatalf("second Login error: %v", err)
	}
	if s2.User.ID != s1.User.ID {
		t.Fatalf("expected same user, got %s vs %s", s2.User.ID, s1.User.ID)
	}
	if len(sessions) != 2 {
		t.Fatalf("expected two sessions, got %d", len(sessions))
	}

	if _, err := svc.Login(ctx, "", "x"); !errors.Is(err, auth.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_AdminEmailGetsAdminRole(t *testing.T) {
	svc, _ := newTestService()
	s, err := svc.Login(context.Background(), "boss@example.com", "x")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if s.User.Role != RoleAdmin {
		t.Fatalf("expected admin, got %s", s.User.Role)
	}
}

func TestRegister_ValidationAndDuplicates(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{DisplayName: "A", Email: "not-an-email", Password: ""})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	if _, err := svc.Register(ctx, RegisterInput{DisplayName: "Ana", Email: "ana@example.com", Password: "pw"}); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	_, err = svc.Register(ctx, RegisterInput{DisplayName: "Ana 2", Email: "Ana@Example.com", Password: "pw"})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestMe_ReadsSessionDocumentAndLogoutDeletesIt(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	s, _ := svc.Register(ctx, RegisterInput{DisplayName: "Ana", Email: "ana@example.com", Password: "pw"})
	sid := sessionIDOf(s)

	u, err := svc.Me(ctx, s.User.ID, sid)
	if err != nil {
		t.Fatalf("Me error: %v", err)
	}
	if u.ID != s.User.ID || u.DisplayName != "Ana" {
		t.Fatalf("unexpected profile: %#v", u)
	}

	if err := svc.Logout(ctx, sid); err != nil {
		t.Fatalf("Logout error: %v", err)
	}
	if _, err := svc.Me(ctx, s.User.ID, sid); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized after logout, got %v", err)
	}
}

func TestUpdateProfile_MergesAndRewritesSession(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	s, _ := svc.Login(ctx, "ana@example.com", "x")
	sid := sessionIDOf(s)

	bio := "I like dogs"
	u, err := svc.UpdateProfile(ctx, s.User.ID, sid, UpdateProfileInput{Bio: &bio})
	if err != nil {
		t.Fatalf("UpdateProfile error: %v", err)
	}
	if u.Bio != bio || u.DisplayName != "ana" {
		t.Fatalf("unexpected merge: %#v", u)
	}

	me, _ := svc.Me(ctx, s.User.ID, sid)
	if me.Bio != bio {
		t.Fatalf("session profile not rewritten: %#v", me)
	}

	short := "x"
	if _, err := svc.UpdateProfile(ctx, s.User.ID, sid, UpdateProfileInput{DisplayName: &short}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	stored, _ := svc.GetByID(ctx, s.User.ID)
	if stored.DisplayName != "ana" {
		t.Fatalf("failed validation must not mutate, got %q", stored.DisplayName)
	}
}

func TestSetRole_AdminOnly(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	admin, _ := svc.Login(ctx, "boss@example.com", "x")
	ana, _ := svc.Login(ctx, "ana@example.com", "x")

	if _, err := svc.SetRole(ctx, ana.User.ID, admin.User.ID, RoleOwner); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	u, err := svc.SetRole(ctx, admin.User.ID, ana.User.ID, RoleModerator)
	if err != nil {
		t.Fatalf("SetRole error: %v", err)
	}
	if u.Role != RoleModerator || !u.Role.CanModerate() {
		t.Fatalf("unexpected role %s", u.Role)
	}

	if _, err := svc.SetRole(ctx, admin.User.ID, ana.User.ID, Role("root")); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.SetRole(ctx, admin.User.ID, "missing", RoleOwner); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRoleOfAndActor_UnknownUserIsGuestOwner(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	role, err := svc.RoleOf(ctx, "dev-user")
	if err != nil || role != RoleOwner {
		t.Fatalf("expected owner, got %s err=%v", role, err)
	}
	a, err := svc.Actor(ctx, "dev-user")
	if err != nil || a.ID != "dev-user" || a.DisplayName == "" {
		t.Fatalf("unexpected actor %#v err=%v", a, err)
	}
}
