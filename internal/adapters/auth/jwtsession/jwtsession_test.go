package jwtsession

import (
	"context"
	"errors"
	"testing"
	"time"

	"pet-care-hub/internal/adapters/sessions"
	"pet-care-hub/internal/ports/auth"
)

func newSession(now time.Time) auth.Session {
	return auth.Session{
		ID:        "sess-1",
		UserID:    "user-1",
		Profile:   []byte(`{"id":"user-1"}`),
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	}
}

func TestIssueVerify_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := sessions.NewMemoryStore(time.Hour)
	m, err := NewManager("secret", "pet-care-hub", store)
	if err != nil {
		t.Fatalf("NewManager error: %v", err)
	}

	s := newSession(time.Now())
	if err := store.Save(ctx, s); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	tok, err := m.Issue(s)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	claims, err := m.Verify(ctx, tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if claims.UserID != "user-1" || claims.SessionID != "sess-1" {
		t.Fatalf("unexpected claims: %#v", claims)
	}

	// Logout: borrar la sesión invalida el token aunque la firma siga siendo válida.
	if err := store.Delete(ctx, s.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, err := m.Verify(ctx, tok); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken after logout, got %v", err)
	}
}

func TestVerify_RejectsForeignSignatureAndExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	m, _ := NewManager("secret", "pet-care-hub", nil)
	other, _ := NewManager("other-secret", "pet-care-hub", nil)

	tok, err := other.Issue(newSession(now))
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if _, err := m.Verify(ctx, tok); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for foreign signature, got %v", err)
	}

	tok, _ = m.Issue(newSession(now))
	m.now = func() time.Time { return now.Add(2 * time.Hour) }
	if _, err := m.Verify(ctx, tok); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}

	if _, err := m.Verify(ctx, "  "); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for empty token, got %v", err)
	}
}

func TestNewManager_EmptySecret(t *testing.T) {
	if _, err := NewManager(" ", "x", nil); !errors.Is(err, ErrEmptySecret) {
		t.Fatalf("expected ErrEmptySecret, got %v", err)
	}
}
