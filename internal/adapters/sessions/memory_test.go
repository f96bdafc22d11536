package sessions

import (
	"context"
	"errors"
	"testing"
	"time"

	"pet-care-hub/internal/ports/auth"
)

func TestMemoryStore_SaveGetDelete(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore(time.Hour)

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	st.now = func() time.Time { return now }

	s := auth.Session{
		ID:        "abc",
		UserID:    "u1",
		Profile:   []byte(`{"display_name":"Ana"}`),
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	}
	if err := st.Save(ctx, s); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	got, err := st.Get(ctx, "abc")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got.UserID != "u1" || string(got.Profile) != `{"display_name":"Ana"}` || !got.ExpiresAt.Equal(s.ExpiresAt) {
		t.Fatalf("unexpected session: %#v", got)
	}

	// Re-guardar bajo la misma key reemplaza el documento.
	s.Profile = []byte(`{"display_name":"Ana B"}`)
	_ = st.Save(ctx, s)
	got, _ = st.Get(ctx, "abc")
	if string(got.Profile) != `{"display_name":"Ana B"}` {
		t.Fatalf("expected overwritten profile, got %s", got.Profile)
	}

	if err := st.Delete(ctx, "abc"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, err := st.Get(ctx, "abc"); !errors.Is(err, auth.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestKey(t *testing.T) {
	if Key("x") != "petcare:session:x" {
		t.Fatalf("unexpected key %q", Key("x"))
	}
}

func TestTTLFor(t *testing.T) {
	now := time.Now()
	if d := ttlFor(auth.Session{}, time.Minute, now); d != time.Minute {
		t.Fatalf("expected fallback, got %v", d)
	}
	if d := ttlFor(auth.Session{ExpiresAt: now.Add(-time.Hour)}, time.Minute, now); d != time.Second {
		t.Fatalf("expected minimal ttl for expired session, got %v", d)
	}
}
