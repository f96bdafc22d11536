package mock

import (
	"context"
	"errors"
	"testing"

	"pet-care-hub/internal/ports/auth"
)

func TestAuthenticate(t *testing.T) {
	a := NewAuthenticator()

	id, err := a.Authenticate(context.Background(), "  Ana@Example.com ", "x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id.Email != "ana@example.com" || id.DisplayName != "ana" || id.Subject != id.Email {
		t.Fatalf("unexpected identity: %#v", id)
	}

	for _, c := range [][2]string{{"", "x"}, {"a@b.c", ""}, {"   ", "pw"}} {
		if _, err := a.Authenticate(context.Background(), c[0], c[1]); !errors.Is(err, auth.ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials for %q/%q, got %v", c[0], c[1], err)
		}
	}
}
