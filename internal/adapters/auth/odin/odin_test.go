package odin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"pet-care-hub/internal/ports/auth"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/sessions", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Api-Key") != "k" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		var in map[string]string
		_ = json.NewDecoder(r.Body).Decode(&in)
		if in["password"] != "good" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{
			"user_id": "iam-42", "email": in["email"], "display_name": "Ana",
		})
	})
	mux.HandleFunc("/v1/tokens/verify", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"user_id": "iam-42", "email": "ana@example.com"})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestAuthenticator(t *testing.T) {
	srv := newTestServer(t)
	c, err := NewClient(Config{BaseURL: srv.URL, APIKey: "k"})
	if err != nil {
		t.Fatalf("NewClient error: %v", err)
	}
	a := NewAuthenticator(c)

	id, err := a.Authenticate(context.Background(), "Ana@example.com", "good")
	if err != nil {
		t.Fatalf("Authenticate error: %v", err)
	}
	if id.Subject != "iam-42" || id.Email != "ana@example.com" || id.DisplayName != "Ana" {
		t.Fatalf("unexpected identity: %#v", id)
	}

	if _, err := a.Authenticate(context.Background(), "ana@example.com", "bad"); !errors.Is(err, auth.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestVerifier(t *testing.T) {
	srv := newTestServer(t)
	c, _ := NewClient(Config{BaseURL: srv.URL, APIKey: "k"})
	v := NewVerifier(c)

	claims, err := v.Verify(context.Background(), "tok")
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if claims.UserID != "iam-42" {
		t.Fatalf("unexpected claims: %#v", claims)
	}

	if _, err := v.Verify(context.Background(), "other"); !errors.Is(err, ErrOdinUnauthorized) {
		t.Fatalf("expected ErrOdinUnauthorized, got %v", err)
	}
	if _, err := v.Verify(context.Background(), " "); !errors.Is(err, ErrTokenEmpty) {
		t.Fatalf("expected ErrTokenEmpty, got %v", err)
	}
}

func TestClient_NotConfigured(t *testing.T) {
	c, _ := NewClient(Config{})
	if _, err := c.VerifyToken(context.Background(), "tok"); !errors.Is(err, ErrOdinNotConfigured) {
		t.Fatalf("expected ErrOdinNotConfigured, got %v", err)
	}
}
