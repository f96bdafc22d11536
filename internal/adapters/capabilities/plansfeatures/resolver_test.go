package plansfeatures

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"pet-care-hub/internal/ports/capabilities"
)

func TestResolver_HasFeature(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/capabilities" || r.Header.Get("X-Api-Key") != "k" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		caps := map[string]bool{}
		if r.URL.Query().Get("user_id") == "moderated-user" {
			caps[capabilities.FeaturePostModeration] = true
		}
		_ = json.NewEncoder(w).Encode(CapabilitiesResponse{Capabilities: caps})
	}))
	defer srv.Close()

	c, err := NewClient(Config{BaseURL: srv.URL, APIKey: "k"})
	if err != nil {
		t.Fatalf("NewClient error: %v", err)
	}
	r := NewResolver(c, false)
	ctx := context.Background()

	ok, err := r.HasFeature(ctx, capabilities.CapabilityCheck{UserID: "moderated-user", Feature: capabilities.FeaturePostModeration})
	if err != nil || !ok {
		t.Fatalf("expected feature on, got %v err=%v", ok, err)
	}
	ok, err = r.HasFeature(ctx, capabilities.CapabilityCheck{UserID: "free-user", Feature: capabilities.FeaturePostModeration})
	if err != nil || ok {
		t.Fatalf("expected feature off, got %v err=%v", ok, err)
	}

	bad, _ := NewClient(Config{BaseURL: srv.URL, APIKey: "wrong"})
	if _, err := NewResolver(bad, false).HasFeature(ctx, capabilities.CapabilityCheck{UserID: "x", Feature: "f"}); !errors.Is(err, ErrPlansUnauthorized) {
		t.Fatalf("expected ErrPlansUnauthorized, got %v", err)
	}
}

func TestResolver_AllowAllAndNotConfigured(t *testing.T) {
	ctx := context.Background()
	in := capabilities.CapabilityCheck{UserID: "u", Feature: capabilities.FeaturePostModeration}

	if ok, err := NewResolver(nil, true).HasFeature(ctx, in); err != nil || !ok {
		t.Fatalf("allowAll must answer true, got %v %v", ok, err)
	}
	c, _ := NewClient(Config{})
	if _, err := NewResolver(c, false).HasFeature(ctx, in); !errors.Is(err, ErrPlansNotConfigured) {
		t.Fatalf("expected ErrPlansNotConfigured, got %v", err)
	}
}
