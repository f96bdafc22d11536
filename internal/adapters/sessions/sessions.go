// Package sessions guarda el perfil serializado de cada sesión bajo "petcare:session:<id>".
// Hay dos backends: go-cache en proceso (dev, tests) y redis (varias réplicas).
package sessions

import (
	"encoding/json"
	"time"

	"pet-care-hub/internal/ports/auth"
)

const keyPrefix = "petcare:session:"

func Key(id string) string {
	return keyPrefix + id
}

// record es la forma persistida; Profile va embebido como JSON crudo.
type record struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Profile   json.RawMessage `json:"profile"`
	CreatedAt time.Time       `json:"created_at"`
	ExpiresAt time.Time       `json:"expires_at"`
}

func encode(s auth.Session) ([]byte, error) {
	profile := s.Profile
	if len(profile) == 0 {
		profile = []byte("null")
	}
	return json.Marshal(record{
		ID:        s.ID,
		UserID:    s.UserID,
		Profile:   profile,
		CreatedAt: s.CreatedAt,
		ExpiresAt: s.ExpiresAt,
	})
}

func decode(b []byte) (auth.Session, error) {
	var r record
	if err := json.Unmarshal(b, &r); err != nil {
		return auth.Session{}, err
	}
	return auth.Session{
		ID:        r.ID,
		UserID:    r.UserID,
		Profile:   []byte(r.Profile),
		CreatedAt: r.CreatedAt,
		ExpiresAt: r.ExpiresAt,
	}, nil
}

// ttlFor: lo que le queda a la sesión; nunca 0 para no crear entradas eternas.
func ttlFor(s auth.Session, fallback time.Duration, now time.Time) time.Duration {
	if s.ExpiresAt.IsZero() {
		return fallback
	}
	d := s.ExpiresAt.Sub(now)
	if d <= 0 {
		return time.Second
	}
	return d
}
