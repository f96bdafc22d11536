// Package jwtsession firma y verifica tokens HS256 atados a una sesión.
// El token lleva el id de sesión (jti); si la sesión ya no existe en el store (logout), el token deja de valer.
package jwtsession

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"pet-care-hub/internal/ports/auth"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrEmptySecret  = errors.New("jwt secret is empty")
)

type sessionClaims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// Manager implementa auth.TokenIssuer y auth.AuthVerifier.
type Manager struct {
	secret   []byte
	issuer   string
	sessions auth.SessionStore
	now      func() time.Time
}

func NewManager(secret, issuer string, sessions auth.SessionStore) (*Manager, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, ErrEmptySecret
	}
	return &Manager{
		secret:   []byte(secret),
		issuer:   issuer,
		sessions: sessions,
		now:      time.Now,
	}, nil
}

func (m *Manager) Issue(s auth.Session) (string, error) {
	if s.ID == "" || s.UserID == "" {
		return "", fmt.Errorf("%w: session without id or user", ErrInvalidToken)
	}
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        s.ID,
			Subject:   s.UserID,
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(s.CreatedAt),
			ExpiresAt: jwt.NewNumericDate(s.ExpiresAt),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *Manager) Verify(ctx context.Context, token string) (auth.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrInvalidToken
	}

	var claims sessionClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil || !parsed.Valid {
		return auth.Claims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.Subject == "" || claims.ID == "" {
		return auth.Claims{}, ErrInvalidToken
	}

	// La sesión tiene que seguir viva (logout la borra).
	if m.sessions != nil {
		s, err := m.sessions.Get(ctx, claims.ID)
		if err != nil {
			return auth.Claims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
		}
		if s.UserID != claims.Subject {
			return auth.Claims{}, ErrInvalidToken
		}
	}

	return auth.Claims{
		UserID:    claims.Subject,
		Email:     claims.Email,
		SessionID: claims.ID,
	}, nil
}
