package auth

import (
	"context"
	"errors"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionStore guarda el perfil serializado bajo una key fija por sesión.
type SessionStore interface {
	Save(ctx context.Context, s Session) error
	Get(ctx context.Context, id string) (Session, error)
	Delete(ctx context.Context, id string) error
}

// TokenIssuer firma tokens para una sesión ya creada.
type TokenIssuer interface {
	Issue(s Session) (string, error)
}
