package auth

import (
	"context"
	"errors"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Authenticator valida credenciales contra un backend (mock, IAM remoto, ...).
// Se puede reemplazar sin tocar los servicios de dominio.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (Identity, error)
}
