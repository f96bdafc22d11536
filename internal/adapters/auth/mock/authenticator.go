// Package mock implementa un Authenticator que acepta cualquier par email/password no vacío.
// Es el backend por defecto mientras no haya IAM real.
package mock

import (
	"context"
	"strings"

	"pet-care-hub/internal/ports/auth"
)

type Authenticator struct{}

func NewAuthenticator() *Authenticator {
	return &Authenticator{}
}

func (a *Authenticator) Authenticate(_ context.Context, email, password string) (auth.Identity, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return auth.Identity{}, auth.ErrInvalidCredentials
	}

	return auth.Identity{
		Subject:     email,
		Email:       email,
		DisplayName: localPart(email),
	}, nil
}

func localPart(email string) string {
	if i := strings.IndexByte(email, '@'); i > 0 {
		return email[:i]
	}
	return email
}
