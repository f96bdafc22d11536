package odin

import (
	"context"
	"errors"
	"strings"

	"pet-care-hub/internal/ports/auth"
)

// Authenticator implementa auth.Authenticator contra Odin.
// El token que emite el servicio sigue siendo el propio (jwtsession); Odin solo valida credenciales.
type Authenticator struct {
	client *Client
}

func NewAuthenticator(client *Client) *Authenticator {
	return &Authenticator{client: client}
}

func (a *Authenticator) Authenticate(ctx context.Context, email, password string) (auth.Identity, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return auth.Identity{}, auth.ErrInvalidCredentials
	}

	out, err := a.client.CreateSession(ctx, email, password)
	if errors.Is(err, ErrOdinUnauthorized) {
		return auth.Identity{}, auth.ErrInvalidCredentials
	}
	if err != nil {
		return auth.Identity{}, err
	}

	id := auth.Identity{
		Subject:     strings.TrimSpace(out.UserID),
		Email:       strings.ToLower(strings.TrimSpace(out.Email)),
		DisplayName: strings.TrimSpace(out.DisplayName),
	}
	if id.Email == "" {
		id.Email = email
	}
	if id.Subject == "" {
		id.Subject = id.Email
	}
	return id, nil
}
