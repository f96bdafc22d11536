package odin

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"pet-care-hub/internal/platform/httpclient"
	"pet-care-hub/internal/ports/auth"
)

var (
	ErrOdinNotConfigured = errors.New("odin client not configured")
	ErrOdinUnauthorized  = errors.New("odin unauthorized")
	ErrOdinUpstream      = errors.New("odin upstream error")
)

// Config del cliente Odin.
// BaseURL y APIKey vienen de ODIN_BASE_URL / ODIN_API_KEY.
type Config struct {
	BaseURL string
	APIKey  string

	// Opcional: nombre del header donde se manda la API key.
	// Si está vacío, se usa "X-Api-Key".
	APIKeyHeader string

	Timeout time.Duration
}

type Client struct {
	http   *httpclient.Client
	apiKey string
}

func NewClient(cfg Config) (*Client, error) {
	h := strings.TrimSpace(cfg.APIKeyHeader)
	if h == "" {
		h = "X-Api-Key"
	}
	hc, err := httpclient.NewWithBaseURL(strings.TrimSpace(cfg.BaseURL), cfg.Timeout)
	if err != nil {
		return nil, err
	}
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey != "" {
		hc.WithHeader(h, apiKey)
	}
	return &Client{http: hc, apiKey: apiKey}, nil
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.http != nil && c.http.BaseURL != "" && c.apiKey != ""
}

type IdentityResponse struct {
	UserID      string `json:"user_id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	TenantID    string `json:"tenant_id"`
}

// VerifyToken: POST /v1/tokens/verify. El token va en body y en Authorization.
func (c *Client) VerifyToken(ctx context.Context, token string) (auth.Claims, error) {
	if !c.IsConfigured() {
		return auth.Claims{}, ErrOdinNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrOdinUnauthorized
	}

	var out IdentityResponse
	err := c.http.DoJSON(ctx, http.MethodPost, "/v1/tokens/verify", map[string]string{"Authorization": "Bearer " + token},
		map[string]string{"token": token}, &out)
	if err != nil {
		return auth.Claims{}, mapError(err)
	}

	out.UserID = strings.TrimSpace(out.UserID)
	if out.UserID == "" {
		return auth.Claims{}, fmt.Errorf("%w: response missing user_id", ErrOdinUpstream)
	}

	return auth.Claims{
		UserID:   out.UserID,
		Email:    strings.TrimSpace(out.Email),
		TenantID: strings.TrimSpace(out.TenantID),
	}, nil
}

// CreateSession: POST /v1/sessions con credenciales; Odin responde la identidad.
func (c *Client) CreateSession(ctx context.Context, email, password string) (IdentityResponse, error) {
	if !c.IsConfigured() {
		return IdentityResponse{}, ErrOdinNotConfigured
	}

	var out IdentityResponse
	err := c.http.DoJSON(ctx, http.MethodPost, "/v1/sessions", nil,
		map[string]string{"email": email, "password": password}, &out)
	if err != nil {
		return IdentityResponse{}, mapError(err)
	}
	return out, nil
}

func mapError(err error) error {
	switch code := httpclient.StatusCode(err); code {
	case 0:
		return fmt.Errorf("%w: %v", ErrOdinUpstream, err)
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrOdinUnauthorized
	default:
		return fmt.Errorf("%w: status=%d", ErrOdinUpstream, code)
	}
}
