package auth

import "time"

// Claims representa la información extraída del token.
type Claims struct {
	UserID    string
	Email     string
	TenantID  string
	SessionID string
}

// Identity es lo que devuelve un Authenticator tras validar credenciales.
// No incluye rol: el rol lo decide el servicio de usuarios.
type Identity struct {
	Subject     string // id externo (IAM) o email en el mock
	Email       string
	DisplayName string
}

// Session es el documento que se persiste por sesión (perfil serializado).
type Session struct {
	ID        string
	UserID    string
	Profile   []byte // JSON del perfil
	CreatedAt time.Time
	ExpiresAt time.Time
}
