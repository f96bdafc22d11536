package users

import "time"

// Role define los permisos dentro de la comunidad.
// @Enum owner, moderator, admin
type Role string

const (
	RoleOwner     Role = "owner"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

// CanModerate: moderator y admin pueden moderar posts y revisar reportes.
func (r Role) CanModerate() bool {
	return r == RoleModerator || r == RoleAdmin
}

// User es el perfil de la persona autenticada.
type User struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"display_name"`
	Email       string    `json:"email"`
	Role        Role      `json:"role"`
	AvatarURL   string    `json:"avatar_url,omitempty"`
	Location    string    `json:"location,omitempty"`
	Bio         string    `json:"bio,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Session es lo que recibe el cliente tras login/register.
type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      User      `json:"user"`
}
