package users

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"pet-care-hub/internal/platform/validate"
	"pet-care-hub/internal/ports/auth"
)

var (
	ErrInvalidInput = validate.ErrInvalid
	ErrNotFound     = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")
	ErrForbidden    = errors.New("forbidden")
	ErrUnauthorized = errors.New("unauthorized")
)

type Options struct {
	SessionTTL      time.Duration
	AdminEmails     []string
	ModeratorEmails []string
}

type Service struct {
	repo     Repository
	authn    auth.Authenticator
	sessions auth.SessionStore
	tokens   auth.TokenIssuer

	ttl        time.Duration
	admins     map[string]struct{}
	moderators map[string]struct{}

	now func() time.Time
}

func NewService(repo Repository, authn auth.Authenticator, sessions auth.SessionStore, tokens auth.TokenIssuer, opts Options) *Service {
	ttl := opts.SessionTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Service{
		repo:       repo,
		authn:      authn,
		sessions:   sessions,
		tokens:     tokens,
		ttl:        ttl,
		admins:     emailSet(opts.AdminEmails),
		moderators: emailSet(opts.ModeratorEmails),
		now:        time.Now,
	}
}

type RegisterInput struct {
	DisplayName string
	Email       string
	Password    string
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (Session, error) {
	errs := validate.Errors{}
	validate.MinLen(errs, "display_name", in.DisplayName, 2)
	validate.MaxLen(errs, "display_name", in.DisplayName, 80)
	validate.Email(errs, "email", in.Email)
	validate.Required(errs, "password", in.Password)
	if err := errs.Err(); err != nil {
		return Session{}, err
	}

	email := normalizeEmail(in.Email)
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return Session{}, ErrEmailTaken
	} else if !errors.Is(err, ErrNotFound) {
		return Session{}, err
	}

	if _, err := s.authn.Authenticate(ctx, email, in.Password); err != nil {
		return Session{}, err
	}

	u, err := s.create(ctx, email, strings.TrimSpace(in.DisplayName))
	if err != nil {
		return Session{}, err
	}
	return s.openSession(ctx, u)
}

// Login delega en el Authenticator; el usuario se crea en el primer login.
func (s *Service) Login(ctx context.Context, email, password string) (Session, error) {
	id, err := s.authn.Authenticate(ctx, email, password)
	if err != nil {
		return Session{}, err
	}

	email = normalizeEmail(id.Email)
	u, err := s.repo.GetByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		name := strings.TrimSpace(id.DisplayName)
		if name == "" {
			name = localPart(email)
		}
		u, err = s.create(ctx, email, name)
	}
	if err != nil {
		return Session{}, err
	}
	return s.openSession(ctx, u)
}

func (s *Service) Logout(ctx context.Context, sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return nil
	}
	return s.sessions.Delete(ctx, sessionID)
}

// Me re-hidrata el perfil desde el documento de sesión.
// Sin sesión (modo dev) cae al repositorio.
func (s *Service) Me(ctx context.Context, userID, sessionID string) (User, error) {
	if strings.TrimSpace(sessionID) == "" {
		return s.GetByID(ctx, userID)
	}

	sess, err := s.sessions.Get(ctx, sessionID)
	if errors.Is(err, auth.ErrSessionNotFound) {
		return User{}, ErrUnauthorized
	}
	if err != nil {
		return User{}, err
	}

	var u User
	if err := json.Unmarshal(sess.Profile, &u); err != nil {
		return User{}, fmt.Errorf("decode session profile: %w", err)
	}
	return u, nil
}

// UpdateProfileInput: nil = no tocar.
type UpdateProfileInput struct {
	DisplayName *string
	AvatarURL   *string
	Location    *string
	Bio         *string
}

func (s *Service) UpdateProfile(ctx context.Context, userID, sessionID string, in UpdateProfileInput) (User, error) {
	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return User{}, err
	}

	if in.DisplayName != nil {
		u.DisplayName = strings.TrimSpace(*in.DisplayName)
	}
	if in.AvatarURL != nil {
		u.AvatarURL = strings.TrimSpace(*in.AvatarURL)
	}
	if in.Location != nil {
		u.Location = strings.TrimSpace(*in.Location)
	}
	if in.Bio != nil {
		u.Bio = strings.TrimSpace(*in.Bio)
	}

	errs := validate.Errors{}
	validate.MinLen(errs, "display_name", u.DisplayName, 2)
	validate.MaxLen(errs, "display_name", u.DisplayName, 80)
	validate.MaxLen(errs, "bio", u.Bio, 500)
	if err := errs.Err(); err != nil {
		return User{}, err
	}

	u.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, u); err != nil {
		return User{}, err
	}

	if strings.TrimSpace(sessionID) != "" {
		if err := s.rewriteSession(ctx, sessionID, u); err != nil {
			return User{}, err
		}
	}
	return u, nil
}

// SetRole: solo admin.
func (s *Service) SetRole(ctx context.Context, actorID, userID string, role Role) (User, error) {
	actorRole, err := s.RoleOf(ctx, actorID)
	if err != nil {
		return User{}, err
	}
	if actorRole != RoleAdmin {
		return User{}, ErrForbidden
	}

	errs := validate.Errors{}
	validate.OneOf(errs, "role", role, RoleOwner, RoleModerator, RoleAdmin)
	if err := errs.Err(); err != nil {
		return User{}, err
	}

	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return User{}, err
	}
	u.Role = role
	u.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (User, error) {
	if strings.TrimSpace(id) == "" {
		return User{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// RoleOf: un usuario desconocido (p.ej. X-Debug-User-ID) es owner.
func (s *Service) RoleOf(ctx context.Context, id string) (Role, error) {
	u, err := s.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return RoleOwner, nil
	}
	if err != nil {
		return "", err
	}
	return u.Role, nil
}

// Actor devuelve el perfil para firmar posts/comentarios.
// Usuarios sin registro (modo dev) se presentan como invitados.
func (s *Service) Actor(ctx context.Context, id string) (User, error) {
	u, err := s.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) && strings.TrimSpace(id) != "" {
		return User{ID: id, DisplayName: "Guest", Role: RoleOwner}, nil
	}
	return u, err
}

func (s *Service) create(ctx context.Context, email, displayName string) (User, error) {
	now := s.now()
	u := User{
		ID:          uuid.NewString(),
		DisplayName: displayName,
		Email:       email,
		Role:        s.roleForEmail(email),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

func (s *Service) openSession(ctx context.Context, u User) (Session, error) {
	now := s.now()
	profile, err := json.Marshal(u)
	if err != nil {
		return Session{}, err
	}

	sess := auth.Session{
		ID:        uuid.NewString(),
		UserID:    u.ID,
		Profile:   profile,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	if err := s.sessions.Save(ctx, sess); err != nil {
		return Session{}, err
	}

	token, err := s.tokens.Issue(sess)
	if err != nil {
		_ = s.sessions.Delete(ctx, sess.ID)
		return Session{}, err
	}

	return Session{Token: token, ExpiresAt: sess.ExpiresAt, User: u}, nil
}

func (s *Service) rewriteSession(ctx context.Context, sessionID string, u User) error {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	if sess.UserID != u.ID {
		return ErrForbidden
	}
	profile, err := json.Marshal(u)
	if err != nil {
		return err
	}
	sess.Profile = profile
	return s.sessions.Save(ctx, sess)
}

func (s *Service) roleForEmail(email string) Role {
	if _, ok := s.admins[email]; ok {
		return RoleAdmin
	}
	if _, ok := s.moderators[email]; ok {
		return RoleModerator
	}
	return RoleOwner
}

func emailSet(list []string) map[string]struct{} {
	out := make(map[string]struct{}, len(list))
	for _, e := range list {
		if e = normalizeEmail(e); e != "" {
			out[e] = struct{}{}
		}
	}
	return out
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func localPart(email string) string {
	if i := strings.IndexByte(email, '@'); i > 0 {
		return email[:i]
	}
	return email
}
