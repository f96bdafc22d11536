package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"pet-care-hub/internal/domain/users"
)

type UsersRepo struct {
	db *sql.DB
}

const userColumns = `id, display_name, email, role, avatar_url, location, bio, created_at, updated_at`

func (r *UsersRepo) Create(ctx context.Context, u users.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (`+userColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		u.ID,
		u.DisplayName,
		u.Email,
		string(u.Role),
		u.AvatarURL,
		u.Location,
		u.Bio,
		utc(u.CreatedAt),
		utc(u.UpdatedAt),
	)
	if isUniqueViolation(err) {
		return users.ErrEmailTaken
	}
	return err
}

func (r *UsersRepo) Update(ctx context.Context, u users.User) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET
			display_name = $1,
			role = $2,
			avatar_url = $3,
			location = $4,
			bio = $5,
			updated_at = $6
		WHERE id = $7
	`,
		u.DisplayName,
		string(u.Role),
		u.AvatarURL,
		u.Location,
		u.Bio,
		utc(u.UpdatedAt),
		u.ID,
	)
	if err != nil {
		return err
	}
	if rowsAffected(res) == 0 {
		return users.ErrNotFound
	}
	return nil
}

func (r *UsersRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return users.User{}, users.ErrNotFound
	}
	return r.get(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	return r.get(ctx, `SELECT `+userColumns+` FROM users WHERE lower(email) = lower($1)`, strings.TrimSpace(email))
}

func (r *UsersRepo) get(ctx context.Context, query string, arg string) (users.User, error) {
	var u users.User
	var role string
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&u.ID,
		&u.DisplayName,
		&u.Email,
		&role,
		&u.AvatarURL,
		&u.Location,
		&u.Bio,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return users.User{}, users.ErrNotFound
	}
	if err != nil {
		return users.User{}, err
	}
	u.Role = users.Role(role)
	u.CreatedAt, u.UpdatedAt = u.CreatedAt.UTC(), u.UpdatedAt.UTC()
	return u, nil
}
