package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"pet-care-hub/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

const petColumns = `
	id, owner_user_id,
	name, type, breed,
	age, weight, color, gender, image_url,
	created_at, updated_at`

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pets (`+petColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`,
		p.ID,
		p.OwnerUserID,
		p.Name,
		string(p.Type),
		p.Breed,
		p.Age,
		p.Weight,
		p.Color,
		p.Gender,
		p.ImageURL,
		utc(p.CreatedAt),
		utc(p.UpdatedAt),
	)
	return err
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET
			name = $1,
			type = $2,
			breed = $3,
			age = $4,
			weight = $5,
			color = $6,
			gender = $7,
			image_url = $8,
			updated_at = $9
		WHERE id = $10
	`,
		p.Name,
		string(p.Type),
		p.Breed,
		p.Age,
		p.Weight,
		p.Color,
		p.Gender,
		p.ImageURL,
		utc(p.UpdatedAt),
		p.ID,
	)
	if err != nil {
		return err
	}
	if rowsAffected(res) == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return pets.Pet{}, pets.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+petColumns+` FROM pets WHERE id = $1`, id)
	p, err := scanPet(row)
	if errors.Is(err, sql.ErrNoRows) {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, err
}

func (r *PetsRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]pets.Pet, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return []pets.Pet{}, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+petColumns+`
		FROM pets
		WHERE owner_user_id = $1
		ORDER BY created_at ASC
	`, ownerUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// DeleteCascade borra recordatorios y mascota en la misma transacción.
func (r *PetsRepo) DeleteCascade(ctx context.Context, ownerUserID, id string) (bool, error) {
	deleted := false
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
			DELETE FROM reminders WHERE pet_id = $1 AND owner_user_id = $2
		`, id, ownerUserID); err != nil {
			return err
		}

		res, err := tx.ExecContext(ctx, `
			DELETE FROM pets WHERE id = $1 AND owner_user_id = $2
		`, id, ownerUserID)
		if err != nil {
			return err
		}
		deleted = rowsAffected(res) > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPet(s scanner) (pets.Pet, error) {
	var p pets.Pet
	var typ string
	if err := s.Scan(
		&p.ID,
		&p.OwnerUserID,
		&p.Name,
		&typ,
		&p.Breed,
		&p.Age,
		&p.Weight,
		&p.Color,
		&p.Gender,
		&p.ImageURL,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return pets.Pet{}, err
	}
	p.Type = pets.PetType(typ)
	p.CreatedAt, p.UpdatedAt = p.CreatedAt.UTC(), p.UpdatedAt.UTC()
	return p, nil
}
