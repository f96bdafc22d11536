package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"pet-care-hub/internal/domain/duedate"
	"pet-care-hub/internal/domain/reminders"
)

type RemindersRepo struct {
	db *sql.DB
}

const reminderColumns = `
	id, owner_user_id, pet_id,
	title, date, type, recurrence, notes,
	completed, completed_at,
	created_at, updated_at`

func (r *RemindersRepo) Create(ctx context.Context, rem reminders.Reminder) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO reminders (`+reminderColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`,
		rem.ID,
		rem.OwnerUserID,
		rem.PetID,
		rem.Title,
		duedate.Day(rem.Date),
		string(rem.Type),
		string(rem.Recurrence),
		rem.Notes,
		rem.Completed,
		nullTime(rem.CompletedAt),
		utc(rem.CreatedAt),
		utc(rem.UpdatedAt),
	)
	if isForeignKeyViolation(err) {
		return reminders.ErrNotFound
	}
	return err
}

func (r *RemindersRepo) Update(ctx context.Context, rem reminders.Reminder) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE reminders
		SET
			title = $1,
			date = $2,
			type = $3,
			recurrence = $4,
			notes = $5,
			completed = $6,
			completed_at = $7,
			updated_at = $8
		WHERE id = $9
	`,
		rem.Title,
		duedate.Day(rem.Date),
		string(rem.Type),
		string(rem.Recurrence),
		rem.Notes,
		rem.Completed,
		nullTime(rem.CompletedAt),
		utc(rem.UpdatedAt),
		rem.ID,
	)
	if err != nil {
		return err
	}
	if rowsAffected(res) == 0 {
		return reminders.ErrNotFound
	}
	return nil
}

func (r *RemindersRepo) GetByID(ctx context.Context, id string) (reminders.Reminder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return reminders.Reminder{}, reminders.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+reminderColumns+` FROM reminders WHERE id = $1`, id)
	rem, err := scanReminder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return reminders.Reminder{}, reminders.ErrNotFound
	}
	return rem, err
}

func (r *RemindersRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]reminders.Reminder, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+reminderColumns+`
		FROM reminders
		WHERE owner_user_id = $1
		ORDER BY date ASC, created_at ASC
	`, ownerUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]reminders.Reminder, 0)
	for rows.Next() {
		rem, err := scanReminder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rem)
	}
	return out, rows.Err()
}

func (r *RemindersRepo) Delete(ctx context.Context, ownerUserID, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM reminders WHERE id = $1 AND owner_user_id = $2
	`, id, ownerUserID)
	if err != nil {
		return false, err
	}
	return rowsAffected(res) > 0, nil
}

func scanReminder(s scanner) (reminders.Reminder, error) {
	var rem reminders.Reminder
	var typ, recurrence string
	var completedAt sql.NullTime
	if err := s.Scan(
		&rem.ID,
		&rem.OwnerUserID,
		&rem.PetID,
		&rem.Title,
		&rem.Date,
		&typ,
		&recurrence,
		&rem.Notes,
		&rem.Completed,
		&completedAt,
		&rem.CreatedAt,
		&rem.UpdatedAt,
	); err != nil {
		return reminders.Reminder{}, err
	}

	// date es DATE: se normaliza a medianoche UTC.
	rem.Date = duedate.Day(rem.Date.UTC())
	rem.Type = reminders.Type(typ)
	rem.Recurrence = reminders.Recurrence(recurrence)
	rem.CompletedAt = timePtr(completedAt)
	rem.CreatedAt, rem.UpdatedAt = rem.CreatedAt.UTC(), rem.UpdatedAt.UTC()
	return rem, nil
}
