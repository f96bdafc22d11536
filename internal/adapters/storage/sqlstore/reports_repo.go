package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"pet-care-hub/internal/domain/reports"
)

type ReportsRepo struct {
	db *sql.DB
}

const reportColumns = `
	id, post_id, reporter_id,
	reason, description, status,
	reviewed_by, reviewed_at, created_at`

func (r *ReportsRepo) Create(ctx context.Context, rep reports.Report) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO reports (`+reportColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		rep.ID,
		rep.PostID,
		rep.ReporterID,
		string(rep.Reason),
		rep.Description,
		string(rep.Status),
		rep.ReviewedBy,
		nullTime(rep.ReviewedAt),
		utc(rep.CreatedAt),
	)
	return err
}

func (r *ReportsRepo) Update(ctx context.Context, rep reports.Report) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE reports
		SET
			status = $1,
			reviewed_by = $2,
			reviewed_at = $3
		WHERE id = $4
	`,
		string(rep.Status),
		rep.ReviewedBy,
		nullTime(rep.ReviewedAt),
		rep.ID,
	)
	if err != nil {
		return err
	}
	if rowsAffected(res) == 0 {
		return reports.ErrNotFound
	}
	return nil
}

func (r *ReportsRepo) GetByID(ctx context.Context, id string) (reports.Report, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return reports.Report{}, reports.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+reportColumns+` FROM reports WHERE id = $1`, id)
	rep, err := scanReport(row)
	if errors.Is(err, sql.ErrNoRows) {
		return reports.Report{}, reports.ErrNotFound
	}
	return rep, err
}

func (r *ReportsRepo) List(ctx context.Context, status reports.Status) ([]reports.Report, error) {
	query := `SELECT ` + reportColumns + ` FROM reports`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, string(status))
	}
	query += ` ORDER BY created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]reports.Report, 0)
	for rows.Next() {
		rep, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rep)
	}
	return out, rows.Err()
}

func scanReport(s scanner) (reports.Report, error) {
	var rep reports.Report
	var reason, status string
	var reviewedAt sql.NullTime
	if err := s.Scan(
		&rep.ID,
		&rep.PostID,
		&rep.ReporterID,
		&reason,
		&rep.Description,
		&status,
		&rep.ReviewedBy,
		&reviewedAt,
		&rep.CreatedAt,
	); err != nil {
		return reports.Report{}, err
	}
	rep.Reason = reports.Reason(reason)
	rep.Status = reports.Status(status)
	rep.ReviewedAt = timePtr(reviewedAt)
	rep.CreatedAt = rep.CreatedAt.UTC()
	return rep, nil
}
