package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"pet-care-hub/internal/domain/notifications"
)

type NotificationsRepo struct {
	db *sql.DB
}

func (r *NotificationsRepo) Create(ctx context.Context, n notifications.Notification) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO notifications (id, user_id, kind, post_id, message, read, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		n.ID,
		n.UserID,
		string(n.Kind),
		n.PostID,
		n.Message,
		n.Read,
		utc(n.CreatedAt),
	)
	return err
}

func (r *NotificationsRepo) List(ctx context.Context, userID string, q notifications.ListQuery) ([]notifications.Notification, error) {
	query := `
		SELECT id, user_id, kind, post_id, message, read, created_at
		FROM notifications
		WHERE user_id = $1`
	args := []any{userID}

	if q.UnreadOnly {
		query += ` AND read = FALSE`
	}
	if q.Since != nil {
		args = append(args, q.Since.UTC())
		query += fmt.Sprintf(` AND created_at > $%d`, len(args))
	}
	query += ` ORDER BY created_at DESC, id DESC`
	if q.Limit > 0 {
		args = append(args, q.Limit)
		query += fmt.Sprintf(` LIMIT $%d`, len(args))
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]notifications.Notification, 0)
	for rows.Next() {
		var n notifications.Notification
		var kind string
		if err := rows.Scan(&n.ID, &n.UserID, &kind, &n.PostID, &n.Message, &n.Read, &n.CreatedAt); err != nil {
			return nil, err
		}
		n.Kind = notifications.Kind(kind)
		n.CreatedAt = n.CreatedAt.UTC()
		out = append(out, n)
	}
	return out, rows.Err()
}

func (r *NotificationsRepo) MarkRead(ctx context.Context, userID, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE notifications SET read = TRUE WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return false, err
	}
	return rowsAffected(res) > 0, nil
}

func (r *NotificationsRepo) MarkAllRead(ctx context.Context, userID string) (int, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE notifications SET read = TRUE WHERE user_id = $1 AND read = FALSE
	`, userID)
	if err != nil {
		return 0, err
	}
	return int(rowsAffected(res)), nil
}

func (r *NotificationsRepo) CountUnread(ctx context.Context, userID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND read = FALSE
	`, userID).Scan(&n)
	return n, err
}
