package notifications

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, n Notification) error
	// List devuelve las notificaciones del usuario, más recientes primero.
	List(ctx context.Context, userID string, q ListQuery) ([]Notification, error)
	MarkRead(ctx context.Context, userID, id string) (bool, error)
	MarkAllRead(ctx context.Context, userID string) (int, error)
	CountUnread(ctx context.Context, userID string) (int, error)
}

type ListQuery struct {
	UnreadOnly bool
	Since      *time.Time
	Limit      int
}
