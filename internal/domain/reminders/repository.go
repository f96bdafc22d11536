package reminders

import (
	"context"
	"time"
)

type Repository interface {
	// Create devuelve ErrNotFound si la mascota ya no existe (p.ej. borrada en paralelo).
	Create(ctx context.Context, r Reminder) error
	Update(ctx context.Context, r Reminder) error
	GetByID(ctx context.Context, id string) (Reminder, error)
	ListByOwner(ctx context.Context, ownerUserID string) ([]Reminder, error)
	Delete(ctx context.Context, ownerUserID, id string) (deleted bool, err error)
}

type ListFilter struct {
	Status string // pending, completed o un bucket (today, upcoming, overdue, future)
	Type   Type
	PetID  string
	From   *time.Time
	To     *time.Time
	Limit  int
}
