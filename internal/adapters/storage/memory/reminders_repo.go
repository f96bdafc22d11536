package memory

import (
	"context"
	"strings"

	"pet-care-hub/internal/domain/reminders"
)

type reminderRepo struct {
	s *Store
}

func (r *reminderRepo) Create(ctx context.Context, rem reminders.Reminder) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if strings.TrimSpace(rem.ID) == "" {
		return errIDRequired
	}
	if _, exists := r.s.reminders[rem.ID]; exists {
		return errAlreadyExists
	}
	// La mascota se revisa bajo el mismo lock que usa la cascada.
	if p, ok := r.s.pets[rem.PetID]; !ok || p.OwnerUserID != rem.OwnerUserID {
		return reminders.ErrNotFound
	}
	r.s.reminders[rem.ID] = copyReminder(rem)
	return nil
}

func (r *reminderRepo) Update(ctx context.Context, rem reminders.Reminder) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.reminders[rem.ID]; !exists {
		return reminders.ErrNotFound
	}
	r.s.reminders[rem.ID] = copyReminder(rem)
	return nil
}

func (r *reminderRepo) GetByID(ctx context.Context, id string) (reminders.Reminder, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rem, ok := r.s.reminders[id]
	if !ok {
		return reminders.Reminder{}, reminders.ErrNotFound
	}
	return copyReminder(rem), nil
}

func (r *reminderRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]reminders.Reminder, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]reminders.Reminder, 0)
	for _, rem := range r.s.reminders {
		if rem.OwnerUserID == ownerUserID {
			out = append(out, copyReminder(rem))
		}
	}
	return out, nil
}

func (r *reminderRepo) Delete(ctx context.Context, ownerUserID, id string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rem, ok := r.s.reminders[id]
	if !ok || rem.OwnerUserID != ownerUserID {
		return false, nil
	}
	delete(r.s.reminders, id)
	return true, nil
}

// copyReminder evita compartir CompletedAt entre el mapa y el llamador.
func copyReminder(rem reminders.Reminder) reminders.Reminder {
	if rem.CompletedAt != nil {
		t := *rem.CompletedAt
		rem.CompletedAt = &t
	}
	return rem
}
