package memory

import (
	"context"
	"errors"
	"testing"

	"pet-care-hub/internal/adapters/storage/storagetest"
	"pet-care-hub/internal/domain/pets"
	"pet-care-hub/internal/domain/reminders"
)

func TestStore(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) storagetest.Repos {
		s := NewStore()
		return storagetest.Repos{
			Users:         s.Users(),
			Pets:          s.Pets(),
			Reminders:     s.Reminders(),
			Posts:         s.Posts(),
			Reports:       s.Reports(),
			Notifications: s.Notifications(),
		}
	})
}

// deletingPets borra la mascota justo después de confirmar el dueño,
// como un DELETE /pets concurrente.
type deletingPets struct {
	svc *pets.Service
}

func (d deletingPets) OwnerOf(ctx context.Context, petID string) (string, error) {
	owner, err := d.svc.OwnerOf(ctx, petID)
	if err != nil {
		return "", err
	}
	if err := d.svc.Delete(ctx, owner, petID); err != nil {
		return "", err
	}
	return owner, nil
}

func TestReminderCreate_PetDeletedConcurrently(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	petsSvc := pets.NewService(s.Pets())
	remindersSvc := reminders.NewService(s.Reminders(), deletingPets{svc: petsSvc})

	p, err := petsSvc.Create(ctx, "u1", pets.CreateInput{Name: "Milo", Type: "dog", Breed: "mixed"})
	if err != nil {
		t.Fatalf("create pet: %v", err)
	}

	_, err = remindersSvc.Create(ctx, "u1", reminders.CreateInput{PetID: p.ID, Title: "Rabies shot", Date: "2026-03-12"})
	if !errors.Is(err, reminders.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	left, _ := s.Reminders().ListByOwner(ctx, "u1")
	if len(left) != 0 {
		t.Fatalf("orphan reminders survived the cascade: %#v", left)
	}
}
