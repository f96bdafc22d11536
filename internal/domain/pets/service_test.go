package pets

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID map[string]Pet
	// reminders simula la colección hija para verificar la cascada.
	reminders map[string]string // reminderID -> petID
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Pet{}, reminders: map[string]string{}}
}

func (r *testRepo) Create(_ context.Context, p Pet) error {
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) Update(_ context.Context, p Pet) error {
	if _, ok := r.byID[p.ID]; !ok {
		return ErrNotFound
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) GetByID(_ context.Context, id string) (Pet, error) {
	p, ok := r.byID[id]
	if !ok {
		return Pet{}, ErrNotFound
	}
	return p, nil
}

func (r *testRepo) ListByOwner(_ context.Context, owner string) ([]Pet, error) {
	out := []Pet{}
	for _, p := range r.byID {
		if p.OwnerUserID == owner {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *testRepo) DeleteCascade(_ context.Context, owner, id string) (bool, error) {
	p, ok := r.byID[id]
	if !ok || p.OwnerUserID != owner {
		return false, nil
	}
	delete(r.byID, id)
	for rid, pid := range r.reminders {
		if pid == id {
			delete(r.reminders, rid)
		}
	}
	return true, nil
}

func newTestService() (*Service, *testRepo) {
	repo := newTestRepo()
	svc := NewService(repo)
	svc.now = func() time.Time { return time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC) }
	return svc, repo
}

func validInput() CreateInput {
	return CreateInput{Name: "Max", Type: "dog", Breed: "Labrador", Age: 3, Weight: 25.5}
}

// -------------------------
// Tests
// -------------------------

func TestCreate_ValidPet(t *testing.T) {
	svc, repo := newTestService()

	p, err := svc.Create(context.Background(), "u1", validInput())
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if p.ID == "" || p.Type != TypeDog || p.OwnerUserID != "u1" {
		t.Fatalf("unexpected pet: %#v", p)
	}
	if len(repo.byID) != 1 {
		t.Fatalf("expected 1 stored pet, got %d", len(repo.byID))
	}

	// Sin restricción de nombre duplicado
	p2, err := svc.Create(context.Background(), "u1", validInput())
	if err != nil || p2.ID == p.ID {
		t.Fatalf("expected second pet with new id, got %#v err=%v", p2, err)
	}
}

func TestCreate_RejectsInvalidAndDoesNotMutate(t *testing.T) {
	cases := map[string]func(in *CreateInput){
		"empty name":     func(in *CreateInput) { in.Name = "  " },
		"empty breed":    func(in *CreateInput) { in.Breed = "" },
		"unknown type":   func(in *CreateInput) { in.Type = "dragon" },
		"negative age":   func(in *CreateInput) { in.Age = -1 },
		"negative kg":    func(in *CreateInput) { in.Weight = -0.1 },
		"non-finite age": func(in *CreateInput) { in.Age = math.NaN() },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			svc, repo := newTestService()
			in := validInput()
			mutate(&in)
			if _, err := svc.Create(context.Background(), "u1", in); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
			if len(repo.byID) != 0 {
				t.Fatalf("store must be unchanged")
			}
		})
	}
}

func TestUpdate_MergesAndRevalidates(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	p, _ := svc.Create(ctx, "u1", validInput())

	w := 27.0
	updated, err := svc.Update(ctx, "u1", p.ID, UpdateInput{Weight: &w})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.Weight != 27 || updated.Name != "Max" {
		t.Fatalf("unexpected merge: %#v", updated)
	}

	neg := -3.0
	if _, err := svc.Update(ctx, "u1", p.ID, UpdateInput{Age: &neg}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if repo.byID[p.ID].Age != 3 {
		t.Fatalf("failed update must not persist, age=%v", repo.byID[p.ID].Age)
	}

	if _, err := svc.Update(ctx, "u1", "missing", UpdateInput{Weight: &w}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.Update(ctx, "other-user", p.ID, UpdateInput{Weight: &w}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign owner, got %v", err)
	}
}

func TestDelete_CascadesAndNotifiesHooks(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	p1, _ := svc.Create(ctx, "u1", validInput())
	p2, _ := svc.Create(ctx, "u1", validInput())
	repo.reminders["r1"] = p1.ID
	repo.reminders["r2"] = p1.ID
	repo.reminders["r3"] = p2.ID

	var notified []string
	svc.OnDelete(func(_ context.Context, owner, petID string) { notified = append(notified, owner+"/"+petID) })

	if err := svc.Delete(ctx, "u1", p1.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, ok := repo.byID[p1.ID]; ok {
		t.Fatalf("pet still present")
	}
	if len(repo.reminders) != 1 || repo.reminders["r3"] != p2.ID {
		t.Fatalf("expected only r3 to survive, got %#v", repo.reminders)
	}
	if len(notified) != 1 || notified[0] != "u1/"+p1.ID {
		t.Fatalf("unexpected hook calls: %#v", notified)
	}

	// id desconocido: no-op sin error ni hooks
	if err := svc.Delete(ctx, "u1", "missing"); err != nil {
		t.Fatalf("expected no-op, got %v", err)
	}
	if len(notified) != 1 {
		t.Fatalf("hooks must not fire for no-op delete")
	}
}

func TestGetByID_HidesOtherOwners(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	p, _ := svc.Create(ctx, "u1", validInput())

	if _, err := svc.GetByID(ctx, "u2", p.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	owner, err := svc.OwnerOf(ctx, p.ID)
	if err != nil || owner != "u1" {
		t.Fatalf("OwnerOf: %q err=%v", owner, err)
	}
	names, _ := svc.Names(ctx, "u1")
	if names[p.ID] != "Max" {
		t.Fatalf("unexpected names %#v", names)
	}
}
