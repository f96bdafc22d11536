package pets

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"pet-care-hub/internal/platform/validate"
)

var (
	ErrInvalidInput = validate.ErrInvalid
	ErrNotFound     = errors.New("pet not found")
)

// DeleteHook se llama después de borrar una mascota (p.ej. invalidar vistas derivadas).
type DeleteHook func(ctx context.Context, ownerUserID, petID string)

type Service struct {
	repo  Repository
	now   func() time.Time
	hooks []DeleteHook
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

func (s *Service) OnDelete(h DeleteHook) {
	s.hooks = append(s.hooks, h)
}

type CreateInput struct {
	Name     string
	Type     string
	Breed    string
	Age      float64
	Weight   float64
	Color    string
	Gender   string
	ImageURL string
}

func (s *Service) Create(ctx context.Context, ownerUserID string, in CreateInput) (Pet, error) {
	if strings.TrimSpace(ownerUserID) == "" {
		return Pet{}, ErrInvalidInput
	}

	now := s.now()
	p := Pet{
		ID:          uuid.NewString(),
		OwnerUserID: ownerUserID,
		Name:        strings.TrimSpace(in.Name),
		Type:        PetType(strings.ToLower(strings.TrimSpace(in.Type))),
		Breed:       strings.TrimSpace(in.Breed),
		Age:         in.Age,
		Weight:      in.Weight,
		Color:       strings.TrimSpace(in.Color),
		Gender:      strings.TrimSpace(in.Gender),
		ImageURL:    strings.TrimSpace(in.ImageURL),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := validatePet(p); err != nil {
		return Pet{}, err
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

// UpdateInput: punteros para PATCH real, nil = no tocar.
type UpdateInput struct {
	Name     *string
	Type     *string
	Breed    *string
	Age      *float64
	Weight   *float64
	Color    *string
	Gender   *string
	ImageURL *string
}

// Update mezcla los campos presentes y re-valida la mascota resultante.
// Si la validación falla no se persiste nada.
func (s *Service) Update(ctx context.Context, ownerUserID, id string, in UpdateInput) (Pet, error) {
	p, err := s.GetByID(ctx, ownerUserID, id)
	if err != nil {
		return Pet{}, err
	}

	if in.Name != nil {
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.Type != nil {
		p.Type = PetType(strings.ToLower(strings.TrimSpace(*in.Type)))
	}
	if in.Breed != nil {
		p.Breed = strings.TrimSpace(*in.Breed)
	}
	if in.Age != nil {
		p.Age = *in.Age
	}
	if in.Weight != nil {
		p.Weight = *in.Weight
	}
	if in.Color != nil {
		p.Color = strings.TrimSpace(*in.Color)
	}
	if in.Gender != nil {
		p.Gender = strings.TrimSpace(*in.Gender)
	}
	if in.ImageURL != nil {
		p.ImageURL = strings.TrimSpace(*in.ImageURL)
	}

	if err := validatePet(p); err != nil {
		return Pet{}, err
	}

	p.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

// Delete borra la mascota y sus recordatorios. Un id desconocido no es error.
func (s *Service) Delete(ctx context.Context, ownerUserID, id string) error {
	deleted, err := s.repo.DeleteCascade(ctx, ownerUserID, id)
	if err != nil {
		return err
	}
	if deleted {
		for _, h := range s.hooks {
			h(ctx, ownerUserID, id)
		}
	}
	return nil
}

// GetByID: las mascotas de otro owner se reportan como no encontradas.
func (s *Service) GetByID(ctx context.Context, ownerUserID, id string) (Pet, error) {
	if strings.TrimSpace(id) == "" {
		return Pet{}, ErrNotFound
	}
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Pet{}, err
	}
	if p.OwnerUserID != ownerUserID {
		return Pet{}, ErrNotFound
	}
	return p, nil
}

func (s *Service) ListByOwner(ctx context.Context, ownerUserID string) ([]Pet, error) {
	return s.repo.ListByOwner(ctx, ownerUserID)
}

func validatePet(p Pet) error {
	errs := validate.Errors{}
	validate.Required(errs, "name", p.Name)
	validate.MaxLen(errs, "name", p.Name, 80)
	validate.Required(errs, "type", string(p.Type))
	if p.Type != "" {
		validate.OneOf(errs, "type", p.Type, petTypes...)
	}
	validate.Required(errs, "breed", p.Breed)
	validate.NonNegative(errs, "age", p.Age)
	validate.NonNegative(errs, "weight", p.Weight)
	return errs.Err()
}
