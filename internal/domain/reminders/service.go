package reminders

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"pet-care-hub/internal/domain/duedate"
	"pet-care-hub/internal/domain/pets"
	"pet-care-hub/internal/platform/validate"
)

var (
	ErrInvalidInput = validate.ErrInvalid
	ErrNotFound     = errors.New("reminder not found")
)

// PetLookup lo implementa *pets.Service; OwnerOf devuelve pets.ErrNotFound si no existe.
type PetLookup interface {
	OwnerOf(ctx context.Context, petID string) (string, error)
}

const viewTTL = 5 * time.Minute

type Service struct {
	repo Repository
	pets PetLookup

	// views guarda la lista completa por owner; cualquier mutación la invalida.
	// versions sube en cada Invalidate: una lectura que se cruzó con una mutación no se cachea.
	views    *cache.Cache
	mu       sync.Mutex
	versions map[string]uint64

	now func() time.Time
}

func NewService(repo Repository, pets PetLookup) *Service {
	return &Service{
		repo:     repo,
		pets:     pets,
		views:    cache.New(viewTTL, 2*viewTTL),
		versions: map[string]uint64{},
		now:      time.Now,
	}
}

// DisableViewCache hace que cada vista se lea directo del storage.
// Necesario cuando varias instancias comparten la base: el cache es local al proceso.
func (s *Service) DisableViewCache() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.views = nil
}

type CreateInput struct {
	PetID      string
	Title      string
	Date       string // YYYY-MM-DD
	Type       string
	Recurrence string
	Notes      string
}

func (s *Service) Create(ctx context.Context, ownerUserID string, in CreateInput) (Reminder, error) {
	if strings.TrimSpace(ownerUserID) == "" {
		return Reminder{}, ErrInvalidInput
	}

	errs := validate.Errors{}
	validate.Required(errs, "pet_id", in.PetID)
	validate.Required(errs, "title", in.Title)
	validate.MaxLen(errs, "title", in.Title, 200)

	date, err := duedate.ParseDate(strings.TrimSpace(in.Date))
	if err != nil {
		errs.Add("date", "must be a valid YYYY-MM-DD date")
	}

	typ := Type(strings.ToLower(strings.TrimSpace(in.Type)))
	if typ == "" {
		typ = TypeOther
	}
	validate.OneOf(errs, "type", typ, reminderTypes...)

	rec := Recurrence(strings.ToLower(strings.TrimSpace(in.Recurrence)))
	if rec == "" {
		rec = RecurrenceNone
	}
	validate.OneOf(errs, "recurrence", rec, recurrences...)

	if strings.TrimSpace(in.PetID) != "" {
		if err := s.checkPet(ctx, ownerUserID, in.PetID); err != nil {
			if !errors.Is(err, ErrNotFound) {
				return Reminder{}, err
			}
			errs.Add("pet_id", "does not reference an existing pet")
		}
	}
	if err := errs.Err(); err != nil {
		return Reminder{}, err
	}

	now := s.now()
	r := Reminder{
		ID:          uuid.NewString(),
		OwnerUserID: ownerUserID,
		PetID:       strings.TrimSpace(in.PetID),
		Title:       strings.TrimSpace(in.Title),
		Date:        date,
		Type:        typ,
		Recurrence:  rec,
		Notes:       strings.TrimSpace(in.Notes),
		Completed:   false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, r); err != nil {
		if errors.Is(err, ErrNotFound) {
			petErrs := validate.Errors{}
			petErrs.Add("pet_id", "does not reference an existing pet")
			return Reminder{}, petErrs.Err()
		}
		return Reminder{}, err
	}
	s.Invalidate(ownerUserID)
	return r, nil
}

// Toggle invierte completed. La recurrencia no se toca.
func (s *Service) Toggle(ctx context.Context, ownerUserID, id string) (Reminder, error) {
	r, err := s.GetByID(ctx, ownerUserID, id)
	if err != nil {
		return Reminder{}, err
	}

	now := s.now()
	r.Completed = !r.Completed
	if r.Completed {
		r.CompletedAt = &now
	} else {
		r.CompletedAt = nil
	}
	r.UpdatedAt = now

	if err := s.repo.Update(ctx, r); err != nil {
		return Reminder{}, err
	}
	s.Invalidate(ownerUserID)
	return r, nil
}

type UpdateInput struct {
	Title      *string
	Date       *string
	Type       *string
	Recurrence *string
	Notes      *string
}

func (s *Service) Update(ctx context.Context, ownerUserID, id string, in UpdateInput) (Reminder, error) {
	r, err := s.GetByID(ctx, ownerUserID, id)
	if err != nil {
		return Reminder{}, err
	}

	errs := validate.Errors{}
	if in.Title != nil {
		r.Title = strings.TrimSpace(*in.Title)
		validate.Required(errs, "title", r.Title)
		validate.MaxLen(errs, "title", r.Title, 200)
	}
	if in.Date != nil {
		d, err := duedate.ParseDate(strings.TrimSpace(*in.Date))
		if err != nil {
			errs.Add("date", "must be a valid YYYY-MM-DD date")
		}
		r.Date = d
	}
	if in.Type != nil {
		r.Type = Type(strings.ToLower(strings.TrimSpace(*in.Type)))
		validate.OneOf(errs, "type", r.Type, reminderTypes...)
	}
	if in.Recurrence != nil {
		r.Recurrence = Recurrence(strings.ToLower(strings.TrimSpace(*in.Recurrence)))
		validate.OneOf(errs, "recurrence", r.Recurrence, recurrences...)
	}
	if in.Notes != nil {
		r.Notes = strings.TrimSpace(*in.Notes)
	}
	if err := errs.Err(); err != nil {
		return Reminder{}, err
	}

	r.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, r); err != nil {
		return Reminder{}, err
	}
	s.Invalidate(ownerUserID)
	return r, nil
}

// Delete: un id desconocido es no-op.
func (s *Service) Delete(ctx context.Context, ownerUserID, id string) error {
	deleted, err := s.repo.Delete(ctx, ownerUserID, id)
	if err != nil {
		return err
	}
	if deleted {
		s.Invalidate(ownerUserID)
	}
	return nil
}

func (s *Service) GetByID(ctx context.Context, ownerUserID, id string) (Reminder, error) {
	if strings.TrimSpace(id) == "" {
		return Reminder{}, ErrNotFound
	}
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Reminder{}, err
	}
	if r.OwnerUserID != ownerUserID {
		return Reminder{}, ErrNotFound
	}
	return r, nil
}

// Invalidate descarta la vista cacheada del owner.
// Se registra como hook de borrado de mascotas (la cascada ocurre en storage).
func (s *Service) Invalidate(ownerUserID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.versions[ownerUserID]++
	if s.views != nil {
		s.views.Delete(viewKey(ownerUserID))
	}
}

// -------------------------
// Vistas derivadas
// -------------------------

// List devuelve los recordatorios filtrados, ordenados por fecha asc.
// now se usa para los filtros por bucket (today, overdue, ...).
func (s *Service) List(ctx context.Context, ownerUserID string, filter ListFilter, now time.Time) ([]Reminder, error) {
	all, err := s.all(ctx, ownerUserID)
	if err != nil {
		return nil, err
	}

	out := make([]Reminder, 0, len(all))
	for _, r := range all {
		if !matches(r, filter, now) {
			continue
		}
		out = append(out, r)
	}
	sortByDate(out)

	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

// Upcoming: incompletos ordenados por fecha asc (empates por creación).
func (s *Service) Upcoming(ctx context.Context, ownerUserID string) ([]Reminder, error) {
	all, err := s.all(ctx, ownerUserID)
	if err != nil {
		return nil, err
	}

	out := make([]Reminder, 0, len(all))
	for _, r := range all {
		if !r.Completed {
			out = append(out, r)
		}
	}
	sortByDate(out)
	return out, nil
}

func (s *Service) CompletedCount(ctx context.Context, ownerUserID string) (int, error) {
	all, err := s.all(ctx, ownerUserID)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, r := range all {
		if r.Completed {
			n++
		}
	}
	return n, nil
}

func (s *Service) ByPet(ctx context.Context, ownerUserID, petID string) ([]Reminder, error) {
	if err := s.checkPet(ctx, ownerUserID, petID); err != nil {
		return nil, err
	}
	return s.List(ctx, ownerUserID, ListFilter{PetID: petID}, s.now())
}

// Calendar agrupa por día los recordatorios del mes (solo días con recordatorios).
func (s *Service) Calendar(ctx context.Context, ownerUserID string, year int, month time.Month) ([]CalendarDay, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	items, err := s.List(ctx, ownerUserID, ListFilter{From: &from, To: &to}, s.now())
	if err != nil {
		return nil, err
	}

	days := make([]CalendarDay, 0)
	for _, r := range items {
		if n := len(days); n > 0 && days[n-1].Date.Equal(r.Date) {
			days[n-1].Reminders = append(days[n-1].Reminders, r)
			continue
		}
		days = append(days, CalendarDay{Date: r.Date, Reminders: []Reminder{r}})
	}
	return days, nil
}

// Streak usa el día de CompletedAt visto en la zona de now.
func (s *Service) Streak(ctx context.Context, ownerUserID string, now time.Time) (int, error) {
	all, err := s.all(ctx, ownerUserID)
	if err != nil {
		return 0, err
	}

	days := make([]time.Time, 0)
	for _, r := range all {
		if r.Completed && r.CompletedAt != nil {
			days = append(days, r.CompletedAt.In(now.Location()))
		}
	}
	return duedate.Streak(days, now), nil
}

// all devuelve una copia de la vista del owner (desde cache o storage).
func (s *Service) all(ctx context.Context, ownerUserID string) ([]Reminder, error) {
	key := viewKey(ownerUserID)

	s.mu.Lock()
	views, version := s.views, s.versions[ownerUserID]
	s.mu.Unlock()

	if views != nil {
		if v, found := views.Get(key); found {
			if cached, ok := v.([]Reminder); ok {
				return append([]Reminder(nil), cached...), nil
			}
		}
	}

	items, err := s.repo.ListByOwner(ctx, ownerUserID)
	if err != nil {
		return nil, err
	}

	// Solo se cachea si nadie invalidó mientras leíamos.
	s.mu.Lock()
	if s.views != nil && s.versions[ownerUserID] == version {
		s.views.Set(key, items, cache.DefaultExpiration)
	}
	s.mu.Unlock()

	return append([]Reminder(nil), items...), nil
}

func (s *Service) checkPet(ctx context.Context, ownerUserID, petID string) error {
	owner, err := s.pets.OwnerOf(ctx, strings.TrimSpace(petID))
	if err != nil {
		if errors.Is(err, pets.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if owner != ownerUserID {
		return ErrNotFound
	}
	return nil
}

func matches(r Reminder, f ListFilter, now time.Time) bool {
	if f.PetID != "" && r.PetID != f.PetID {
		return false
	}
	if f.Type != "" && r.Type != f.Type {
		return false
	}
	if f.From != nil && r.Date.Before(duedate.Day(*f.From)) {
		return false
	}
	if f.To != nil && r.Date.After(duedate.Day(*f.To)) {
		return false
	}

	switch f.Status {
	case "":
		return true
	case StatusPending:
		return !r.Completed
	case StatusCompleted:
		return r.Completed
	default:
		return string(duedate.Classify(r.Date, r.Completed, now).Status) == f.Status
	}
}

func sortByDate(items []Reminder) {
	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].Date.Equal(items[j].Date) {
			return items[i].Date.Before(items[j].Date)
		}
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
}

func viewKey(ownerUserID string) string {
	return "reminders:" + ownerUserID
}

// Now expone el reloj del servicio (los handlers lo ubican en la zona del request).
func (s *Service) Now() time.Time {
	return s.now()
}
