// Package dashboard arma los agregados del inicio y del perfil a partir de
// mascotas, recordatorios, notificaciones y posts.
package dashboard

import (
	"context"
	"time"

	"pet-care-hub/internal/domain/duedate"
	"pet-care-hub/internal/domain/pets"
	"pet-care-hub/internal/domain/reminders"
)

// DefaultUpcoming es cuántos recordatorios muestra el inicio.
const DefaultUpcoming = 5

type PetSource interface {
	ListByOwner(ctx context.Context, ownerUserID string) ([]pets.Pet, error)
}

type ReminderSource interface {
	List(ctx context.Context, ownerUserID string, filter reminders.ListFilter, now time.Time) ([]reminders.Reminder, error)
	Streak(ctx context.Context, ownerUserID string, now time.Time) (int, error)
	Now() time.Time
}

type NotificationCounter interface {
	UnreadCount(ctx context.Context, userID string) (int, error)
}

type PostCounter interface {
	CountByAuthor(ctx context.Context, authorID string) (int, error)
}

type Dashboard struct {
	PetCount            int              `json:"pet_count"`
	Upcoming            []reminders.View `json:"upcoming"`
	OverdueCount        int              `json:"overdue_count"`
	DueTodayCount       int              `json:"due_today_count"`
	CompletedCount      int              `json:"completed_count"`
	Streak              int              `json:"streak"`
	UnreadNotifications int              `json:"unread_notifications"`
}

type Stats struct {
	Pets               int `json:"pets"`
	RemindersTotal     int `json:"reminders_total"`
	RemindersCompleted int `json:"reminders_completed"`
	Streak             int `json:"streak"`
	Posts              int `json:"posts"`
}

type Service struct {
	pets          PetSource
	reminders     ReminderSource
	notifications NotificationCounter
	posts         PostCounter
}

// NewService: notifications y posts son opcionales (cuentan 0 si faltan).
func NewService(p PetSource, r ReminderSource, n NotificationCounter, po PostCounter) *Service {
	return &Service{pets: p, reminders: r, notifications: n, posts: po}
}

// Now expone el reloj de recordatorios para que el handler aplique ?tz=.
func (s *Service) Now() time.Time {
	return s.reminders.Now()
}

func (s *Service) Dashboard(ctx context.Context, ownerUserID string, now time.Time, limit int) (Dashboard, error) {
	if limit <= 0 {
		limit = DefaultUpcoming
	}

	ownPets, err := s.pets.ListByOwner(ctx, ownerUserID)
	if err != nil {
		return Dashboard{}, err
	}
	items, err := s.reminders.List(ctx, ownerUserID, reminders.ListFilter{}, now)
	if err != nil {
		return Dashboard{}, err
	}
	streak, err := s.reminders.Streak(ctx, ownerUserID, now)
	if err != nil {
		return Dashboard{}, err
	}

	d := Dashboard{PetCount: len(ownPets), Streak: streak, Upcoming: []reminders.View{}}
	names := petNames(ownPets)

	// items ya viene ordenado por fecha.
	for _, r := range items {
		b := duedate.Classify(r.Date, r.Completed, now)
		switch b.Status {
		case duedate.StatusCompleted:
			d.CompletedCount++
			continue
		case duedate.StatusOverdue:
			d.OverdueCount++
		case duedate.StatusToday:
			d.DueTodayCount++
		}
		if len(d.Upcoming) < limit {
			d.Upcoming = append(d.Upcoming, reminders.NewView(r, names[r.PetID], now))
		}
	}

	if s.notifications != nil {
		if d.UnreadNotifications, err = s.notifications.UnreadCount(ctx, ownerUserID); err != nil {
			return Dashboard{}, err
		}
	}
	return d, nil
}

func (s *Service) Stats(ctx context.Context, userID string, now time.Time) (Stats, error) {
	ownPets, err := s.pets.ListByOwner(ctx, userID)
	if err != nil {
		return Stats{}, err
	}
	items, err := s.reminders.List(ctx, userID, reminders.ListFilter{}, now)
	if err != nil {
		return Stats{}, err
	}
	streak, err := s.reminders.Streak(ctx, userID, now)
	if err != nil {
		return Stats{}, err
	}

	st := Stats{Pets: len(ownPets), RemindersTotal: len(items), Streak: streak}
	for _, r := range items {
		if r.Completed {
			st.RemindersCompleted++
		}
	}

	if s.posts != nil {
		if st.Posts, err = s.posts.CountByAuthor(ctx, userID); err != nil {
			return Stats{}, err
		}
	}
	return st, nil
}

func petNames(items []pets.Pet) map[string]string {
	out := make(map[string]string, len(items))
	for _, p := range items {
		out[p.ID] = p.Name
	}
	return out
}
