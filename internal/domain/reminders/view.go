package reminders

import (
	"time"

	"pet-care-hub/internal/domain/duedate"
)

// View es la forma JSON de un recordatorio, siempre con su bucket de vencimiento.
type View struct {
	ID          string         `json:"id"`
	PetID       string         `json:"pet_id"`
	PetName     string         `json:"pet_name,omitempty"`
	Title       string         `json:"title"`
	Date        string         `json:"date"` // YYYY-MM-DD
	Type        Type           `json:"type"`
	Recurrence  Recurrence     `json:"recurrence"`
	Notes       string         `json:"notes,omitempty"`
	Completed   bool           `json:"completed"`
	CompletedAt *time.Time     `json:"completed_at,omitempty"`
	Due         duedate.Bucket `json:"due"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func NewView(r Reminder, petName string, now time.Time) View {
	return View{
		ID:          r.ID,
		PetID:       r.PetID,
		PetName:     petName,
		Title:       r.Title,
		Date:        r.Date.Format(time.DateOnly),
		Type:        r.Type,
		Recurrence:  r.Recurrence,
		Notes:       r.Notes,
		Completed:   r.Completed,
		CompletedAt: r.CompletedAt,
		Due:         duedate.Classify(r.Date, r.Completed, now),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func NewViews(items []Reminder, petNames map[string]string, now time.Time) []View {
	out := make([]View, 0, len(items))
	for _, r := range items {
		out = append(out, NewView(r, petNames[r.PetID], now))
	}
	return out
}
