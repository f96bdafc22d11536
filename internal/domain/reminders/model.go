package reminders

import "time"

type Reminder struct {
	ID          string
	OwnerUserID string
	PetID       string

	Title string
	// Date es un día calendario (medianoche UTC); la hora no tiene semántica.
	Date       time.Time
	Type       Type
	Recurrence Recurrence
	Notes      string

	Completed   bool
	CompletedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CalendarDay agrupa los recordatorios de un día del mes.
type CalendarDay struct {
	Date      time.Time
	Reminders []Reminder
}
