// Package duedate clasifica fechas de vencimiento en buckets (hoy, mañana,
// vencido, próximo, futuro). Es puro: "hoy" siempre viene de afuera, nunca se cachea.
package duedate

import (
	"fmt"
	"time"
)

type Status string

const (
	StatusCompleted Status = "completed"
	StatusToday     Status = "today"
	StatusUpcoming  Status = "upcoming"
	StatusOverdue   Status = "overdue"
	StatusFuture    Status = "future"
)

// StyleHint es una pista para la UI; el cliente decide colores.
type StyleHint string

const (
	StyleMuted   StyleHint = "muted"
	StyleWarning StyleHint = "warning"
	StyleInfo    StyleHint = "info"
	StyleDanger  StyleHint = "danger"
	StyleDefault StyleHint = "default"
)

// LabelLayout equivale a "MMMM d, yyyy".
const LabelLayout = "January 2, 2006"

// UpcomingWindowDays: hasta cuántos días hacia adelante se considera "upcoming".
const UpcomingWindowDays = 7

type Bucket struct {
	Label     string    `json:"label"`
	Status    Status    `json:"status"`
	StyleHint StyleHint `json:"style_hint"`
	DaysDiff  int       `json:"days_diff"`
}

// Classify aplica las reglas en orden; el orden importa (completed gana siempre).
// due se interpreta como día calendario (Y-M-D), la hora se ignora.
// now define "hoy" en su propia zona horaria.
func Classify(due time.Time, completed bool, now time.Time) Bucket {
	diff := DaysBetween(now, due)

	if completed {
		return Bucket{Label: FormatDate(due), Status: StatusCompleted, StyleHint: StyleMuted, DaysDiff: diff}
	}

	switch {
	case diff == 0:
		return Bucket{Label: "Today", Status: StatusToday, StyleHint: StyleWarning, DaysDiff: diff}
	case diff == 1:
		return Bucket{Label: "Tomorrow", Status: StatusUpcoming, StyleHint: StyleInfo, DaysDiff: diff}
	case diff == -1:
		return Bucket{Label: "Yesterday (Overdue)", Status: StatusOverdue, StyleHint: StyleDanger, DaysDiff: diff}
	case diff < 0:
		return Bucket{Label: fmt.Sprintf("%d days overdue", -diff), Status: StatusOverdue, StyleHint: StyleDanger, DaysDiff: diff}
	case diff <= UpcomingWindowDays:
		return Bucket{Label: fmt.Sprintf("In %d days", diff), Status: StatusUpcoming, StyleHint: StyleInfo, DaysDiff: diff}
	default:
		return Bucket{Label: FormatDate(due), Status: StatusFuture, StyleHint: StyleDefault, DaysDiff: diff}
	}
}

// Day trunca a medianoche UTC conservando el Y-M-D tal como se ve en t.Location().
// Usar UTC como base evita saltos por cambios de horario (DST).
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

const secondsPerDay = 24 * 60 * 60

// DaysBetween = due - today, en días enteros.
// "today" sale de now (en su zona); due se toma tal cual como día calendario.
// Se resta en segundos Unix: time.Duration satura a los ~292 años.
func DaysBetween(now, due time.Time) int {
	return int((Day(due).Unix() - Day(now).Unix()) / secondsPerDay)
}

func FormatDate(t time.Time) string {
	return Day(t).Format(LabelLayout)
}

// ParseDate acepta YYYY-MM-DD.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, err
	}
	return Day(t), nil
}

// NowIn ubica now en la zona tz (IANA). tz vacío usa fallback (o UTC si es nil).
func NowIn(now time.Time, tz string, fallback *time.Location) (time.Time, error) {
	if tz == "" {
		if fallback == nil {
			fallback = time.UTC
		}
		return now.In(fallback), nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.Time{}, fmt.Errorf("unknown time zone %q: %w", tz, err)
	}
	return now.In(loc), nil
}
