package duedate

import "time"

// Streak cuenta días consecutivos con al menos un recordatorio completado,
// caminando hacia atrás desde hoy.
//
// Regla heredada (asimétrica): si hoy todavía no tiene nada, se arranca desde ayer
// y ayer sigue contando. Solo se tolera ese salto al inicio; el primer hueco después corta.
func Streak(completedDays []time.Time, now time.Time) int {
	if len(completedDays) == 0 {
		return 0
	}

	set := make(map[time.Time]struct{}, len(completedDays))
	for _, d := range completedDays {
		set[Day(d)] = struct{}{}
	}

	day := Day(now)
	if _, ok := set[day]; !ok {
		day = day.AddDate(0, 0, -1)
	}

	streak := 0
	for {
		if _, ok := set[day]; !ok {
			return streak
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
}
