package reminders

type Type string

const (
	TypeVaccination Type = "vaccination"
	TypeMedication  Type = "medication"
	TypeGrooming    Type = "grooming"
	TypeVetVisit    Type = "vet_visit"
	TypeOther       Type = "other"
)

var reminderTypes = []Type{TypeVaccination, TypeMedication, TypeGrooming, TypeVetVisit, TypeOther}

// Recurrence es descriptiva: se guarda pero nunca genera instancias nuevas.
type Recurrence string

const (
	RecurrenceNone    Recurrence = "none"
	RecurrenceDaily   Recurrence = "daily"
	RecurrenceWeekly  Recurrence = "weekly"
	RecurrenceMonthly Recurrence = "monthly"
)

var recurrences = []Recurrence{RecurrenceNone, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly}

// Filtros de estado para List: además de pending/completed se aceptan los buckets del clasificador.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)
