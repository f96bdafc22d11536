package pets

import "time"

// PetType define las especies soportadas.
// @Enum dog, cat, bird, other
type PetType string

const (
	TypeDog   PetType = "dog"
	TypeCat   PetType = "cat"
	TypeBird  PetType = "bird"
	TypeOther PetType = "other"
)

var petTypes = []PetType{TypeDog, TypeCat, TypeBird, TypeOther}

// Pet representa el perfil básico de una mascota.
type Pet struct {
	ID          string
	OwnerUserID string

	Name  string
	Type  PetType
	Breed string

	Age    float64 // años
	Weight float64 // kg

	Color    string
	Gender   string
	ImageURL string

	CreatedAt time.Time
	UpdatedAt time.Time
}
