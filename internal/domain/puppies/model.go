package puppies

import "time"

// Sex define el sexo del cachorro.
type Sex string

const (
	SexMale   Sex = "M"
	SexFemale Sex = "F"
)

// Status define el estado de adopción.
type Status string

const (
	StatusAvailable Status = "available"
	StatusReserved  Status = "reserved"
	StatusAdopted   Status = "adopted"
)

func ValidStatus(s Status) bool {
	switch s {
	case StatusAvailable, StatusReserved, StatusAdopted:
		return true
	default:
		return false
	}
}

// Puppy representa el perfil de un cachorro de la camada.
type Puppy struct {
	ID   string
	Slug string

	Name     string
	Nickname string
	Sex      Sex
	Coat     string

	BirthWeightGrams   int
	CurrentWeightGrams int

	Status Status
	Notes  string

	// Orden de nacimiento dentro de la camada (1 = primero).
	BirthOrder int
	BornAt     *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Photo es inmutable una vez creada. TakenAt es la fecha real de la foto,
// distinta de CreatedAt (fecha de carga).
type Photo struct {
	ID      string
	PuppyID string

	URL     string
	Caption string
	TakenAt time.Time

	CreatedAt time.Time
}

// WeightLogEntry es inmutable una vez creada.
type WeightLogEntry struct {
	ID      string
	PuppyID string

	WeightGrams int
	MeasuredAt  time.Time
	Note        string

	CreatedAt time.Time
}

// PuppyView es el read-model agregado que consume la UI:
// fotos ordenadas por taken_at desc (la primera es la "hero image")
// y pesos por measured_at asc (listos para graficar sin re-ordenar).
type PuppyView struct {
	Puppy
	Photos     []Photo
	WeightLogs []WeightLogEntry
}
