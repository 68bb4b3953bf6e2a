package applications

import "time"

// Status define el estado de revisión de una solicitud.
// El flujo típico es new → reviewed → contacted → approved/rejected,
// pero no se fuerza un orden: el admin puede saltar estados.
type Status string

const (
	StatusNew       Status = "new"
	StatusReviewed  Status = "reviewed"
	StatusContacted Status = "contacted"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
)

func ValidStatus(s Status) bool {
	switch s {
	case StatusNew, StatusReviewed, StatusContacted, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

// Application es una solicitud de adopción. Se crea una vez desde el form
// público; después solo el admin toca status y admin_notes. Nunca se borra.
type Application struct {
	ID string

	Name  string
	Email string
	Phone string

	// PuppyID nulo = "sin preferencia".
	PuppyID         *string
	PuppyPreference string
	Notes           string

	Status     Status
	AdminNotes string

	CreatedAt time.Time
	UpdatedAt time.Time
}
