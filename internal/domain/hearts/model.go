package hearts

import "time"

// HeartRecord es la fila join "este visitante quiere a este cachorro".
// Invariante: a lo sumo UNA fila por (PuppyID, VisitorID); la garantiza el
// constraint único del store, no un lock en proceso.
type HeartRecord struct {
	ID        string
	PuppyID   string
	VisitorID string
	CreatedAt time.Time
}

// ToggleResult es lo que ve el cliente después de un flip.
type ToggleResult struct {
	Hearted bool
	Count   int
}

// StatusResult se deriva siempre del set de HeartRecords (no hay columna
// contadora denormalizada que pueda desincronizarse).
type StatusResult struct {
	Counts        map[string]int
	VisitorHearts []string
}
