package hearts

import (
	"context"
	"errors"
)

// ErrAlreadyHearted lo devuelve Add cuando ya existe la fila (puppy, visitor).
// En Postgres sale del unique violation del constraint compuesto; en memoria,
// del chequeo bajo lock. Es la señal con la que Toggle resuelve la carrera
// check-then-act sin locks propios.
var ErrAlreadyHearted = errors.New("heart already exists")

type Repository interface {
	Add(ctx context.Context, rec HeartRecord) error
	// Remove borra la fila del par si existe; removed=false si no había.
	Remove(ctx context.Context, puppyID, visitorID string) (removed bool, err error)

	CountByPuppy(ctx context.Context, puppyID string) (int, error)
	// CountsByPuppy agrupa todos los hearts por puppyID.
	CountsByPuppy(ctx context.Context) (map[string]int, error)
	PuppyIDsByVisitor(ctx context.Context, visitorID string) ([]string, error)
}
