package applications

import "context"

type Repository interface {
	Create(ctx context.Context, a Application) error
	GetByID(ctx context.Context, id string) (Application, error)
	// List devuelve todas las solicitudes por created_at desc (las nuevas arriba).
	List(ctx context.Context) ([]Application, error)
	Update(ctx context.Context, a Application) error
}
