package puppies

import "context"

type Repository interface {
	Create(ctx context.Context, p Puppy) error
	GetByID(ctx context.Context, id string) (Puppy, error)
	GetBySlug(ctx context.Context, slug string) (Puppy, error)
	// List devuelve todos los cachorros ordenados por birth_order asc.
	List(ctx context.Context) ([]Puppy, error)
	Update(ctx context.Context, p Puppy) error

	AddPhoto(ctx context.Context, ph Photo) error
	// ListPhotos devuelve las fotos de un cachorro por taken_at desc.
	ListPhotos(ctx context.Context, puppyID string) ([]Photo, error)

	// AddWeightLog inserta la entrada Y actualiza current_weight_grams del
	// cachorro como una sola unidad commiteada (ver Service.AddWeight).
	AddWeightLog(ctx context.Context, e WeightLogEntry) error
	// ListWeightLogs devuelve las entradas de un cachorro por measured_at asc.
	ListWeightLogs(ctx context.Context, puppyID string) ([]WeightLogEntry, error)
}
