package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"willow-pups/internal/domain/puppies"
)

type puppiesRepo struct {
	mu      sync.RWMutex
	byID    map[string]puppies.Puppy
	photos  map[string][]puppies.Photo          // por puppyID, en orden de inserción
	weights map[string][]puppies.WeightLogEntry // por puppyID, en orden de inserción
}

func NewPuppiesRepo() puppies.Repository {
	return &puppiesRepo{
		byID:    make(map[string]puppies.Puppy),
		photos:  make(map[string][]puppies.Photo),
		weights: make(map[string][]puppies.WeightLogEntry),
	}
}

func (r *puppiesRepo) Create(ctx context.Context, p puppies.Puppy) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errors.New("puppy id required")
	}
	if _, exists := r.byID[p.ID]; exists {
		return errors.New("puppy already exists")
	}
	for _, other := range r.byID {
		if other.Slug == p.Slug {
			return errors.New("slug already exists")
		}
	}
	r.byID[p.ID] = p
	return nil
}

func (r *puppiesRepo) GetByID(ctx context.Context, id string) (puppies.Puppy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return puppies.Puppy{}, puppies.ErrNotFound
	}
	return p, nil
}

func (r *puppiesRepo) GetBySlug(ctx context.Context, slug string) (puppies.Puppy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.byID {
		if p.Slug == slug {
			return p, nil
		}
	}
	return puppies.Puppy{}, puppies.ErrNotFound
}

func (r *puppiesRepo) List(ctx context.Context) ([]puppies.Puppy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]puppies.Puppy, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].BirthOrder < out[j].BirthOrder
	})

	return out, nil
}

func (r *puppiesRepo) Update(ctx context.Context, p puppies.Puppy) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[p.ID]; !exists {
		return puppies.ErrNotFound
	}
	r.byID[p.ID] = p
	return nil
}

func (r *puppiesRepo) AddPhoto(ctx context.Context, ph puppies.Photo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(ph.ID) == "" {
		return errors.New("photo id required")
	}
	r.photos[ph.PuppyID] = append(r.photos[ph.PuppyID], ph)
	return nil
}

func (r *puppiesRepo) ListPhotos(ctx context.Context, puppyID string) ([]puppies.Photo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]puppies.Photo, 0, len(r.photos[puppyID]))
	out = append(out, r.photos[puppyID]...)

	// taken_at desc: la primera es la hero image
	sort.Slice(out, func(i, j int) bool {
		return out[i].TakenAt.After(out[j].TakenAt)
	})

	return out, nil
}

// AddWeightLog inserta la entrada y actualiza el peso actual bajo el mismo
// lock: el equivalente in-memory de la transacción del repo Postgres.
func (r *puppiesRepo) AddWeightLog(ctx context.Context, e puppies.WeightLogEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(e.ID) == "" {
		return errors.New("weight log id required")
	}

	p, ok := r.byID[e.PuppyID]
	if !ok {
		return puppies.ErrNotFound
	}

	r.weights[e.PuppyID] = append(r.weights[e.PuppyID], e)

	p.CurrentWeightGrams = e.WeightGrams
	p.UpdatedAt = e.CreatedAt
	r.byID[e.PuppyID] = p

	return nil
}

func (r *puppiesRepo) ListWeightLogs(ctx context.Context, puppyID string) ([]puppies.WeightLogEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]puppies.WeightLogEntry, 0, len(r.weights[puppyID]))
	out = append(out, r.weights[puppyID]...)

	// measured_at asc: cronológico, listo para el chart
	sort.Slice(out, func(i, j int) bool {
		return out[i].MeasuredAt.Before(out[j].MeasuredAt)
	})

	return out, nil
}
