package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"willow-pups/internal/domain/hearts"
)

type heartKey struct {
	puppyID   string
	visitorID string
}

// heartsRepo replica el constraint único (puppy_id, visitor_id) con la key
// del map: el mismo invariante que en Postgres, sostenido por el store.
type heartsRepo struct {
	mu     sync.RWMutex
	byPair map[heartKey]hearts.HeartRecord
}

func NewHeartsRepo() hearts.Repository {
	return &heartsRepo{
		byPair: make(map[heartKey]hearts.HeartRecord),
	}
}

func (r *heartsRepo) Add(ctx context.Context, rec hearts.HeartRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(rec.PuppyID) == "" || strings.TrimSpace(rec.VisitorID) == "" {
		return errors.New("puppy id and visitor id required")
	}

	k := heartKey{puppyID: rec.PuppyID, visitorID: rec.VisitorID}
	if _, exists := r.byPair[k]; exists {
		return hearts.ErrAlreadyHearted
	}
	r.byPair[k] = rec
	return nil
}

func (r *heartsRepo) Remove(ctx context.Context, puppyID, visitorID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := heartKey{puppyID: puppyID, visitorID: visitorID}
	if _, exists := r.byPair[k]; !exists {
		return false, nil
	}
	delete(r.byPair, k)
	return true, nil
}

func (r *heartsRepo) CountByPuppy(ctx context.Context, puppyID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for k := range r.byPair {
		if k.puppyID == puppyID {
			n++
		}
	}
	return n, nil
}

func (r *heartsRepo) CountsByPuppy(ctx context.Context) (map[string]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]int)
	for k := range r.byPair {
		out[k.puppyID]++
	}
	return out, nil
}

func (r *heartsRepo) PuppyIDsByVisitor(ctx context.Context, visitorID string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0)
	for k := range r.byPair {
		if k.visitorID == visitorID {
			out = append(out, k.puppyID)
		}
	}
	return out, nil
}
