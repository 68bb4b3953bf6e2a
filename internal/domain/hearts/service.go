package hearts

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Toggle aplica delete-first:
//  1. intenta borrar la fila del par; si borró, el visitante sacó su heart.
//  2. si no había fila, inserta; si el insert choca con el constraint único
//     (otro toggle concurrente del mismo par ganó), se reporta hearted=true:
//     el estado que realmente quedó en el store.
//
// El invariante "0 o 1 filas por par" lo sostiene el store, nunca este código.
// Ojo: puppyID no se valida contra la tabla de puppies a propósito — el
// toggle es un flip puro sobre el set de hearts, desacoplado de su existencia.
func (s *Service) Toggle(ctx context.Context, puppyID, visitorID string) (ToggleResult, error) {
	puppyID = strings.TrimSpace(puppyID)
	visitorID = strings.TrimSpace(visitorID)
	if puppyID == "" || visitorID == "" {
		return ToggleResult{}, ErrInvalidInput
	}

	removed, err := s.repo.Remove(ctx, puppyID, visitorID)
	if err != nil {
		return ToggleResult{}, err
	}

	hearted := false
	if !removed {
		err := s.repo.Add(ctx, HeartRecord{
			ID:        uuid.NewString(),
			PuppyID:   puppyID,
			VisitorID: visitorID,
			CreatedAt: s.now(),
		})
		switch {
		case err == nil:
			hearted = true
		case errors.Is(err, ErrAlreadyHearted):
			// Carrera perdida contra otro insert del mismo par.
			hearted = true
		default:
			return ToggleResult{}, err
		}
	}

	count, err := s.repo.CountByPuppy(ctx, puppyID)
	if err != nil {
		return ToggleResult{}, err
	}

	return ToggleResult{Hearted: hearted, Count: count}, nil
}

// Status deriva counts y visitorHearts del set completo. Si el store falla,
// falla el call: "sin hearts" y "no pude preguntar" no son lo mismo.
func (s *Service) Status(ctx context.Context, visitorID string) (StatusResult, error) {
	visitorID = strings.TrimSpace(visitorID)
	if visitorID == "" {
		return StatusResult{}, ErrInvalidInput
	}

	counts, err := s.repo.CountsByPuppy(ctx)
	if err != nil {
		return StatusResult{}, err
	}
	mine, err := s.repo.PuppyIDsByVisitor(ctx, visitorID)
	if err != nil {
		return StatusResult{}, err
	}

	if counts == nil {
		counts = map[string]int{}
	}
	if mine == nil {
		mine = []string{}
	}

	return StatusResult{Counts: counts, VisitorHearts: mine}, nil
}
