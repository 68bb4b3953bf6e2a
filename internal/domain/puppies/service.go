package puppies

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("puppy not found")
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

type CreateInput struct {
	Slug             string
	Name             string
	Nickname         string
	Sex              string
	Coat             string
	BirthWeightGrams int
	Notes            string
	BirthOrder       int
	BornAt           *time.Time
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Puppy, error) {
	if strings.TrimSpace(in.Slug) == "" {
		return Puppy{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Name) == "" {
		return Puppy{}, ErrInvalidInput
	}
	sex := Sex(strings.TrimSpace(in.Sex))
	if sex != SexMale && sex != SexFemale {
		return Puppy{}, ErrInvalidInput
	}
	if in.BirthWeightGrams <= 0 || in.BirthOrder <= 0 {
		return Puppy{}, ErrInvalidInput
	}

	now := s.now()
	p := Puppy{
		ID:                 uuid.NewString(),
		Slug:               strings.ToLower(strings.TrimSpace(in.Slug)),
		Name:               strings.TrimSpace(in.Name),
		Nickname:           strings.TrimSpace(in.Nickname),
		Sex:                sex,
		Coat:               strings.TrimSpace(in.Coat),
		BirthWeightGrams:   in.BirthWeightGrams,
		CurrentWeightGrams: in.BirthWeightGrams, // arranca en el peso de nacimiento
		Status:             StatusAvailable,
		Notes:              strings.TrimSpace(in.Notes),
		BirthOrder:         in.BirthOrder,
		BornAt:             in.BornAt,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Puppy{}, err
	}
	return p, nil
}

// List arma el agregado por cachorro. El fan-out es N+1 a propósito:
// la camada son ~6 filas, no vale la pena batching.
func (s *Service) List(ctx context.Context) ([]PuppyView, error) {
	pups, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]PuppyView, 0, len(pups))
	for _, p := range pups {
		v, err := s.buildView(ctx, p)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (PuppyView, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return PuppyView{}, ErrNotFound
	}
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return PuppyView{}, err
	}
	return s.buildView(ctx, p)
}

func (s *Service) GetBySlug(ctx context.Context, slug string) (PuppyView, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	if slug == "" {
		return PuppyView{}, ErrNotFound
	}
	p, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return PuppyView{}, err
	}
	return s.buildView(ctx, p)
}

func (s *Service) buildView(ctx context.Context, p Puppy) (PuppyView, error) {
	photos, err := s.repo.ListPhotos(ctx, p.ID)
	if err != nil {
		return PuppyView{}, err
	}
	weights, err := s.repo.ListWeightLogs(ctx, p.ID)
	if err != nil {
		return PuppyView{}, err
	}
	return PuppyView{Puppy: p, Photos: photos, WeightLogs: weights}, nil
}

type UpdateProfileInput struct {
	// Punteros para PATCH real: nil = no tocar.
	Name               *string
	Nickname           *string // "" limpia el apodo
	Coat               *string
	CurrentWeightGrams *int
	Status             *string
	Notes              *string
}

func (s *Service) UpdateProfile(ctx context.Context, id string, in UpdateProfileInput) (Puppy, error) {
	p, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return Puppy{}, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return Puppy{}, ErrInvalidInput
		}
		p.Name = name
	}
	if in.Nickname != nil {
		p.Nickname = strings.TrimSpace(*in.Nickname)
	}
	if in.Coat != nil {
		p.Coat = strings.TrimSpace(*in.Coat)
	}
	if in.CurrentWeightGrams != nil {
		if *in.CurrentWeightGrams <= 0 {
			return Puppy{}, ErrInvalidInput
		}
		p.CurrentWeightGrams = *in.CurrentWeightGrams
	}
	if in.Status != nil {
		st := Status(strings.TrimSpace(*in.Status))
		if !ValidStatus(st) {
			return Puppy{}, ErrInvalidInput
		}
		p.Status = st
	}
	if in.Notes != nil {
		p.Notes = strings.TrimSpace(*in.Notes)
	}

	p.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, p); err != nil {
		return Puppy{}, err
	}
	return p, nil
}

type AddPhotoInput struct {
	PuppyID string
	URL     string
	Caption string
	TakenAt time.Time
}

func (s *Service) AddPhoto(ctx context.Context, in AddPhotoInput) (Photo, error) {
	if strings.TrimSpace(in.PuppyID) == "" {
		return Photo{}, ErrInvalidInput
	}
	rawURL := strings.TrimSpace(in.URL)
	if rawURL == "" {
		return Photo{}, ErrInvalidInput
	}
	if u, err := url.ParseRequestURI(rawURL); err != nil || u.Host == "" {
		return Photo{}, ErrInvalidInput
	}
	if in.TakenAt.IsZero() {
		return Photo{}, ErrInvalidInput
	}

	// Valida que el cachorro exista: las fotos sí son propiedad de un puppy.
	if _, err := s.repo.GetByID(ctx, in.PuppyID); err != nil {
		return Photo{}, err
	}

	ph := Photo{
		ID:        uuid.NewString(),
		PuppyID:   strings.TrimSpace(in.PuppyID),
		URL:       rawURL,
		Caption:   strings.TrimSpace(in.Caption),
		TakenAt:   in.TakenAt,
		CreatedAt: s.now(),
	}

	if err := s.repo.AddPhoto(ctx, ph); err != nil {
		return Photo{}, err
	}
	return ph, nil
}

type AddWeightInput struct {
	PuppyID     string
	WeightGrams int
	MeasuredAt  time.Time
	Note        string
}

// AddWeight inserta la entrada y deja current_weight_grams = WeightGrams,
// sin importar si MeasuredAt es la medición cronológicamente más reciente.
// Es decir: "peso actual" = última entrada REGISTRADA, por orden de carga.
// Un backfill fuera de orden pisa el peso actual con un valor viejo; el
// comportamiento está documentado y se conserva tal cual (no "arreglar" acá).
func (s *Service) AddWeight(ctx context.Context, in AddWeightInput) (WeightLogEntry, error) {
	if strings.TrimSpace(in.PuppyID) == "" {
		return WeightLogEntry{}, ErrInvalidInput
	}
	if in.WeightGrams <= 0 {
		return WeightLogEntry{}, ErrInvalidInput
	}
	if in.MeasuredAt.IsZero() {
		return WeightLogEntry{}, ErrInvalidInput
	}

	if _, err := s.repo.GetByID(ctx, in.PuppyID); err != nil {
		return WeightLogEntry{}, err
	}

	e := WeightLogEntry{
		ID:          uuid.NewString(),
		PuppyID:     strings.TrimSpace(in.PuppyID),
		WeightGrams: in.WeightGrams,
		MeasuredAt:  in.MeasuredAt,
		Note:        strings.TrimSpace(in.Note),
		CreatedAt:   s.now(),
	}

	// El repo agrupa insert + update de peso actual en una sola unidad
	// commiteada: un corte a mitad de camino no deja el par a medias.
	if err := s.repo.AddWeightLog(ctx, e); err != nil {
		return WeightLogEntry{}, err
	}
	return e, nil
}
