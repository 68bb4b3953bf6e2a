package applications

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"willow-pups/internal/ports/notify"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("application not found")
)

type Service struct {
	repo     Repository
	notifier notify.Notifier // puede ser nil (sin notificaciones)
	now      func() time.Time
}

func NewService(repo Repository, notifier notify.Notifier) *Service {
	return &Service{
		repo:     repo,
		notifier: notifier,
		now:      time.Now,
	}
}

type SubmitInput struct {
	Name            string
	Email           string
	Phone           string
	PuppyID         *string
	PuppyPreference string
	Notes           string
}

func (s *Service) Submit(ctx context.Context, in SubmitInput) (Application, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	phone := strings.TrimSpace(in.Phone)

	if name == "" || email == "" || phone == "" {
		return Application{}, ErrInvalidInput
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return Application{}, ErrInvalidInput
	}

	var puppyID *string
	if in.PuppyID != nil && strings.TrimSpace(*in.PuppyID) != "" {
		id := strings.TrimSpace(*in.PuppyID)
		puppyID = &id
	}

	now := s.now()
	a := Application{
		ID:              uuid.NewString(),
		Name:            name,
		Email:           email,
		Phone:           phone,
		PuppyID:         puppyID,
		PuppyPreference: strings.TrimSpace(in.PuppyPreference),
		Notes:           strings.TrimSpace(in.Notes),
		Status:          StatusNew,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return Application{}, err
	}

	// Aviso al dueño: best-effort. Si el upstream falla, la solicitud ya
	// quedó guardada y el submit igual devuelve OK.
	if s.notifier != nil {
		pref := a.PuppyPreference
		if pref == "" {
			pref = "Open to any"
		}
		_ = s.notifier.Notify(ctx, notify.Notification{
			Title: fmt.Sprintf("New Puppy Application from %s", a.Name),
			Content: fmt.Sprintf(
				"Name: %s\nEmail: %s\nPhone: %s\nPuppy: %s\nNotes: %s",
				a.Name, a.Email, a.Phone, pref, orNone(a.Notes),
			),
		})
	}

	return a, nil
}

func (s *Service) List(ctx context.Context) ([]Application, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (Application, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Application{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

type UpdateStatusInput struct {
	Status     string
	AdminNotes *string // nil = no tocar
}

func (s *Service) UpdateStatus(ctx context.Context, id string, in UpdateStatusInput) (Application, error) {
	st := Status(strings.TrimSpace(in.Status))
	if !ValidStatus(st) {
		return Application{}, ErrInvalidInput
	}

	a, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return Application{}, err
	}

	a.Status = st
	if in.AdminNotes != nil {
		a.AdminNotes = strings.TrimSpace(*in.AdminNotes)
	}
	a.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, a); err != nil {
		return Application{}, err
	}
	return a, nil
}

func orNone(s string) string {
	if strings.TrimSpace(s) == "" {
		return "None"
	}
	return s
}
