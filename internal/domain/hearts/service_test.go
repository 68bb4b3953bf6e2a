package hearts

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type pair struct {
	puppyID   string
	visitorID string
}

type testRepo struct {
	byPair map[pair]HeartRecord

	failAll    bool  // simula store caído
	addErr     error // error forzado en Add (para simular la carrera)
	addErrOnce bool
}

func newTestRepo() *testRepo {
	return &testRepo{byPair: map[pair]HeartRecord{}}
}

var errStoreDown = errors.New("repo: store unavailable")

func (r *testRepo) Add(ctx context.Context, rec HeartRecord) error {
	if r.failAll {
		return errStoreDown
	}
	if r.addErr != nil {
		err := r.addErr
		if r.addErrOnce {
			r.addErr = nil
		}
		return err
	}
	k := pair{rec.PuppyID, rec.VisitorID}
	if _, ok := r.byPair[k]; ok {
		return ErrAlreadyHearted
	}
	r.byPair[k] = rec
	return nil
}

func (r *testRepo) Remove(ctx context.Context, puppyID, visitorID string) (bool, error) {
	if r.failAll {
		return false, errStoreDown
	}
	k := pair{puppyID, visitorID}
	if _, ok := r.byPair[k]; !ok {
		return false, nil
	}
	delete(r.byPair, k)
	return true, nil
}

func (r *testRepo) CountByPuppy(ctx context.Context, puppyID string) (int, error) {
	if r.failAll {
		return 0, errStoreDown
	}
	n := 0
	for k := range r.byPair {
		if k.puppyID == puppyID {
			n++
		}
	}
	return n, nil
}

func (r *testRepo) CountsByPuppy(ctx context.Context) (map[string]int, error) {
	if r.failAll {
		return nil, errStoreDown
	}
	out := map[string]int{}
	for k := range r.byPair {
		out[k.puppyID]++
	}
	return out, nil
}

func (r *testRepo) PuppyIDsByVisitor(ctx context.Context, visitorID string) ([]string, error) {
	if r.failAll {
		return nil, errStoreDown
	}
	out := []string{}
	for k := range r.byPair {
		if k.visitorID == visitorID {
			out = append(out, k.puppyID)
		}
	}
	return out, nil
}

// -------------------------
// Tests
// -------------------------

func TestService_Toggle_OnThenOff(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	// Primer toggle sobre un puppy sin hearts: hearted=true, count=1
	res, err := svc.Toggle(context.Background(), "pup-1", "visitor-abc")
	require.NoError(t, err)
	assert.True(t, res.Hearted)
	assert.Equal(t, 1, res.Count)

	// Segundo toggle del mismo par: hearted=false, count=0
	res, err = svc.Toggle(context.Background(), "pup-1", "visitor-abc")
	require.NoError(t, err)
	assert.False(t, res.Hearted)
	assert.Equal(t, 0, res.Count)
}

func TestService_Toggle_DoubleToggleRestoresState(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	// estado previo: otro visitante ya dio heart
	require.NoError(t, repo.Add(context.Background(), HeartRecord{
		ID: "h1", PuppyID: "pup-1", VisitorID: "visitor-other", CreatedAt: time.Now(),
	}))

	before, err := repo.CountByPuppy(context.Background(), "pup-1")
	require.NoError(t, err)

	// toggle(p,v); toggle(p,v) vuelve al count original
	_, err = svc.Toggle(context.Background(), "pup-1", "visitor-abc")
	require.NoError(t, err)
	res, err := svc.Toggle(context.Background(), "pup-1", "visitor-abc")
	require.NoError(t, err)

	assert.False(t, res.Hearted)
	assert.Equal(t, before, res.Count)
}

func TestService_Toggle_AtMostOneRecordPerPair(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	// Cualquier secuencia de toggles deja 0 o 1 filas para el par, nunca más.
	for i := 0; i < 7; i++ {
		_, err := svc.Toggle(context.Background(), "pup-1", "visitor-abc")
		require.NoError(t, err)
	}

	n := 0
	for k := range repo.byPair {
		if k.puppyID == "pup-1" && k.visitorID == "visitor-abc" {
			n++
		}
	}
	assert.Equal(t, 1, n, "7 toggles (impar) deben dejar exactamente 1 fila")
}

func TestService_Toggle_LostInsertRace_ReportsHearted(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	// Simula la carrera: Remove no encuentra fila, pero el Add choca con el
	// constraint porque otro toggle concurrente del mismo par insertó primero.
	repo.addErr = ErrAlreadyHearted
	repo.addErrOnce = true

	res, err := svc.Toggle(context.Background(), "pup-1", "visitor-abc")
	require.NoError(t, err, "la carrera perdida no es un error para el caller")
	assert.True(t, res.Hearted, "si la fila existe, el estado reportado es hearted")
}

func TestService_Toggle_EmptyInputs(t *testing.T) {
	svc := NewService(newTestRepo())

	_, err := svc.Toggle(context.Background(), "", "visitor-abc")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Toggle(context.Background(), "pup-1", "   ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Toggle_UnknownPuppySucceeds(t *testing.T) {
	// El toggle no valida existencia del puppy: es un flip puro sobre el set.
	svc := NewService(newTestRepo())

	res, err := svc.Toggle(context.Background(), "no-such-puppy", "visitor-abc")
	require.NoError(t, err)
	assert.True(t, res.Hearted)
	assert.Equal(t, 1, res.Count)
}

func TestService_Status_MatchesOddToggles(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	ctx := context.Background()

	// pup-1: 1 toggle (queda), pup-2: 2 toggles (no queda), pup-3: 3 (queda)
	toggles := map[string]int{"pup-1": 1, "pup-2": 2, "pup-3": 3}
	for id, n := range toggles {
		for i := 0; i < n; i++ {
			_, err := svc.Toggle(ctx, id, "visitor-abc")
			require.NoError(t, err)
		}
	}

	res, err := svc.Status(ctx, "visitor-abc")
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"pup-1", "pup-3"}, res.VisitorHearts,
		"visitorHearts = puppies con cantidad impar de toggles")
	assert.Equal(t, 1, res.Counts["pup-1"])
	assert.Equal(t, 1, res.Counts["pup-3"])
	_, ok := res.Counts["pup-2"]
	assert.False(t, ok, "un par des-hearteado no aparece en counts")
}

func TestService_Status_EmptyVisitorID(t *testing.T) {
	svc := NewService(newTestRepo())

	_, err := svc.Status(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Status_StoreDownIsError(t *testing.T) {
	repo := newTestRepo()
	repo.failAll = true
	svc := NewService(repo)

	// "sin hearts" y "no pude preguntar" no son lo mismo: acá debe fallar.
	_, err := svc.Status(context.Background(), "visitor-abc")
	require.Error(t, err)
	assert.ErrorIs(t, err, errStoreDown)

	_, err = svc.Toggle(context.Background(), "pup-1", "visitor-abc")
	require.Error(t, err)
}

func TestService_Status_NoHeartsIsEmptyNotNil(t *testing.T) {
	svc := NewService(newTestRepo())

	res, err := svc.Status(context.Background(), "visitor-abc")
	require.NoError(t, err)
	assert.NotNil(t, res.Counts)
	assert.NotNil(t, res.VisitorHearts)
	assert.Empty(t, res.Counts)
	assert.Empty(t, res.VisitorHearts)
}
