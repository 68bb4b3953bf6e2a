package postgres

import (
	"context"
	"database/sql"
	"errors"

	"willow-pups/internal/domain/hearts"

	"github.com/jackc/pgx/v5/pgconn"
)

// código de unique_violation en Postgres
const pgUniqueViolation = "23505"

type HeartsRepo struct {
	db *sql.DB
}

func NewHeartsRepo(db *sql.DB) *HeartsRepo {
	return &HeartsRepo{db: db}
}

// Add inserta la fila del par. Si choca con uq_puppy_hearts_pair devuelve
// hearts.ErrAlreadyHearted: así el service resuelve la carrera check-then-act
// apoyándose en el constraint en vez de locks en proceso.
func (r *HeartsRepo) Add(ctx context.Context, rec hearts.HeartRecord) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO puppy_hearts (id, puppy_id, visitor_id, created_at)
		VALUES ($1,$2,$3,$4)
	`,
		rec.ID,
		rec.PuppyID,
		rec.VisitorID,
		rec.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return hearts.ErrAlreadyHearted
		}
		return err
	}
	return nil
}

func (r *HeartsRepo) Remove(ctx context.Context, puppyID, visitorID string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM puppy_hearts
		WHERE puppy_id = $1 AND visitor_id = $2
	`, puppyID, visitorID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *HeartsRepo) CountByPuppy(ctx context.Context, puppyID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM puppy_hearts WHERE puppy_id = $1
	`, puppyID).Scan(&n)
	if err != nil {
		return 0, err
	}
	return n, nil
}

func (r *HeartsRepo) CountsByPuppy(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT puppy_id, COUNT(*)
		FROM puppy_hearts
		GROUP BY puppy_id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var id string
		var n int
		if err := rows.Scan(&id, &n); err != nil {
			return nil, err
		}
		out[id] = n
	}

	return out, rows.Err()
}

func (r *HeartsRepo) PuppyIDsByVisitor(ctx context.Context, visitorID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT puppy_id FROM puppy_hearts WHERE visitor_id = $1
	`, visitorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}

	return out, rows.Err()
}
