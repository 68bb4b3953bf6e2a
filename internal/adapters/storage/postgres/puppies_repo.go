package postgres

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"willow-pups/internal/domain/puppies"
)

type PuppiesRepo struct {
	db *sql.DB
}

func NewPuppiesRepo(db *sql.DB) *PuppiesRepo {
	return &PuppiesRepo{db: db}
}

const puppyColumns = `
	id, slug, name, nickname, sex, coat,
	birth_weight_grams, current_weight_grams,
	status, notes, birth_order, born_at,
	created_at, updated_at
`

func (r *PuppiesRepo) Create(ctx context.Context, p puppies.Puppy) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO puppies (
			id, slug, name, nickname, sex, coat,
			birth_weight_grams, current_weight_grams,
			status, notes, birth_order, born_at,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
	`,
		p.ID,
		p.Slug,
		p.Name,
		p.Nickname,
		string(p.Sex),
		p.Coat,
		p.BirthWeightGrams,
		p.CurrentWeightGrams,
		string(p.Status),
		p.Notes,
		p.BirthOrder,
		toNullTime(p.BornAt),
		p.CreatedAt,
		p.UpdatedAt,
	)
	return err
}

func (r *PuppiesRepo) GetByID(ctx context.Context, id string) (puppies.Puppy, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return puppies.Puppy{}, puppies.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+puppyColumns+`
		FROM puppies
		WHERE id = $1
	`, id)

	return scanPuppy(row)
}

func (r *PuppiesRepo) GetBySlug(ctx context.Context, slug string) (puppies.Puppy, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return puppies.Puppy{}, puppies.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+puppyColumns+`
		FROM puppies
		WHERE slug = $1
	`, slug)

	return scanPuppy(row)
}

func (r *PuppiesRepo) List(ctx context.Context) ([]puppies.Puppy, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+puppyColumns+`
		FROM puppies
		ORDER BY birth_order ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]puppies.Puppy, 0)
	for rows.Next() {
		p, err := scanPuppy(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, rows.Err()
}

func (r *PuppiesRepo) Update(ctx context.Context, p puppies.Puppy) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE puppies
		SET
			name = $2,
			nickname = $3,
			coat = $4,
			current_weight_grams = $5,
			status = $6,
			notes = $7,
			updated_at = $8
		WHERE id = $1
	`,
		p.ID,
		p.Name,
		p.Nickname,
		p.Coat,
		p.CurrentWeightGrams,
		string(p.Status),
		p.Notes,
		p.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return puppies.ErrNotFound
	}
	return nil
}

func (r *PuppiesRepo) AddPhoto(ctx context.Context, ph puppies.Photo) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO puppy_photos (id, puppy_id, url, caption, taken_at, created_at)
		VALUES ($1,$2,$3,$4,$5,$6)
	`,
		ph.ID,
		ph.PuppyID,
		ph.URL,
		ph.Caption,
		ph.TakenAt,
		ph.CreatedAt,
	)
	return err
}

func (r *PuppiesRepo) ListPhotos(ctx context.Context, puppyID string) ([]puppies.Photo, error) {
	puppyID = strings.TrimSpace(puppyID)
	if puppyID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, puppy_id, url, caption, taken_at, created_at
		FROM puppy_photos
		WHERE puppy_id = $1
		ORDER BY taken_at DESC
	`, puppyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]puppies.Photo, 0)
	for rows.Next() {
		var ph puppies.Photo
		if err := rows.Scan(
			&ph.ID,
			&ph.PuppyID,
			&ph.URL,
			&ph.Caption,
			&ph.TakenAt,
			&ph.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, ph)
	}

	return out, rows.Err()
}

// AddWeightLog agrupa el insert de la entrada y el update del peso actual en
// una transacción: si el caller se corta a mitad, no queda el par a medias.
// El peso actual queda en e.WeightGrams SIEMPRE, sin mirar measured_at
// (política de "última entrada registrada", documentada en el service).
func (r *PuppiesRepo) AddWeightLog(ctx context.Context, e puppies.WeightLogEntry) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO weight_logs (id, puppy_id, weight_grams, measured_at, note, created_at)
		VALUES ($1,$2,$3,$4,$5,$6)
	`,
		e.ID,
		e.PuppyID,
		e.WeightGrams,
		e.MeasuredAt,
		e.Note,
		e.CreatedAt,
	); err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx, `
		UPDATE puppies
		SET current_weight_grams = $2, updated_at = $3
		WHERE id = $1
	`, e.PuppyID, e.WeightGrams, e.CreatedAt)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return puppies.ErrNotFound
	}

	return tx.Commit()
}

func (r *PuppiesRepo) ListWeightLogs(ctx context.Context, puppyID string) ([]puppies.WeightLogEntry, error) {
	puppyID = strings.TrimSpace(puppyID)
	if puppyID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, puppy_id, weight_grams, measured_at, note, created_at
		FROM weight_logs
		WHERE puppy_id = $1
		ORDER BY measured_at ASC
	`, puppyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]puppies.WeightLogEntry, 0)
	for rows.Next() {
		var e puppies.WeightLogEntry
		if err := rows.Scan(
			&e.ID,
			&e.PuppyID,
			&e.WeightGrams,
			&e.MeasuredAt,
			&e.Note,
			&e.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, e)
	}

	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPuppy(row rowScanner) (puppies.Puppy, error) {
	var p puppies.Puppy
	var sex, status string
	var bornAt sql.NullTime

	if err := row.Scan(
		&p.ID,
		&p.Slug,
		&p.Name,
		&p.Nickname,
		&sex,
		&p.Coat,
		&p.BirthWeightGrams,
		&p.CurrentWeightGrams,
		&status,
		&p.Notes,
		&p.BirthOrder,
		&bornAt,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return puppies.Puppy{}, puppies.ErrNotFound
		}
		return puppies.Puppy{}, err
	}

	p.Sex = puppies.Sex(sex)
	p.Status = puppies.Status(status)
	if bornAt.Valid {
		t := bornAt.Time
		p.BornAt = &t
	}

	return p, nil
}

func toNullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{Valid: false}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
