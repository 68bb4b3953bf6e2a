package postgres

import (
	"context"
	"database/sql"
	"strings"

	"willow-pups/internal/domain/applications"
)

type ApplicationsRepo struct {
	db *sql.DB
}

func NewApplicationsRepo(db *sql.DB) *ApplicationsRepo {
	return &ApplicationsRepo{db: db}
}

func (r *ApplicationsRepo) Create(ctx context.Context, a applications.Application) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO applications (
			id, name, email, phone,
			puppy_id, puppy_preference, notes,
			status, admin_notes,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`,
		a.ID,
		a.Name,
		a.Email,
		a.Phone,
		toNullString(a.PuppyID),
		a.PuppyPreference,
		a.Notes,
		string(a.Status),
		a.AdminNotes,
		a.CreatedAt,
		a.UpdatedAt,
	)
	return err
}

func (r *ApplicationsRepo) GetByID(ctx context.Context, id string) (applications.Application, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return applications.Application{}, applications.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, name, email, phone,
			puppy_id, puppy_preference, notes,
			status, admin_notes,
			created_at, updated_at
		FROM applications
		WHERE id = $1
	`, id)

	return scanApplication(row)
}

func (r *ApplicationsRepo) List(ctx context.Context) ([]applications.Application, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, name, email, phone,
			puppy_id, puppy_preference, notes,
			status, admin_notes,
			created_at, updated_at
		FROM applications
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]applications.Application, 0)
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}

	return out, rows.Err()
}

func (r *ApplicationsRepo) Update(ctx context.Context, a applications.Application) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE applications
		SET status = $2, admin_notes = $3, updated_at = $4
		WHERE id = $1
	`,
		a.ID,
		string(a.Status),
		a.AdminNotes,
		a.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return applications.ErrNotFound
	}
	return nil
}

func scanApplication(row rowScanner) (applications.Application, error) {
	var a applications.Application
	var status string
	var puppyID sql.NullString

	if err := row.Scan(
		&a.ID,
		&a.Name,
		&a.Email,
		&a.Phone,
		&puppyID,
		&a.PuppyPreference,
		&a.Notes,
		&status,
		&a.AdminNotes,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return applications.Application{}, applications.ErrNotFound
		}
		return applications.Application{}, err
	}

	a.Status = applications.Status(status)
	if puppyID.Valid {
		id := puppyID.String
		a.PuppyID = &id
	}

	return a, nil
}

func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: *s, Valid: true}
}
