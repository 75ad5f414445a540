package postgres

import (
	"context"
	"errors"

	"pickme-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type licenseRepo struct {
	db *pgxpool.Pool
}

func NewLicenseRepository(db *pgxpool.Pool) domain.LicenseRepository {
	return &licenseRepo{db: db}
}

func (r *licenseRepo) Create(ctx context.Context, license *domain.License) error {
	query := `INSERT INTO licenses (account_id, name, institution, description, issued_date)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return r.db.QueryRow(ctx, query,
		license.AccountID, license.Name, license.Institution, license.Description, license.IssuedDate,
	).Scan(&license.ID)
}

func (r *licenseRepo) GetByID(ctx context.Context, id int64) (*domain.License, error) {
	query := `SELECT id, account_id, name, institution, description, issued_date
	          FROM licenses WHERE id = $1`
	var l domain.License
	err := r.db.QueryRow(ctx, query, id).Scan(
		&l.ID, &l.AccountID, &l.Name, &l.Institution, &l.Description, &l.IssuedDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}

func (r *licenseRepo) Update(ctx context.Context, license *domain.License) error {
	query := `UPDATE licenses SET
		name = $2,
		institution = $3,
		description = $4,
		issued_date = $5
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		license.ID, license.Name, license.Institution, license.Description, license.IssuedDate,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *licenseRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM licenses WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
