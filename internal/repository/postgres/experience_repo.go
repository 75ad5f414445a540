package postgres

import (
	"context"
	"errors"

	"pickme-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type experienceRepo struct {
	db *pgxpool.Pool
}

func NewExperienceRepository(db *pgxpool.Pool) domain.ExperienceRepository {
	return &experienceRepo{db: db}
}

func (r *experienceRepo) Create(ctx context.Context, experience *domain.Experience) error {
	query := `INSERT INTO experiences (account_id, company_name, position, description, joined_at, retired_at)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return r.db.QueryRow(ctx, query,
		experience.AccountID, experience.CompanyName, experience.Position,
		experience.Description, experience.JoinedAt, experience.RetiredAt,
	).Scan(&experience.ID)
}

func (r *experienceRepo) GetByID(ctx context.Context, id int64) (*domain.Experience, error) {
	query := `SELECT id, account_id, company_name, position, description, joined_at, retired_at
	          FROM experiences WHERE id = $1`
	var e domain.Experience
	err := r.db.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.AccountID, &e.CompanyName, &e.Position, &e.Description, &e.JoinedAt, &e.RetiredAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *experienceRepo) Update(ctx context.Context, experience *domain.Experience) error {
	query := `UPDATE experiences SET
		company_name = $2,
		position = $3,
		description = $4,
		joined_at = $5,
		retired_at = $6
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		experience.ID, experience.CompanyName, experience.Position,
		experience.Description, experience.JoinedAt, experience.RetiredAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *experienceRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM experiences WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
