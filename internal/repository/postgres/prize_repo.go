package postgres

import (
	"context"
	"errors"

	"pickme-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type prizeRepo struct {
	db *pgxpool.Pool
}

func NewPrizeRepository(db *pgxpool.Pool) domain.PrizeRepository {
	return &prizeRepo{db: db}
}

func (r *prizeRepo) Create(ctx context.Context, prize *domain.Prize) error {
	query := `INSERT INTO prizes (account_id, name, competition, description, issued_date)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return r.db.QueryRow(ctx, query,
		prize.AccountID, prize.Name, prize.Competition, prize.Description, prize.IssuedDate,
	).Scan(&prize.ID)
}

func (r *prizeRepo) GetByID(ctx context.Context, id int64) (*domain.Prize, error) {
	query := `SELECT id, account_id, name, competition, description, issued_date
	          FROM prizes WHERE id = $1`
	var p domain.Prize
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.AccountID, &p.Name, &p.Competition, &p.Description, &p.IssuedDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *prizeRepo) Update(ctx context.Context, prize *domain.Prize) error {
	query := `UPDATE prizes SET
		name = $2,
		competition = $3,
		description = $4,
		issued_date = $5
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		prize.ID, prize.Name, prize.Competition, prize.Description, prize.IssuedDate,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *prizeRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM prizes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
