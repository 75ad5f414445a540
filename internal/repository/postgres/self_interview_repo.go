package postgres

import (
	"context"
	"errors"

	"pickme-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type selfInterviewRepo struct {
	db *pgxpool.Pool
}

func NewSelfInterviewRepository(db *pgxpool.Pool) domain.SelfInterviewRepository {
	return &selfInterviewRepo{db: db}
}

func (r *selfInterviewRepo) Create(ctx context.Context, selfInterview *domain.SelfInterview) error {
	query := `INSERT INTO self_interviews (account_id, title, content)
	          VALUES ($1, $2, $3) RETURNING id`
	return r.db.QueryRow(ctx, query,
		selfInterview.AccountID, selfInterview.Title, selfInterview.Content,
	).Scan(&selfInterview.ID)
}

func (r *selfInterviewRepo) GetByID(ctx context.Context, id int64) (*domain.SelfInterview, error) {
	query := `SELECT id, account_id, title, content FROM self_interviews WHERE id = $1`
	var s domain.SelfInterview
	err := r.db.QueryRow(ctx, query, id).Scan(&s.ID, &s.AccountID, &s.Title, &s.Content)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *selfInterviewRepo) Update(ctx context.Context, selfInterview *domain.SelfInterview) error {
	query := `UPDATE self_interviews SET title = $2, content = $3 WHERE id = $1`
	result, err := r.db.Exec(ctx, query, selfInterview.ID, selfInterview.Title, selfInterview.Content)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *selfInterviewRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM self_interviews WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
