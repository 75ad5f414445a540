package postgres

import (
	"context"
	"errors"

	"pickme-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type projectRepo struct {
	db *pgxpool.Pool
}

func NewProjectRepository(db *pgxpool.Pool) domain.ProjectRepository {
	return &projectRepo{db: db}
}

func (r *projectRepo) Create(ctx context.Context, project *domain.Project) error {
	query := `INSERT INTO projects (account_id, name, role, description, project_link, started_at, ended_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	return r.db.QueryRow(ctx, query,
		project.AccountID, project.Name, project.Role, project.Description,
		project.ProjectLink, project.StartedAt, project.EndedAt,
	).Scan(&project.ID)
}

func (r *projectRepo) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	query := `SELECT id, account_id, name, role, description, project_link, started_at, ended_at
	          FROM projects WHERE id = $1`
	var p domain.Project
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.AccountID, &p.Name, &p.Role, &p.Description, &p.ProjectLink, &p.StartedAt, &p.EndedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *projectRepo) Update(ctx context.Context, project *domain.Project) error {
	query := `UPDATE projects SET
		name = $2,
		role = $3,
		description = $4,
		project_link = $5,
		started_at = $6,
		ended_at = $7
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		project.ID, project.Name, project.Role, project.Description,
		project.ProjectLink, project.StartedAt, project.EndedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *projectRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
