package domain

import (
	"context"
	"time"
)

// Project is a portfolio record owned by exactly one account.
type Project struct {
	ID          int64      `json:"id"`
	AccountID   int64      `json:"account_id"`
	Name        string     `json:"name"`
	Role        string     `json:"role"`
	Description string     `json:"description"`
	ProjectLink string     `json:"project_link"`
	StartedAt   *time.Time `json:"started_at"`
	EndedAt     *time.Time `json:"ended_at"`
}

type ProjectRequest struct {
	Name        string     `json:"name" validate:"required"`
	Role        string     `json:"role"`
	Description string     `json:"description"`
	ProjectLink string     `json:"project_link" validate:"omitempty,url"`
	StartedAt   *time.Time `json:"started_at"`
	EndedAt     *time.Time `json:"ended_at"`
}

type ProjectRepository interface {
	Create(ctx context.Context, project *Project) error
	GetByID(ctx context.Context, id int64) (*Project, error)
	Update(ctx context.Context, project *Project) error
	Delete(ctx context.Context, id int64) error
}

type ProjectUsecase interface {
	Create(ctx context.Context, accountID int64, req *ProjectRequest) (*Project, error)
	Update(ctx context.Context, id, accountID int64, req *ProjectRequest) (*Project, error)
	Delete(ctx context.Context, id, accountID int64) (*Project, error)
}
