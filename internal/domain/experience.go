package domain

import (
	"context"
	"time"
)

// Experience is a work-history record owned by exactly one account.
type Experience struct {
	ID          int64      `json:"id"`
	AccountID   int64      `json:"account_id"`
	CompanyName string     `json:"company_name"`
	Position    string     `json:"position"`
	Description string     `json:"description"`
	JoinedAt    *time.Time `json:"joined_at"`
	RetiredAt   *time.Time `json:"retired_at"`
}

type ExperienceRequest struct {
	CompanyName string     `json:"company_name" validate:"required"`
	Position    string     `json:"position"`
	Description string     `json:"description"`
	JoinedAt    *time.Time `json:"joined_at"`
	RetiredAt   *time.Time `json:"retired_at"`
}

type ExperienceRepository interface {
	Create(ctx context.Context, experience *Experience) error
	GetByID(ctx context.Context, id int64) (*Experience, error)
	Update(ctx context.Context, experience *Experience) error
	Delete(ctx context.Context, id int64) error
}

type ExperienceUsecase interface {
	Create(ctx context.Context, accountID int64, req *ExperienceRequest) (*Experience, error)
	Update(ctx context.Context, id, accountID int64, req *ExperienceRequest) (*Experience, error)
	Delete(ctx context.Context, id, accountID int64) (*Experience, error)
}
