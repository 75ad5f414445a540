package domain

import (
	"context"
	"time"
)

// Prize is an award record owned by exactly one account.
type Prize struct {
	ID          int64      `json:"id"`
	AccountID   int64      `json:"account_id"`
	Name        string     `json:"name"`
	Competition string     `json:"competition"`
	Description string     `json:"description"`
	IssuedDate  *time.Time `json:"issued_date"`
}

type PrizeRequest struct {
	Name        string     `json:"name" validate:"required"`
	Competition string     `json:"competition"`
	Description string     `json:"description"`
	IssuedDate  *time.Time `json:"issued_date"`
}

type PrizeRepository interface {
	Create(ctx context.Context, prize *Prize) error
	GetByID(ctx context.Context, id int64) (*Prize, error)
	Update(ctx context.Context, prize *Prize) error
	Delete(ctx context.Context, id int64) error
}

type PrizeUsecase interface {
	Create(ctx context.Context, accountID int64, req *PrizeRequest) (*Prize, error)
	Update(ctx context.Context, id, accountID int64, req *PrizeRequest) (*Prize, error)
	Delete(ctx context.Context, id, accountID int64) (*Prize, error)
}
