package domain

import (
	"context"
	"time"
)

// License is a certification record owned by exactly one account.
type License struct {
	ID          int64      `json:"id"`
	AccountID   int64      `json:"account_id"`
	Name        string     `json:"name"`
	Institution string     `json:"institution"`
	Description string     `json:"description"`
	IssuedDate  *time.Time `json:"issued_date"`
}

type LicenseRequest struct {
	Name        string     `json:"name" validate:"required"`
	Institution string     `json:"institution"`
	Description string     `json:"description"`
	IssuedDate  *time.Time `json:"issued_date"`
}

type LicenseRepository interface {
	Create(ctx context.Context, license *License) error
	GetByID(ctx context.Context, id int64) (*License, error)
	Update(ctx context.Context, license *License) error
	Delete(ctx context.Context, id int64) error
}

type LicenseUsecase interface {
	Create(ctx context.Context, accountID int64, req *LicenseRequest) (*License, error)
	Update(ctx context.Context, id, accountID int64, req *LicenseRequest) (*License, error)
	Delete(ctx context.Context, id, accountID int64) (*License, error)
}
