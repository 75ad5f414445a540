package domain

import (
	"context"
	"time"
)

// Enterprise is the one-to-one company profile attached to an ENTERPRISE
// account. It shares the account's id space: lookups use the account id.
type Enterprise struct {
	ID                 int64     `json:"id"`
	AccountID          int64     `json:"account_id"`
	Email              string    `json:"email"`
	RegistrationNumber string    `json:"registration_number"`
	Name               string    `json:"name"`
	Address            string    `json:"address"`
	CeoName            string    `json:"ceo_name"`
	CreatedAt          time.Time `json:"created_at"`
}

type EnterpriseCreateRequest struct {
	Email              string `json:"email" validate:"required,email"`
	Password           string `json:"password" validate:"required,min=8,max=72"`
	RegistrationNumber string `json:"registration_number" validate:"required"`
	Name               string `json:"name" validate:"required"`
	Address            string `json:"address" validate:"required"`
	CeoName            string `json:"ceo_name" validate:"required"`
}

type EnterpriseUpdateRequest struct {
	RegistrationNumber string `json:"registration_number" validate:"required"`
	Name               string `json:"name" validate:"required"`
	Address            string `json:"address" validate:"required"`
	CeoName            string `json:"ceo_name" validate:"required"`
}

type EnterpriseFilter struct {
	Name    string `form:"name"`
	Address string `form:"address"`
}

type EnterprisePage struct {
	Items      []Enterprise `json:"items"`
	TotalCount int64        `json:"total_count"`
	PageNumber int          `json:"page_number"`
	PageSize   int          `json:"page_size"`
}

type EnterpriseRepository interface {
	// Create inserts the backing ENTERPRISE account and the enterprise row
	// in one transaction. Duplicate email surfaces as a conflict error.
	Create(ctx context.Context, account *Account, enterprise *Enterprise) error
	// GetByAccountID returns nil when the account has no enterprise profile.
	GetByAccountID(ctx context.Context, accountID int64) (*Enterprise, error)
	Update(ctx context.Context, enterprise *Enterprise) error
	// Delete removes the backing account; the enterprise row cascades.
	Delete(ctx context.Context, accountID int64) error
	Filter(ctx context.Context, filter EnterpriseFilter, page PageRequest) ([]Enterprise, int64, error)
}

type EnterpriseUsecase interface {
	Create(ctx context.Context, req *EnterpriseCreateRequest) (*Enterprise, error)
	Load(ctx context.Context, accountID int64) (*Enterprise, error)
	Update(ctx context.Context, accountID int64, req *EnterpriseUpdateRequest) (*Enterprise, error)
	Delete(ctx context.Context, accountID int64) (*Enterprise, error)
	Filter(ctx context.Context, filter EnterpriseFilter, page PageRequest) (*EnterprisePage, error)
	// SendSuggestion mails a position suggestion from the current enterprise
	// to the account identified by targetID.
	SendSuggestion(ctx context.Context, targetID, enterpriseAccountID int64) error
}
