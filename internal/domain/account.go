package domain

import (
	"context"
	"errors"
	"time"
)

const (
	RoleUser       = "USER"
	RoleEnterprise = "ENTERPRISE"
)

var ErrNotFound = errors.New("resource not found")

// Account is a registered identity, either an individual candidate (USER)
// or a company representative (ENTERPRISE).
type Account struct {
	ID               int64     `json:"id"`
	Email            string    `json:"email"`
	Password         string    `json:"-"`
	NickName         string    `json:"nick_name"`
	OneLineIntroduce string    `json:"one_line_introduce"`
	Career           string    `json:"career"`
	Image            string    `json:"image"`
	SocialLink       string    `json:"social_link"`
	Role             string    `json:"role"`
	Positions        []string  `json:"positions"`
	Technologies     []string  `json:"technologies"` // flattened account_tech rows, insertion order
	Hits             int64     `json:"hits"`
	CreatedAt        time.Time `json:"created_at"`

	// FavoritedBy holds the ids of accounts that favorited this account.
	// Loaded by GetByID; favoriteCount and favoriteFlag derive from it.
	FavoritedBy []int64 `json:"-"`

	Experiences    []Experience    `json:"experiences"`
	Licenses       []License       `json:"licenses"`
	Prizes         []Prize         `json:"prizes"`
	Projects       []Project       `json:"projects"`
	SelfInterviews []SelfInterview `json:"self_interviews"`
}

type AccountCreateRequest struct {
	Email            string   `json:"email" validate:"required,email"`
	Password         string   `json:"password" validate:"required,min=8,max=72"`
	NickName         string   `json:"nick_name" validate:"required"`
	OneLineIntroduce string   `json:"one_line_introduce"`
	Technologies     []string `json:"technologies"`
}

type AccountUpdateRequest struct {
	NickName         string   `json:"nick_name" validate:"required"`
	OneLineIntroduce string   `json:"one_line_introduce"`
	Career           string   `json:"career"`
	Image            string   `json:"image"`
	SocialLink       string   `json:"social_link" validate:"omitempty,url"`
	Positions        []string `json:"positions"`
	Technologies     []string `json:"technologies"`
}

// AccountFilter carries the optional list criteria. Blank fields are omitted
// from the conjunction; the result is always restricted to USER accounts.
type AccountFilter struct {
	NickName         string `form:"nickName"`
	OneLineIntroduce string `form:"oneLineIntroduce"`
	Career           string `form:"career"`
	Position         string `form:"position"`
	Technology       string `form:"technology"`
}

type PageRequest struct {
	Offset int `form:"offset"`
	Limit  int `form:"limit"`
}

type AccountPage struct {
	Items      []AccountResponse `json:"items"`
	TotalCount int64             `json:"total_count"`
	PageNumber int               `json:"page_number"`
	PageSize   int               `json:"page_size"`
}

type AccountRepository interface {
	// Create inserts the account and its technology rows. A duplicate email
	// surfaces as a conflict error from the unique constraint.
	Create(ctx context.Context, account *Account) error
	// GetByID loads the full account: technologies, favorited-by ids and
	// owned child records. Returns nil when the id does not exist.
	GetByID(ctx context.Context, id int64) (*Account, error)
	// GetByEmail loads the core account row only. Returns nil when absent.
	GetByEmail(ctx context.Context, email string) (*Account, error)
	// Update replaces scalar fields, positions and the technology rows
	// (delete-all-then-insert) in one transaction. Password is not touched.
	Update(ctx context.Context, account *Account) error
	Delete(ctx context.Context, id int64) error
	// AddFavorite records that viewerID favorited accountID. Idempotent.
	AddFavorite(ctx context.Context, accountID, viewerID int64) error
	FavoritedBy(ctx context.Context, accountID int64) ([]Account, error)
	IncrementHits(ctx context.Context, accountID int64) (int64, error)
	// Filter returns the page of USER accounts matching every non-blank
	// criterion, newest first, plus the total matching count.
	Filter(ctx context.Context, filter AccountFilter, page PageRequest) ([]Account, int64, error)
}

type AccountUsecase interface {
	Create(ctx context.Context, req *AccountCreateRequest) (*AccountResponse, error)
	Update(ctx context.Context, id int64, req *AccountUpdateRequest) (*AccountResponse, error)
	Delete(ctx context.Context, id int64) (*AccountResponse, error)
	IsDuplicate(ctx context.Context, email string) (bool, error)
	LoadProfile(ctx context.Context, id int64) (*AccountResponse, error)
	// LoadAccount returns the viewer-relative projection of targetID. When
	// the request did not carry the per-target view marker (markerSeen is
	// false) the hit counter is incremented and the second return value asks
	// the caller to issue a marker.
	LoadAccount(ctx context.Context, targetID, viewerID int64, markerSeen bool) (*AccountDetailResponse, bool, error)
	Filter(ctx context.Context, filter AccountFilter, page PageRequest) (*AccountPage, error)
	Favorite(ctx context.Context, targetID, viewerID int64) (*AccountDetailResponse, error)
	FavoritedBy(ctx context.Context, targetID int64) ([]AccountResponse, error)
}
