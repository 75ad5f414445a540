package usecase

import (
	"context"
	"time"

	"pickme-backend/internal/domain"
	"pickme-backend/pkg/apperror"
	"pickme-backend/pkg/hash"

	"github.com/go-playground/validator/v10"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type accountUsecase struct {
	repo     domain.AccountRepository
	validate *validator.Validate
}

func NewAccountUsecase(repo domain.AccountRepository, validate *validator.Validate) domain.AccountUsecase {
	return &accountUsecase{
		repo:     repo,
		validate: validate,
	}
}

func (u *accountUsecase) Create(ctx context.Context, req *domain.AccountCreateRequest) (*domain.AccountResponse, error) {
	if err := u.validate.Struct(req); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	// Advisory pre-check; the unique constraint on email is the real guard
	// and surfaces concurrent registrations as a conflict from Create.
	duplicated, err := u.IsDuplicate(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if duplicated {
		return nil, apperror.Conflict("Account with this email already exists")
	}

	hashed, err := hash.Password(req.Password)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	account := &domain.Account{
		Email:            req.Email,
		Password:         hashed,
		NickName:         req.NickName,
		OneLineIntroduce: req.OneLineIntroduce,
		Role:             domain.RoleUser,
		Technologies:     req.Technologies,
		Hits:             0,
		CreatedAt:        time.Now(),
	}
	if err := u.repo.Create(ctx, account); err != nil {
		return nil, err
	}

	return domain.NewAccountResponse(account), nil
}

// Update merges scalar fields and fully replaces positions and technologies.
// The password is never touched here. Ownership is the caller's concern: the
// handler compares the path id with the authenticated account before calling.
func (u *accountUsecase) Update(ctx context.Context, id int64, req *domain.AccountUpdateRequest) (*domain.AccountResponse, error) {
	if err := u.validate.Struct(req); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	account, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, apperror.NotFound("Account not found")
	}

	account.NickName = req.NickName
	account.OneLineIntroduce = req.OneLineIntroduce
	account.Career = req.Career
	account.Image = req.Image
	account.SocialLink = req.SocialLink
	account.Positions = req.Positions
	account.Technologies = req.Technologies

	if err := u.repo.Update(ctx, account); err != nil {
		return nil, err
	}

	return domain.NewAccountResponse(account), nil
}

func (u *accountUsecase) Delete(ctx context.Context, id int64) (*domain.AccountResponse, error) {
	account, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, apperror.NotFound("Account not found")
	}

	if err := u.repo.Delete(ctx, id); err != nil {
		return nil, err
	}

	// projection of the last-known values of the removed account
	return domain.NewAccountResponse(account), nil
}

func (u *accountUsecase) IsDuplicate(ctx context.Context, email string) (bool, error) {
	existing, err := u.repo.GetByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return existing != nil, nil
}

func (u *accountUsecase) LoadProfile(ctx context.Context, id int64) (*domain.AccountResponse, error) {
	account, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, apperror.NotFound("Account not found")
	}
	return domain.NewAccountResponse(account), nil
}

// LoadAccount produces the viewer-relative projection. The hit counter is
// incremented only when the request carried no view marker for the target;
// the second return value tells the caller to issue one. Counting stays
// approximate on purpose: a cleared marker or a second device recounts.
func (u *accountUsecase) LoadAccount(ctx context.Context, targetID, viewerID int64, markerSeen bool) (*domain.AccountDetailResponse, bool, error) {
	account, err := u.repo.GetByID(ctx, targetID)
	if err != nil {
		return nil, false, err
	}
	if account == nil {
		return nil, false, apperror.NotFound("Account not found")
	}

	issueMarker := false
	if !markerSeen {
		hits, err := u.repo.IncrementHits(ctx, targetID)
		if err != nil {
			return nil, false, err
		}
		account.Hits = hits
		issueMarker = true
	}

	return domain.NewAccountDetailResponse(account, viewerID), issueMarker, nil
}

func (u *accountUsecase) Filter(ctx context.Context, filter domain.AccountFilter, page domain.PageRequest) (*domain.AccountPage, error) {
	if page.Limit <= 0 {
		page.Limit = defaultPageSize
	}
	if page.Limit > maxPageSize {
		page.Limit = maxPageSize
	}
	if page.Offset < 0 {
		page.Offset = 0
	}

	accounts, total, err := u.repo.Filter(ctx, filter, page)
	if err != nil {
		return nil, err
	}

	items := make([]domain.AccountResponse, 0, len(accounts))
	for i := range accounts {
		items = append(items, *domain.NewAccountResponse(&accounts[i]))
	}

	return &domain.AccountPage{
		Items:      items,
		TotalCount: total,
		PageNumber: page.Offset / page.Limit,
		PageSize:   page.Limit,
	}, nil
}

func (u *accountUsecase) Favorite(ctx context.Context, targetID, viewerID int64) (*domain.AccountDetailResponse, error) {
	if targetID == viewerID {
		return nil, apperror.BadRequest("Cannot favorite your own account")
	}

	target, err := u.repo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, apperror.NotFound("Account not found")
	}

	// set-add; favoriting twice is a no-op
	if err := u.repo.AddFavorite(ctx, targetID, viewerID); err != nil {
		return nil, err
	}

	target, err = u.repo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, apperror.NotFound("Account not found")
	}
	return domain.NewAccountDetailResponse(target, viewerID), nil
}

func (u *accountUsecase) FavoritedBy(ctx context.Context, targetID int64) ([]domain.AccountResponse, error) {
	target, err := u.repo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, apperror.NotFound("Account not found")
	}

	accounts, err := u.repo.FavoritedBy(ctx, targetID)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.AccountResponse, 0, len(accounts))
	for i := range accounts {
		responses = append(responses, *domain.NewAccountResponse(&accounts[i]))
	}
	return responses, nil
}
