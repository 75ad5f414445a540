package usecase

import (
	"context"
	"errors"
	"time"

	"pickme-backend/internal/domain"
	"pickme-backend/pkg/apperror"
	"pickme-backend/pkg/email"
	"pickme-backend/pkg/hash"

	"github.com/go-playground/validator/v10"
)

// suggestionSender is satisfied by email.EmailService. Declared here so the
// delivery collaborator can be replaced in tests.
type suggestionSender interface {
	SendSuggestion(ctx context.Context, data email.SuggestionData) error
	IsConfigured() bool
}

type enterpriseUsecase struct {
	repo        domain.EnterpriseRepository
	accountRepo domain.AccountRepository
	mailer      suggestionSender
	validate    *validator.Validate
}

func NewEnterpriseUsecase(repo domain.EnterpriseRepository, accountRepo domain.AccountRepository, mailer suggestionSender, validate *validator.Validate) domain.EnterpriseUsecase {
	return &enterpriseUsecase{
		repo:        repo,
		accountRepo: accountRepo,
		mailer:      mailer,
		validate:    validate,
	}
}

func (u *enterpriseUsecase) Create(ctx context.Context, req *domain.EnterpriseCreateRequest) (*domain.Enterprise, error) {
	if err := u.validate.Struct(req); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	existing, err := u.accountRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.Conflict("Account with this email already exists")
	}

	hashed, err := hash.Password(req.Password)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	account := &domain.Account{
		Email:     req.Email,
		Password:  hashed,
		NickName:  req.Name,
		Role:      domain.RoleEnterprise,
		CreatedAt: time.Now(),
	}
	enterprise := &domain.Enterprise{
		RegistrationNumber: req.RegistrationNumber,
		Name:               req.Name,
		Address:            req.Address,
		CeoName:            req.CeoName,
	}
	if err := u.repo.Create(ctx, account, enterprise); err != nil {
		return nil, err
	}

	return enterprise, nil
}

func (u *enterpriseUsecase) Load(ctx context.Context, accountID int64) (*domain.Enterprise, error) {
	enterprise, err := u.repo.GetByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if enterprise == nil {
		return nil, apperror.NotFound("Enterprise not found")
	}
	return enterprise, nil
}

func (u *enterpriseUsecase) Update(ctx context.Context, accountID int64, req *domain.EnterpriseUpdateRequest) (*domain.Enterprise, error) {
	if err := u.validate.Struct(req); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	enterprise, err := u.repo.GetByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if enterprise == nil {
		return nil, apperror.NotFound("Enterprise not found")
	}

	enterprise.RegistrationNumber = req.RegistrationNumber
	enterprise.Name = req.Name
	enterprise.Address = req.Address
	enterprise.CeoName = req.CeoName

	if err := u.repo.Update(ctx, enterprise); err != nil {
		return nil, err
	}
	return enterprise, nil
}

func (u *enterpriseUsecase) Delete(ctx context.Context, accountID int64) (*domain.Enterprise, error) {
	enterprise, err := u.repo.GetByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if enterprise == nil {
		return nil, apperror.NotFound("Enterprise not found")
	}

	if err := u.repo.Delete(ctx, accountID); err != nil {
		return nil, err
	}
	return enterprise, nil
}

func (u *enterpriseUsecase) Filter(ctx context.Context, filter domain.EnterpriseFilter, page domain.PageRequest) (*domain.EnterprisePage, error) {
	if page.Limit <= 0 {
		page.Limit = defaultPageSize
	}
	if page.Limit > maxPageSize {
		page.Limit = maxPageSize
	}
	if page.Offset < 0 {
		page.Offset = 0
	}

	enterprises, total, err := u.repo.Filter(ctx, filter, page)
	if err != nil {
		return nil, err
	}
	if enterprises == nil {
		enterprises = []domain.Enterprise{}
	}

	return &domain.EnterprisePage{
		Items:      enterprises,
		TotalCount: total,
		PageNumber: page.Offset / page.Limit,
		PageSize:   page.Limit,
	}, nil
}

// SendSuggestion mails a position suggestion to the target account. Delivery
// failures surface as NotificationFailed; nothing is retried here.
func (u *enterpriseUsecase) SendSuggestion(ctx context.Context, targetID, enterpriseAccountID int64) error {
	enterprise, err := u.repo.GetByAccountID(ctx, enterpriseAccountID)
	if err != nil {
		return err
	}
	if enterprise == nil {
		return apperror.Forbidden("Only enterprise accounts can send suggestions")
	}

	target, err := u.accountRepo.GetByID(ctx, targetID)
	if err != nil {
		return err
	}
	if target == nil {
		return apperror.NotFound("Account not found")
	}

	if !u.mailer.IsConfigured() {
		return apperror.NotificationFailed(errors.New("email service is not configured"))
	}

	data := email.SuggestionData{
		ToEmail:        target.Email,
		ToNickName:     target.NickName,
		EnterpriseName: enterprise.Name,
		FromEmail:      enterprise.Email,
	}
	if err := u.mailer.SendSuggestion(ctx, data); err != nil {
		return apperror.NotificationFailed(err)
	}
	return nil
}
