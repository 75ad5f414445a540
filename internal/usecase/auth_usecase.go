package usecase

import (
	"context"

	"pickme-backend/internal/domain"
	"pickme-backend/pkg/apperror"
	"pickme-backend/pkg/hash"
	"pickme-backend/pkg/token"

	"github.com/go-playground/validator/v10"
)

type authUsecase struct {
	accountRepo domain.AccountRepository
	tokens      *token.Service
	validate    *validator.Validate
}

func NewAuthUsecase(accountRepo domain.AccountRepository, tokens *token.Service, validate *validator.Validate) domain.AuthUsecase {
	return &authUsecase{
		accountRepo: accountRepo,
		tokens:      tokens,
		validate:    validate,
	}
}

func (u *authUsecase) Login(ctx context.Context, req *domain.LoginRequest) (*domain.TokenResponse, error) {
	if err := u.validate.Struct(req); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	account, err := u.accountRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	// same message for unknown email and wrong password
	if account == nil || !hash.Verify(account.Password, req.Password) {
		return nil, apperror.Unauthorized("Invalid email or password")
	}

	accessToken, err := u.tokens.Generate(account.ID, account.Email, account.Role)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.TokenResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int64(u.tokens.ExpiresIn().Seconds()),
	}, nil
}

func (u *authUsecase) CurrentAccount(ctx context.Context, id int64) (*domain.Account, error) {
	account, err := u.accountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, apperror.NotFound("Account not found")
	}
	return account, nil
}
