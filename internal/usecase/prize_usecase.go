package usecase

import (
	"context"

	"pickme-backend/internal/domain"
	"pickme-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type prizeUsecase struct {
	repo     domain.PrizeRepository
	validate *validator.Validate
}

func NewPrizeUsecase(repo domain.PrizeRepository, validate *validator.Validate) domain.PrizeUsecase {
	return &prizeUsecase{
		repo:     repo,
		validate: validate,
	}
}

func (u *prizeUsecase) Create(ctx context.Context, accountID int64, req *domain.PrizeRequest) (*domain.Prize, error) {
	if err := u.validate.Struct(req); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	prize := &domain.Prize{
		AccountID:   accountID,
		Name:        req.Name,
		Competition: req.Competition,
		Description: req.Description,
		IssuedDate:  req.IssuedDate,
	}
	if err := u.repo.Create(ctx, prize); err != nil {
		return nil, err
	}
	return prize, nil
}

func (u *prizeUsecase) Update(ctx context.Context, id, accountID int64, req *domain.PrizeRequest) (*domain.Prize, error) {
	if err := u.validate.Struct(req); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	prize, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if prize == nil {
		return nil, apperror.NotFound("Prize not found")
	}
	if prize.AccountID != accountID {
		return nil, apperror.Forbidden("You can only modify your own prizes")
	}

	prize.Name = req.Name
	prize.Competition = req.Competition
	prize.Description = req.Description
	prize.IssuedDate = req.IssuedDate

	if err := u.repo.Update(ctx, prize); err != nil {
		return nil, err
	}
	return prize, nil
}

func (u *prizeUsecase) Delete(ctx context.Context, id, accountID int64) (*domain.Prize, error) {
	prize, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if prize == nil {
		return nil, apperror.NotFound("Prize not found")
	}
	if prize.AccountID != accountID {
		return nil, apperror.Forbidden("You can only modify your own prizes")
	}

	if err := u.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return prize, nil
}
