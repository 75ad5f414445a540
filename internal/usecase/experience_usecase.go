package usecase

import (
	"context"

	"pickme-backend/internal/domain"
	"pickme-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type experienceUsecase struct {
	repo     domain.ExperienceRepository
	validate *validator.Validate
}

func NewExperienceUsecase(repo domain.ExperienceRepository, validate *validator.Validate) domain.ExperienceUsecase {
	return &experienceUsecase{
		repo:     repo,
		validate: validate,
	}
}

func (u *experienceUsecase) Create(ctx context.Context, accountID int64, req *domain.ExperienceRequest) (*domain.Experience, error) {
	if err := u.validate.Struct(req); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	experience := &domain.Experience{
		AccountID:   accountID,
		CompanyName: req.CompanyName,
		Position:    req.Position,
		Description: req.Description,
		JoinedAt:    req.JoinedAt,
		RetiredAt:   req.RetiredAt,
	}
	if err := u.repo.Create(ctx, experience); err != nil {
		return nil, err
	}
	return experience, nil
}

func (u *experienceUsecase) Update(ctx context.Context, id, accountID int64, req *domain.ExperienceRequest) (*domain.Experience, error) {
	if err := u.validate.Struct(req); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	experience, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if experience == nil {
		return nil, apperror.NotFound("Experience not found")
	}
	if experience.AccountID != accountID {
		return nil, apperror.Forbidden("You can only modify your own experiences")
	}

	experience.CompanyName = req.CompanyName
	experience.Position = req.Position
	experience.Description = req.Description
	experience.JoinedAt = req.JoinedAt
	experience.RetiredAt = req.RetiredAt

	if err := u.repo.Update(ctx, experience); err != nil {
		return nil, err
	}
	return experience, nil
}

func (u *experienceUsecase) Delete(ctx context.Context, id, accountID int64) (*domain.Experience, error) {
	experience, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if experience == nil {
		return nil, apperror.NotFound("Experience not found")
	}
	if experience.AccountID != accountID {
		return nil, apperror.Forbidden("You can only modify your own experiences")
	}

	if err := u.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return experience, nil
}
