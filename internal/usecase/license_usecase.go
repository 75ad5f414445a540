package usecase

import (
	"context"

	"pickme-backend/internal/domain"
	"pickme-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type licenseUsecase struct {
	repo     domain.LicenseRepository
	validate *validator.Validate
}

func NewLicenseUsecase(repo domain.LicenseRepository, validate *validator.Validate) domain.LicenseUsecase {
	return &licenseUsecase{
		repo:     repo,
		validate: validate,
	}
}

func (u *licenseUsecase) Create(ctx context.Context, accountID int64, req *domain.LicenseRequest) (*domain.License, error) {
	if err := u.validate.Struct(req); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	license := &domain.License{
		AccountID:   accountID,
		Name:        req.Name,
		Institution: req.Institution,
		Description: req.Description,
		IssuedDate:  req.IssuedDate,
	}
	if err := u.repo.Create(ctx, license); err != nil {
		return nil, err
	}
	return license, nil
}

func (u *licenseUsecase) Update(ctx context.Context, id, accountID int64, req *domain.LicenseRequest) (*domain.License, error) {
	if err := u.validate.Struct(req); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	license, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if license == nil {
		return nil, apperror.NotFound("License not found")
	}
	if license.AccountID != accountID {
		return nil, apperror.Forbidden("You can only modify your own licenses")
	}

	license.Name = req.Name
	license.Institution = req.Institution
	license.Description = req.Description
	license.IssuedDate = req.IssuedDate

	if err := u.repo.Update(ctx, license); err != nil {
		return nil, err
	}
	return license, nil
}

func (u *licenseUsecase) Delete(ctx context.Context, id, accountID int64) (*domain.License, error) {
	license, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if license == nil {
		return nil, apperror.NotFound("License not found")
	}
	if license.AccountID != accountID {
		return nil, apperror.Forbidden("You can only modify your own licenses")
	}

	if err := u.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return license, nil
}
