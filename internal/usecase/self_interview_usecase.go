package usecase

import (
	"context"

	"pickme-backend/internal/domain"
	"pickme-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type selfInterviewUsecase struct {
	repo     domain.SelfInterviewRepository
	validate *validator.Validate
}

func NewSelfInterviewUsecase(repo domain.SelfInterviewRepository, validate *validator.Validate) domain.SelfInterviewUsecase {
	return &selfInterviewUsecase{
		repo:     repo,
		validate: validate,
	}
}

func (u *selfInterviewUsecase) Create(ctx context.Context, accountID int64, req *domain.SelfInterviewRequest) (*domain.SelfInterview, error) {
	if err := u.validate.Struct(req); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	selfInterview := &domain.SelfInterview{
		AccountID: accountID,
		Title:     req.Title,
		Content:   req.Content,
	}
	if err := u.repo.Create(ctx, selfInterview); err != nil {
		return nil, err
	}
	return selfInterview, nil
}

func (u *selfInterviewUsecase) Update(ctx context.Context, id, accountID int64, req *domain.SelfInterviewRequest) (*domain.SelfInterview, error) {
	if err := u.validate.Struct(req); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	selfInterview, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if selfInterview == nil {
		return nil, apperror.NotFound("Self interview not found")
	}
	if selfInterview.AccountID != accountID {
		return nil, apperror.Forbidden("You can only modify your own self interviews")
	}

	selfInterview.Title = req.Title
	selfInterview.Content = req.Content

	if err := u.repo.Update(ctx, selfInterview); err != nil {
		return nil, err
	}
	return selfInterview, nil
}

func (u *selfInterviewUsecase) Delete(ctx context.Context, id, accountID int64) (*domain.SelfInterview, error) {
	selfInterview, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if selfInterview == nil {
		return nil, apperror.NotFound("Self interview not found")
	}
	if selfInterview.AccountID != accountID {
		return nil, apperror.Forbidden("You can only modify your own self interviews")
	}

	if err := u.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return selfInterview, nil
}
