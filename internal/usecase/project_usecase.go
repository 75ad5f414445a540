package usecase

import (
	"context"

	"pickme-backend/internal/domain"
	"pickme-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type projectUsecase struct {
	repo     domain.ProjectRepository
	validate *validator.Validate
}

func NewProjectUsecase(repo domain.ProjectRepository, validate *validator.Validate) domain.ProjectUsecase {
	return &projectUsecase{
		repo:     repo,
		validate: validate,
	}
}

func (u *projectUsecase) Create(ctx context.Context, accountID int64, req *domain.ProjectRequest) (*domain.Project, error) {
	if err := u.validate.Struct(req); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	project := &domain.Project{
		AccountID:   accountID,
		Name:        req.Name,
		Role:        req.Role,
		Description: req.Description,
		ProjectLink: req.ProjectLink,
		StartedAt:   req.StartedAt,
		EndedAt:     req.EndedAt,
	}
	if err := u.repo.Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (u *projectUsecase) Update(ctx context.Context, id, accountID int64, req *domain.ProjectRequest) (*domain.Project, error) {
	if err := u.validate.Struct(req); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	project, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, apperror.NotFound("Project not found")
	}
	if project.AccountID != accountID {
		return nil, apperror.Forbidden("You can only modify your own projects")
	}

	project.Name = req.Name
	project.Role = req.Role
	project.Description = req.Description
	project.ProjectLink = req.ProjectLink
	project.StartedAt = req.StartedAt
	project.EndedAt = req.EndedAt

	if err := u.repo.Update(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (u *projectUsecase) Delete(ctx context.Context, id, accountID int64) (*domain.Project, error) {
	project, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, apperror.NotFound("Project not found")
	}
	if project.AccountID != accountID {
		return nil, apperror.Forbidden("You can only modify your own projects")
	}

	if err := u.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return project, nil
}
