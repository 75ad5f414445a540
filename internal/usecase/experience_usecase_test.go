package usecase_test

import (
	"context"
	"testing"

	"pickme-backend/internal/domain"
	"pickme-backend/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockExperienceRepo struct {
	mock.Mock
}

func (m *MockExperienceRepo) Create(ctx context.Context, experience *domain.Experience) error {
	return m.Called(ctx, experience).Error(0)
}

func (m *MockExperienceRepo) GetByID(ctx context.Context, id int64) (*domain.Experience, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Experience), args.Error(1)
}

func (m *MockExperienceRepo) Update(ctx context.Context, experience *domain.Experience) error {
	return m.Called(ctx, experience).Error(0)
}

func (m *MockExperienceRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// Ownership semantics are identical across the five owned record types;
// experience stands in for all of them here.
func TestExperienceOwnership(t *testing.T) {
	validate := validator.New()
	ctx := context.Background()

	t.Run("Should create for the current account", func(t *testing.T) {
		mockRepo := new(MockExperienceRepo)
		uc := usecase.NewExperienceUsecase(mockRepo, validate)

		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Experience")).Return(nil).Run(func(args mock.Arguments) {
			experience := args.Get(1).(*domain.Experience)
			assert.Equal(t, int64(1), experience.AccountID)
		})

		experience, err := uc.Create(ctx, 1, &domain.ExperienceRequest{CompanyName: "Acme"})
		assert.NoError(t, err)
		assert.Equal(t, "Acme", experience.CompanyName)
	})

	t.Run("Should refuse updating someone else's record", func(t *testing.T) {
		mockRepo := new(MockExperienceRepo)
		uc := usecase.NewExperienceUsecase(mockRepo, validate)

		mockRepo.On("GetByID", ctx, int64(5)).Return(&domain.Experience{ID: 5, AccountID: 2}, nil)

		_, err := uc.Update(ctx, 5, 1, &domain.ExperienceRequest{CompanyName: "Evil Corp"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "your own")
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Should refuse deleting someone else's record", func(t *testing.T) {
		mockRepo := new(MockExperienceRepo)
		uc := usecase.NewExperienceUsecase(mockRepo, validate)

		mockRepo.On("GetByID", ctx, int64(5)).Return(&domain.Experience{ID: 5, AccountID: 2}, nil)

		_, err := uc.Delete(ctx, 5, 1)
		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Should return NotFound for a missing record", func(t *testing.T) {
		mockRepo := new(MockExperienceRepo)
		uc := usecase.NewExperienceUsecase(mockRepo, validate)

		mockRepo.On("GetByID", ctx, int64(99)).Return(nil, nil)

		_, err := uc.Update(ctx, 99, 1, &domain.ExperienceRequest{CompanyName: "Acme"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("Should update own record", func(t *testing.T) {
		mockRepo := new(MockExperienceRepo)
		uc := usecase.NewExperienceUsecase(mockRepo, validate)

		mockRepo.On("GetByID", ctx, int64(5)).Return(&domain.Experience{ID: 5, AccountID: 1, CompanyName: "Old"}, nil)
		mockRepo.On("Update", ctx, mock.AnythingOfType("*domain.Experience")).Return(nil)

		experience, err := uc.Update(ctx, 5, 1, &domain.ExperienceRequest{CompanyName: "New", Position: "dev"})
		assert.NoError(t, err)
		assert.Equal(t, "New", experience.CompanyName)
		assert.Equal(t, "dev", experience.Position)
	})
}
