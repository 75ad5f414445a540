package usecase_test

import (
	"context"
	"errors"
	"testing"

	"pickme-backend/internal/domain"
	"pickme-backend/internal/usecase"
	"pickme-backend/pkg/email"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockEnterpriseRepo struct {
	mock.Mock
}

func (m *MockEnterpriseRepo) Create(ctx context.Context, account *domain.Account, enterprise *domain.Enterprise) error {
	return m.Called(ctx, account, enterprise).Error(0)
}

func (m *MockEnterpriseRepo) GetByAccountID(ctx context.Context, accountID int64) (*domain.Enterprise, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Enterprise), args.Error(1)
}

func (m *MockEnterpriseRepo) Update(ctx context.Context, enterprise *domain.Enterprise) error {
	return m.Called(ctx, enterprise).Error(0)
}

func (m *MockEnterpriseRepo) Delete(ctx context.Context, accountID int64) error {
	return m.Called(ctx, accountID).Error(0)
}

func (m *MockEnterpriseRepo) Filter(ctx context.Context, filter domain.EnterpriseFilter, page domain.PageRequest) ([]domain.Enterprise, int64, error) {
	args := m.Called(ctx, filter, page)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.Enterprise), args.Get(1).(int64), args.Error(2)
}

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendSuggestion(ctx context.Context, data email.SuggestionData) error {
	return m.Called(ctx, data).Error(0)
}

func (m *MockMailer) IsConfigured() bool {
	return m.Called().Bool(0)
}

func TestEnterpriseCreate(t *testing.T) {
	validate := validator.New()
	ctx := context.Background()

	t.Run("Should create account and profile with ENTERPRISE role", func(t *testing.T) {
		mockRepo := new(MockEnterpriseRepo)
		mockAccountRepo := new(MockAccountRepo)
		mailer := new(MockMailer)
		uc := usecase.NewEnterpriseUsecase(mockRepo, mockAccountRepo, mailer, validate)

		mockAccountRepo.On("GetByEmail", ctx, "corp@test.com").Return(nil, nil)
		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Account"), mock.AnythingOfType("*domain.Enterprise")).
			Return(nil).Run(func(args mock.Arguments) {
			account := args.Get(1).(*domain.Account)
			assert.Equal(t, domain.RoleEnterprise, account.Role)
			assert.Equal(t, "Acme", account.NickName)
		})

		enterprise, err := uc.Create(ctx, &domain.EnterpriseCreateRequest{
			Email:              "corp@test.com",
			Password:           "password123",
			RegistrationNumber: "123-45-67890",
			Name:               "Acme",
			Address:            "Seoul",
			CeoName:            "Kim",
		})
		assert.NoError(t, err)
		assert.Equal(t, "Acme", enterprise.Name)
	})

	t.Run("Should reject duplicate email", func(t *testing.T) {
		mockRepo := new(MockEnterpriseRepo)
		mockAccountRepo := new(MockAccountRepo)
		mailer := new(MockMailer)
		uc := usecase.NewEnterpriseUsecase(mockRepo, mockAccountRepo, mailer, validate)

		mockAccountRepo.On("GetByEmail", ctx, "corp@test.com").Return(&domain.Account{ID: 1}, nil)

		_, err := uc.Create(ctx, &domain.EnterpriseCreateRequest{
			Email:              "corp@test.com",
			Password:           "password123",
			RegistrationNumber: "123-45-67890",
			Name:               "Acme",
			Address:            "Seoul",
			CeoName:            "Kim",
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")
	})
}

func TestSendSuggestion(t *testing.T) {
	validate := validator.New()
	ctx := context.Background()

	enterprise := &domain.Enterprise{ID: 1, AccountID: 10, Name: "Acme", Email: "corp@test.com"}
	target := &domain.Account{ID: 2, Email: "dev@test.com", NickName: "dev"}

	t.Run("Should deliver the suggestion mail", func(t *testing.T) {
		mockRepo := new(MockEnterpriseRepo)
		mockAccountRepo := new(MockAccountRepo)
		mailer := new(MockMailer)
		uc := usecase.NewEnterpriseUsecase(mockRepo, mockAccountRepo, mailer, validate)

		mockRepo.On("GetByAccountID", ctx, int64(10)).Return(enterprise, nil)
		mockAccountRepo.On("GetByID", ctx, int64(2)).Return(target, nil)
		mailer.On("IsConfigured").Return(true)
		mailer.On("SendSuggestion", ctx, email.SuggestionData{
			ToEmail:        "dev@test.com",
			ToNickName:     "dev",
			EnterpriseName: "Acme",
			FromEmail:      "corp@test.com",
		}).Return(nil)

		err := uc.SendSuggestion(ctx, 2, 10)
		assert.NoError(t, err)
	})

	t.Run("Should reject non-enterprise senders", func(t *testing.T) {
		mockRepo := new(MockEnterpriseRepo)
		mockAccountRepo := new(MockAccountRepo)
		mailer := new(MockMailer)
		uc := usecase.NewEnterpriseUsecase(mockRepo, mockAccountRepo, mailer, validate)

		mockRepo.On("GetByAccountID", ctx, int64(10)).Return(nil, nil)

		err := uc.SendSuggestion(ctx, 2, 10)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "enterprise accounts")
	})

	t.Run("Should return NotFound for missing target", func(t *testing.T) {
		mockRepo := new(MockEnterpriseRepo)
		mockAccountRepo := new(MockAccountRepo)
		mailer := new(MockMailer)
		uc := usecase.NewEnterpriseUsecase(mockRepo, mockAccountRepo, mailer, validate)

		mockRepo.On("GetByAccountID", ctx, int64(10)).Return(enterprise, nil)
		mockAccountRepo.On("GetByID", ctx, int64(99)).Return(nil, nil)

		err := uc.SendSuggestion(ctx, 99, 10)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("Should surface delivery failure as notification error", func(t *testing.T) {
		mockRepo := new(MockEnterpriseRepo)
		mockAccountRepo := new(MockAccountRepo)
		mailer := new(MockMailer)
		uc := usecase.NewEnterpriseUsecase(mockRepo, mockAccountRepo, mailer, validate)

		mockRepo.On("GetByAccountID", ctx, int64(10)).Return(enterprise, nil)
		mockAccountRepo.On("GetByID", ctx, int64(2)).Return(target, nil)
		mailer.On("IsConfigured").Return(true)
		mailer.On("SendSuggestion", ctx, mock.AnythingOfType("email.SuggestionData")).
			Return(errors.New("smtp: connection refused"))

		err := uc.SendSuggestion(ctx, 2, 10)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Notification delivery failed")
	})

	t.Run("Should fail when the mailer is not configured", func(t *testing.T) {
		mockRepo := new(MockEnterpriseRepo)
		mockAccountRepo := new(MockAccountRepo)
		mailer := new(MockMailer)
		uc := usecase.NewEnterpriseUsecase(mockRepo, mockAccountRepo, mailer, validate)

		mockRepo.On("GetByAccountID", ctx, int64(10)).Return(enterprise, nil)
		mockAccountRepo.On("GetByID", ctx, int64(2)).Return(target, nil)
		mailer.On("IsConfigured").Return(false)

		err := uc.SendSuggestion(ctx, 2, 10)
		assert.Error(t, err)
		mailer.AssertNotCalled(t, "SendSuggestion", mock.Anything, mock.Anything)
	})
}
