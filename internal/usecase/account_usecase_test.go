package usecase_test

import (
	"context"
	"testing"

	"pickme-backend/internal/domain"
	"pickme-backend/internal/usecase"
	"pickme-backend/pkg/hash"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock Repositories
type MockAccountRepo struct {
	mock.Mock
}

func (m *MockAccountRepo) Create(ctx context.Context, account *domain.Account) error {
	return m.Called(ctx, account).Error(0)
}

func (m *MockAccountRepo) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepo) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepo) Update(ctx context.Context, account *domain.Account) error {
	return m.Called(ctx, account).Error(0)
}

func (m *MockAccountRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockAccountRepo) AddFavorite(ctx context.Context, accountID, viewerID int64) error {
	return m.Called(ctx, accountID, viewerID).Error(0)
}

func (m *MockAccountRepo) FavoritedBy(ctx context.Context, accountID int64) ([]domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepo) IncrementHits(ctx context.Context, accountID int64) (int64, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAccountRepo) Filter(ctx context.Context, filter domain.AccountFilter, page domain.PageRequest) ([]domain.Account, int64, error) {
	args := m.Called(ctx, filter, page)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.Account), args.Get(1).(int64), args.Error(2)
}

func TestAccountCreate(t *testing.T) {
	validate := validator.New()
	ctx := context.Background()

	t.Run("Should reject duplicate email before insert", func(t *testing.T) {
		mockRepo := new(MockAccountRepo)
		uc := usecase.NewAccountUsecase(mockRepo, validate)

		mockRepo.On("GetByEmail", ctx, "taken@test.com").Return(&domain.Account{ID: 1, Email: "taken@test.com"}, nil)

		_, err := uc.Create(ctx, &domain.AccountCreateRequest{
			Email:    "taken@test.com",
			Password: "password123",
			NickName: "dup",
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should store a bcrypt hash and default to USER role", func(t *testing.T) {
		mockRepo := new(MockAccountRepo)
		uc := usecase.NewAccountUsecase(mockRepo, validate)

		mockRepo.On("GetByEmail", ctx, "new@test.com").Return(nil, nil)
		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Account")).Return(nil).Run(func(args mock.Arguments) {
			account := args.Get(1).(*domain.Account)
			assert.NotEqual(t, "password123", account.Password)
			assert.True(t, hash.Verify(account.Password, "password123"))
			assert.Equal(t, domain.RoleUser, account.Role)
			assert.Equal(t, int64(0), account.Hits)
		})

		resp, err := uc.Create(ctx, &domain.AccountCreateRequest{
			Email:        "new@test.com",
			Password:     "password123",
			NickName:     "newbie",
			Technologies: []string{"go", "postgres"},
		})
		assert.NoError(t, err)
		assert.Equal(t, "newbie", resp.NickName)
		assert.Equal(t, []string{"go", "postgres"}, resp.Technologies)
	})

	t.Run("Should fail validation for short password", func(t *testing.T) {
		mockRepo := new(MockAccountRepo)
		uc := usecase.NewAccountUsecase(mockRepo, validate)

		_, err := uc.Create(ctx, &domain.AccountCreateRequest{
			Email:    "short@test.com",
			Password: "short",
			NickName: "s",
		})
		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
	})
}

func TestAccountUpdate(t *testing.T) {
	validate := validator.New()
	ctx := context.Background()

	t.Run("Should replace positions and technologies wholesale", func(t *testing.T) {
		mockRepo := new(MockAccountRepo)
		uc := usecase.NewAccountUsecase(mockRepo, validate)

		existing := &domain.Account{
			ID:           1,
			Email:        "a@test.com",
			Password:     "stored-hash",
			NickName:     "old",
			Positions:    []string{"backend"},
			Technologies: []string{"java", "spring"},
		}
		mockRepo.On("GetByID", ctx, int64(1)).Return(existing, nil)
		mockRepo.On("Update", ctx, mock.AnythingOfType("*domain.Account")).Return(nil).Run(func(args mock.Arguments) {
			account := args.Get(1).(*domain.Account)
			assert.Equal(t, []string{"devops"}, account.Positions)
			assert.Equal(t, []string{"go"}, account.Technologies)
			// password survives the update untouched
			assert.Equal(t, "stored-hash", account.Password)
		})

		resp, err := uc.Update(ctx, 1, &domain.AccountUpdateRequest{
			NickName:     "new",
			Positions:    []string{"devops"},
			Technologies: []string{"go"},
		})
		assert.NoError(t, err)
		assert.Equal(t, "new", resp.NickName)
	})

	t.Run("Should return NotFound for missing account", func(t *testing.T) {
		mockRepo := new(MockAccountRepo)
		uc := usecase.NewAccountUsecase(mockRepo, validate)

		mockRepo.On("GetByID", ctx, int64(99)).Return(nil, nil)

		_, err := uc.Update(ctx, 99, &domain.AccountUpdateRequest{NickName: "ghost"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestAccountLoadHitCounting(t *testing.T) {
	validate := validator.New()
	ctx := context.Background()

	t.Run("Should count a hit and issue a marker on first view", func(t *testing.T) {
		mockRepo := new(MockAccountRepo)
		uc := usecase.NewAccountUsecase(mockRepo, validate)

		mockRepo.On("GetByID", ctx, int64(1)).Return(&domain.Account{ID: 1, Hits: 4}, nil)
		mockRepo.On("IncrementHits", ctx, int64(1)).Return(int64(5), nil)

		detail, issueMarker, err := uc.LoadAccount(ctx, 1, 2, false)
		assert.NoError(t, err)
		assert.True(t, issueMarker)
		assert.Equal(t, int64(5), detail.Hits)
	})

	t.Run("Should not count a hit when the marker was seen", func(t *testing.T) {
		mockRepo := new(MockAccountRepo)
		uc := usecase.NewAccountUsecase(mockRepo, validate)

		mockRepo.On("GetByID", ctx, int64(1)).Return(&domain.Account{ID: 1, Hits: 5}, nil)

		detail, issueMarker, err := uc.LoadAccount(ctx, 1, 2, true)
		assert.NoError(t, err)
		assert.False(t, issueMarker)
		assert.Equal(t, int64(5), detail.Hits)
		mockRepo.AssertNotCalled(t, "IncrementHits", mock.Anything, mock.Anything)
	})
}

func TestAccountFavorite(t *testing.T) {
	validate := validator.New()
	ctx := context.Background()

	t.Run("Should reject favoriting yourself", func(t *testing.T) {
		mockRepo := new(MockAccountRepo)
		uc := usecase.NewAccountUsecase(mockRepo, validate)

		_, err := uc.Favorite(ctx, 7, 7)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "own account")
		mockRepo.AssertNotCalled(t, "AddFavorite", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should set the flag for the favoriting viewer only", func(t *testing.T) {
		mockRepo := new(MockAccountRepo)
		uc := usecase.NewAccountUsecase(mockRepo, validate)

		before := &domain.Account{ID: 1}
		after := &domain.Account{ID: 1, FavoritedBy: []int64{2}}
		mockRepo.On("GetByID", ctx, int64(1)).Return(before, nil).Once()
		mockRepo.On("AddFavorite", ctx, int64(1), int64(2)).Return(nil)
		mockRepo.On("GetByID", ctx, int64(1)).Return(after, nil).Once()

		detail, err := uc.Favorite(ctx, 1, 2)
		assert.NoError(t, err)
		assert.True(t, detail.FavoriteFlag)
		assert.Equal(t, 1, detail.FavoriteCount)
	})

	t.Run("Should be idempotent when favoriting twice", func(t *testing.T) {
		mockRepo := new(MockAccountRepo)
		uc := usecase.NewAccountUsecase(mockRepo, validate)

		// the favorite relation is a set: the repo's second add is a no-op
		favorited := &domain.Account{ID: 1, FavoritedBy: []int64{2}}
		mockRepo.On("GetByID", ctx, int64(1)).Return(favorited, nil)
		mockRepo.On("AddFavorite", ctx, int64(1), int64(2)).Return(nil)

		first, err := uc.Favorite(ctx, 1, 2)
		assert.NoError(t, err)
		second, err := uc.Favorite(ctx, 1, 2)
		assert.NoError(t, err)

		assert.Equal(t, 1, first.FavoriteCount)
		assert.Equal(t, first.FavoriteCount, second.FavoriteCount)
		assert.True(t, second.FavoriteFlag)
		mockRepo.AssertNumberOfCalls(t, "AddFavorite", 2)
	})

	t.Run("Should return NotFound for missing target", func(t *testing.T) {
		mockRepo := new(MockAccountRepo)
		uc := usecase.NewAccountUsecase(mockRepo, validate)

		mockRepo.On("GetByID", ctx, int64(42)).Return(nil, nil)

		_, err := uc.Favorite(ctx, 42, 2)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestAccountFilterPaging(t *testing.T) {
	validate := validator.New()
	ctx := context.Background()

	t.Run("Should clamp limit and compute page number", func(t *testing.T) {
		mockRepo := new(MockAccountRepo)
		uc := usecase.NewAccountUsecase(mockRepo, validate)

		mockRepo.On("Filter", ctx, domain.AccountFilter{Career: "junior"}, domain.PageRequest{Offset: 40, Limit: 20}).
			Return([]domain.Account{{ID: 1}}, int64(41), nil)

		page, err := uc.Filter(ctx, domain.AccountFilter{Career: "junior"}, domain.PageRequest{Offset: 40, Limit: 0})
		assert.NoError(t, err)
		assert.Equal(t, int64(41), page.TotalCount)
		assert.Equal(t, 2, page.PageNumber)
		assert.Equal(t, 20, page.PageSize)
		assert.Len(t, page.Items, 1)
	})
}
