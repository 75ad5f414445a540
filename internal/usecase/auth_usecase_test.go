package usecase_test

import (
	"context"
	"testing"
	"time"

	"pickme-backend/internal/domain"
	"pickme-backend/internal/usecase"
	"pickme-backend/pkg/hash"
	"pickme-backend/pkg/token"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestLogin(t *testing.T) {
	validate := validator.New()
	tokens := token.NewService("test-secret", 15*time.Minute)
	ctx := context.Background()

	hashed, err := hash.Password("password123")
	assert.NoError(t, err)

	t.Run("Should issue a token for valid credentials", func(t *testing.T) {
		mockRepo := new(MockAccountRepo)
		uc := usecase.NewAuthUsecase(mockRepo, tokens, validate)

		mockRepo.On("GetByEmail", ctx, "user@test.com").Return(&domain.Account{
			ID:       1,
			Email:    "user@test.com",
			Password: hashed,
			Role:     domain.RoleUser,
		}, nil)

		resp, err := uc.Login(ctx, &domain.LoginRequest{Email: "user@test.com", Password: "password123"})
		assert.NoError(t, err)
		assert.Equal(t, "Bearer", resp.TokenType)
		assert.Equal(t, int64(900), resp.ExpiresIn)

		claims, err := tokens.Parse(resp.AccessToken)
		assert.NoError(t, err)
		accountID, err := claims.AccountID()
		assert.NoError(t, err)
		assert.Equal(t, int64(1), accountID)
		assert.Equal(t, domain.RoleUser, claims.Role)
	})

	t.Run("Should fail with the same message for a wrong password", func(t *testing.T) {
		mockRepo := new(MockAccountRepo)
		uc := usecase.NewAuthUsecase(mockRepo, tokens, validate)

		mockRepo.On("GetByEmail", ctx, "user@test.com").Return(&domain.Account{
			ID:       1,
			Email:    "user@test.com",
			Password: hashed,
		}, nil)

		_, err := uc.Login(ctx, &domain.LoginRequest{Email: "user@test.com", Password: "wrong-password"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid email or password")
	})

	t.Run("Should fail with the same message for an unknown email", func(t *testing.T) {
		mockRepo := new(MockAccountRepo)
		uc := usecase.NewAuthUsecase(mockRepo, tokens, validate)

		mockRepo.On("GetByEmail", ctx, "nobody@test.com").Return(nil, nil)

		_, err := uc.Login(ctx, &domain.LoginRequest{Email: "nobody@test.com", Password: "password123"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid email or password")
	})
}

func TestTokenParse(t *testing.T) {
	tokens := token.NewService("test-secret", time.Minute)

	t.Run("Should reject a token signed with another secret", func(t *testing.T) {
		other := token.NewService("other-secret", time.Minute)
		forged, err := other.Generate(1, "user@test.com", domain.RoleUser)
		assert.NoError(t, err)

		_, err = tokens.Parse(forged)
		assert.Error(t, err)
	})

	t.Run("Should reject garbage", func(t *testing.T) {
		_, err := tokens.Parse("not-a-token")
		assert.Error(t, err)
	})
}
