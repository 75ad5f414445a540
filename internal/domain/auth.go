package domain

import "context"

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

type AuthUsecase interface {
	Login(ctx context.Context, req *LoginRequest) (*TokenResponse, error)
	CurrentAccount(ctx context.Context, id int64) (*Account, error)
}
