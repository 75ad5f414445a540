package domain

import "context"

// SelfInterview is a free-form Q&A record owned by exactly one account.
type SelfInterview struct {
	ID        int64  `json:"id"`
	AccountID int64  `json:"account_id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
}

type SelfInterviewRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

type SelfInterviewRepository interface {
	Create(ctx context.Context, selfInterview *SelfInterview) error
	GetByID(ctx context.Context, id int64) (*SelfInterview, error)
	Update(ctx context.Context, selfInterview *SelfInterview) error
	Delete(ctx context.Context, id int64) error
}

type SelfInterviewUsecase interface {
	Create(ctx context.Context, accountID int64, req *SelfInterviewRequest) (*SelfInterview, error)
	Update(ctx context.Context, id, accountID int64, req *SelfInterviewRequest) (*SelfInterview, error)
	Delete(ctx context.Context, id, accountID int64) (*SelfInterview, error)
}
