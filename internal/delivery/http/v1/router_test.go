package v1_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pickme-backend/config"
	v1 "pickme-backend/internal/delivery/http/v1"
	"pickme-backend/internal/domain"
	"pickme-backend/pkg/token"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// Stub usecases; each returns canned data so route wiring can be exercised
// without a database.
type stubAuthUC struct{}

func (s *stubAuthUC) Login(ctx context.Context, req *domain.LoginRequest) (*domain.TokenResponse, error) {
	return &domain.TokenResponse{TokenType: "Bearer"}, nil
}

func (s *stubAuthUC) CurrentAccount(ctx context.Context, id int64) (*domain.Account, error) {
	return &domain.Account{ID: id, Email: "user@test.com", Role: domain.RoleUser}, nil
}

type stubAccountUC struct{}

func (s *stubAccountUC) Create(ctx context.Context, req *domain.AccountCreateRequest) (*domain.AccountResponse, error) {
	return &domain.AccountResponse{}, nil
}

func (s *stubAccountUC) Update(ctx context.Context, id int64, req *domain.AccountUpdateRequest) (*domain.AccountResponse, error) {
	return &domain.AccountResponse{ID: id}, nil
}

func (s *stubAccountUC) Delete(ctx context.Context, id int64) (*domain.AccountResponse, error) {
	return &domain.AccountResponse{ID: id}, nil
}

func (s *stubAccountUC) IsDuplicate(ctx context.Context, email string) (bool, error) {
	return false, nil
}

func (s *stubAccountUC) LoadProfile(ctx context.Context, id int64) (*domain.AccountResponse, error) {
	return &domain.AccountResponse{ID: id}, nil
}

func (s *stubAccountUC) LoadAccount(ctx context.Context, targetID, viewerID int64, markerSeen bool) (*domain.AccountDetailResponse, bool, error) {
	return &domain.AccountDetailResponse{}, false, nil
}

func (s *stubAccountUC) Filter(ctx context.Context, filter domain.AccountFilter, page domain.PageRequest) (*domain.AccountPage, error) {
	return &domain.AccountPage{}, nil
}

func (s *stubAccountUC) Favorite(ctx context.Context, targetID, viewerID int64) (*domain.AccountDetailResponse, error) {
	return &domain.AccountDetailResponse{}, nil
}

func (s *stubAccountUC) FavoritedBy(ctx context.Context, targetID int64) ([]domain.AccountResponse, error) {
	return nil, nil
}

type stubEnterpriseUC struct{}

func (s *stubEnterpriseUC) Create(ctx context.Context, req *domain.EnterpriseCreateRequest) (*domain.Enterprise, error) {
	return &domain.Enterprise{}, nil
}

func (s *stubEnterpriseUC) Load(ctx context.Context, accountID int64) (*domain.Enterprise, error) {
	return &domain.Enterprise{AccountID: accountID, Name: "Acme"}, nil
}

func (s *stubEnterpriseUC) Update(ctx context.Context, accountID int64, req *domain.EnterpriseUpdateRequest) (*domain.Enterprise, error) {
	return &domain.Enterprise{AccountID: accountID}, nil
}

func (s *stubEnterpriseUC) Delete(ctx context.Context, accountID int64) (*domain.Enterprise, error) {
	return &domain.Enterprise{AccountID: accountID}, nil
}

func (s *stubEnterpriseUC) Filter(ctx context.Context, filter domain.EnterpriseFilter, page domain.PageRequest) (*domain.EnterprisePage, error) {
	return &domain.EnterprisePage{}, nil
}

func (s *stubEnterpriseUC) SendSuggestion(ctx context.Context, targetID, enterpriseAccountID int64) error {
	return nil
}

type stubExperienceUC struct{}

func (s *stubExperienceUC) Create(ctx context.Context, accountID int64, req *domain.ExperienceRequest) (*domain.Experience, error) {
	return &domain.Experience{}, nil
}

func (s *stubExperienceUC) Update(ctx context.Context, id, accountID int64, req *domain.ExperienceRequest) (*domain.Experience, error) {
	return &domain.Experience{}, nil
}

func (s *stubExperienceUC) Delete(ctx context.Context, id, accountID int64) (*domain.Experience, error) {
	return &domain.Experience{}, nil
}

type stubLicenseUC struct{}

func (s *stubLicenseUC) Create(ctx context.Context, accountID int64, req *domain.LicenseRequest) (*domain.License, error) {
	return &domain.License{}, nil
}

func (s *stubLicenseUC) Update(ctx context.Context, id, accountID int64, req *domain.LicenseRequest) (*domain.License, error) {
	return &domain.License{}, nil
}

func (s *stubLicenseUC) Delete(ctx context.Context, id, accountID int64) (*domain.License, error) {
	return &domain.License{}, nil
}

type stubPrizeUC struct{}

func (s *stubPrizeUC) Create(ctx context.Context, accountID int64, req *domain.PrizeRequest) (*domain.Prize, error) {
	return &domain.Prize{}, nil
}

func (s *stubPrizeUC) Update(ctx context.Context, id, accountID int64, req *domain.PrizeRequest) (*domain.Prize, error) {
	return &domain.Prize{}, nil
}

func (s *stubPrizeUC) Delete(ctx context.Context, id, accountID int64) (*domain.Prize, error) {
	return &domain.Prize{}, nil
}

type stubProjectUC struct{}

func (s *stubProjectUC) Create(ctx context.Context, accountID int64, req *domain.ProjectRequest) (*domain.Project, error) {
	return &domain.Project{}, nil
}

func (s *stubProjectUC) Update(ctx context.Context, id, accountID int64, req *domain.ProjectRequest) (*domain.Project, error) {
	return &domain.Project{}, nil
}

func (s *stubProjectUC) Delete(ctx context.Context, id, accountID int64) (*domain.Project, error) {
	return &domain.Project{}, nil
}

type stubSelfInterviewUC struct{}

func (s *stubSelfInterviewUC) Create(ctx context.Context, accountID int64, req *domain.SelfInterviewRequest) (*domain.SelfInterview, error) {
	return &domain.SelfInterview{}, nil
}

func (s *stubSelfInterviewUC) Update(ctx context.Context, id, accountID int64, req *domain.SelfInterviewRequest) (*domain.SelfInterview, error) {
	return &domain.SelfInterview{}, nil
}

func (s *stubSelfInterviewUC) Delete(ctx context.Context, id, accountID int64) (*domain.SelfInterview, error) {
	return &domain.SelfInterview{}, nil
}

func newTestRouter(tokens *token.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return v1.NewRouter(v1.RouterDeps{
		AuthUC:          &stubAuthUC{},
		AccountUC:       &stubAccountUC{},
		EnterpriseUC:    &stubEnterpriseUC{},
		ExperienceUC:    &stubExperienceUC{},
		LicenseUC:       &stubLicenseUC{},
		PrizeUC:         &stubPrizeUC{},
		ProjectUC:       &stubProjectUC{},
		SelfInterviewUC: &stubSelfInterviewUC{},
		Tokens:          tokens,
		Config: &config.Config{
			RateLimitWindowSeconds:  60,
			RateLimitLoginThreshold: 100,
		},
	})
}

func TestEnterpriseRoutes(t *testing.T) {
	tokens := token.NewService("test-secret", time.Minute)
	router := newTestRouter(tokens)

	bearer, err := tokens.Generate(1, "user@test.com", domain.RoleUser)
	assert.NoError(t, err)

	t.Run("Should serve an enterprise by account id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/enterprises/123", nil)
		req.Header.Set("Authorization", "Bearer "+bearer)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Acme")
	})

	t.Run("Should keep the static profile route alongside the id route", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/enterprises/profile", nil)
		req.Header.Set("Authorization", "Bearer "+bearer)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Should reject unauthenticated access", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/enterprises/123", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
