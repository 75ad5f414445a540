package v1

import (
	"net/http"
	"time"

	"pickme-backend/config"
	"pickme-backend/internal/delivery/http/middleware"
	"pickme-backend/internal/delivery/http/response"
	"pickme-backend/internal/domain"
	"pickme-backend/pkg/token"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC          domain.AuthUsecase
	AccountUC       domain.AccountUsecase
	EnterpriseUC    domain.EnterpriseUsecase
	ExperienceUC    domain.ExperienceUsecase
	LicenseUC       domain.LicenseUsecase
	PrizeUC         domain.PrizeUsecase
	ProjectUC       domain.ProjectUsecase
	SelfInterviewUC domain.SelfInterviewUsecase
	Tokens          *token.Service
	Config          *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware()) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware(middleware.DefaultRateLimitConfig()))

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	loginLimiter := middleware.RateLimitMiddleware(middleware.LoginRateLimitConfig(
		deps.Config.RateLimitLoginThreshold,
		time.Duration(deps.Config.RateLimitWindowSeconds)*time.Second,
	))

	// Public routes
	NewAuthHandler(v1, deps.AuthUC, loginLimiter)

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens, deps.AuthUC))
	{
		NewAccountHandler(v1, protected, deps.AccountUC)
		NewEnterpriseHandler(v1, protected, deps.EnterpriseUC)
		NewExperienceHandler(protected, deps.ExperienceUC)
		NewLicenseHandler(protected, deps.LicenseUC)
		NewPrizeHandler(protected, deps.PrizeUC)
		NewProjectHandler(protected, deps.ProjectUC)
		NewSelfInterviewHandler(protected, deps.SelfInterviewUC)
	}

	return r
}
