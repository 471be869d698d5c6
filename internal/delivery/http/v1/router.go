package v1

import (
	"net/http"
	"time"

	"jobready-backend/config"
	"jobready-backend/internal/delivery/http/middleware"
	"jobready-backend/internal/domain"
	"jobready-backend/internal/usecase"
	"jobready-backend/pkg/auth"
	"jobready-backend/pkg/metrics"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC       domain.AuthUsecase
	CVUC         domain.CVUsecase
	InterviewUC  domain.InterviewUsecase
	ChatUC       domain.ChatUsecase
	HealthUC     usecase.HealthUsecase
	JWKSProvider *auth.Provider
	RateLimiter  *middleware.RateLimiter
	Config       *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	cfg := deps.Config
	limiter := deps.RateLimiter
	if limiter == nil {
		limiter = middleware.NewRateLimiter(nil)
	}
	window := time.Duration(cfg.RateLimitWindowSeconds) * time.Second

	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORS(cfg.FrontendURLs)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Metrics())
	r.Use(middleware.SecurityHeadersMiddleware(cfg.IsProduction()))
	r.Use(middleware.ErrorHandler())

	r.GET("/metrics", gin.WrapH(metrics.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	api.Use(limiter.Middleware(middleware.GlobalRateLimitConfig(cfg.RateLimitGlobalThreshold, window)))
	api.Use(middleware.AuthMiddleware(deps.JWKSProvider, cfg, deps.AuthUC))

	aiLimit := limiter.Middleware(middleware.AIRateLimitConfig(cfg.RateLimitAIThreshold, window))
	{
		NewAuthHandler(api, deps.AuthUC, deps.HealthUC)
		NewCVHandler(api, deps.CVUC, aiLimit)
		NewInterviewHandler(api, deps.InterviewUC, aiLimit)
		NewChatHandler(api, deps.ChatUC, aiLimit)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Route not found"})
	})

	return r
}
