package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jobready-backend/config"
	_ "jobready-backend/docs" // Important for Swagger
	"jobready-backend/internal/delivery/http/middleware"
	v1 "jobready-backend/internal/delivery/http/v1"
	"jobready-backend/internal/domain"
	"jobready-backend/internal/gateway"
	"jobready-backend/internal/repository/memory"
	"jobready-backend/internal/repository/postgres"
	"jobready-backend/internal/usecase"
	"jobready-backend/pkg/auth"
	"jobready-backend/pkg/database"
	"jobready-backend/pkg/logger"
	"jobready-backend/pkg/redis"
	"jobready-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

// repositories is satisfied by both the in-memory and the Postgres store.
type repositories interface {
	Users() domain.UserRepository
	CVs() domain.CVRepository
	Interviews() domain.InterviewRepository
	Chats() domain.ChatRepository
}

// @title           JobReady AI API
// @version         1.0
// @description     CV generation, mock interviews and career advice backed by a completion gateway.
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Init Logger
	if err := logger.Init(cfg.AppEnv); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()
	gin.SetMode(cfg.GinMode)

	ctx := context.Background()

	// 3. Storage
	var (
		store     repositories
		storeName = "memory"
		ping      usecase.Pinger
	)
	if cfg.DBUrl != "" {
		db, err := database.NewPostgresConnection(ctx, cfg.DBUrl)
		if err != nil {
			logger.Log.Fatalw("Failed to connect to database", "error", err)
		}
		defer db.Close()
		if err := postgres.EnsureSchema(ctx, db); err != nil {
			logger.Log.Fatalw("Failed to prepare schema", "error", err)
		}
		store = postgres.NewStore(db)
		storeName = "postgres"
		ping = db.Ping
	} else {
		store = memory.NewStore()
	}

	// Redis is optional; rate limits fall back to per-instance buckets.
	redisClient, err := redis.NewClient(ctx, redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword})
	if err != nil {
		logger.Log.Warnw("Redis unavailable, using local rate limits", "error", err)
		redisClient = nil
	} else {
		defer redisClient.Close()
	}

	// 4. Completion gateway
	completion, err := gateway.New(ctx, cfg)
	if err != nil {
		logger.Log.Fatalw("Failed to init completion gateway", "error", err)
	}

	// 5. Usecases
	validate := validation.New()
	authUC := usecase.NewAuthUsecase(store.Users(), cfg.DefaultUserID)
	cvUC := usecase.NewCVUsecase(store.CVs(), completion, validate, cfg.DefaultUserID)
	interviewUC := usecase.NewInterviewUsecase(store.Interviews(), completion, validate, cfg.DefaultUserID)
	chatUC := usecase.NewChatUsecase(store.Chats(), completion, validate, cfg.DefaultUserID)
	healthUC := usecase.NewHealthUsecase(completion.Name(), storeName, ping)

	var jwksProvider *auth.Provider
	if cfg.JWKSURL != "" {
		jwksProvider = auth.NewProvider(cfg.JWKSURL)
	}

	// 6. Router
	r := v1.NewRouter(v1.RouterDeps{
		AuthUC:       authUC,
		CVUC:         cvUC,
		InterviewUC:  interviewUC,
		ChatUC:       chatUC,
		HealthUC:     healthUC,
		JWKSProvider: jwksProvider,
		RateLimiter:  middleware.NewRateLimiter(redisClient),
		Config:       cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Log.Infow("Server starting", "port", cfg.Port, "gateway", completion.Name(), "store", storeName)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatalw("listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
