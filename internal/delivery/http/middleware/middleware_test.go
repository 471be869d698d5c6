package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jobready-backend/config"
	"jobready-backend/internal/delivery/http/middleware"
	"jobready-backend/internal/domain"
	"jobready-backend/internal/repository/memory"
	"jobready-backend/internal/usecase"
	"jobready-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestErrorHandlerRendersAppError(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.ErrorHandler())
	r.GET("/app", func(c *gin.Context) {
		_ = c.Error(apperror.Validation(map[string]string{"email": "Email is required"}))
	})
	r.GET("/raw", func(c *gin.Context) {
		_ = c.Error(errors.New("db password leaked"))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/app", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"message":"Validation failed"`)
	assert.Contains(t, w.Body.String(), `"email":"Email is required"`)
	assert.Contains(t, w.Body.String(), `"requestId":"`)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/raw", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "password")
}

func TestRequestIDReusesValidHeader(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.Request.Context().Value(domain.KeyRequestID).(string))
	})

	id := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.RequestIDHeader, id)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, id, w.Body.String())
	assert.Equal(t, id, w.Header().Get(middleware.RequestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.RequestIDHeader, "not-a-uuid")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	_, err := uuid.Parse(w.Body.String())
	assert.NoError(t, err)
}

func TestLocalRateLimit(t *testing.T) {
	limiter := middleware.NewRateLimiter(nil)
	r := gin.New()
	r.Use(limiter.Middleware(middleware.AIRateLimitConfig(2, time.Minute)))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := []int{}
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		codes = append(codes, w.Code)
		if w.Code == http.StatusTooManyRequests {
			assert.NotEmpty(t, w.Header().Get("Retry-After"))
		}
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func newAuthRouter(t *testing.T, secret string) (*gin.Engine, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	authUC := usecase.NewAuthUsecase(store.Users(), "dev-user-1")
	cfg := &config.Config{JWTSecret: secret}

	r := gin.New()
	r.Use(middleware.AuthMiddleware(nil, cfg, authUC))
	r.GET("/", func(c *gin.Context) {
		id, _ := c.Request.Context().Value(domain.KeyUserID).(string)
		c.String(http.StatusOK, id+"|"+c.GetString(string(domain.KeyUserID)))
	})
	return r, store
}

func signHS256(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func TestAuthMiddleware(t *testing.T) {
	r, store := newAuthRouter(t, "s3cret")

	t.Run("anonymous", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "|", w.Body.String())
	})

	t.Run("valid token", func(t *testing.T) {
		token := signHS256(t, "s3cret", jwt.MapClaims{
			"sub":        "user-9",
			"email":      "nine@example.com",
			"given_name": "Nina",
			"exp":        time.Now().Add(time.Hour).Unix(),
		})
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "user-9|user-9", w.Body.String())

		user, err := store.Users().GetByID(req.Context(), "user-9")
		require.NoError(t, err)
		assert.Equal(t, "Nina", user.FirstName)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token := signHS256(t, "other", jwt.MapClaims{"sub": "user-9"})
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired", func(t *testing.T) {
		token := signHS256(t, "s3cret", jwt.MapClaims{"sub": "user-9", "exp": time.Now().Add(-time.Hour).Unix()})
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

type brokenUsers struct{}

func (brokenUsers) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return nil, domain.NewStorageError("get user", errors.New("connection refused"))
}

func (brokenUsers) Upsert(ctx context.Context, user *domain.User) error {
	return domain.NewStorageError("upsert user", errors.New("connection refused"))
}

func TestAuthMiddlewareUserStoreFailure(t *testing.T) {
	authUC := usecase.NewAuthUsecase(brokenUsers{}, "dev-user-1")
	cfg := &config.Config{JWTSecret: "s3cret"}

	reached := false
	r := gin.New()
	r.Use(middleware.ErrorHandler(), middleware.AuthMiddleware(nil, cfg, authUC))
	r.GET("/", func(c *gin.Context) {
		reached = true
		c.Status(http.StatusOK)
	})

	token := signHS256(t, "s3cret", jwt.MapClaims{"sub": "user-9", "exp": time.Now().Add(time.Hour).Unix()})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.False(t, reached)
	assert.NotContains(t, w.Body.String(), "connection refused")
}
