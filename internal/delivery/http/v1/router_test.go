package v1_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"jobready-backend/config"
	v1 "jobready-backend/internal/delivery/http/v1"
	"jobready-backend/internal/domain"
	"jobready-backend/internal/gateway"
	"jobready-backend/internal/repository/memory"
	"jobready-backend/internal/usecase"
	"jobready-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	cfg := &config.Config{
		AppEnv:                   "test",
		DefaultUserID:            "dev-user-1",
		RateLimitWindowSeconds:   60,
		RateLimitGlobalThreshold: 1000,
		RateLimitAIThreshold:     1000,
	}
	store := memory.NewStore()
	mock := gateway.NewMockGateway(rand.NewSource(1))
	validate := validation.New()

	return v1.NewRouter(v1.RouterDeps{
		AuthUC:      usecase.NewAuthUsecase(store.Users(), cfg.DefaultUserID),
		CVUC:        usecase.NewCVUsecase(store.CVs(), mock, validate, cfg.DefaultUserID),
		InterviewUC: usecase.NewInterviewUsecase(store.Interviews(), mock, validate, cfg.DefaultUserID),
		ChatUC:      usecase.NewChatUsecase(store.Chats(), mock, validate, cfg.DefaultUserID),
		HealthUC:    usecase.NewHealthUsecase(mock.Name(), "memory", nil),
		Config:      cfg,
	})
}

func do(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

type errorBody struct {
	Message   string          `json:"message"`
	Error     json.RawMessage `json:"error"`
	RequestID string          `json:"requestId"`
}

func validCV() map[string]interface{} {
	return map[string]interface{}{
		"userId":     42,
		"fullName":   "Jane Doe",
		"email":      "jane@example.com",
		"skills":     "Go, SQL, Docker",
		"experience": "Five years building web services in Go.",
		"education":  "BSc Computer Science",
	}
}

func TestCVFlow(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/api/cv/generate", validCV())
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	cv := decode[domain.CV](t, w)
	assert.Equal(t, "42", cv.UserID)
	assert.Equal(t, domain.DefaultCVTitle, cv.Title)
	assert.Equal(t, []string{"Go", "SQL", "Docker"}, cv.Skills)
	require.NotNil(t, cv.GeneratedHTML)
	assert.Contains(t, *cv.GeneratedHTML, "Jane Doe")

	w = do(t, r, http.MethodGet, fmt.Sprintf("/api/cv/item/%d", cv.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, cv.ID, decode[domain.CV](t, w).ID)

	w = do(t, r, http.MethodPost, fmt.Sprintf("/api/cv/item/%d/regenerate", cv.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodGet, "/api/cv/42", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]domain.CV](t, w), 1)

	w = do(t, r, http.MethodGet, "/api/cv/nobody", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestCVValidationErrors(t *testing.T) {
	r := newTestRouter(t)

	body := validCV()
	body["skills"] = "Go, SQL"
	w := do(t, r, http.MethodPost, "/api/cv/generate", body)
	require.Equal(t, http.StatusBadRequest, w.Code)

	res := decode[errorBody](t, w)
	assert.Equal(t, "Validation failed", res.Message)
	assert.NotEmpty(t, res.RequestID)

	var fields map[string]string
	require.NoError(t, json.Unmarshal(res.Error, &fields))
	assert.Equal(t, "Please add at least 3 skills separated by commas", fields["skills"])

	w = do(t, r, http.MethodGet, "/api/cv/item/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "CV not found", decode[errorBody](t, w).Message)

	w = do(t, r, http.MethodGet, "/api/cv/item/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInterviewFlow(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/api/interview/start", map[string]interface{}{"jobTitle": "Web Developer"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	session := decode[domain.InterviewSession](t, w)
	require.Len(t, session.Questions, domain.DefaultQuestionCount)
	assert.Equal(t, "dev-user-1", session.UserID)
	assert.False(t, session.Completed)

	answerPath := fmt.Sprintf("/api/interview/%d/answer", session.ID)

	w = do(t, r, http.MethodPost, answerPath, map[string]interface{}{"questionIndex": 8, "answer": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var last domain.AnswerResult
	for i := len(session.Questions) - 1; i >= 0; i-- {
		w = do(t, r, http.MethodPost, answerPath, map[string]interface{}{"questionIndex": i, "answer": "I would plan carefully."})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		last = decode[domain.AnswerResult](t, w)
		assert.GreaterOrEqual(t, last.Feedback.Score, 6)
	}
	require.True(t, last.Session.Completed)
	require.NotNil(t, last.Session.OverallScore)

	w = do(t, r, http.MethodPost, answerPath, map[string]interface{}{"questionIndex": 0, "answer": "again"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(t, r, http.MethodGet, fmt.Sprintf("/api/interview/%d", session.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode[domain.InterviewSession](t, w).Completed)

	w = do(t, r, http.MethodGet, "/api/interview/user/dev-user-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]domain.InterviewSession](t, w), 1)

	w = do(t, r, http.MethodPost, "/api/interview/999/answer", map[string]interface{}{"questionIndex": 0, "answer": "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, r, http.MethodPost, "/api/interview/start", map[string]interface{}{"jobTitle": "  "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChatFlow(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/api/chat/start", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	session := decode[domain.ChatSession](t, w)
	assert.Equal(t, domain.DefaultChatTitle, session.Title)
	assert.Empty(t, session.Messages)

	msgPath := fmt.Sprintf("/api/chat/%d/message", session.ID)
	w = do(t, r, http.MethodPost, msgPath, map[string]string{"message": "How do I prepare?"})
	require.Equal(t, http.StatusOK, w.Code)
	reply := decode[domain.ChatReply](t, w)
	assert.NotEmpty(t, reply.Response)
	require.Len(t, reply.Session.Messages, 2)
	assert.Equal(t, domain.RoleUser, reply.Session.Messages[0].Role)
	assert.Equal(t, reply.Response, reply.Session.Messages[1].Content)

	w = do(t, r, http.MethodPost, msgPath, map[string]string{"message": "And salary talks?"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[domain.ChatReply](t, w).Session.Messages, 4)

	w = do(t, r, http.MethodPost, msgPath, map[string]string{"message": ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodGet, "/api/chat/user/dev-user-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]domain.ChatSession](t, w), 1)

	w = do(t, r, http.MethodGet, "/api/chat/12345", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Chat session not found", decode[errorBody](t, w).Message)
}

func TestAuthUserHealthAndMetrics(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/api/auth/user", nil)
	require.Equal(t, http.StatusOK, w.Code)
	user := decode[domain.User](t, w)
	assert.Equal(t, "dev-user-1", user.ID)
	assert.Equal(t, "dev@example.com", user.Email)

	w = do(t, r, http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	health := decode[map[string]string](t, w)
	assert.Equal(t, "ok", health["status"])
	assert.Equal(t, "mock", health["gateway"])

	w = do(t, r, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "jobready_http_requests_total")

	w = do(t, r, http.MethodGet, "/api/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCVGenerateKeepsContactVerbatim(t *testing.T) {
	r := newTestRouter(t)

	for _, email := range []string{"jane@example.com", "o'neil@example.com", "a&b@example.com"} {
		body := validCV()
		body["email"] = email
		w := do(t, r, http.MethodPost, "/api/cv/generate", body)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		cv := decode[domain.CV](t, w)
		require.NotNil(t, cv.GeneratedHTML)
		assert.Contains(t, *cv.GeneratedHTML, email)
		assert.Contains(t, *cv.GeneratedHTML, "Jane Doe")
	}
}
