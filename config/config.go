package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// MockAPIKey is the placeholder credential shipped in example env files. It
// selects the mock completion gateway just like an empty key does.
const MockAPIKey = "sk-test-key-for-development"

type Config struct {
	Port    string
	AppEnv  string
	GinMode string
	DBUrl   string
	// Origins allowed by CORS.
	FrontendURLs []string

	// Completion gateway
	AIProvider          string // "openai" or "gemini"
	OpenAIAPIKey        string
	OpenAIBaseURL       string
	OpenAIModel         string
	GeminiAPIKey        string
	GeminiModel         string
	AITimeout           time.Duration
	AIBreakerMaxFailure uint32
	AIBreakerOpenPeriod time.Duration

	// Identity
	DefaultUserID string
	JWTSecret     string
	JWKSURL       string

	// Redis
	RedisURL      string
	RedisPassword string

	// Rate limiting
	RateLimitWindowSeconds   int
	RateLimitGlobalThreshold int
	RateLimitAIThreshold     int
}

func LoadConfig() (*Config, error) {
	// .env is only present locally; a missing file is not an error.
	_ = godotenv.Load()

	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		AppEnv:       getEnv("APP_ENV", "development"),
		GinMode:      getEnv("GIN_MODE", "debug"),
		DBUrl:        getEnv("DATABASE_URL", ""),
		FrontendURLs: splitList(getEnv("FRONTEND_URLS", "http://localhost:5173,http://localhost:3000")),

		AIProvider:          strings.ToLower(getEnv("AI_PROVIDER", "openai")),
		OpenAIAPIKey:        getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL:       strings.TrimRight(getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"), "/"),
		OpenAIModel:         getEnv("OPENAI_MODEL", "gpt-4o"),
		GeminiAPIKey:        getEnv("GEMINI_API_KEY", ""),
		GeminiModel:         getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		AITimeout:           time.Duration(getEnvInt("AI_TIMEOUT_SECONDS", 30)) * time.Second,
		AIBreakerMaxFailure: uint32(getEnvInt("AI_BREAKER_MAX_FAILURES", 5)),
		AIBreakerOpenPeriod: time.Duration(getEnvInt("AI_BREAKER_OPEN_SECONDS", 30)) * time.Second,

		DefaultUserID: getEnv("DEFAULT_USER_ID", "dev-user-1"),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		JWKSURL:       getEnv("JWKS_URL", ""),

		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100),
		RateLimitAIThreshold:     getEnvInt("RATE_LIMIT_AI_THRESHOLD", 20),
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Using the in-memory store; data is lost on restart.")
	}
	if cfg.UseMockAI() {
		log.Println("WARNING: no completion credential configured. AI responses are mocked.")
	}

	return cfg, nil
}

// APIKey returns the credential of the selected provider.
func (c *Config) APIKey() string {
	if c.AIProvider == "gemini" {
		return c.GeminiAPIKey
	}
	return c.OpenAIAPIKey
}

// UseMockAI reports whether the deterministic mock gateway should be used.
func (c *Config) UseMockAI() bool {
	key := strings.TrimSpace(c.APIKey())
	return key == "" || key == MockAPIKey
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production" || c.AppEnv == "prod"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimRight(strings.TrimSpace(part), "/"); p != "" {
			out = append(out, p)
		}
	}
	return out
}
