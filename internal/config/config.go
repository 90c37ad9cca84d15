package config

import (
	"crypto/rand"
	"encoding/hex"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	SessionBackendMemory = "memory"
	SessionBackendRedis  = "redis"
)

type Config struct {
	App struct {
		Env             string
		Port            string
		Debug           bool
		AllowedOrigins  []string
		ShutdownTimeout time.Duration
	}
	AviationStack struct {
		APIKey  string
		BaseURL string
		Timeout time.Duration
	}
	UI struct {
		LookupBaseURL string
	}
	Session struct {
		Backend string
		TTL     time.Duration
		Secret  string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
		DB       int
	}
}

// Load reads .env (when present) and the process environment.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{}

	// App
	cfg.App.Env = getEnv("APP_ENV", "development")
	cfg.App.Port = getEnv("PORT", "8080")
	cfg.App.Debug = getEnvAsBool("DEBUG", false)
	cfg.App.AllowedOrigins = getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"})
	cfg.App.ShutdownTimeout = getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second)

	// AviationStack
	cfg.AviationStack.APIKey = os.Getenv("AVIATION_STACK_API_KEY")
	cfg.AviationStack.BaseURL = strings.TrimRight(getEnv("AVIATION_STACK_BASE_URL", "http://api.aviationstack.com/v1"), "/")
	cfg.AviationStack.Timeout = getEnvAsDuration("AVIATION_STACK_TIMEOUT", 0)

	// UI
	cfg.UI.LookupBaseURL = strings.TrimRight(getEnv("LOOKUP_BASE_URL", "http://127.0.0.1:"+cfg.App.Port), "/")

	// Session
	cfg.Session.Backend = strings.ToLower(getEnv("SESSION_BACKEND", SessionBackendMemory))
	cfg.Session.TTL = getEnvAsDuration("SESSION_TTL", 30*time.Minute)
	cfg.Session.Secret = os.Getenv("SESSION_SECRET")
	if cfg.Session.Secret == "" {
		cfg.Session.Secret = randomSecret()
	}

	// Redis
	cfg.Redis.Host = getEnv("REDIS_HOST", "localhost")
	cfg.Redis.Port = getEnv("REDIS_PORT", "6379")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	cfg.Redis.DB = getEnvAsInt("REDIS_DB", 0)

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if dur, err := time.ParseDuration(value); err == nil {
			return dur
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}

// randomSecret keeps sessions valid for the lifetime of one process only.
func randomSecret() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return strconv.FormatInt(time.Now().UnixNano(), 36)
	}
	return hex.EncodeToString(buf)
}
