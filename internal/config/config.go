package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// AuthConfig holds local session-token settings and the seeded owner
// identity. There is no external identity provider; credentials are
// matched against the in-memory user list, with the owner pair acting
// as a fixed short-circuit.
type AuthConfig struct {
	JWTSecret     string
	TokenTTL      time.Duration
	OwnerID       string
	OwnerEmail    string
	OwnerPassword string
	OwnerName     string
	// Registration is restricted to institutional addresses.
	EmailDomain string
}

// KarmaConfig holds the engagement reward/penalty constants. Values
// differ between deployments so they are configurable rather than
// hardcoded at the call sites.
type KarmaConfig struct {
	QuestionReward      int
	ProjectJoinReward   int
	ProjectLeaveCost    int
	RoadmapStepReward   int
	RoadmapStepUndoCost int
}

type GeminiConfig struct {
	APIKey      string
	Model       string
	Temperature float32
	Timeout     time.Duration
}

type Config struct {
	Environment string
	Port        string
	LogLevel    slog.Level

	RedisURL      string
	RedisPassword string
	RedisDB       int
	// The single key under which the user collection snapshot lives.
	SnapshotKey string

	Auth   AuthConfig
	Karma  KarmaConfig
	Gemini GeminiConfig
}

// LoadConfig reads configuration from the environment, loading a .env
// file first when present.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Port:        getEnv("PORT", "8080"),
		LogLevel:    parseLogLevel(getEnv("LOG_LEVEL", "info")),

		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		SnapshotKey:   getEnv("SNAPSHOT_KEY", "cyberhub_users"),

		Auth: AuthConfig{
			JWTSecret:     getEnv("JWT_SECRET", ""),
			TokenTTL:      getEnvDuration("TOKEN_TTL", 24*time.Hour),
			OwnerID:       getEnv("OWNER_ID", "u-owner"),
			OwnerEmail:    getEnv("OWNER_EMAIL", "malhiloo@smail.ucas.edu.ps"),
			OwnerPassword: getEnv("OWNER_PASSWORD", "mahucas"),
			OwnerName:     getEnv("OWNER_NAME", "Hub Owner"),
			EmailDomain:   getEnv("EMAIL_DOMAIN", "@smail.ucas.edu.ps"),
		},

		Karma: KarmaConfig{
			QuestionReward:      getEnvInt("KARMA_QUESTION", 10),
			ProjectJoinReward:   getEnvInt("KARMA_PROJECT_JOIN", 50),
			ProjectLeaveCost:    getEnvInt("KARMA_PROJECT_LEAVE", 10),
			RoadmapStepReward:   getEnvInt("KARMA_ROADMAP_STEP", 100),
			RoadmapStepUndoCost: getEnvInt("KARMA_ROADMAP_UNDO", 10),
		},

		Gemini: GeminiConfig{
			APIKey:      getEnv("GEMINI_API_KEY", ""),
			Model:       getEnv("GEMINI_MODEL", "gemini-3-flash-preview"),
			Temperature: 0.65,
			Timeout:     getEnvDuration("GEMINI_TIMEOUT", 30*time.Second),
		},
	}

	if cfg.Environment == "production" && cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required in production")
	}
	if cfg.Auth.JWTSecret == "" {
		cfg.Auth.JWTSecret = "dev-secret-do-not-use-in-production"
	}

	return cfg, nil
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
