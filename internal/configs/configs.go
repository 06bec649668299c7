package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	AppURL                 string
	DatabaseDSN            string
	RateLimit              int
	RedisAddr              string
	RedisSlotKey           string
	PlanConcurrency        int
	ShutdownTimeoutSeconds int
	OpenAIBaseURL          string
	OpenAIAPIKey           string
	OpenAIModel            string
	OpenAITimeoutSeconds   int
	PlanningTimezone       string
	Location               *time.Location
	DefaultUserID          string
	RecurrenceResetMinutes int
}

func Load() Config {
	appHost := getEnv("APP_HOST", "127.0.0.1")
	appPort := getEnv("APP_PORT", "8080")
	redisHost := getEnv("REDIS_HOST", "127.0.0.1")
	redisPort := getEnv("REDIS_PORT", "6379")

	cfg := Config{
		AppURL:                 fmt.Sprintf("%s:%s", appHost, appPort),
		DatabaseDSN:            getEnv("DATABASE_DSN", "planner.db"),
		RateLimit:              getEnvAsInt("RATE_LIMIT_PER_MINUTE", 60),
		RedisAddr:              fmt.Sprintf("%s:%s", redisHost, redisPort),
		RedisSlotKey:           getEnv("REDIS_SLOT_KEY", "plan_slot_tokens"),
		PlanConcurrency:        getEnvAsInt("PLAN_CONCURRENCY", 3),
		ShutdownTimeoutSeconds: getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 20),
		OpenAIBaseURL:          getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		OpenAIAPIKey:           getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:            getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAITimeoutSeconds:   getEnvAsInt("OPENAI_TIMEOUT_SECONDS", 60),
		PlanningTimezone:       getEnv("PLANNING_TIMEZONE", "Asia/Shanghai"),
		DefaultUserID:          getEnv("DEFAULT_USER_ID", "local"),
		RecurrenceResetMinutes: getEnvAsInt("RECURRENCE_RESET_MINUTES", 30),
	}

	loc, err := time.LoadLocation(cfg.PlanningTimezone)
	if err != nil {
		log.Fatalf("PLANNING_TIMEZONE %q is not a valid IANA zone: %v", cfg.PlanningTimezone, err)
	}
	cfg.Location = loc

	validate(cfg)
	return cfg
}

func validate(cfg Config) {
	if cfg.AppURL == "" {
		log.Fatal("APP_URL must not be empty (e.g. 127.0.0.1:8080)")
	}
	if cfg.DatabaseDSN == "" {
		log.Fatal("DATABASE_DSN must not be empty")
	}
	if cfg.RateLimit <= 0 {
		log.Fatal("RATE_LIMIT_PER_MINUTE must be greater than 0")
	}
	if cfg.PlanConcurrency <= 0 {
		log.Fatal("PLAN_CONCURRENCY must be greater than 0")
	}
	if cfg.OpenAIAPIKey == "" {
		log.Fatal("OPENAI_API_KEY must be set")
	}
	if cfg.OpenAITimeoutSeconds <= 0 {
		log.Fatal("OPENAI_TIMEOUT_SECONDS must be greater than 0")
	}
	if cfg.RecurrenceResetMinutes <= 0 {
		log.Fatal("RECURRENCE_RESET_MINUTES must be greater than 0")
	}
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("invalid integer value for %s", key)
		}
		return i
	}
	return defaultVal
}
