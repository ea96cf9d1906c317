package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Env struct {
	AppAddr string
	GinMode string

	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	QueryTimeout time.Duration
	CandidateCap int

	HashidSalt  string
	JWTSecret   string
	CORSOrigins []string
}

func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	env := Env{
		AppAddr:      appAddr,
		GinMode:      strings.TrimSpace(os.Getenv("GIN_MODE")),
		DBHost:       envOr("DB_HOST", "127.0.0.1"),
		DBPort:       envOr("DB_PORT", "5432"),
		DBName:       envOr("DB_NAME", "Historic"),
		DBUser:       envOr("DB_USER", "postgres"),
		DBPassword:   strings.TrimSpace(os.Getenv("DB_PASSWORD")),
		DBSSLMode:    envOr("DB_SSLMODE", "disable"),
		QueryTimeout: envDuration("QUERY_TIMEOUT", 15*time.Second),
		CandidateCap: envInt("CANDIDATE_CAP", 10000),
		HashidSalt:   envOr("HASHID_SALT", "change-me-in-production"),
		JWTSecret:    envOr("JWT_SECRET", "super-secret-key-change-me"),
	}

	if raw := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); raw != "" {
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				env.CORSOrigins = append(env.CORSOrigins, o)
			}
		}
	}

	return env
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}
