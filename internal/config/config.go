package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	HTTPAddr    string
	PostgresDSN string

	JWTSecret     string
	TokenTTLHours int

	CORSAllowedOrigin string

	LoginRateLimit         int
	LoginRateWindowSeconds int

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	BootstrapAdminUsername string
	BootstrapAdminPassword string
	BootstrapAdminFullName string
}

func FromEnv() Config {
	return Config{
		HTTPAddr:               envDefault("HTTP_ADDR", ":8080"),
		PostgresDSN:            os.Getenv("POSTGRES_DSN"),
		JWTSecret:              os.Getenv("JWT_SECRET"),
		TokenTTLHours:          envIntDefault("TOKEN_TTL_HOURS", 24),
		CORSAllowedOrigin:      envDefault("CORS_ALLOWED_ORIGIN", "http://localhost:3000"),
		LoginRateLimit:         envIntDefault("LOGIN_RATE_LIMIT", 10),
		LoginRateWindowSeconds: envIntDefault("LOGIN_RATE_WINDOW_SECONDS", 60),
		RedisAddr:              os.Getenv("REDIS_ADDR"),
		RedisPassword:          os.Getenv("REDIS_PASSWORD"),
		RedisDB:                envIntDefault("REDIS_DB", 0),
		BootstrapAdminUsername: os.Getenv("BOOTSTRAP_ADMIN_USERNAME"),
		BootstrapAdminPassword: os.Getenv("BOOTSTRAP_ADMIN_PASSWORD"),
		BootstrapAdminFullName: envDefault("BOOTSTRAP_ADMIN_FULL_NAME", "Administrator"),
	}
}

func (c Config) TokenTTL() time.Duration {
	hours := c.TokenTTLHours
	if hours <= 0 {
		hours = 24
	}
	return time.Duration(hours) * time.Hour
}

func (c Config) LoginRateWindow() time.Duration {
	seconds := c.LoginRateWindowSeconds
	if seconds <= 0 {
		seconds = 60
	}
	return time.Duration(seconds) * time.Second
}

func envDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parsed, err := strconv.Atoi(v)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}
