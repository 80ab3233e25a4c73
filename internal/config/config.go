package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App      AppConfig
	Catalog  CatalogConfig
	AI       AIConfig
	Database DatabaseConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type CatalogConfig struct {
	// RolesPath points to the JSON role database. Empty means rely on the
	// database store or the built-in fallback.
	RolesPath string
}

type AIConfig struct {
	Enabled  bool
	APIKey   string
	Model    string
	Timeout  time.Duration
	CacheTTL time.Duration
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout time.Duration
	PoolMaxConns   int32
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.Catalog = CatalogConfig{
		RolesPath: opt("ROLES_PATH"),
	}

	cfg.AI = AIConfig{
		Enabled:  strings.EqualFold(opt("USE_GEMINI"), "true"),
		APIKey:   opt("GEMINI_API_KEY"),
		Model:    opt("GEMINI_MODEL"),
		Timeout:  durationEnv("AI_TIMEOUT_SECONDS", 15*time.Second),
		CacheTTL: durationEnv("AI_CACHE_TTL_SECONDS", 10*time.Minute),
	}

	cfg.Database = DatabaseConfig{
		DBHost:         opt("DB_HOST"),
		DBPort:         opt("DB_PORT"),
		DBName:         opt("DB_NAME"),
		DBUser:         opt("DB_USER"),
		DBPassword:     opt("DB_PASSWORD"),
		DBSSLMode:      opt("DB_SSL_MODE"),
		ConnectTimeout: durationEnv("DB_CONNECT_TIMEOUT_SECONDS", 5*time.Second),
		PoolMaxConns:   int32(intEnv("DB_POOL_MAX_CONNS", 4)),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

// Configured reports whether a database store was set up at all.
func (c DatabaseConfig) Configured() bool {
	return strings.TrimSpace(c.DBHost) != ""
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return fallback
	}
	return time.Duration(v) * time.Second
}

func intEnv(key string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
