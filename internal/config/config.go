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
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Export   ExportConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout      time.Duration
	PoolMaxConns        int32
	PoolMinConns        int32
	PoolMaxConnLifetime time.Duration
	PoolMaxConnIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	TTL      time.Duration
}

type JWTConfig struct {
	AccessSecret     string
	RefreshSecret    string
	AccessExpiresIn  time.Duration
	RefreshExpiresIn time.Duration
}

// ExportConfig drives the monthly report upload. Export is disabled when
// Host is empty.
type ExportConfig struct {
	Host      string
	Port      int
	User      string
	Password  string
	RemoteDir string
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

	cfg.Database = DatabaseConfig{
		DBHost:     req("DB_HOST"),
		DBPort:     req("DB_PORT"),
		DBName:     req("DB_NAME"),
		DBUser:     req("DB_USER"),
		DBPassword: opt("DB_PASSWORD"),
		DBSSLMode:  opt("DB_SSL_MODE"),

		ConnectTimeout:      durationEnv("DB_CONNECT_TIMEOUT_SECONDS", 10*time.Second),
		PoolMaxConns:        int32Env("DB_POOL_MAX_CONNS", 0),
		PoolMinConns:        int32Env("DB_POOL_MIN_CONNS", 0),
		PoolMaxConnLifetime: durationEnv("DB_POOL_MAX_CONN_LIFETIME_SECONDS", 0),
		PoolMaxConnIdleTime: durationEnv("DB_POOL_MAX_CONN_IDLE_SECONDS", 0),
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST"),
		Port:     opt("REDIS_PORT"),
		Password: opt("REDIS_PASSWORD"),
		TTL:      durationEnv("REDIS_TTL", 600*time.Second),
	}

	cfg.JWT = JWTConfig{
		AccessSecret:     req("JWT_ACCESS_SECRET"),
		RefreshSecret:    req("JWT_REFRESH_SECRET"),
		AccessExpiresIn:  durationEnv("JWT_ACCESS_EXPIRES_SECONDS", 15*time.Minute),
		RefreshExpiresIn: durationEnv("JWT_REFRESH_EXPIRES_SECONDS", 7*24*time.Hour),
	}

	cfg.Export = ExportConfig{
		Host:      opt("SFTP_HOST"),
		Port:      intEnv("SFTP_PORT", 22),
		User:      opt("SFTP_USER"),
		Password:  opt("SFTP_PASS"),
		RemoteDir: opt("SFTP_REMOTE_DIR"),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
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
	if err != nil {
		return fallback
	}
	return v
}

func int32Env(key string, fallback int32) int32 {
	return int32(intEnv(key, int(fallback)))
}
