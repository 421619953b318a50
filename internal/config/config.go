package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAppName       = "ArenaPlay"
	defaultAppEnv        = "development"
	defaultPort          = "5000"
	defaultLogLevel      = "info"
	defaultMongoDatabase = "arenaplay"
	defaultOTPPolicy     = "static"
	defaultOTPTTL        = 5 * time.Minute
	defaultOTPSendLimit  = 5
	defaultShutdownDelay = 10 * time.Second
	defaultIdemTTL       = 24 * time.Hour
)

// SMTP holds the outbound mail transport settings. An empty Host disables
// SMTP delivery and OTP codes are written to the log instead.
type SMTP struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Config captures application runtime configuration loaded from environment variables.
type Config struct {
	AppName       string
	AppEnv        string
	Port          string
	LogLevel      string
	MongoURI      string
	MongoDatabase string
	RedisURL      string

	// OTPPolicy selects the code lifecycle: "static" keeps the issued code
	// on the user record indefinitely, "expiring" additionally tracks a TTL
	// per code and requires delivery to succeed.
	OTPPolicy    string
	OTPTTL       time.Duration
	OTPSendLimit int

	SMTP SMTP

	ShutdownPeriod time.Duration
	IdempotencyTTL time.Duration
}

// Load reads configuration values from the environment and populates a
// Config instance. A .env file in the working directory is honored when
// present.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		AppName:        getEnv("APP_NAME", defaultAppName),
		AppEnv:         getEnv("APP_ENV", defaultAppEnv),
		Port:           getEnv("PORT", defaultPort),
		LogLevel:       strings.ToLower(getEnv("LOG_LEVEL", defaultLogLevel)),
		MongoURI:       os.Getenv("MONGO_URI"),
		MongoDatabase:  getEnv("MONGO_DATABASE", defaultMongoDatabase),
		RedisURL:       os.Getenv("REDIS_URL"),
		OTPPolicy:      strings.ToLower(getEnv("OTP_POLICY", defaultOTPPolicy)),
		OTPTTL:         defaultOTPTTL,
		OTPSendLimit:   defaultOTPSendLimit,
		ShutdownPeriod: defaultShutdownDelay,
		IdempotencyTTL: defaultIdemTTL,
		SMTP: SMTP{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     587,
			Username: os.Getenv("SMTP_USER"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     getEnv("SMTP_FROM", os.Getenv("SMTP_USER")),
		},
	}

	switch cfg.OTPPolicy {
	case "static", "expiring":
	default:
		return Config{}, fmt.Errorf("invalid OTP_POLICY %q: must be static or expiring", cfg.OTPPolicy)
	}

	if v := os.Getenv("OTP_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid OTP_TTL: %w", err)
		}
		cfg.OTPTTL = d
	}

	if v := os.Getenv("OTP_SEND_LIMIT_PER_HOUR"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid OTP_SEND_LIMIT_PER_HOUR: %w", err)
		}
		cfg.OTPSendLimit = n
	}

	if v := os.Getenv("SMTP_PORT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SMTP_PORT: %w", err)
		}
		cfg.SMTP.Port = n
	}

	if v := os.Getenv("SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err)
		}
		cfg.ShutdownPeriod = d
	}

	if v := os.Getenv("IDEMPOTENCY_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid IDEMPOTENCY_TTL: %w", err)
		}
		cfg.IdempotencyTTL = d
	}

	if !cfg.IsDev() {
		if cfg.MongoURI == "" {
			return Config{}, fmt.Errorf("MONGO_URI must be set when APP_ENV=%s", cfg.AppEnv)
		}
		if cfg.RedisURL == "" {
			return Config{}, fmt.Errorf("REDIS_URL must be set when APP_ENV=%s", cfg.AppEnv)
		}
	}

	return cfg, nil
}

// Address returns the listen address in the format Fiber expects.
func (c Config) Address() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return fmt.Sprintf(":%s", c.Port)
}

// IsDev reports whether the app runs in a development environment, where the
// in-memory stores may substitute for Mongo and Redis.
func (c Config) IsDev() bool {
	switch strings.ToLower(c.AppEnv) {
	case "dev", "development", "local":
		return true
	default:
		return false
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
