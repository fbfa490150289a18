package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type HTTPConfig struct {
	Host       string
	Port       int
	BaseURL    string
	CORSOrigin string
}

type DBConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type AuthConfig struct {
	AccessSecret string
	TokenTTL     time.Duration
}

type UploadConfig struct {
	BaseDir         string
	DocumentsDir    string
	ContractsDir    string
	MaxDocumentSize int64
}

type RateLimitPolicy struct {
	Limit  int
	Window time.Duration
}

// RateLimitConfig carries the general policy plus the stricter one applied
// to login and password-change endpoints.
type RateLimitConfig struct {
	General   RateLimitPolicy
	Sensitive RateLimitPolicy
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type Config struct {
	Environment string
	HTTP        HTTPConfig
	DB          DBConfig
	Auth        AuthConfig
	Uploads     UploadConfig
	RateLimit   RateLimitConfig
	SMTP        SMTPConfig
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./deploy")
	v.AutomaticEnv()

	_ = v.ReadInConfig()

	cfg := &Config{
		Environment: v.GetString("APP_ENV"),
		HTTP: HTTPConfig{
			Host:       v.GetString("HTTP_HOST"),
			Port:       v.GetInt("HTTP_PORT"),
			BaseURL:    v.GetString("BASE_URL"),
			CORSOrigin: v.GetString("CORS_ORIGIN"),
		},
		DB: DBConfig{
			DSN:             v.GetString("DB_DSN"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetDuration("DB_CONN_MAX_LIFETIME"),
		},
		Auth: AuthConfig{
			AccessSecret: v.GetString("JWT_ACCESS_SECRET"),
			TokenTTL:     v.GetDuration("JWT_TOKEN_TTL"),
		},
		Uploads: UploadConfig{
			BaseDir:         v.GetString("UPLOAD_BASE_DIR"),
			DocumentsDir:    v.GetString("UPLOAD_DOCUMENTS_DIR"),
			ContractsDir:    v.GetString("UPLOAD_CONTRACTS_DIR"),
			MaxDocumentSize: v.GetInt64("UPLOAD_MAX_DOCUMENT_SIZE"),
		},
		RateLimit: RateLimitConfig{
			General: RateLimitPolicy{
				Limit:  v.GetInt("RATE_LIMIT_GENERAL_LIMIT"),
				Window: v.GetDuration("RATE_LIMIT_GENERAL_WINDOW"),
			},
			Sensitive: RateLimitPolicy{
				Limit:  v.GetInt("RATE_LIMIT_SENSITIVE_LIMIT"),
				Window: v.GetDuration("RATE_LIMIT_SENSITIVE_WINDOW"),
			},
		},
		SMTP: SMTPConfig{
			Host:     v.GetString("SMTP_HOST"),
			Port:     v.GetInt("SMTP_PORT"),
			Username: v.GetString("SMTP_USERNAME"),
			Password: v.GetString("SMTP_PASSWORD"),
			From:     v.GetString("SMTP_FROM"),
		},
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.HTTP.Host == "" {
		cfg.HTTP.Host = "0.0.0.0"
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = 8080
	}
	if cfg.Auth.TokenTTL == 0 {
		cfg.Auth.TokenTTL = 8 * time.Hour
	}
	if cfg.Uploads.BaseDir == "" {
		cfg.Uploads.BaseDir = "uploads"
	}
	if cfg.Uploads.DocumentsDir == "" {
		cfg.Uploads.DocumentsDir = "documents"
	}
	if cfg.Uploads.ContractsDir == "" {
		cfg.Uploads.ContractsDir = "contracts"
	}
	if cfg.Uploads.MaxDocumentSize == 0 {
		cfg.Uploads.MaxDocumentSize = 10 << 20
	}
	if cfg.RateLimit.General.Limit == 0 {
		cfg.RateLimit.General.Limit = 100
	}
	if cfg.RateLimit.General.Window == 0 {
		cfg.RateLimit.General.Window = time.Minute
	}
	if cfg.RateLimit.Sensitive.Limit == 0 {
		cfg.RateLimit.Sensitive.Limit = 5
	}
	if cfg.RateLimit.Sensitive.Window == 0 {
		cfg.RateLimit.Sensitive.Window = 15 * time.Minute
	}
}

func validate(cfg *Config) error {
	if cfg.DB.DSN == "" {
		return fmt.Errorf("DB_DSN is required")
	}
	if cfg.Auth.AccessSecret == "" {
		return fmt.Errorf("JWT_ACCESS_SECRET is required")
	}
	return nil
}
