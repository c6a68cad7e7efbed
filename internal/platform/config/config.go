package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/adityapw/user_management_app/internal/utils"
)

// Config holds application configuration. Token secrets and lifetimes are
// loaded once at startup and injected into the services that need them, so
// tests can substitute their own values.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// Three independent secret+lifetime pairs. Lifetimes are configured as
	// duration literals like "15m", "7d" (see utils.ParseExpiry).
	AccessTokenSecret    string
	AccessTokenLifetime  time.Duration
	RefreshTokenSecret   string
	RefreshTokenLifetime time.Duration
	ResetTokenSecret     string
	ResetTokenLifetime   time.Duration

	RefreshTokenCookieName string
	RefreshTokenCookiePath string

	// ClientBaseURL is where reset-password links point.
	ClientBaseURL string
	AppName       string

	MailHost     string
	MailPort     int
	MailUser     string
	MailPassword string
	MailFrom     string
	MailFromName string

	S3Endpoint      string
	S3Region        string
	S3Bucket        string
	S3AccessKey     string
	S3SecretKey     string
	S3PublicBaseURL string
}

// LoadConfig loads configuration from environment variables and a .env file
// if present. A malformed token lifetime literal is a fatal configuration
// error; every other missing value falls back to a (development-only) default.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ACCESS_TOKEN_SECRET", "access-token-secret-change-me")
	viper.SetDefault("ACCESS_TOKEN_EXPIRES_IN", "15m")
	viper.SetDefault("REFRESH_TOKEN_SECRET", "refresh-token-secret-change-me")
	viper.SetDefault("REFRESH_TOKEN_EXPIRES_IN", "7d")
	viper.SetDefault("RESET_TOKEN_SECRET", "reset-token-secret-change-me")
	viper.SetDefault("RESET_TOKEN_EXPIRES_IN", "10m")
	viper.SetDefault("REFRESH_TOKEN_COOKIE_NAME", "refreshToken")
	viper.SetDefault("REFRESH_TOKEN_COOKIE_PATH", "/api/v1/auth")
	viper.SetDefault("CLIENT_BASE_URL", "http://localhost:3000")
	viper.SetDefault("APP_NAME", "User Management App")
	viper.SetDefault("MAIL_HOST", "")
	viper.SetDefault("MAIL_PORT", 587)
	viper.SetDefault("MAIL_USER", "")
	viper.SetDefault("MAIL_PASSWORD", "")
	viper.SetDefault("MAIL_FROM", "no-reply@example.com")
	viper.SetDefault("MAIL_FROM_NAME", "User Management App")
	viper.SetDefault("S3_ENDPOINT", "")
	viper.SetDefault("S3_REGION", "us-east-1")
	viper.SetDefault("S3_BUCKET", "user-photos")
	viper.SetDefault("S3_ACCESS_KEY", "")
	viper.SetDefault("S3_SECRET_KEY", "")
	viper.SetDefault("S3_PUBLIC_BASE_URL", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.AccessTokenSecret = viper.GetString("ACCESS_TOKEN_SECRET")
	cfg.RefreshTokenSecret = viper.GetString("REFRESH_TOKEN_SECRET")
	cfg.ResetTokenSecret = viper.GetString("RESET_TOKEN_SECRET")
	if !cfg.IsProduction {
		log.Println("Warning: using default token secrets unless overridden. Not for production.")
	}

	var err error
	cfg.AccessTokenLifetime, err = utils.ParseExpiry(viper.GetString("ACCESS_TOKEN_EXPIRES_IN"))
	if err != nil {
		return nil, fmt.Errorf("ACCESS_TOKEN_EXPIRES_IN: %w", err)
	}
	cfg.RefreshTokenLifetime, err = utils.ParseExpiry(viper.GetString("REFRESH_TOKEN_EXPIRES_IN"))
	if err != nil {
		return nil, fmt.Errorf("REFRESH_TOKEN_EXPIRES_IN: %w", err)
	}
	cfg.ResetTokenLifetime, err = utils.ParseExpiry(viper.GetString("RESET_TOKEN_EXPIRES_IN"))
	if err != nil {
		return nil, fmt.Errorf("RESET_TOKEN_EXPIRES_IN: %w", err)
	}

	cfg.RefreshTokenCookieName = viper.GetString("REFRESH_TOKEN_COOKIE_NAME")
	cfg.RefreshTokenCookiePath = viper.GetString("REFRESH_TOKEN_COOKIE_PATH")
	cfg.ClientBaseURL = viper.GetString("CLIENT_BASE_URL")
	cfg.AppName = viper.GetString("APP_NAME")

	cfg.MailHost = viper.GetString("MAIL_HOST")
	cfg.MailPort = viper.GetInt("MAIL_PORT")
	cfg.MailUser = viper.GetString("MAIL_USER")
	cfg.MailPassword = viper.GetString("MAIL_PASSWORD")
	cfg.MailFrom = viper.GetString("MAIL_FROM")
	cfg.MailFromName = viper.GetString("MAIL_FROM_NAME")
	if cfg.MailHost == "" {
		log.Println("Warning: MAIL_HOST not set. Password reset emails will fail.")
	}

	cfg.S3Endpoint = viper.GetString("S3_ENDPOINT")
	cfg.S3Region = viper.GetString("S3_REGION")
	cfg.S3Bucket = viper.GetString("S3_BUCKET")
	cfg.S3AccessKey = viper.GetString("S3_ACCESS_KEY")
	cfg.S3SecretKey = viper.GetString("S3_SECRET_KEY")
	cfg.S3PublicBaseURL = viper.GetString("S3_PUBLIC_BASE_URL")
	if cfg.S3Endpoint == "" {
		log.Println("Warning: S3_ENDPOINT not set. Profile photo uploads will fail.")
	}

	return cfg, nil
}
