// Package config loads runtime settings from the environment.
// File: config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"

	"club-events/logger"

	"github.com/joho/godotenv"
)

const defaultSessionSecret = "club-events-dev-secret"

// Config holds every setting the server needs.
type Config struct {
	Port           int
	Env            string
	DatabasePath   string
	CertificateDir string
	TemplatesDir   string
	StaticDir      string
	ApplicationURL string
	SessionSecret  string
	LogDir         string

	// CertS3Bucket enables certificate archiving when non-empty.
	CertS3Bucket string
	AWSRegion    string
}

// Load reads an optional .env file, then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug.Printf("Load: no .env file loaded: %v", err)
	}

	port, err := strconv.Atoi(getenv("PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}

	cfg := &Config{
		Port:           port,
		Env:            getenv("APP_ENV", "development"),
		DatabasePath:   getenv("DATABASE_PATH", "database.db"),
		CertificateDir: getenv("CERTIFICATE_DIR", "certificates"),
		TemplatesDir:   getenv("TEMPLATES_DIR", "templates"),
		StaticDir:      getenv("STATIC_DIR", "static"),
		ApplicationURL: getenv("APPLICATION_URL", "http://localhost:8080"),
		SessionSecret:  getenv("SESSION_SECRET", ""),
		LogDir:         os.Getenv("LOG_DIR"),
		CertS3Bucket:   os.Getenv("CERT_S3_BUCKET"),
		AWSRegion:      getenv("AWS_REGION", "us-east-1"),
	}

	if cfg.SessionSecret == "" {
		if cfg.IsProduction() {
			return nil, fmt.Errorf("SESSION_SECRET is required when APP_ENV=production")
		}
		logger.Warn.Println("Load: SESSION_SECRET is not set, using development secret")
		cfg.SessionSecret = defaultSessionSecret
	}

	return cfg, nil
}

// IsProduction reports whether the server runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
