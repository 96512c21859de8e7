package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultVerifyURL is Google's reCAPTCHA siteverify endpoint
const DefaultVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

// Config holds all configuration for the contact form handler.
// It is resolved once at process start and read-only afterwards.
type Config struct {
	Port      string
	SiteName  string
	Mail      MailConfig
	Recaptcha RecaptchaConfig
	CORS      CORSConfig
}

// MailConfig holds notification addressing
type MailConfig struct {
	To   string
	From string
}

// RecaptchaConfig holds reCAPTCHA verification settings
type RecaptchaConfig struct {
	Secret    string
	Action    string // expected action; empty disables the action check
	VerifyURL string
	Timeout   time.Duration
}

// CORSConfig holds cross-origin response settings
type CORSConfig struct {
	AllowOrigin  string
	AllowMethods []string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()

	cfg := &Config{
		Port:     getEnv("PORT", "8080"),
		SiteName: getEnv("SITE_NAME", ""),
		Mail: MailConfig{
			To:   getEnv("EMAIL_TO", ""),
			From: getEnv("EMAIL_FROM", ""),
		},
		Recaptcha: RecaptchaConfig{
			Secret:    getEnv("RECAPTCHA_SECRET", ""),
			Action:    getEnv("RECAPTCHA_ACTION", ""),
			VerifyURL: getEnv("RECAPTCHA_VERIFY_URL", DefaultVerifyURL),
			Timeout:   time.Duration(getEnvAsInt("RECAPTCHA_TIMEOUT_SECONDS", 10)) * time.Second,
		},
		CORS: CORSConfig{
			AllowOrigin:  getEnv("CORS_ALLOW_ORIGIN", ""),
			AllowMethods: getEnvSlice("CORS_ALLOW_METHODS", []string{"OPTIONS", "POST"}),
		},
	}

	return cfg, nil
}

// MailConfigured reports whether both notification addresses are set
func (c *Config) MailConfigured() bool {
	return c.Mail.To != "" && c.Mail.From != ""
}

// AllowMethodsHeader renders the allowed methods as a header value
func (c CORSConfig) AllowMethodsHeader() string {
	return strings.Join(c.AllowMethods, ",")
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		values := strings.Split(value, ",")
		for i, v := range values {
			values[i] = strings.TrimSpace(v)
		}
		return values
	}
	return defaultValue
}
