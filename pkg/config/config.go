package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const devSessionSecret = "growthai-dev-session-secret"

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Session  SessionConfig
	AI       AIConfig
	Email    EmailConfig
	Stripe   StripeConfig
	Admin    AdminConfig
	Digest   DigestConfig
}

type ServerConfig struct {
	Port    string
	BaseURL string
}

type DatabaseConfig struct {
	URL string
}

type SessionConfig struct {
	Secret       string
	TTL          time.Duration
	CookieSecure bool
}

type AIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

type EmailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	Timeout  time.Duration
}

type StripeConfig struct {
	SecretKey string
	PriceID   string
}

type AdminConfig struct {
	Email        string
	Password     string
	BusinessName string
}

type DigestConfig struct {
	Schedule string
}

func Load() *Config {
	godotenv.Load()

	port := getEnv("PORT", "5000")

	cfg := &Config{
		Server: ServerConfig{
			Port:    port,
			BaseURL: getEnv("APP_BASE_URL", "http://localhost:"+port),
		},
		Database: DatabaseConfig{
			URL: getEnv("DATABASE_URL", ""),
		},
		Session: SessionConfig{
			Secret:       getEnv("SESSION_SECRET", ""),
			TTL:          getDuration("SESSION_TTL", 24*time.Hour),
			CookieSecure: getBool("COOKIE_SECURE", false),
		},
		AI: AIConfig{
			APIKey:  getEnv("OPENAI_API_KEY", ""),
			Model:   getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			BaseURL: getEnv("OPENAI_BASE_URL", ""),
			Timeout: getDuration("AI_TIMEOUT", 30*time.Second),
		},
		Email: EmailConfig{
			Host:     getEnv("SMTP_HOST", "smtp.gmail.com"),
			Port:     getInt("SMTP_PORT", 465),
			Username: getEnv("EMAIL_USER", ""),
			Password: getEnv("EMAIL_PASS", ""),
			Timeout:  getDuration("EMAIL_TIMEOUT", 15*time.Second),
		},
		Stripe: StripeConfig{
			SecretKey: getEnv("STRIPE_SECRET_KEY", ""),
			PriceID:   getEnv("STRIPE_PRICE_ID", ""),
		},
		Admin: AdminConfig{
			Email:        getEnv("ADMIN_EMAIL", ""),
			Password:     getEnv("ADMIN_PASSWORD", ""),
			BusinessName: getEnv("ADMIN_BUSINESS_NAME", "GrowthAI Admin"),
		},
		Digest: DigestConfig{
			Schedule: getEnv("DIGEST_CRON", ""),
		},
	}

	if cfg.Session.Secret == "" {
		log.Println("SESSION_SECRET is not set, using the development secret")
		cfg.Session.Secret = devSessionSecret
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Invalid %s=%q, using %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}

func getBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Invalid %s=%q, using %t", key, value, defaultValue)
		return defaultValue
	}
	return b
}

// getDuration accepts Go durations ("30s") and bare seconds ("30").
func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if n, err := strconv.Atoi(value); err == nil {
		return time.Duration(n) * time.Second
	}
	log.Printf("Invalid %s=%q, using %s", key, value, defaultValue)
	return defaultValue
}
