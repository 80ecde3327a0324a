package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Config holds all configuration for the application
type Config struct {
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPath     string
	JWTSecret  string
	Port       string
	Env        string

	// AppURL is the public storefront origin used for callbacks and the sitemap
	AppURL        string
	Currency      string
	SessionSecret string

	PaystackSecretKey   string
	StripeSecretKey     string
	StripeWebhookSecret string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string

	KafkaBrokers []string
	KafkaTopic   string

	ElasticURL      string
	ElasticUsername string
	ElasticPassword string
	ElasticIndex    string

	// PendingOrderTTL cancels unpaid orders older than this; zero disables the reaper
	PendingOrderTTL time.Duration
}

// LoadConfig loads configuration from the environment. A .env file is read
// first when present.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %v", err)
	}

	smtpPort, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %v", err)
	}

	ttl, err := time.ParseDuration(getEnv("PENDING_ORDER_TTL", "0s"))
	if err != nil {
		return nil, fmt.Errorf("invalid PENDING_ORDER_TTL: %v", err)
	}

	config := &Config{
		DBDriver:   getEnv("DB_DRIVER", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getEnv("DB_NAME", "plug233"),
		DBPath:     getEnv("DB_PATH", "plug233.db"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		Port:       getEnv("PORT", "8080"),
		Env:        getEnv("ENV", "development"),

		AppURL:        strings.TrimRight(getEnv("APP_URL", "https://233plug.com"), "/"),
		Currency:      getEnv("CURRENCY", "GHS"),
		SessionSecret: getEnv("SESSION_SECRET", "secret"),

		PaystackSecretKey:   os.Getenv("PAYSTACK_SECRET_KEY"),
		StripeSecretKey:     os.Getenv("STRIPE_SECRET_KEY"),
		StripeWebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),

		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     smtpPort,
		SMTPUsername: os.Getenv("SMTP_USERNAME"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:     os.Getenv("SMTP_FROM"),

		KafkaBrokers: splitList(os.Getenv("KAFKA_BROKERS")),
		KafkaTopic:   getEnv("KAFKA_TOPIC", "plug233.events"),

		ElasticURL:      os.Getenv("ELASTICSEARCH_URL"),
		ElasticUsername: os.Getenv("ELASTICSEARCH_USERNAME"),
		ElasticPassword: os.Getenv("ELASTICSEARCH_PASSWORD"),
		ElasticIndex:    getEnv("ELASTICSEARCH_INDEX", "products"),

		PendingOrderTTL: ttl,
	}

	if config.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return config, nil
}

// IsProduction reports whether ENV is production
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
