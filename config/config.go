package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	Timezone          string `mapstructure:"TIMEZONE"`

	// MongoDB.
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// Stripe.
	StripeSecretKey     string `mapstructure:"STRIPE_SECRET_KEY"`
	StripeWebhookSecret string `mapstructure:"STRIPE_WEBHOOK_SECRET"`
	Currency            string `mapstructure:"CURRENCY"`

	// Clerk.
	ClerkWebhookSecret string `mapstructure:"CLERK_WEBHOOK_SECRET"`
	ClerkJWTKey        string `mapstructure:"CLERK_JWT_KEY"`

	// Mail.
	SMTPHost     string `mapstructure:"SMTP_HOST"`
	SMTPPort     int    `mapstructure:"SMTP_PORT"`
	SMTPUsername string `mapstructure:"SMTP_USERNAME"`
	SMTPPassword string `mapstructure:"SMTP_PASSWORD"`
	SenderEmail  string `mapstructure:"SENDER_EMAIL"`

	FirebaseCredentialsFile string `mapstructure:"FIREBASE_CREDENTIALS_FILE"`
	CloudinaryURL           string `mapstructure:"CLOUDINARY_URL"`
	ReceiptLogoPath         string `mapstructure:"RECEIPT_LOGO_PATH"`
}

var defaults = map[string]any{
	"APP_PORT":                  "8080",
	"ENV":                       "development",
	"LOG_LEVEL":                 "info",
	"MAX_REQUESTS_PER_MIN":      100,
	"TIMEZONE":                  "UTC",
	"DATABASE_URL":              "mongodb://localhost:27017",
	"DATABASE_NAME":             "stayhub",
	"REDIS_ADDR":                "localhost:6379",
	"REDIS_PASSWORD":            "",
	"REDIS_CACHE_DB":            0,
	"REDIS_QUEUE_DB":            1,
	"STRIPE_SECRET_KEY":         "",
	"STRIPE_WEBHOOK_SECRET":     "",
	"CURRENCY":                  "usd",
	"CLERK_WEBHOOK_SECRET":      "",
	"CLERK_JWT_KEY":             "",
	"SMTP_HOST":                 "",
	"SMTP_PORT":                 587,
	"SMTP_USERNAME":             "",
	"SMTP_PASSWORD":             "",
	"SENDER_EMAIL":              "",
	"FIREBASE_CREDENTIALS_FILE": "",
	"CLOUDINARY_URL":            "",
	"RECEIPT_LOGO_PATH":         "public/logo1.png",
}

// LoadConfig reads .env (if any), config.yaml (if any) and the environment, in
// increasing order of precedence.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on the environment")
	}

	v := viper.New()
	// Look for a config file named "config.yaml" in the current and "config" directory.
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", cfg.Timezone, err)
	}
	return &cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Location is the timezone bookings are normalized to. LoadConfig has
// already validated the name.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
