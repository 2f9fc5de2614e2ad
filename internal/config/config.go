package config

import (
	"os"
)

type StripeConfig struct {
	SecretKey     string
	WebhookSecret string
}

type JWTConfig struct {
	Secret string
}

type EmailConfig struct {
	APIKey      string
	FromAddress string
	FromName    string
}

type Config struct {
	Port        string
	DatabaseURL string
	FrontendURL string
	JWT         JWTConfig
	Stripe      StripeConfig
	Email       EmailConfig
}

func LoadConfig() *Config {
	cfg := &Config{}

	cfg.Port = getEnv("PORT", "8080")
	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	cfg.FrontendURL = getEnv("FRONTEND_URL", "http://localhost:5173")

	cfg.JWT.Secret = os.Getenv("JWT_SECRET")

	// Stripe config. The webhook secret is carried here and handed to the
	// gateway at construction so webhook verification never reads the
	// environment per request.
	cfg.Stripe.SecretKey = os.Getenv("STRIPE_SECRET_KEY")
	cfg.Stripe.WebhookSecret = os.Getenv("STRIPE_WEBHOOK_SECRET")

	// Resend config
	cfg.Email.APIKey = os.Getenv("RESEND_API_KEY")
	cfg.Email.FromAddress = os.Getenv("EMAIL_FROM_ADDRESS")
	cfg.Email.FromName = os.Getenv("EMAIL_FROM_NAME")

	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
