package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Env         string
	MongoURL    string
	DBName      string
	CORSOrigins []string
	FrontendURL string

	StripeSecretKey     string
	StripeWebhookSecret string

	PayPalClientID     string
	PayPalClientSecret string
	PayPalMode         string // sandbox or live

	RazorpayKeyID     string
	RazorpayKeySecret string

	AdminUsername  string
	AdminPassword  string
	JWTSecret      string
	JWTExpireHours int

	// Upper bound for any single gateway call, so one slow provider
	// cannot stall checkout indefinitely.
	GatewayTimeout time.Duration
}

// Load reads configuration from the environment. A missing .env file is not
// an error; gateway credentials may be empty, in which case that gateway
// reports itself unconfigured at call time.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:        getEnv("PORT", "8000"),
		Env:         getEnv("APP_ENV", "development"),
		MongoURL:    getEnv("MONGO_URL", "mongodb://localhost:27017"),
		DBName:      getEnv("DB_NAME", "portfolio_db"),
		CORSOrigins: strings.Split(getEnv("CORS_ORIGINS", "*"), ","),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),

		StripeSecretKey:     os.Getenv("STRIPE_SECRET_KEY"),
		StripeWebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),

		PayPalClientID:     os.Getenv("PAYPAL_CLIENT_ID"),
		PayPalClientSecret: os.Getenv("PAYPAL_CLIENT_SECRET"),
		PayPalMode:         getEnv("PAYPAL_MODE", "sandbox"),

		RazorpayKeyID:     os.Getenv("RAZORPAY_KEY_ID"),
		RazorpayKeySecret: os.Getenv("RAZORPAY_KEY_SECRET"),

		AdminUsername:  getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword:  getEnv("ADMIN_PASSWORD", "admin123"),
		JWTSecret:      getEnv("JWT_SECRET", "change-me-in-production-use-long-secret"),
		JWTExpireHours: getEnvInt("JWT_EXPIRE_HOURS", 24),

		GatewayTimeout: time.Duration(getEnvInt("GATEWAY_TIMEOUT_SECONDS", 15)) * time.Second,
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return fallback
}
