package config

import (
	"os"
	"strconv"
	"strings"
)

// PaystackConfig carries the gateway credential and tuning values. The
// secret key is resolved once from the deployment mode; individual
// operations never consult process-wide state.
type PaystackConfig struct {
	BaseURL string
	// SecretKey is the active key pair for this process: the live key in
	// production, the test key otherwise.
	SecretKey string
	// CommissionPercent is the platform commission applied when
	// registering a payee.
	CommissionPercent float64
	Currency          string
	Country           string
}

// Config is the process-wide configuration, loaded once at startup.
type Config struct {
	// Env selects deployment mode: "production" uses live gateway
	// credentials and a restricted CORS policy.
	Env  string
	Port string

	MongoURI      string
	MongoDatabase string

	// RedisAddr enables the idempotency guard when non-empty.
	RedisAddr string

	// PlatformSuffix is the reserved subdomain suffix for tenant hosts.
	PlatformSuffix string

	// ShellPath is the SPA entry document served to interactive clients.
	ShellPath string

	AllowedOrigins []string

	Paystack PaystackConfig
}

// IsProduction reports whether the process runs with live credentials.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads configuration from the environment, applying defaults.
func Load() *Config {
	cfg := &Config{
		Env:            getEnv("APP_ENV", "development"),
		Port:           getEnv("PORT", "8080"),
		MongoURI:       getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase:  getEnv("MONGODB_DATABASE", "minimart"),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		PlatformSuffix: getEnv("PLATFORM_SUFFIX", ".minimart.ng"),
		ShellPath:      getEnv("SHELL_PATH", "./web/index.html"),
	}

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	}

	cfg.Paystack = PaystackConfig{
		BaseURL:           getEnv("PAYSTACK_BASE_URL", "https://api.paystack.co"),
		CommissionPercent: getEnvFloat("PAYSTACK_COMMISSION_PERCENT", 1),
		Currency:          getEnv("PAYSTACK_CURRENCY", "NGN"),
		Country:           getEnv("PAYSTACK_COUNTRY", "nigeria"),
	}
	if cfg.IsProduction() {
		cfg.Paystack.SecretKey = os.Getenv("PAYSTACK_LIVE_SECRET_KEY")
	} else {
		cfg.Paystack.SecretKey = os.Getenv("PAYSTACK_TEST_SECRET_KEY")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}
