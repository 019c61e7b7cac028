package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port               string
	GinMode            string
	StripeSecretKey    string
	StripeTestKey      string
	PaymentPageLimit   int64
	ResolveConcurrency int
}

func Load() *Config {
	return &Config{
		Port:               getEnv("PORT", "8080"),
		GinMode:            getEnv("GIN_MODE", "debug"),
		StripeSecretKey:    getEnv("STRIPE_SECRET_KEY", ""),
		StripeTestKey:      getEnv("STRIPE_TEST_SECRET_KEY", ""),
		PaymentPageLimit:   getEnvInt64("PAYMENT_PAGE_LIMIT", 100),
		ResolveConcurrency: int(getEnvInt64("RESOLVE_CONCURRENCY", 10)),
	}
}

// TestModeEnabled reports whether the /api/v1/test routes should be mounted.
func (c *Config) TestModeEnabled() bool {
	return c.StripeTestKey != ""
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
