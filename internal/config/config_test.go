package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"APP_ENV", "PLATFORM_SUFFIX", "PAYSTACK_BASE_URL", "PAYSTACK_COMMISSION_PERCENT", "PAYSTACK_CURRENCY"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "development", cfg.Env)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, ".minimart.ng", cfg.PlatformSuffix)
	assert.Equal(t, "https://api.paystack.co", cfg.Paystack.BaseURL)
	assert.Equal(t, float64(1), cfg.Paystack.CommissionPercent)
	assert.Equal(t, "NGN", cfg.Paystack.Currency)
}

func TestLoadSelectsTestKeyOutsideProduction(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("PAYSTACK_TEST_SECRET_KEY", "sk_test_abc")
	t.Setenv("PAYSTACK_LIVE_SECRET_KEY", "sk_live_xyz")

	cfg := Load()

	assert.Equal(t, "sk_test_abc", cfg.Paystack.SecretKey)
}

func TestLoadSelectsLiveKeyInProduction(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("PAYSTACK_TEST_SECRET_KEY", "sk_test_abc")
	t.Setenv("PAYSTACK_LIVE_SECRET_KEY", "sk_live_xyz")

	cfg := Load()

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "sk_live_xyz", cfg.Paystack.SecretKey)
}

func TestLoadAllowedOrigins(t *testing.T) {
	t.Setenv("ALLOWED_ORIGINS", "https://minimart.ng, https://admin.minimart.ng")

	cfg := Load()

	assert.Equal(t, []string{"https://minimart.ng", "https://admin.minimart.ng"}, cfg.AllowedOrigins)
}

func TestLoadBadCommissionFallsBack(t *testing.T) {
	t.Setenv("PAYSTACK_COMMISSION_PERCENT", "not-a-number")

	cfg := Load()

	assert.Equal(t, float64(1), cfg.Paystack.CommissionPercent)
}
