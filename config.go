package rtckit

import (
	"github.com/dmitrymomot/rtckit/core/config"
	"github.com/dmitrymomot/rtckit/integration/api"
)

// Config holds the account credential loaded from the environment.
type Config struct {
	AccountKey    int    `env:"RTC_ACCOUNT_KEY,required"`
	AccountSecret string `env:"RTC_ACCOUNT_SECRET,required"`
}

// NewFromEnv creates a client configured from environment variables:
// RTC_ACCOUNT_KEY and RTC_ACCOUNT_SECRET for the credential, RTC_API_URL and
// RTC_API_TIMEOUT for the gateway endpoint. Explicit options take precedence
// over the environment.
func NewFromEnv(opts ...Option) (*Client, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}

	var apiCfg api.Config
	if err := config.Load(&apiCfg); err != nil {
		return nil, err
	}

	return New(cfg.AccountKey, cfg.AccountSecret, append([]Option{WithAPIConfig(apiCfg)}, opts...)...)
}
