package api

import "time"

// Config holds session service endpoint configuration. The defaults point at
// the hosted platform; override BaseURL for regional endpoints or test
// servers.
type Config struct {
	BaseURL string        `env:"RTC_API_URL" envDefault:"https://api.rtckit.io"`
	Timeout time.Duration `env:"RTC_API_TIMEOUT" envDefault:"30s"`
}
