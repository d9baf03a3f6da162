package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds application configuration loaded from environment variables
type Config struct {
	Host string `env:"HOST" envDefault:""`
	Port int    `env:"PORT" envDefault:"8080"`

	// Storage selects the backend ("memory" or "redis")
	StorageType string `env:"STORAGE_TYPE" envDefault:"memory"`
	RedisURL    string `env:"REDIS_URL"`

	// CallbackBaseURL is the public URL the relay provider signs webhook
	// requests against (scheme and host as the provider sees them)
	CallbackBaseURL string `env:"CALLBACK_BASE_URL" envDefault:"http://localhost:8080"`

	// OTP settings
	OTPTTL        time.Duration `env:"OTP_TTL" envDefault:"5m"`
	OTPHashPepper string        `env:"OTP_HASH_PEPPER"`

	// Relay provider credentials
	TwilioAccountSID   string `env:"TWILIO_ACCOUNT_SID"`
	TwilioAuthToken    string `env:"TWILIO_AUTH_TOKEN"`
	TwilioSenderNumber string `env:"TWILIO_PHONE_NUMBER"`
}

// Load parses configuration from the environment
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	if cfg.StorageType == "redis" && cfg.RedisURL == "" {
		return nil, fmt.Errorf("REDIS_URL required when STORAGE_TYPE=redis")
	}

	return cfg, nil
}

// Addr returns the host:port the server should listen on
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
