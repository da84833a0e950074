package config

import (
	"errors"
	"net/url"
	"os"
	"time"
)

type Config struct {
	CMSBaseURL string
	ListenAddr string
	SessionTTL time.Duration
}

func Load() *Config {
	config := &Config{
		CMSBaseURL: os.Getenv("CMS_URL"),
		ListenAddr: getEnv("LISTEN_ADDR", ":8080"),
		SessionTTL: 7 * 24 * time.Hour, // Default to 7 days
	}

	// Parse session TTL from environment if provided
	if ttlStr := os.Getenv("SESSION_TTL"); ttlStr != "" {
		if ttl, err := time.ParseDuration(ttlStr); err == nil {
			config.SessionTTL = ttl
		}
	}

	return config
}

// Validate checks that the configuration is usable. A missing or
// malformed CMS_URL is terminal: no retry can make the feature work,
// so it must fail loudly at startup instead of surfacing later as a
// fetch error.
func (c *Config) Validate() error {
	if c.CMSBaseURL == "" {
		return errors.New("CMS_URL is required")
	}
	u, err := url.Parse(c.CMSBaseURL)
	if err != nil {
		return errors.New("CMS_URL is not a valid URL: " + err.Error())
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New("CMS_URL must be an http or https URL")
	}
	if u.Host == "" {
		return errors.New("CMS_URL must include a host")
	}
	if c.ListenAddr == "" {
		return errors.New("LISTEN_ADDR cannot be empty")
	}
	if c.SessionTTL <= 0 {
		return errors.New("SESSION_TTL must be positive")
	}
	return nil
}

// LoadAndValidate loads the configuration and validates it in one step.
func LoadAndValidate() (*Config, error) {
	cfg := Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
