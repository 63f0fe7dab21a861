package config

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
)

var (
	validLogLevels  = []string{"debug", "info", "warn", "error"}
	validLogFormats = []string{"text", "json"}
)

// Validate checks that all required fields are set and values are valid.
func (c *ClientConfig) Validate() error {
	u, err := url.Parse(c.Remote.URL)
	if err != nil {
		return fmt.Errorf("remote.url is invalid: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("remote.url must be http or https, got %q", c.Remote.URL)
	}
	if u.Host == "" {
		return fmt.Errorf("remote.url must include a host, got %q", c.Remote.URL)
	}

	if c.Remote.Timeout < 0 {
		return errors.New("remote.timeout must be >= 0")
	}
	if c.Remote.MaxRetries < 0 {
		return errors.New("remote.max_retries must be >= 0")
	}
	if c.Sync.Interval <= 0 {
		return errors.New("sync.interval must be > 0")
	}
	if !c.Storage.Ephemeral && c.Storage.Path == "" {
		return errors.New("storage.path is required")
	}

	return c.Log.validate()
}

// Validate checks that all required fields are set and values are valid.
func (c *ServerConfig) Validate() error {
	if c.Addr == "" {
		return errors.New("addr is required")
	}
	if c.Database.Path == "" {
		return errors.New("database.path is required")
	}
	if c.JWT.Secret != "" && len(c.JWT.Secret) < 16 {
		return errors.New("jwt.secret must be at least 16 characters")
	}
	if c.JWT.TTL < 0 {
		return errors.New("jwt.ttl must be >= 0")
	}
	if c.RateLimit.Requests < 1 {
		return errors.New("rate_limit.requests must be >= 1")
	}
	if c.RateLimit.Window <= 0 {
		return errors.New("rate_limit.window must be > 0")
	}

	return c.Log.validate()
}

func (l *LogConfig) validate() error {
	if !slices.Contains(validLogLevels, l.Level) {
		return fmt.Errorf("log.level must be one of %v, got %q", validLogLevels, l.Level)
	}
	if !slices.Contains(validLogFormats, l.Format) {
		return fmt.Errorf("log.format must be one of %v, got %q", validLogFormats, l.Format)
	}
	if l.MaxSizeMB < 0 || l.MaxBackups < 0 || l.MaxAgeDays < 0 {
		return errors.New("log rotation limits must be >= 0")
	}
	return nil
}
