package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultRemoteURL        = "https://jsonplaceholder.typicode.com/posts"
	DefaultRemoteUserID     = 1
	DefaultRemoteTimeout    = 10 * time.Second
	DefaultRemoteMaxRetries = 2
	DefaultSyncInterval     = 30 * time.Second
	DefaultClientDBPath     = "quotesync.db"

	DefaultLogLevel      = "info"
	DefaultLogFormat     = "text"
	DefaultLogMaxSizeMB  = 10
	DefaultLogMaxBackups = 3
	DefaultLogMaxAgeDays = 28

	DefaultServerAddr      = ":8080"
	DefaultServerDBPath    = "quotesync-server.db"
	DefaultJWTIssuer       = "quotesync"
	DefaultJWTTTL          = 24 * time.Hour
	DefaultRateLimit       = 120
	DefaultRateLimitWindow = time.Minute
	DefaultReadTimeout     = 10 * time.Second
	DefaultWriteTimeout    = 10 * time.Second
	DefaultShutdownTimeout = 15 * time.Second
)

func (c *ClientConfig) applyDefaults() {
	if c.Remote.URL == "" {
		c.Remote.URL = DefaultRemoteURL
	}
	if c.Remote.UserID == 0 {
		c.Remote.UserID = DefaultRemoteUserID
	}
	if c.Remote.Timeout == 0 {
		c.Remote.Timeout = DefaultRemoteTimeout
	}
	if c.Remote.MaxRetries == 0 {
		c.Remote.MaxRetries = DefaultRemoteMaxRetries
	}

	if c.Sync.Interval == 0 {
		c.Sync.Interval = DefaultSyncInterval
	}

	if c.Storage.Path == "" {
		c.Storage.Path = DefaultClientDBPath
	}

	c.Log.applyDefaults()
}

func (c *ServerConfig) applyDefaults() {
	if c.Addr == "" {
		c.Addr = DefaultServerAddr
	}
	if c.Database.Path == "" {
		c.Database.Path = DefaultServerDBPath
	}

	if c.JWT.Issuer == "" {
		c.JWT.Issuer = DefaultJWTIssuer
	}
	if c.JWT.TTL == 0 {
		c.JWT.TTL = DefaultJWTTTL
	}

	if c.RateLimit.Requests == 0 {
		c.RateLimit.Requests = DefaultRateLimit
	}
	if c.RateLimit.Window == 0 {
		c.RateLimit.Window = DefaultRateLimitWindow
	}

	if c.ReadTimeout == 0 {
		c.ReadTimeout = DefaultReadTimeout
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = DefaultWriteTimeout
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = DefaultShutdownTimeout
	}

	c.Log.applyDefaults()
}

func (l *LogConfig) applyDefaults() {
	if l.Level == "" {
		l.Level = DefaultLogLevel
	}
	if l.Format == "" {
		l.Format = DefaultLogFormat
	}
	if l.MaxSizeMB == 0 {
		l.MaxSizeMB = DefaultLogMaxSizeMB
	}
	if l.MaxBackups == 0 {
		l.MaxBackups = DefaultLogMaxBackups
	}
	if l.MaxAgeDays == 0 {
		l.MaxAgeDays = DefaultLogMaxAgeDays
	}
}
