// Package config loads YAML configuration for the quotesync client and server.
package config

import "time"

// ClientConfig is the root configuration of the quotesync client.
type ClientConfig struct {
	Remote  RemoteConfig  `yaml:"remote"`
	Sync    SyncConfig    `yaml:"sync"`
	Storage StorageConfig `yaml:"storage"`
	Import  ImportConfig  `yaml:"import"`
	Log     LogConfig     `yaml:"log"`
}

// RemoteConfig describes the posts endpoint.
type RemoteConfig struct {
	URL        string        `yaml:"url"`
	Token      string        `yaml:"token"` // Bearer-токен для записи, если сервер его требует
	UserID     int64         `yaml:"user_id"`
	Timeout    time.Duration `yaml:"timeout"`
	MaxRetries int           `yaml:"max_retries"`
}

type SyncConfig struct {
	Interval time.Duration `yaml:"interval"`
}

type StorageConfig struct {
	Path      string `yaml:"path"`
	Ephemeral bool   `yaml:"ephemeral"` // хранить всё в памяти
}

// ImportConfig configures the import inbox. An empty InboxDir disables it.
type ImportConfig struct {
	InboxDir string `yaml:"inbox_dir"`
}

// LogConfig is shared by the client and the server.
type LogConfig struct {
	Level      string `yaml:"level"`  // debug | info | warn | error
	Format     string `yaml:"format"` // text | json
	File       string `yaml:"file"`   // пусто: stderr
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// ServerConfig is the root configuration of the reference posts server.
type ServerConfig struct {
	Addr            string          `yaml:"addr"`
	Database        DatabaseConfig  `yaml:"database"`
	JWT             JWTConfig       `yaml:"jwt"`
	RateLimit       RateLimitConfig `yaml:"rate_limit"`
	Log             LogConfig       `yaml:"log"`
	ReadTimeout     time.Duration   `yaml:"read_timeout"`
	WriteTimeout    time.Duration   `yaml:"write_timeout"`
	ShutdownTimeout time.Duration   `yaml:"shutdown_timeout"`
	Seed            bool            `yaml:"seed"` // заполнить пустую базу демонстрационными постами
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// JWTConfig configures write authorization. An empty Secret disables it.
type JWTConfig struct {
	Secret string        `yaml:"secret"`
	Issuer string        `yaml:"issuer"`
	TTL    time.Duration `yaml:"ttl"`
}

type RateLimitConfig struct {
	Requests int           `yaml:"requests"`
	Window   time.Duration `yaml:"window"`
}
