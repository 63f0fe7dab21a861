package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// decode reads a YAML file into out, expanding ${VAR} environment variables.
// Пустой путь оставляет out без изменений.
func decode(path string, out any) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	if err := yaml.Unmarshal([]byte(expanded), out); err != nil {
		return fmt.Errorf("parse config yaml: %w", err)
	}

	return nil
}

// LoadClient loads client config, applies defaults, and validates.
// An empty path yields the defaults.
func LoadClient(path string) (*ClientConfig, error) {
	var cfg ClientConfig
	if err := decode(path, &cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

// LoadServer loads server config, applies defaults, and validates.
// An empty path yields the defaults.
func LoadServer(path string) (*ServerConfig, error) {
	var cfg ServerConfig
	if err := decode(path, &cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}
