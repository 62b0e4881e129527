// Package config provides configuration management for walletnet.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/net2share/walletnet/internal/server"
)

// Setting names that can be locked against edits.
const (
	SettingServer      = "server"
	SettingProxy       = "proxy"
	SettingAutoConnect = "auto_connect"
)

// Config holds the walletnet configuration.
type Config struct {
	Log         LogConfig    `json:"log,omitempty"`
	Server      string       `json:"server,omitempty"`
	AutoConnect *bool        `json:"auto_connect,omitempty"`
	Proxy       *ProxyConfig `json:"proxy,omitempty"`
	Locked      []string     `json:"locked,omitempty"`
}

// LogConfig configures logging behavior.
type LogConfig struct {
	Level string `json:"level,omitempty"`
}

// Default returns a default configuration.
func Default() *Config {
	autoConnect := true
	return &Config{
		Log: LogConfig{
			Level: "info",
		},
		AutoConnect: &autoConnect,
	}
}

// Load reads the configuration from the default path.
func Load() (*Config, error) {
	return LoadFromPath(Path())
}

// LoadFromPath reads the configuration from a specific path.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s: %w", path, err)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// LoadOrDefault reads the configuration from disk, or returns a default config if not found.
func LoadOrDefault() (*Config, error) {
	return LoadOrDefaultFromPath(Path())
}

// LoadOrDefaultFromPath is LoadOrDefault for a specific path.
func LoadOrDefaultFromPath(path string) (*Config, error) {
	cfg, err := LoadFromPath(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}
	cfg.ApplyDefaults()
	return cfg, nil
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveToPath(Path())
}

// SaveToPath writes the configuration to a specific path.
func (c *Config) SaveToPath(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0640); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// IsAutoConnect returns true if the wallet picks its server automatically.
func (c *Config) IsAutoConnect() bool {
	return c.AutoConnect == nil || *c.AutoConnect
}

// SetAutoConnect sets the auto-connect flag.
func (c *Config) SetAutoConnect(v bool) {
	c.AutoConnect = &v
}

// ServerAddress returns the configured server, if it parses.
func (c *Config) ServerAddress() (server.Address, bool) {
	if c.Server == "" {
		return server.Address{}, false
	}
	addr, err := server.Deserialize(c.Server)
	if err != nil {
		return server.Address{}, false
	}
	return addr, true
}

// IsModifiable reports whether the named setting may be changed.
func (c *Config) IsModifiable(name string) bool {
	return !slices.Contains(c.Locked, name)
}

// GetFormattedConfig returns the configuration as a formatted JSON string
// with any proxy password masked.
func (c *Config) GetFormattedConfig() string {
	out := *c
	if c.Proxy != nil && c.Proxy.Password != "" {
		p := *c.Proxy
		p.Password = "****"
		out.Proxy = &p
	}
	data, _ := json.MarshalIndent(&out, "", "  ")
	return string(data)
}
