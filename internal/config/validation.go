package config

import (
	"fmt"
	"slices"

	"github.com/net2share/walletnet/internal/server"
)

var logLevels = []string{"debug", "info", "warn", "error"}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if err := c.validateLog(); err != nil {
		return err
	}

	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateProxy(); err != nil {
		return err
	}

	if err := c.validateLocked(); err != nil {
		return err
	}

	return nil
}

// validateLog validates the log level.
func (c *Config) validateLog() error {
	if c.Log.Level == "" {
		return nil // Default will be applied
	}
	if !slices.Contains(logLevels, c.Log.Level) {
		return fmt.Errorf("log.level: invalid level '%s', must be one of: debug, info, warn, error", c.Log.Level)
	}
	return nil
}

// validateServer validates the pinned server.
func (c *Config) validateServer() error {
	if c.Server == "" {
		return nil
	}
	if _, err := server.Deserialize(c.Server); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}

// validateProxy validates proxy settings when a proxy is enabled.
func (c *Config) validateProxy() error {
	if c.Proxy == nil {
		return nil
	}

	if _, err := ParseProxyMode(string(c.Proxy.Mode)); err != nil {
		return fmt.Errorf("proxy.mode: %w", err)
	}

	if !c.Proxy.Enabled() {
		return nil
	}

	if c.Proxy.Host == "" {
		return fmt.Errorf("proxy.host is required")
	}

	if err := server.ValidatePort(c.Proxy.Port); err != nil {
		return fmt.Errorf("proxy.port: %w", err)
	}

	return nil
}

// validateLocked ensures locked names refer to known settings.
func (c *Config) validateLocked() error {
	known := []string{SettingServer, SettingProxy, SettingAutoConnect}
	for _, name := range c.Locked {
		if !slices.Contains(known, name) {
			return fmt.Errorf("locked: unknown setting '%s'", name)
		}
	}
	return nil
}
