package config

import (
	"errors"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// OldConfig represents the old YAML configuration format.
type OldConfig struct {
	Server      string   `yaml:"server,omitempty"`
	AutoConnect *bool    `yaml:"auto_connect,omitempty"`
	Proxy       string   `yaml:"proxy,omitempty"`
	LogLevel    string   `yaml:"log_level,omitempty"`
	Locked      []string `yaml:"locked,omitempty"`
}

// MigrateConfigIfNeeded checks for old YAML config and migrates to JSON.
func MigrateConfigIfNeeded() error {
	return Migrate(OldConfigPath(), Path())
}

// Migrate converts the YAML config at yamlPath into a JSON config at
// jsonPath. It does nothing if the JSON config already exists or there is
// no YAML config. The YAML file is kept as a .backup copy.
func Migrate(yamlPath, jsonPath string) error {
	// If JSON config exists, no migration needed
	if _, err := os.Stat(jsonPath); err == nil {
		return nil
	}

	data, err := os.ReadFile(yamlPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil // No config to migrate
		}
		return err
	}

	newCfg, err := migrateYAML(data)
	if err != nil {
		return err
	}

	// Backup old config
	backupPath := yamlPath + ".backup"
	if err := os.WriteFile(backupPath, data, 0640); err != nil {
		return err
	}
	if err := os.Remove(yamlPath); err != nil {
		return err
	}

	slog.Info("migrated legacy config", "from", yamlPath, "to", jsonPath)
	return newCfg.SaveToPath(jsonPath)
}

func migrateYAML(data []byte) (*Config, error) {
	var oldCfg OldConfig
	if err := yaml.Unmarshal(data, &oldCfg); err != nil {
		return nil, err
	}

	newCfg := Default()
	newCfg.Server = oldCfg.Server
	if oldCfg.AutoConnect != nil {
		newCfg.SetAutoConnect(*oldCfg.AutoConnect)
	}
	if oldCfg.LogLevel != "" {
		newCfg.Log.Level = oldCfg.LogLevel
	}
	newCfg.Locked = oldCfg.Locked

	proxy, err := ParseProxy(oldCfg.Proxy)
	if err != nil {
		return nil, err
	}
	newCfg.Proxy = proxy

	if err := newCfg.Validate(); err != nil {
		return nil, err
	}
	return newCfg, nil
}

// LoadOrMigrate loads config, migrating from old YAML format if necessary.
func LoadOrMigrate() (*Config, error) {
	if err := MigrateConfigIfNeeded(); err != nil {
		slog.Warn("config migration failed", "err", err)
	}
	return LoadOrDefault()
}
