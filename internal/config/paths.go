package config

import (
	"os"
	"path/filepath"
	"runtime"
)

const (
	appName = "walletnet"

	// envHome overrides the configuration directory.
	envHome = "WALLETNET_HOME"
)

// ConfigDir returns the platform-specific configuration directory.
func ConfigDir() string {
	if dir := os.Getenv(envHome); dir != "" {
		return dir
	}

	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", appName)
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), appName)
	default: // linux and others
		if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
			return filepath.Join(xdgConfig, appName)
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", appName)
	}
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(ConfigDir(), "config.json")
}

// OldConfigPath returns the path to the old YAML config file.
func OldConfigPath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// StatePath returns the path to the wallet's runtime state file.
func StatePath() string {
	return filepath.Join(ConfigDir(), "state.json")
}

// ServersPath returns the path to the user server list.
func ServersPath() string {
	return filepath.Join(ConfigDir(), "servers.yaml")
}

// EnsureDirs creates the config directory if it doesn't exist.
func EnsureDirs() error {
	return os.MkdirAll(ConfigDir(), 0750)
}
