package config

// ApplyDefaults fills in missing optional values with defaults.
func (c *Config) ApplyDefaults() {
	// Log defaults
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}

	// Auto-connect defaults to true
	if c.AutoConnect == nil {
		c.SetAutoConnect(true)
	}

	// A proxy with mode none carries no settings
	if c.Proxy != nil && !c.Proxy.Enabled() {
		c.Proxy = nil
	}

	if c.Proxy != nil {
		c.Proxy.applyDefaults()
	}
}
