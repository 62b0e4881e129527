package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cfg := Default()
	cfg.Server = "a.example:50002:s"
	cfg.SetAutoConnect(false)
	cfg.Proxy = &ProxyConfig{Mode: ProxySOCKS5, Host: "127.0.0.1", Port: "9150"}
	if err := cfg.SaveToPath(path); err != nil {
		t.Fatalf("SaveToPath: %v", err)
	}

	got, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	if got.Server != cfg.Server || got.IsAutoConnect() || got.Proxy.String() != "socks5:127.0.0.1:9150" {
		t.Fatalf("loaded %+v", got)
	}
	addr, ok := got.ServerAddress()
	if !ok || addr.Host != "a.example" || addr.Port != "50002" {
		t.Fatalf("ServerAddress() = %+v, %v", addr, ok)
	}
}

func TestLoadOrDefaultFromPath_Missing(t *testing.T) {
	cfg, err := LoadOrDefaultFromPath(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("LoadOrDefaultFromPath: %v", err)
	}
	if !cfg.IsAutoConnect() || cfg.Log.Level != "info" || cfg.Proxy != nil {
		t.Fatalf("unexpected default config %+v", cfg)
	}
}

func TestLoadFromPath_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{"), 0640); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadOrDefaultFromPath(path); err == nil || !strings.Contains(err.Error(), "parse") {
		t.Fatalf("err = %v, want parse error", err)
	}
}

func TestApplyDefaults_DropsDisabledProxy(t *testing.T) {
	cfg := &Config{Proxy: &ProxyConfig{Mode: ProxyNone, Host: "x"}}
	cfg.ApplyDefaults()
	if cfg.Proxy != nil {
		t.Fatalf("proxy = %+v, want nil", cfg.Proxy)
	}
	if !cfg.IsAutoConnect() {
		t.Fatalf("auto-connect should default to true")
	}
}

func TestIsModifiable(t *testing.T) {
	cfg := Default()
	cfg.Locked = []string{SettingProxy}
	if !cfg.IsModifiable(SettingServer) || cfg.IsModifiable(SettingProxy) {
		t.Fatalf("IsModifiable mismatch for locked=%v", cfg.Locked)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"default ok", func(c *Config) {}, ""},
		{"bad server", func(c *Config) { c.Server = "a.example:0:s" }, "server"},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
		{"bad proxy mode", func(c *Config) { c.Proxy = &ProxyConfig{Mode: "socks6"} }, "proxy.mode"},
		{"proxy missing host", func(c *Config) {
			c.Proxy = &ProxyConfig{Mode: ProxySOCKS5, Port: "9050"}
		}, "proxy.host"},
		{"proxy bad port", func(c *Config) {
			c.Proxy = &ProxyConfig{Mode: ProxyHTTP, Host: "localhost", Port: "99999"}
		}, "proxy.port"},
		{"none proxy ignores fields", func(c *Config) { c.Proxy = &ProxyConfig{Mode: ProxyNone, Port: "x"} }, ""},
		{"unknown locked", func(c *Config) { c.Locked = []string{"fee"} }, "locked"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("err = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestParseProxy(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "none"},
		{"none", "none"},
		{"socks5", "socks5:localhost:1080"},
		{"http:proxy.example", "http:proxy.example:8080"},
		{"SOCKS4:10.0.0.1:1081", "socks4:10.0.0.1:1081"},
		{"socks5:127.0.0.1:9050:alice:s3:cr3t", "socks5:127.0.0.1:9050:alice:s3:cr3t"},
	}
	for _, tt := range tests {
		p, err := ParseProxy(tt.in)
		if err != nil {
			t.Fatalf("ParseProxy(%q): %v", tt.in, err)
		}
		if got := p.String(); got != tt.want {
			t.Fatalf("ParseProxy(%q).String() = %q, want %q", tt.in, got, tt.want)
		}
	}

	if _, err := ParseProxy("ftp:host:21"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}

func TestProxyRedacted(t *testing.T) {
	p := &ProxyConfig{Mode: ProxySOCKS5, Host: "h", Port: "1", User: "u", Password: "secret"}
	if got := p.Redacted(); got != "socks5:h:1:u:****" {
		t.Fatalf("Redacted() = %q", got)
	}
	if p.Password != "secret" {
		t.Fatalf("Redacted modified the receiver")
	}
}

func TestMigrate(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "config.yaml")
	jsonPath := filepath.Join(dir, "config.json")

	legacy := `server: electrum.example.org:50002:s
auto_connect: false
proxy: socks5:127.0.0.1:9050
log_level: debug
locked: [server]
`
	if err := os.WriteFile(yamlPath, []byte(legacy), 0640); err != nil {
		t.Fatal(err)
	}

	if err := Migrate(yamlPath, jsonPath); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	cfg, err := LoadFromPath(jsonPath)
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	if cfg.Server != "electrum.example.org:50002:s" || cfg.IsAutoConnect() ||
		cfg.Proxy.String() != "socks5:127.0.0.1:9050" || cfg.Log.Level != "debug" ||
		cfg.IsModifiable(SettingServer) {
		t.Fatalf("migrated config %+v", cfg)
	}

	if _, err := os.Stat(yamlPath + ".backup"); err != nil {
		t.Fatalf("backup missing: %v", err)
	}
	if _, err := os.Stat(yamlPath); !os.IsNotExist(err) {
		t.Fatalf("legacy file still present: %v", err)
	}

	// Second run is a no-op.
	if err := Migrate(yamlPath, jsonPath); err != nil {
		t.Fatalf("second Migrate: %v", err)
	}
}

func TestMigrate_InvalidLegacyServer(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(yamlPath, []byte("server: bad\n"), 0640); err != nil {
		t.Fatal(err)
	}
	if err := Migrate(yamlPath, filepath.Join(dir, "config.json")); err == nil {
		t.Fatalf("expected error for invalid legacy server")
	}
}

func TestGetFormattedConfig(t *testing.T) {
	tests := []struct {
		name    string
		proxy   *ProxyConfig
		want    []string
		notWant string
	}{
		{"no proxy", nil, []string{`"server": "a.example:50002:s"`}, `"proxy"`},
		{
			"masks password",
			&ProxyConfig{Mode: ProxySOCKS5, Host: "h", Port: "1", User: "u", Password: "secret"},
			[]string{`"password": "****"`, `"user": "u"`},
			"secret",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Server = "a.example:50002:s"
			cfg.Proxy = tt.proxy
			got := cfg.GetFormattedConfig()
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Fatalf("GetFormattedConfig() = %s, missing %s", got, w)
				}
			}
			if strings.Contains(got, tt.notWant) {
				t.Fatalf("GetFormattedConfig() = %s, contains %s", got, tt.notWant)
			}
			if tt.proxy != nil && cfg.Proxy.Password != "secret" {
				t.Fatalf("GetFormattedConfig modified the receiver")
			}
		})
	}
}
