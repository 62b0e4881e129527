package config

import (
	"fmt"
	"strings"
)

// ProxyMode defines the type of proxy.
type ProxyMode string

const (
	ProxyNone   ProxyMode = "none"
	ProxySOCKS4 ProxyMode = "socks4"
	ProxySOCKS5 ProxyMode = "socks5"
	ProxyHTTP   ProxyMode = "http"
)

// ProxyConfig configures the proxy used for server connections.
// Host, port and credentials are ignored when the mode is none.
type ProxyConfig struct {
	Mode     ProxyMode `json:"mode"`
	Host     string    `json:"host,omitempty"`
	Port     string    `json:"port,omitempty"`
	User     string    `json:"user,omitempty"`
	Password string    `json:"password,omitempty"`
}

// DefaultProxy is shown in forms when no proxy is configured.
func DefaultProxy() ProxyConfig {
	return ProxyConfig{Mode: ProxyNone, Host: "localhost", Port: "9050"}
}

// Enabled returns true if a proxy should be used.
func (p *ProxyConfig) Enabled() bool {
	return p != nil && p.Mode != "" && p.Mode != ProxyNone
}

// String returns the proxy in mode:host:port[:user:password] form.
func (p *ProxyConfig) String() string {
	if !p.Enabled() {
		return string(ProxyNone)
	}
	parts := []string{string(p.Mode), p.Host, p.Port}
	if p.User != "" || p.Password != "" {
		parts = append(parts, p.User, p.Password)
	}
	return strings.Join(parts, ":")
}

// Redacted returns String with the password masked.
func (p *ProxyConfig) Redacted() string {
	if !p.Enabled() || p.Password == "" {
		return p.String()
	}
	c := *p
	c.Password = "****"
	return c.String()
}

func (p *ProxyConfig) applyDefaults() {
	if p.Host == "" {
		p.Host = "localhost"
	}
	if p.Port == "" {
		p.Port = DefaultProxyPort(p.Mode)
	}
}

// DefaultProxyPort returns the conventional port for a proxy mode.
func DefaultProxyPort(mode ProxyMode) string {
	if mode == ProxyHTTP {
		return "8080"
	}
	return "1080"
}

// ParseProxy parses mode[:host[:port[:user[:password]]]].
// It returns nil for "none" or an empty string.
func ParseProxy(s string) (*ProxyConfig, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, string(ProxyNone)) {
		return nil, nil
	}

	parts := strings.SplitN(s, ":", 5)
	mode, err := ParseProxyMode(parts[0])
	if err != nil {
		return nil, err
	}
	if mode == ProxyNone {
		return nil, nil
	}

	p := &ProxyConfig{Mode: mode}
	fields := []*string{&p.Host, &p.Port, &p.User, &p.Password}
	for i, v := range parts[1:] {
		*fields[i] = v
	}
	p.applyDefaults()
	return p, nil
}

// ParseProxyMode parses a proxy mode name, case-insensitively.
func ParseProxyMode(s string) (ProxyMode, error) {
	mode := ProxyMode(strings.ToLower(strings.TrimSpace(s)))
	for _, m := range GetProxyModes() {
		if mode == m {
			return mode, nil
		}
	}
	return "", fmt.Errorf("unknown proxy mode %q, must be one of: none, socks4, socks5, http", s)
}

// GetProxyModes returns all proxy modes.
func GetProxyModes() []ProxyMode {
	return []ProxyMode{
		ProxyNone,
		ProxySOCKS4,
		ProxySOCKS5,
		ProxyHTTP,
	}
}

// GetProxyModeDisplayName returns a human-readable name for a proxy mode.
func GetProxyModeDisplayName(m ProxyMode) string {
	switch m {
	case ProxyNone:
		return "None"
	case ProxySOCKS4:
		return "SOCKS4"
	case ProxySOCKS5:
		return "SOCKS5"
	case ProxyHTTP:
		return "HTTP"
	default:
		return string(m)
	}
}
