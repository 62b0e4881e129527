package actions

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/net2share/walletnet/internal/config"
	"github.com/net2share/walletnet/internal/server"
)

// TransportOptions returns the available server transports.
func TransportOptions() []SelectOption {
	return []SelectOption{
		{
			Label:       "SSL",
			Value:       string(server.TransportSSL),
			Description: "Encrypted connection to the server",
			Recommended: true,
		},
		{
			Label:       "TCP",
			Value:       string(server.TransportTCP),
			Description: "Plaintext connection to the server",
		},
	}
}

// ProxyModeOptions returns the available proxy modes.
func ProxyModeOptions() []SelectOption {
	var options []SelectOption
	for _, m := range config.GetProxyModes() {
		options = append(options, SelectOption{
			Label: config.GetProxyModeDisplayName(m),
			Value: string(m),
		})
	}
	return options
}

// OnOffOptions returns options for a boolean setting.
func OnOffOptions() []SelectOption {
	return []SelectOption{
		{Label: "On", Value: "on"},
		{Label: "Off", Value: "off"},
	}
}

// ParseOnOff parses an on/off value.
func ParseOnOff(value string) (bool, error) {
	switch strings.ToLower(value) {
	case "on", "true", "yes", "1":
		return true, nil
	case "off", "false", "no", "0":
		return false, nil
	}
	return false, fmt.Errorf("invalid value '%s', must be on or off", value)
}

// ValidateOnOff validates an on/off value.
func ValidateOnOff(value string) error {
	_, err := ParseOnOff(value)
	return err
}

// ValidatePort validates a TCP port number.
func ValidatePort(value string) error {
	if err := server.ValidatePort(value); err != nil {
		return NewActionError(err.Error(), "")
	}
	return nil
}

// ParsePortList parses a comma-separated list of ports.
func ParsePortList(value string) ([]int, error) {
	var ports []int
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if err := server.ValidatePort(part); err != nil {
			return nil, err
		}
		p, _ := strconv.Atoi(part)
		ports = append(ports, p)
	}
	return ports, nil
}

// ValidatePortList validates a comma-separated list of ports.
func ValidatePortList(value string) error {
	_, err := ParsePortList(value)
	return err
}
