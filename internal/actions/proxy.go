package actions

import (
	"strconv"

	"github.com/net2share/walletnet/internal/config"
	"github.com/net2share/walletnet/internal/torprobe"
)

func init() {
	// Proxy parent action (submenu)
	Register(&Action{
		ID:        ActionProxy,
		Use:       "proxy",
		Short:     "Manage proxy",
		Long:      "Configure the proxy used for server connections",
		MenuLabel: "Proxy",
		IsSubmenu: true,
	})

	// proxy detect
	Register(&Action{
		ID:        ActionProxyDetect,
		Parent:    ActionProxy,
		Use:       "detect",
		Short:     "Detect local Tor proxy",
		Long:      "Check well-known local ports for a running Tor proxy",
		MenuLabel: "Detect Tor",
		Inputs: []InputField{
			{
				Name:        "ports",
				Label:       "Ports",
				Type:        InputTypeText,
				Description: "Comma-separated ports to check",
				Default:     "9050,9150",
				Validate:    ValidatePortList,
			},
			{
				Name:        "timeout",
				Label:       "Timeout (ms)",
				Type:        InputTypeNumber,
				Description: "Per-port connect timeout in milliseconds",
				Default:     strconv.Itoa(int(torprobe.DefaultTimeout.Milliseconds())),
			},
		},
	})

	// proxy set
	Register(&Action{
		ID:        ActionProxySet,
		Parent:    ActionProxy,
		Use:       "set",
		Short:     "Set proxy",
		Long:      "Set the proxy mode, address and credentials",
		MenuLabel: "Set",
		Locks:     []string{config.SettingProxy},
		Inputs: []InputField{
			{
				Name:        "mode",
				Label:       "Mode",
				ShortFlag:   'm',
				Type:        InputTypeSelect,
				Required:    true,
				Options:     ProxyModeOptions(),
				Description: "Proxy type",
			},
			{
				Name:        "host",
				Label:       "Host",
				Type:        InputTypeText,
				Default:     "localhost",
				Description: "Proxy host",
				ShowIf:      proxyEnabled,
			},
			{
				Name:        "port",
				Label:       "Port",
				ShortFlag:   'p',
				Type:        InputTypeText,
				Description: "Proxy port",
				Validate:    ValidatePort,
				ShowIf:      proxyEnabled,
				DefaultFunc: func(ctx *Context) string {
					return config.DefaultProxyPort(config.ProxyMode(ctx.GetString("mode")))
				},
			},
			{
				Name:        "user",
				Label:       "User",
				ShortFlag:   'u',
				Type:        InputTypeText,
				Description: "Proxy user (optional)",
				ShowIf:      proxyEnabled,
			},
			{
				Name:        "password",
				Label:       "Password",
				Type:        InputTypePassword,
				Description: "Proxy password (optional)",
				ShowIf:      proxyEnabled,
			},
		},
	})

	// proxy tor
	Register(&Action{
		ID:        ActionProxyTor,
		Parent:    ActionProxy,
		Use:       "tor",
		Short:     "Use local Tor proxy",
		Long:      "Detect a local Tor proxy and route server connections through it",
		MenuLabel: "Use Tor",
		Locks:     []string{config.SettingProxy},
		Inputs: []InputField{
			{
				Name:  "disable",
				Label: "Stop using the proxy",
				Type:  InputTypeBool,
			},
		},
	})
}

func proxyEnabled(ctx *Context) bool {
	mode := config.ProxyMode(ctx.GetString("mode"))
	return mode != "" && mode != config.ProxyNone
}
