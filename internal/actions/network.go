package actions

func init() {
	// Network parent action (submenu)
	Register(&Action{
		ID:        ActionNetwork,
		Use:       "network",
		Short:     "Manage server connection",
		Long:      "Show and change the wallet's server connection",
		MenuLabel: "Network",
		IsSubmenu: true,
	})

	// network show
	Register(&Action{
		ID:        ActionNetworkShow,
		Parent:    ActionNetwork,
		Use:       "show",
		Short:     "Show network status",
		Long:      "Show connection status, server and proxy settings",
		MenuLabel: "Status",
	})

	// network servers
	Register(&Action{
		ID:        ActionNetworkServers,
		Parent:    ActionNetwork,
		Use:       "servers",
		Short:     "List known servers",
		Long:      "List known servers and the ports they offer",
		MenuLabel: "Servers",
		Inputs: []InputField{
			{
				Name:        "transport",
				Label:       "Transport",
				ShortFlag:   't',
				Type:        InputTypeSelect,
				Options:     TransportOptions(),
				Description: "Only list servers offering this transport",
			},
		},
	})

	// network set
	Register(&Action{
		ID:     ActionNetworkSet,
		Parent: ActionNetwork,
		Use:    "set",
		Short:  "Change server settings",
		Long: `Change the server the wallet connects to.

The port is filled in from the server list when omitted. SSL is used
whenever the server offers it, unless --transport t is given.`,
		MenuLabel:  "Set",
		ShowInMenu: func(ctx *Context) bool { return false },
		Inputs: []InputField{
			{
				Name:        "server",
				Label:       "Server",
				ShortFlag:   's',
				Type:        InputTypeText,
				Placeholder: "electrum.example.org",
				Description: "Server host name or IP address",
			},
			{
				Name:        "port",
				Label:       "Port",
				ShortFlag:   'p',
				Type:        InputTypeText,
				Description: "Server port",
				Validate:    ValidatePort,
			},
			{
				Name:        "transport",
				Label:       "Transport",
				ShortFlag:   't',
				Type:        InputTypeSelect,
				Options:     TransportOptions(),
				Description: "Connection transport (s = SSL, t = TCP)",
			},
			{
				Name:        "auto-connect",
				Label:       "Select server automatically",
				ShortFlag:   'a',
				Type:        InputTypeSelect,
				Options:     OnOffOptions(),
				Description: "Let the wallet pick a server on the longest chain",
				Validate:    ValidateOnOff,
			},
		},
	})
}
