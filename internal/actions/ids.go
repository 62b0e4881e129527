package actions

// Action IDs for type-safe references throughout the codebase.
const (
	// Network actions
	ActionNetwork        = "network"
	ActionNetworkShow    = "network.show"
	ActionNetworkServers = "network.servers"
	ActionNetworkSet     = "network.set"

	// Proxy actions
	ActionProxy       = "proxy"
	ActionProxyDetect = "proxy.detect"
	ActionProxySet    = "proxy.set"
	ActionProxyTor    = "proxy.tor"

	// Config actions
	ActionConfig     = "config"
	ActionConfigShow = "config.show"
	ActionConfigEdit = "config.edit"

	// System actions
	ActionUpdate = "update"
)
