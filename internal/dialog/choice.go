// Package dialog holds the state and event handlers of the network settings
// form. Front ends render the form and forward user input to a Choice; the
// Choice never touches the terminal and never blocks.
package dialog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/net2share/walletnet/internal/config"
	"github.com/net2share/walletnet/internal/network"
	"github.com/net2share/walletnet/internal/server"
	"github.com/net2share/walletnet/internal/servers"
	"github.com/net2share/walletnet/internal/torprobe"
)

// Store reports which settings the user may change.
type Store interface {
	IsModifiable(name string) bool
}

// Control identifies an editable element of the form.
type Control int

const (
	ControlServerHost Control = iota
	ControlServerPort
	ControlSSL
	ControlAutoConnect
	ControlServerList
	ControlProxyMode
	ControlProxyHost
	ControlProxyPort
	ControlProxyUser
	ControlProxyPassword
)

// ServerItem is a row of the server list.
type ServerItem struct {
	Host    string
	Pruning string
}

// TorProxyHost is the address a local Tor proxy is configured with.
const TorProxyHost = "127.0.0.1"

// Choice is the network settings form.
type Choice struct {
	// Wizard changes the status text for first-run setup.
	Wizard bool

	network network.Network
	store   Store
	dir     servers.Directory
	table   server.Table

	host        string
	port        string
	ssl         bool
	autoConnect bool
	protocol    server.Transport
	proxy       config.ProxyConfig

	tor        *torprobe.Endpoint
	torChecked bool
}

// New builds the form from the network's current parameters.
func New(n network.Network, store Store) *Choice {
	params := n.GetParameters()

	c := &Choice{
		network:     n,
		store:       store,
		dir:         n.GetServers(),
		autoConnect: params.AutoConnect,
		proxy:       config.DefaultProxy(),
	}
	c.table = c.dir.Table()

	if params.Proxy.Enabled() {
		c.proxy = *params.Proxy
	}

	c.ChangeServer(params.Host, params.Transport)
	c.protocol = server.TransportTCP
	if c.ssl {
		c.protocol = server.TransportSSL
	}
	return c
}

// Status returns the connection summary shown above the form.
func (c *Choice) Status() string {
	if c.Wizard {
		return "Please choose a server.\nPress 'Next' if you are offline."
	}

	var b strings.Builder
	if n := len(c.network.GetInterfaces()); n > 0 {
		fmt.Fprintf(&b, "Blockchain: %d blocks.\nGetting block headers from %d nodes.", c.network.GetLocalHeight(), n)
	} else {
		b.WriteString("Not connected")
	}

	if c.network.IsConnected() {
		fmt.Fprintf(&b, "\nServer: %s", c.host)
	} else {
		b.WriteString("\nDisconnected from server")
	}
	return b.String()
}

// ServerListLabel returns the heading of the server list.
func (c *Choice) ServerListLabel() string {
	if c.network.IsConnected() {
		return "Active Servers"
	}
	return "Default Servers"
}

// ServerList returns the servers offering the current protocol, sorted by host.
func (c *Choice) ServerList() []ServerItem {
	var items []ServerItem
	for _, host := range c.dir.Hosts(c.protocol) {
		items = append(items, ServerItem{Host: host, Pruning: c.dir[host].Pruning})
	}
	return items
}

// Host returns the server host field.
func (c *Choice) Host() string { return c.host }

// Port returns the server port field.
func (c *Choice) Port() string { return c.port }

// SSL reports whether the SSL box is checked.
func (c *Choice) SSL() bool { return c.ssl }

// AutoConnect reports whether automatic server selection is checked.
func (c *Choice) AutoConnect() bool { return c.autoConnect }

// Protocol returns the transport the server list is filtered by.
func (c *Choice) Protocol() server.Transport { return c.protocol }

// Proxy returns the proxy fields.
func (c *Choice) Proxy() config.ProxyConfig { return c.proxy }

// SetHost sets the server host as typed by the user.
func (c *Choice) SetHost(host string) { c.host = strings.TrimSpace(host) }

// SetPort sets the server port as typed by the user.
func (c *Choice) SetPort(port string) { c.port = strings.TrimSpace(port) }

// SetAutoConnect toggles automatic server selection.
func (c *Choice) SetAutoConnect(v bool) { c.autoConnect = v }

// ChangeServer fills host and port for host, keeping requested when the
// host offers it.
func (c *Choice) ChangeServer(host string, requested server.Transport) {
	t, port := server.Resolve(host, requested, c.table, server.DefaultPorts)
	c.host = host
	c.port = port
	c.ssl = t == server.TransportSSL
}

// SelectServer handles a pick from the server list.
func (c *Choice) SelectServer(host string) {
	if host == "" {
		return
	}
	c.ChangeServer(host, c.protocol)
}

// ChangeProtocol handles the SSL box being toggled.
func (c *Choice) ChangeProtocol(useSSL bool) {
	t, port := server.ChangeTransport(c.host, useSSL, c.table, server.DefaultPorts)
	if t == "" {
		return
	}
	c.port = port
	c.ssl = t == server.TransportSSL
	c.protocol = t
}

// Enabled reports whether a control accepts input in the current state.
func (c *Choice) Enabled(ctl Control) bool {
	serverOK := c.store.IsModifiable(config.SettingServer)
	proxyOK := c.store.IsModifiable(config.SettingProxy)

	switch ctl {
	case ControlServerHost, ControlServerPort, ControlServerList:
		return serverOK && !c.autoConnect
	case ControlSSL:
		return serverOK
	case ControlAutoConnect:
		return c.store.IsModifiable(config.SettingAutoConnect)
	case ControlProxyMode:
		return proxyOK
	case ControlProxyHost, ControlProxyPort, ControlProxyUser, ControlProxyPassword:
		return proxyOK && c.proxy.Enabled()
	}
	return false
}

// SetProxyMode handles a proxy mode selection.
func (c *Choice) SetProxyMode(mode config.ProxyMode) {
	c.proxy.Mode = mode
	c.proxySettingsChanged()
}

// SetProxyHost handles an edit of the proxy host.
func (c *Choice) SetProxyHost(host string) {
	c.proxy.Host = strings.TrimSpace(host)
	c.proxySettingsChanged()
}

// SetProxyPort handles an edit of the proxy port.
func (c *Choice) SetProxyPort(port string) {
	c.proxy.Port = strings.TrimSpace(port)
	c.proxySettingsChanged()
}

// SetProxyUser handles an edit of the proxy user.
func (c *Choice) SetProxyUser(user string) {
	c.proxy.User = user
	c.proxySettingsChanged()
}

// SetProxyPassword handles an edit of the proxy password.
func (c *Choice) SetProxyPassword(password string) {
	c.proxy.Password = password
	c.proxySettingsChanged()
}

// Manual proxy edits mean the form no longer reflects the Tor suggestion.
func (c *Choice) proxySettingsChanged() {
	c.torChecked = false
}

// StartTorDetection starts p and returns its result channel. The caller
// passes a received endpoint to SuggestProxy from the goroutine that owns
// the form.
func (c *Choice) StartTorDetection(p *torprobe.Probe) <-chan torprobe.Endpoint {
	return p.Start()
}

// SuggestProxy records a detected Tor proxy. The suggestion starts checked
// when the proxy fields already point at it.
func (c *Choice) SuggestProxy(ep torprobe.Endpoint) {
	c.tor = &ep
	c.torChecked = c.proxy.Mode == config.ProxySOCKS5 &&
		c.proxy.Host == TorProxyHost &&
		c.proxy.Port == strconv.Itoa(ep.Port)
}

// TorSuggestion returns the detected Tor proxy and whether it is in use.
// ok is false until SuggestProxy has been called.
func (c *Choice) TorSuggestion() (ep torprobe.Endpoint, checked, ok bool) {
	if c.tor == nil {
		return torprobe.Endpoint{}, false, false
	}
	return *c.tor, c.torChecked, true
}

// TorLabel returns the text of the Tor suggestion.
func (c *Choice) TorLabel() string {
	if c.tor == nil {
		return ""
	}
	return fmt.Sprintf("Use Tor proxy at port %d", c.tor.Port)
}

// UseTorProxy fills the proxy fields with the detected Tor proxy, or clears
// the proxy when use is false. It reports false if no proxy was detected.
func (c *Choice) UseTorProxy(use bool) bool {
	if !use {
		c.proxy.Mode = config.ProxyNone
		c.torChecked = false
		return true
	}
	if c.tor == nil {
		return false
	}

	c.proxy = config.ProxyConfig{
		Mode: config.ProxySOCKS5,
		Host: TorProxyHost,
		Port: strconv.Itoa(c.tor.Port),
	}
	c.torChecked = true
	return true
}

// Parameters returns the form as network parameters without validating it.
func (c *Choice) Parameters() network.Parameters {
	t := server.TransportTCP
	if c.ssl {
		t = server.TransportSSL
	}

	var proxy *config.ProxyConfig
	if c.proxy.Enabled() {
		p := c.proxy
		proxy = &p
	}

	return network.Parameters{
		Host:        c.host,
		Port:        c.port,
		Transport:   t,
		Proxy:       proxy,
		AutoConnect: c.autoConnect,
	}
}

// Accept validates the form and applies it to the network. An invalid
// server returns an error wrapping server.ErrInvalidServerAddress and leaves
// the network untouched.
func (c *Choice) Accept() error {
	p := c.Parameters()
	if _, err := server.Validate(p.Host, p.Port, p.Transport); err != nil {
		return err
	}
	return c.network.SetParameters(p)
}
