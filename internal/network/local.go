package network

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/net2share/walletnet/internal/config"
	"github.com/net2share/walletnet/internal/server"
	"github.com/net2share/walletnet/internal/servers"
)

// State is the runtime status the wallet writes to its state file.
type State struct {
	Connected  bool     `json:"connected"`
	Server     string   `json:"server,omitempty"`
	Interfaces []string `json:"interfaces,omitempty"`
	Height     int      `json:"height,omitempty"`
}

// Local is a Network backed by the config file and the wallet's state file.
type Local struct {
	configPath string
	cfg        *config.Config
	dir        servers.Directory
	state      State
}

var _ Network = (*Local)(nil)

// Open loads the default config, state and server list.
func Open() (*Local, error) {
	return OpenPaths(config.Path(), config.StatePath(), config.ServersPath())
}

// OpenPaths loads the network from explicit file paths.
func OpenPaths(configPath, statePath, serversPath string) (*Local, error) {
	cfg, err := config.LoadOrDefaultFromPath(configPath)
	if err != nil {
		return nil, err
	}

	dir, err := servers.Load(serversPath)
	if err != nil {
		return nil, err
	}

	state, err := LoadState(statePath)
	if err != nil {
		return nil, err
	}

	return &Local{
		configPath: configPath,
		cfg:        cfg,
		dir:        dir,
		state:      state,
	}, nil
}

// LoadState reads the state file. A missing file means disconnected.
func LoadState(path string) (State, error) {
	var s State
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("failed to read state: %w", err)
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("failed to parse state: %w", err)
	}
	return s, nil
}

// Config returns the loaded configuration.
func (l *Local) Config() *config.Config {
	return l.cfg
}

// GetServers returns the known server directory.
func (l *Local) GetServers() servers.Directory {
	return l.dir
}

// GetParameters returns the configured parameters. Without a pinned server
// the first SSL server of the directory is reported.
func (l *Local) GetParameters() Parameters {
	p := Parameters{
		Proxy:       l.cfg.Proxy,
		AutoConnect: l.cfg.IsAutoConnect(),
	}

	if addr, ok := l.cfg.ServerAddress(); ok {
		p.Host, p.Port, p.Transport = addr.Host, addr.Port, addr.Transport
		return p
	}

	host := ""
	if hosts := l.dir.Hosts(server.TransportSSL); len(hosts) > 0 {
		host = hosts[0]
	}
	p.Host = host
	p.Transport, p.Port = server.Resolve(host, "", l.dir.Table(), server.DefaultPorts)
	return p
}

// GetInterfaces returns the servers the wallet is connected to.
func (l *Local) GetInterfaces() []string {
	return l.state.Interfaces
}

// IsConnected reports whether the wallet has a server connection.
func (l *Local) IsConnected() bool {
	return l.state.Connected
}

// GetLocalHeight returns the wallet's local chain height.
func (l *Local) GetLocalHeight() int {
	return l.state.Height
}

// SetParameters validates and persists p. The current configuration is
// left untouched unless the save succeeds.
func (l *Local) SetParameters(p Parameters) error {
	addr, err := server.Validate(p.Host, p.Port, p.Transport)
	if err != nil {
		return err
	}

	next := *l.cfg
	next.Server = addr.String()
	next.SetAutoConnect(p.AutoConnect)
	next.Proxy = nil
	if p.Proxy.Enabled() {
		proxy := *p.Proxy
		next.Proxy = &proxy
	}

	if err := next.Validate(); err != nil {
		return err
	}
	if err := next.SaveToPath(l.configPath); err != nil {
		return err
	}
	*l.cfg = next

	slog.Debug("network parameters saved",
		"server", l.cfg.Server,
		"proxy", l.cfg.Proxy.Redacted(),
		"auto_connect", p.AutoConnect)
	return nil
}
