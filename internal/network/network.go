// Package network exposes the wallet's network parameters and status.
package network

import (
	"github.com/net2share/walletnet/internal/config"
	"github.com/net2share/walletnet/internal/server"
	"github.com/net2share/walletnet/internal/servers"
)

// Parameters are the connection settings the wallet applies.
type Parameters struct {
	Host        string
	Port        string
	Transport   server.Transport
	Proxy       *config.ProxyConfig // nil means no proxy
	AutoConnect bool
}

// Address returns the server part of the parameters.
func (p Parameters) Address() server.Address {
	return server.Address{Host: p.Host, Port: p.Port, Transport: p.Transport}
}

// Network is the wallet network the settings apply to.
type Network interface {
	GetServers() servers.Directory
	GetParameters() Parameters
	GetInterfaces() []string
	IsConnected() bool
	GetLocalHeight() int
	SetParameters(p Parameters) error
}
