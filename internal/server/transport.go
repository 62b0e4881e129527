// Package server resolves and validates wallet server addresses.
package server

// Transport identifies how the wallet connects to a server.
type Transport string

const (
	// TransportTCP is a plaintext connection.
	TransportTCP Transport = "t"
	// TransportSSL is an encrypted connection.
	TransportSSL Transport = "s"
)

// Ports maps each transport a server offers to its port.
type Ports map[Transport]string

// Table maps a host name to the ports it offers.
type Table map[string]Ports

// DefaultPorts is used for hosts missing from the server table.
var DefaultPorts = Ports{
	TransportTCP: "50001",
	TransportSSL: "50002",
}

// Transports returns all known transports.
func Transports() []Transport {
	return []Transport{TransportTCP, TransportSSL}
}

// ParseTransport returns the transport for a tag and whether it is known.
func ParseTransport(tag string) (Transport, bool) {
	switch Transport(tag) {
	case TransportTCP, TransportSSL:
		return Transport(tag), true
	}
	return "", false
}

// IsValid reports whether t is a known transport.
func (t Transport) IsValid() bool {
	_, ok := ParseTransport(string(t))
	return ok
}

// DisplayName returns a human-readable name for a transport.
func (t Transport) DisplayName() string {
	switch t {
	case TransportTCP:
		return "TCP"
	case TransportSSL:
		return "SSL"
	default:
		return string(t)
	}
}

// Has reports whether the port table offers t.
func (p Ports) Has(t Transport) bool {
	port, ok := p[t]
	return ok && port != ""
}
