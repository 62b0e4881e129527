package server

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/miekg/dns"
)

// ErrInvalidServerAddress is returned for malformed host, port or transport values.
var ErrInvalidServerAddress = errors.New("invalid server address")

// AddressError describes why a server address was rejected.
type AddressError struct {
	Input  string
	Reason string
}

func (e *AddressError) Error() string {
	if e.Input == "" {
		return fmt.Sprintf("%s: %s", ErrInvalidServerAddress, e.Reason)
	}
	return fmt.Sprintf("%s %q: %s", ErrInvalidServerAddress, e.Input, e.Reason)
}

func (e *AddressError) Unwrap() error {
	return ErrInvalidServerAddress
}

// Address is a validated server endpoint.
type Address struct {
	Host      string
	Port      string
	Transport Transport
}

// String returns the serialized form "host:port:transport".
func (a Address) String() string {
	return Serialize(a.Host, a.Port, a.Transport)
}

// HostPort returns the address in net.Dial form.
func (a Address) HostPort() string {
	return net.JoinHostPort(a.Host, a.Port)
}

// Serialize encodes a server triple. It does not validate its input.
func Serialize(host, port string, t Transport) string {
	return host + ":" + port + ":" + string(t)
}

// Deserialize decodes and validates a serialized server triple.
// The host may itself contain colons (IPv6 literals).
func Deserialize(s string) (Address, error) {
	i := strings.LastIndex(s, ":")
	if i < 0 {
		return Address{}, &AddressError{Input: s, Reason: "missing transport"}
	}
	rest, tag := s[:i], s[i+1:]

	j := strings.LastIndex(rest, ":")
	if j < 0 {
		return Address{}, &AddressError{Input: s, Reason: "missing port"}
	}
	host, port := rest[:j], rest[j+1:]

	t, ok := ParseTransport(tag)
	if !ok {
		return Address{}, &AddressError{Input: s, Reason: fmt.Sprintf("unknown transport %q", tag)}
	}
	if err := ValidateHost(host); err != nil {
		return Address{}, &AddressError{Input: s, Reason: err.Error()}
	}
	if err := ValidatePort(port); err != nil {
		return Address{}, &AddressError{Input: s, Reason: err.Error()}
	}

	return Address{Host: host, Port: port, Transport: t}, nil
}

// Validate checks a server triple by round-tripping it through its
// serialized form.
func Validate(host, port string, t Transport) (Address, error) {
	addr, err := Deserialize(Serialize(host, port, t))
	if err != nil {
		return Address{}, err
	}
	if addr.Host != host || addr.Port != port || addr.Transport != t {
		return Address{}, &AddressError{Input: Serialize(host, port, t), Reason: "ambiguous address"}
	}
	return addr, nil
}

// ValidateHost checks that host is an IP literal or a domain name.
func ValidateHost(host string) error {
	if host == "" {
		return fmt.Errorf("host is empty")
	}
	if net.ParseIP(host) != nil {
		return nil
	}
	if strings.ContainsAny(host, ": ") {
		return fmt.Errorf("invalid host %q", host)
	}
	if _, ok := dns.IsDomainName(host); !ok {
		return fmt.Errorf("invalid host %q", host)
	}
	return nil
}

// ValidatePort checks that port is a decimal number in [1, 65535].
func ValidatePort(port string) error {
	if port == "" {
		return fmt.Errorf("port is empty")
	}
	for _, c := range port {
		if c < '0' || c > '9' {
			return fmt.Errorf("port %q is not a number", port)
		}
	}
	p, err := strconv.Atoi(port)
	if err != nil || p < 1 || p > 65535 {
		return fmt.Errorf("port %s out of range", port)
	}
	return nil
}
