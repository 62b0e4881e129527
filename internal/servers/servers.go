// Package servers provides the directory of known wallet servers.
//
// A built-in list is merged with an optional user file in YAML:
//
//	servers:
//	  electrum.example.org:
//	    t: "50001"
//	    s: "50002"
//	    pruning: "10000"
package servers

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/net2share/walletnet/internal/server"
	"gopkg.in/yaml.v3"
)

// Entry describes a single server.
type Entry struct {
	TCP     string `yaml:"t,omitempty"`
	SSL     string `yaml:"s,omitempty"`
	Pruning string `yaml:"pruning,omitempty"`
}

// Ports returns the transports the server offers.
func (e Entry) Ports() server.Ports {
	pp := server.Ports{}
	if e.TCP != "" {
		pp[server.TransportTCP] = e.TCP
	}
	if e.SSL != "" {
		pp[server.TransportSSL] = e.SSL
	}
	return pp
}

// Directory is a set of known servers keyed by host.
type Directory map[string]Entry

type file struct {
	Servers Directory `yaml:"servers"`
}

// builtin lists the servers known without a user file.
var builtin = Directory{
	"electrum.blockstream.info": {TCP: "50001", SSL: "50002"},
	"electrum.emzy.de":          {TCP: "50001", SSL: "50002"},
	"electrum.hodlister.co":     {SSL: "50002"},
	"electrum.qtornado.com":     {TCP: "50001", SSL: "50002"},
	"electrumx.erbium.eu":       {TCP: "50001", SSL: "50002"},
	"fortress.qtornado.com":     {SSL: "443"},
	"e.keff.org":                {TCP: "50001", SSL: "50002"},
}

// Builtin returns a copy of the built-in server list.
func Builtin() Directory {
	d := make(Directory, len(builtin))
	for host, e := range builtin {
		d[host] = e
	}
	return d
}

// Load returns the built-in servers merged with the user file at path.
// A missing file is not an error.
func Load(path string) (Directory, error) {
	d := Builtin()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return d, nil
		}
		return nil, fmt.Errorf("failed to read server list: %w", err)
	}

	user, err := Parse(data)
	if err != nil {
		return nil, err
	}
	for host, e := range user {
		d[host] = e
	}
	return d, nil
}

// Parse decodes and validates a YAML server list.
func Parse(data []byte) (Directory, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse server list: %w", err)
	}

	for host, e := range f.Servers {
		if err := server.ValidateHost(host); err != nil {
			return nil, fmt.Errorf("servers: %w", err)
		}
		if e.TCP == "" && e.SSL == "" {
			return nil, fmt.Errorf("servers: '%s' has no ports", host)
		}
		for _, port := range []string{e.TCP, e.SSL} {
			if port == "" {
				continue
			}
			if err := server.ValidatePort(port); err != nil {
				return nil, fmt.Errorf("servers: '%s': %w", host, err)
			}
		}
	}

	if f.Servers == nil {
		f.Servers = Directory{}
	}
	return f.Servers, nil
}

// Table returns the host to ports lookup used for server resolution.
func (d Directory) Table() server.Table {
	t := make(server.Table, len(d))
	for host, e := range d {
		t[host] = e.Ports()
	}
	return t
}

// Hosts returns the hosts offering transport t, sorted by name.
func (d Directory) Hosts(t server.Transport) []string {
	var hosts []string
	for host, e := range d {
		if e.Ports().Has(t) {
			hosts = append(hosts, host)
		}
	}
	sort.Strings(hosts)
	return hosts
}
