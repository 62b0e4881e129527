package server

import "sort"

// PortsFor returns the ports offered by host, or defaults if the host is unknown.
func PortsFor(host string, table Table, defaults Ports) Ports {
	if pp, ok := table[host]; ok && len(pp) > 0 {
		return pp
	}
	return defaults
}

// Resolve picks the transport and port to use for host.
//
// A requested transport is honored when the host offers it. Otherwise SSL is
// preferred, then the smallest remaining tag. An empty result means neither
// the table nor defaults offer any known transport.
func Resolve(host string, requested Transport, table Table, defaults Ports) (Transport, string) {
	pp := PortsFor(host, table, defaults)

	if requested.IsValid() && pp.Has(requested) {
		return requested, pp[requested]
	}

	return pick(pp)
}

// ChangeTransport resolves host after the user toggles SSL on or off.
func ChangeTransport(host string, useSSL bool, table Table, defaults Ports) (Transport, string) {
	requested := TransportTCP
	if useSSL {
		requested = TransportSSL
	}

	pp := PortsFor(host, table, defaults)
	if pp.Has(requested) {
		return requested, pp[requested]
	}
	return pick(pp)
}

func pick(pp Ports) (Transport, string) {
	if pp.Has(TransportSSL) {
		return TransportSSL, pp[TransportSSL]
	}

	tags := make([]string, 0, len(pp))
	for t := range pp {
		if t.IsValid() && pp.Has(t) {
			tags = append(tags, string(t))
		}
	}
	if len(tags) == 0 {
		return "", ""
	}
	sort.Strings(tags)

	t := Transport(tags[0])
	return t, pp[t]
}
