package handlers

import (
	"slices"

	"github.com/net2share/walletnet/internal/actions"
	"github.com/net2share/walletnet/internal/server"
)

func init() {
	actions.SetHandler(actions.ActionNetworkServers, HandleNetworkServers)
}

// HandleNetworkServers lists the known servers.
func HandleNetworkServers(ctx *actions.Context) error {
	n, err := LoadNetwork(ctx)
	if err != nil {
		return err
	}

	dir := n.GetServers()
	current := n.GetParameters().Host

	var hosts []string
	if t, ok := server.ParseTransport(ctx.GetString("transport")); ok {
		hosts = dir.Hosts(t)
	} else {
		seen := make(map[string]bool)
		for _, t := range server.Transports() {
			for _, h := range dir.Hosts(t) {
				if !seen[h] {
					seen[h] = true
					hosts = append(hosts, h)
				}
			}
		}
		slices.Sort(hosts)
	}

	if len(hosts) == 0 {
		ctx.Output.Info("No servers offer that transport.")
		return nil
	}

	headers := []string{"HOST", "TCP", "SSL", "LIMIT"}
	rows := make([][]string, 0, len(hosts))
	for _, h := range hosts {
		e := dir[h]
		name := h
		if h == current {
			name += " *"
		}
		rows = append(rows, []string{name, dash(e.TCP), dash(e.SSL), dash(e.Pruning)})
	}

	ctx.Output.Table(headers, rows)
	ctx.Output.Println("\n* = current server")
	return nil
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
