package handlers

import (
	"fmt"
	"strings"

	"github.com/net2share/walletnet/internal/actions"
	"github.com/net2share/walletnet/internal/dialog"
)

func init() {
	actions.SetHandler(actions.ActionNetworkShow, HandleNetworkShow)
}

// HandleNetworkShow prints the connection status and network settings.
func HandleNetworkShow(ctx *actions.Context) error {
	n, err := LoadNetwork(ctx)
	if err != nil {
		return err
	}
	c := dialog.New(n, ctx.Config)

	selection := "automatic"
	if !c.AutoConnect() {
		selection = "manual"
	}
	locked := "none"
	if len(ctx.Config.Locked) > 0 {
		locked = strings.Join(ctx.Config.Locked, ", ")
	}

	rows := []actions.InfoRow{
		{Key: "Server", Value: fmt.Sprintf("%s:%s", c.Host(), c.Port())},
		{Key: "Transport", Value: c.Parameters().Transport.DisplayName()},
		{Key: "Selection", Value: selection},
		{Key: "Proxy", Value: ctx.Config.Proxy.Redacted()},
		{Key: "Locked", Value: locked},
	}

	if ctx.IsInteractive {
		return ctx.Output.ShowInfo(actions.InfoConfig{
			Title:       "Network",
			Description: c.Status(),
			Sections:    []actions.InfoSection{{Title: "Settings", Rows: rows}},
		})
	}

	lines := strings.Split(c.Status(), "\n")
	lines = append(lines, "")
	for _, r := range rows {
		lines = append(lines, ctx.Output.KV(r.Key, r.Value))
	}
	ctx.Output.Box("Network", lines)
	return nil
}
