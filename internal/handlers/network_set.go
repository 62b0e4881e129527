package handlers

import (
	"errors"
	"fmt"

	"github.com/net2share/walletnet/internal/actions"
	"github.com/net2share/walletnet/internal/config"
	"github.com/net2share/walletnet/internal/dialog"
	"github.com/net2share/walletnet/internal/server"
)

func init() {
	actions.SetHandler(actions.ActionNetworkSet, HandleNetworkSet)
}

// HandleNetworkSet changes the server settings. Flags are applied in the
// order a user would edit the form: auto-connect, server, transport, port.
func HandleNetworkSet(ctx *actions.Context) error {
	n, err := LoadNetwork(ctx)
	if err != nil {
		return err
	}
	c := dialog.New(n, ctx.Config)

	var transport server.Transport
	if ctx.IsSet("transport") {
		t, ok := server.ParseTransport(ctx.GetString("transport"))
		if !ok {
			return actions.NewActionError(
				fmt.Sprintf("invalid transport '%s'", ctx.GetString("transport")),
				"Use 's' for SSL or 't' for TCP",
			)
		}
		transport = t
	}

	changed := false

	if ctx.IsSet("server") || ctx.IsSet("port") || ctx.IsSet("transport") {
		if err := RequireModifiable(ctx, config.SettingServer); err != nil {
			return err
		}
	}

	if ctx.IsSet("auto-connect") {
		if err := RequireModifiable(ctx, config.SettingAutoConnect); err != nil {
			return err
		}
		v, err := actions.ParseOnOff(ctx.GetString("auto-connect"))
		if err != nil {
			return err
		}
		c.SetAutoConnect(v)
		changed = true
	}

	if host := ctx.GetString("server"); host != "" {
		c.ChangeServer(host, transport)
		if !ctx.IsSet("auto-connect") && ctx.Config.IsModifiable(config.SettingAutoConnect) {
			c.SetAutoConnect(false)
		}
		changed = true
	} else if transport != "" {
		c.ChangeProtocol(transport == server.TransportSSL)
		changed = true
	}

	if ctx.IsSet("port") {
		c.SetPort(ctx.GetString("port"))
		changed = true
	}

	if !changed {
		return actions.NewActionError(
			"nothing to change",
			"Usage: walletnet network set --server <host> [--port <port>] [--transport s|t] [--auto-connect on|off]",
		)
	}

	if err := c.Accept(); err != nil {
		if errors.Is(err, server.ErrInvalidServerAddress) {
			return actions.InvalidServerError(err)
		}
		return err
	}

	p := c.Parameters()
	ctx.Output.Success(fmt.Sprintf("Server set to %s (%s)", p.Address().HostPort(), p.Transport.DisplayName()))
	if p.AutoConnect {
		ctx.Output.Info("Automatic server selection is on")
	}
	return nil
}
