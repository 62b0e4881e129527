package handlers

import (
	"fmt"
	"strconv"

	"github.com/net2share/walletnet/internal/actions"
	"github.com/net2share/walletnet/internal/config"
	"github.com/net2share/walletnet/internal/port"
)

func init() {
	actions.SetHandler(actions.ActionProxySet, HandleProxySet)
}

// HandleProxySet sets the proxy from the mode, host, port and credential inputs.
func HandleProxySet(ctx *actions.Context) error {
	mode, err := config.ParseProxyMode(ctx.GetString("mode"))
	if err != nil {
		return actions.WrapError(err, err.Error(), "Modes: none, socks4, socks5, http")
	}

	if mode == config.ProxyNone {
		if err := saveProxy(ctx, nil); err != nil {
			return err
		}
		ctx.Output.Success("Proxy disabled")
		return nil
	}

	p := &config.ProxyConfig{
		Mode:     mode,
		Host:     ctx.GetString("host"),
		Port:     ctx.GetString("port"),
		User:     ctx.GetString("user"),
		Password: ctx.GetString("password"),
	}
	if p.Host == "" {
		p.Host = config.DefaultProxy().Host
	}
	if p.Port == "" {
		p.Port = config.DefaultProxyPort(mode)
	}

	if err := saveProxy(ctx, p); err != nil {
		return err
	}
	ctx.Output.Success(fmt.Sprintf("Proxy set to %s", p.Redacted()))
	warnIfNotListening(ctx, p)
	return nil
}

// saveProxy validates and persists p. A nil p disables the proxy.
func saveProxy(ctx *actions.Context, p *config.ProxyConfig) error {
	cfg, err := LoadConfig(ctx)
	if err != nil {
		return err
	}

	prev := cfg.Proxy
	cfg.Proxy = p
	if err := cfg.Validate(); err != nil {
		cfg.Proxy = prev
		return actions.WrapError(err, err.Error(), "")
	}
	if err := cfg.Save(); err != nil {
		cfg.Proxy = prev
		return err
	}
	ctx.Network = nil
	return nil
}

// warnIfNotListening warns when a proxy on this machine does not accept
// connections.
func warnIfNotListening(ctx *actions.Context, p *config.ProxyConfig) {
	if !port.IsLocal(p.Host) {
		return
	}
	n, err := strconv.Atoi(p.Port)
	if err != nil {
		return
	}
	if !port.IsListening(p.Host, n, 0) {
		ctx.Output.Warning(fmt.Sprintf("Nothing is listening on %s:%s yet", p.Host, p.Port))
	}
}
