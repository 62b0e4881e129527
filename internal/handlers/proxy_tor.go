package handlers

import (
	"fmt"

	"github.com/net2share/walletnet/internal/actions"
	"github.com/net2share/walletnet/internal/dialog"
)

func init() {
	actions.SetHandler(actions.ActionProxyTor, HandleProxyTor)
}

// HandleProxyTor routes server connections through a detected local Tor
// proxy, or clears the proxy with --disable.
func HandleProxyTor(ctx *actions.Context) error {
	if ctx.GetBool("disable") {
		if err := saveProxy(ctx, nil); err != nil {
			return err
		}
		ctx.Output.Success("Proxy disabled")
		return nil
	}

	p, err := newProbe(ctx)
	if err != nil {
		return err
	}

	beginProgress(ctx, "Use Tor")
	ctx.Output.Status("Looking for a local Tor proxy...")

	ep, ok := scanTor(ctx, p)
	if !ok {
		return failProgress(ctx, actions.NoProxyDetectedError())
	}
	n, err := LoadNetwork(ctx)
	if err != nil {
		return failProgress(ctx, err)
	}
	c := dialog.New(n, ctx.Config)
	c.SuggestProxy(ep)

	if _, checked, _ := c.TorSuggestion(); checked {
		ctx.Output.Info(fmt.Sprintf("Already using the Tor proxy at %s", ep))
		endProgress(ctx)
		return nil
	}

	c.UseTorProxy(true)
	proxy := c.Proxy()
	if err := saveProxy(ctx, &proxy); err != nil {
		return failProgress(ctx, err)
	}

	ctx.Output.Success(fmt.Sprintf("Using Tor proxy at %s", ep))
	endProgress(ctx)
	return nil
}
