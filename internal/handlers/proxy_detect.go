package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"time"

	"github.com/net2share/walletnet/internal/actions"
	"github.com/net2share/walletnet/internal/torprobe"
)

func init() {
	actions.SetHandler(actions.ActionProxyDetect, HandleProxyDetect)
}

// HandleProxyDetect looks for a local Tor proxy and reports it.
func HandleProxyDetect(ctx *actions.Context) error {
	p, err := newProbe(ctx)
	if err != nil {
		return err
	}

	beginProgress(ctx, "Detect Tor")

	ep, ok := scanTor(ctx, p)
	if !ok {
		return failProgress(ctx, actions.NoProxyDetectedError())
	}

	ctx.Output.Success(fmt.Sprintf("Tor proxy found at %s", ep))
	ctx.Output.Info("Use it with: walletnet proxy tor")
	endProgress(ctx)
	return nil
}

// newProbe builds a probe from the ports and timeout inputs.
func newProbe(ctx *actions.Context) (*torprobe.Probe, error) {
	p := torprobe.New()
	p.Host = torprobe.DefaultHost
	p.Ports = append([]int(nil), torprobe.DefaultPorts...)
	p.Timeout = torprobe.DefaultTimeout
	p.Logger = slog.Default()

	if ctx.IsSet("ports") {
		ports, err := actions.ParsePortList(ctx.GetString("ports"))
		if err != nil {
			return nil, actions.WrapError(err, "invalid port list", "Example: --ports 9050,9150")
		}
		if len(ports) > 0 {
			p.Ports = ports
		}
	}
	if ms := ctx.GetInt("timeout"); ms > 0 {
		p.Timeout = time.Duration(ms) * time.Millisecond
	}
	return p, nil
}

// scanTor checks the ports of p one at a time, in order, reporting a step
// per port. It stops at the first port that answers like Tor.
func scanTor(ctx *actions.Context, p *torprobe.Probe) (torprobe.Endpoint, bool) {
	for i, port := range p.Ports {
		ctx.Output.Step(i+1, len(p.Ports), fmt.Sprintf("Checking %s", net.JoinHostPort(p.Host, strconv.Itoa(port))))
		single := &torprobe.Probe{
			Host:    p.Host,
			Ports:   []int{port},
			Timeout: p.Timeout,
			Logger:  p.Logger,
		}
		if ep, ok := detectTor(ctx, single); ok {
			return ep, true
		}
	}
	return torprobe.Endpoint{}, false
}

// detectTor runs p to completion, bounded by one timeout per port.
func detectTor(ctx *actions.Context, p *torprobe.Probe) (torprobe.Endpoint, bool) {
	parent := ctx.Ctx
	if parent == nil {
		parent = context.Background()
	}
	budget := time.Duration(len(p.Ports)+1) * p.Timeout * 2
	waitCtx, cancel := context.WithTimeout(parent, budget)
	defer cancel()

	return p.Wait(waitCtx)
}
