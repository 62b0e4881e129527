// Package handlers provides the business logic for walletnet actions.
package handlers

import (
	"fmt"

	"github.com/net2share/walletnet/internal/actions"
	"github.com/net2share/walletnet/internal/config"
	"github.com/net2share/walletnet/internal/network"
)

// LoadConfig loads and caches the configuration.
func LoadConfig(ctx *actions.Context) (*config.Config, error) {
	if ctx.Config != nil {
		return ctx.Config, nil
	}

	cfg, err := config.LoadOrDefault()
	if err != nil {
		return nil, err
	}
	ctx.Config = cfg
	return cfg, nil
}

// LoadNetwork opens and caches the network view. The loaded config replaces
// the cached one so both stay in sync.
func LoadNetwork(ctx *actions.Context) (network.Network, error) {
	if ctx.Network != nil {
		return ctx.Network, nil
	}

	n, err := network.Open()
	if err != nil {
		return nil, err
	}
	ctx.Network = n
	ctx.Config = n.Config()
	return n, nil
}

// RequireModifiable returns an error if any setting the action changes is
// locked.
func RequireModifiable(ctx *actions.Context, names ...string) error {
	cfg, err := LoadConfig(ctx)
	if err != nil {
		return err
	}
	for _, name := range names {
		if !cfg.IsModifiable(name) {
			return actions.SettingLockedError(name)
		}
	}
	return nil
}

// beginProgress starts a progress view in interactive mode.
func beginProgress(ctx *actions.Context, title string) {
	if ctx.IsInteractive {
		ctx.Output.BeginProgress(title)
	}
}

// endProgress ends a progress view in interactive mode.
func endProgress(ctx *actions.Context) {
	if ctx.IsInteractive {
		ctx.Output.EndProgress()
	}
}

// failProgress shows an error in the progress view and returns the error.
func failProgress(ctx *actions.Context, err error) error {
	if ctx.IsInteractive {
		ctx.Output.Error(fmt.Sprintf("Failed: %v", err))
		ctx.Output.EndProgress()
	}
	return err
}
