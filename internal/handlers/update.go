package handlers

import (
	"fmt"
	"log/slog"

	"github.com/net2share/go-corelib/binman"
	"github.com/net2share/walletnet/internal/actions"
)

// AppVersion is set by cmd at startup for use by the update handler.
var AppVersion = "dev"

const (
	releaseRepo       = "net2share/walletnet"
	releaseURLPattern = "https://github.com/net2share/walletnet/releases/download/{version}/walletnet-{os}-{arch}"
)

func init() {
	actions.SetHandler(actions.ActionUpdate, HandleUpdate)
}

// HandleUpdate checks for a newer release and installs it unless --check is set.
func HandleUpdate(ctx *actions.Context) error {
	beginProgress(ctx, "Check Updates")
	ctx.Output.Status("Checking for walletnet updates...")

	latest, available, err := binman.CheckSelfUpdate(releaseRepo, AppVersion)
	if err != nil {
		return failProgress(ctx, fmt.Errorf("failed to check for updates: %w", err))
	}

	if !available {
		ctx.Output.Success(fmt.Sprintf("walletnet is up to date (%s)", AppVersion))
		endProgress(ctx)
		return nil
	}

	ctx.Output.Info(fmt.Sprintf("Update available: %s → %s", AppVersion, latest))
	if ctx.GetBool("check") {
		ctx.Output.Info("Run 'walletnet update' to install it")
		endProgress(ctx)
		return nil
	}

	err = binman.SelfUpdate(binman.SelfUpdateConfig{
		Repo:       releaseRepo,
		URLPattern: releaseURLPattern,
		StatusFn: func(msg string) {
			ctx.Output.Status(msg)
		},
	}, latest)
	if err != nil {
		return failProgress(ctx, fmt.Errorf("self-update failed: %w", err))
	}

	slog.Info("updated", "from", AppVersion, "to", latest)
	ctx.Output.Success(fmt.Sprintf("walletnet updated to %s", latest))
	endProgress(ctx)
	return nil
}
