package handlers

import (
	"fmt"
	"strings"

	"github.com/net2share/walletnet/internal/actions"
	"github.com/net2share/walletnet/internal/config"
)

func init() {
	actions.SetHandler(actions.ActionConfigShow, HandleConfigShow)
}

// HandleConfigShow shows the current configuration.
func HandleConfigShow(ctx *actions.Context) error {
	cfg, err := LoadConfig(ctx)
	if err != nil {
		ctx.Output.Warning(fmt.Sprintf("Failed to load configuration: %v", err))
		ctx.Output.Info(fmt.Sprintf("Config path: %s", config.Path()))
		return nil
	}

	if ctx.GetBool("json") {
		ctx.Output.Println(cfg.GetFormattedConfig())
		return nil
	}

	server := cfg.Server
	if server == "" {
		server = "(not pinned)"
	}
	locked := "none"
	if len(cfg.Locked) > 0 {
		locked = strings.Join(cfg.Locked, ", ")
	}

	lines := []string{
		fmt.Sprintf("Config file: %s", config.Path()),
		fmt.Sprintf("Server list: %s", config.ServersPath()),
		"",
		fmt.Sprintf("Server: %s", server),
		fmt.Sprintf("Auto-connect: %v", cfg.IsAutoConnect()),
		fmt.Sprintf("Proxy: %s", cfg.Proxy.Redacted()),
		fmt.Sprintf("Log level: %s", cfg.Log.Level),
		fmt.Sprintf("Locked: %s", locked),
	}

	ctx.Output.Box("Configuration", lines)
	return nil
}
