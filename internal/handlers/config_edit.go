package handlers

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/net2share/walletnet/internal/actions"
	"github.com/net2share/walletnet/internal/config"
)

func init() {
	actions.SetHandler(actions.ActionConfigEdit, HandleConfigEdit)
}

// HandleConfigEdit opens the configuration in an editor and validates the
// result.
func HandleConfigEdit(ctx *actions.Context) error {
	configPath := config.Path()

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "nano"
	}

	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		if err := config.Default().Save(); err != nil {
			return fmt.Errorf("failed to create default config: %w", err)
		}
	}

	editorCmd := exec.Command(editor, configPath)
	editorCmd.Stdin = os.Stdin
	editorCmd.Stdout = os.Stdout
	editorCmd.Stderr = os.Stderr
	if err := editorCmd.Run(); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return actions.WrapError(err, err.Error(), "Run 'walletnet config edit' again to fix it")
	}
	if err := cfg.Validate(); err != nil {
		return actions.WrapError(err, fmt.Sprintf("configuration is invalid: %v", err), "Run 'walletnet config edit' again to fix it")
	}

	ctx.Config = cfg
	ctx.Network = nil
	ctx.Output.Success("Configuration saved")
	return nil
}
