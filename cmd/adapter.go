package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/net2share/walletnet/internal/actions"
	"github.com/net2share/walletnet/internal/config"
	"github.com/net2share/walletnet/internal/handlers"
	"github.com/spf13/cobra"
)

// BuildCobraCommand builds a Cobra command from an action.
func BuildCobraCommand(action *actions.Action) *cobra.Command {
	cmd := &cobra.Command{
		Use:    action.Use,
		Short:  action.Short,
		Long:   action.Long,
		Hidden: action.Hidden,
	}

	for _, input := range action.Inputs {
		addFlag(cmd, input)
	}

	// Submenus have no RunE
	if action.IsSubmenu {
		return cmd
	}

	cmd.Args = cobra.NoArgs
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadOrDefault()
		if err != nil {
			return err
		}

		ctx := &actions.Context{
			Ctx:    context.Background(),
			Config: cfg,
			Values: make(map[string]interface{}),
			Output: handlers.NewTUIOutput(),
		}

		if err := action.CheckLocks(cfg); err != nil {
			return err
		}

		for _, input := range action.Inputs {
			val, err := flagValue(cmd, input)
			if err != nil {
				return err
			}
			ctx.Values[input.Name] = val
		}

		if action.Handler == nil {
			return fmt.Errorf("no handler for action %s", action.ID)
		}
		return action.Handler(ctx)
	}

	return cmd
}

// addFlag registers the flag for an input.
func addFlag(cmd *cobra.Command, input actions.InputField) {
	short := ""
	if input.ShortFlag != 0 {
		short = string(input.ShortFlag)
	}
	usage := input.Label
	if input.Description != "" {
		usage = input.Description
	}

	switch input.Type {
	case actions.InputTypeText, actions.InputTypePassword, actions.InputTypeSelect:
		cmd.Flags().StringP(input.Name, short, input.Default, usage)
	case actions.InputTypeNumber:
		def, _ := strconv.Atoi(input.Default)
		cmd.Flags().IntP(input.Name, short, def, usage)
	case actions.InputTypeBool:
		cmd.Flags().BoolP(input.Name, short, false, usage)
	}

	if input.Required {
		_ = cmd.MarkFlagRequired(input.Name)
	}
}

// flagValue reads and validates the flag for an input. Flags left at an
// empty default are passed through as empty strings.
func flagValue(cmd *cobra.Command, input actions.InputField) (interface{}, error) {
	switch input.Type {
	case actions.InputTypeNumber:
		return cmd.Flags().GetInt(input.Name)
	case actions.InputTypeBool:
		return cmd.Flags().GetBool(input.Name)
	}

	val, err := cmd.Flags().GetString(input.Name)
	if err != nil {
		return nil, err
	}
	if !cmd.Flags().Changed(input.Name) {
		return val, nil
	}

	if input.Type == actions.InputTypeSelect && len(input.Options) > 0 && !validOption(input.Options, val) {
		return nil, fmt.Errorf("invalid value '%s' for --%s", val, input.Name)
	}
	if input.Validate != nil {
		if err := input.Validate(val); err != nil {
			return nil, fmt.Errorf("--%s: %w", input.Name, err)
		}
	}
	return val, nil
}

func validOption(options []actions.SelectOption, val string) bool {
	for _, opt := range options {
		if opt.Value == val {
			return true
		}
	}
	return false
}

// RegisterActionsWithRoot adds all action-based commands to a root command.
func RegisterActionsWithRoot(root *cobra.Command) {
	for _, action := range actions.TopLevel() {
		cmd := BuildCobraCommand(action)
		for _, child := range actions.GetChildren(action.ID) {
			cmd.AddCommand(BuildCobraCommand(child))
		}
		root.AddCommand(cmd)
	}
}
