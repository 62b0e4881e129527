package menu

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/net2share/go-corelib/tui"
	"github.com/net2share/walletnet/internal/actions"
	"github.com/net2share/walletnet/internal/config"
	"github.com/net2share/walletnet/internal/handlers"
)

// managesOwnView reports actions whose handlers open their own view
// (info screens, progress, editors) and must not be wrapped in a progress view.
func managesOwnView(actionID string) bool {
	switch actionID {
	case actions.ActionNetworkShow, actions.ActionConfigEdit,
		actions.ActionProxyDetect, actions.ActionProxyTor, actions.ActionUpdate:
		return true
	}
	return false
}

// newActionContext creates an interactive action context.
func newActionContext() *actions.Context {
	cfg, _ := config.LoadOrDefault()
	return &actions.Context{
		Ctx:           context.Background(),
		Config:        cfg,
		Values:        make(map[string]interface{}),
		Output:        handlers.NewTUIOutput(),
		IsInteractive: true,
	}
}

// BuildMenuOptions builds menu options from child actions.
func BuildMenuOptions(parentID string) []tui.MenuOption {
	cfg, _ := config.LoadOrDefault()
	ctx := &actions.Context{Config: cfg}

	var options []tui.MenuOption
	for _, action := range actions.GetChildren(parentID) {
		if action.Hidden {
			continue
		}
		if action.ShowInMenu != nil && !action.ShowInMenu(ctx) {
			continue
		}

		label := action.MenuLabel
		if label == "" {
			label = action.Short
		}
		if action.IsSubmenu {
			label += " " + actions.SymbolArrow
		}

		options = append(options, tui.MenuOption{Label: label, Value: action.ID})
	}
	return options
}

// RunAction collects an action's inputs interactively and runs it.
func RunAction(actionID string) error {
	action := actions.Get(actionID)
	if action == nil {
		return fmt.Errorf("unknown action: %s", actionID)
	}
	if action.Handler == nil {
		return fmt.Errorf("no handler for action %s", action.ID)
	}

	ctx := newActionContext()
	if err := action.CheckLocks(ctx.Config); err != nil {
		return err
	}

	for _, input := range action.Inputs {
		if input.Type == actions.InputTypeBool {
			continue
		}
		if input.ShowIf != nil && !input.ShowIf(ctx) {
			continue
		}

		value, err := promptInput(ctx, input)
		if err != nil {
			return err
		}
		if value != nil {
			ctx.Values[input.Name] = value
		}
	}

	if !managesOwnView(actionID) {
		ctx.Output.BeginProgress(action.Short)
		defer ctx.Output.EndProgress()
	}

	return action.Handler(ctx)
}

// promptInput asks for one input. It returns nil for a skipped select.
func promptInput(ctx *actions.Context, input actions.InputField) (interface{}, error) {
	if input.Type == actions.InputTypeSelect {
		return promptSelect(input)
	}

	defaultVal := input.Default
	if input.DefaultFunc != nil {
		defaultVal = input.DefaultFunc(ctx)
	}

	description := input.Description
	if defaultVal != "" && input.Type != actions.InputTypePassword {
		description = fmt.Sprintf("%s (default: %s)", description, defaultVal)
	}

	var validationErr error
	for {
		desc := description
		if validationErr != nil {
			desc = fmt.Sprintf("%s\n%s %s", desc, actions.SymbolWarning, validationErr)
		}

		val, confirmed, err := tui.RunInput(tui.InputConfig{
			Title:       input.Label,
			Description: desc,
			Placeholder: input.Placeholder,
			Value:       defaultVal,
			Password:    input.Type == actions.InputTypePassword,
		})
		if err != nil {
			return nil, err
		}
		if !confirmed {
			return nil, errCancelled
		}
		if val == "" {
			val = defaultVal
		}

		validationErr = validateInput(input, val)
		if validationErr != nil {
			continue
		}

		if input.Type == actions.InputTypeNumber {
			n, _ := strconv.Atoi(val)
			return n, nil
		}
		return val, nil
	}
}

func validateInput(input actions.InputField, val string) error {
	if val == "" {
		if input.Required {
			return fmt.Errorf("%s is required", input.Label)
		}
		return nil
	}
	if input.Type == actions.InputTypeNumber {
		if _, err := strconv.Atoi(val); err != nil {
			return fmt.Errorf("%s must be a number", input.Label)
		}
	}
	if input.Validate != nil {
		return input.Validate(val)
	}
	return nil
}

func promptSelect(input actions.InputField) (interface{}, error) {
	var options []tui.MenuOption
	for _, opt := range input.Options {
		label := opt.Label
		if opt.Recommended {
			label += " (Recommended)"
		}
		options = append(options, tui.MenuOption{Label: label, Value: opt.Value})
	}
	if !input.Required {
		options = append(options, tui.MenuOption{Label: "Skip", Value: ""})
	}

	val, err := tui.RunMenu(tui.MenuConfig{
		Title:       input.Label,
		Description: input.Description,
		Options:     options,
	})
	if err != nil {
		return nil, err
	}
	if val == "" {
		if input.Required {
			return nil, errCancelled
		}
		return nil, nil
	}
	return val, nil
}

// RunSubmenu runs a submenu loop for a parent action.
func RunSubmenu(parentID string) error {
	action := actions.Get(parentID)
	if action == nil {
		return fmt.Errorf("unknown action: %s", parentID)
	}

	title := action.MenuLabel
	if title == "" {
		title = action.Short
	}

	for {
		options := BuildMenuOptions(parentID)
		options = append(options, tui.MenuOption{Label: "Back", Value: "back"})

		choice, err := tui.RunMenu(tui.MenuConfig{
			Title:   title,
			Options: options,
		})
		if err != nil || choice == "" || choice == "back" {
			return errCancelled
		}

		if child := actions.Get(choice); child != nil && child.IsSubmenu {
			_ = RunSubmenu(choice)
			continue
		}

		showError(RunAction(choice))
	}
}

// showError displays err unless it is nil or a cancellation.
func showError(err error) {
	if err == nil || errors.Is(err, errCancelled) || errors.Is(err, actions.ErrCancelled) {
		return
	}
	_ = tui.ShowMessage(tui.AppMessage{Type: "error", Message: err.Error()})
}
