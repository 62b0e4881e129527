// Package actions provides the unified action system for walletnet CLI and menu.
package actions

import (
	"context"

	"github.com/net2share/walletnet/internal/config"
	"github.com/net2share/walletnet/internal/network"
)

// InputType defines the type of input field.
type InputType int

const (
	// InputTypeText is a text input field.
	InputTypeText InputType = iota
	// InputTypePassword is a password input field (hidden).
	InputTypePassword
	// InputTypeSelect is a single-select dropdown.
	InputTypeSelect
	// InputTypeNumber is a numeric input field.
	InputTypeNumber
	// InputTypeBool is a boolean flag (CLI-only, not shown in interactive mode).
	InputTypeBool
)

// SelectOption defines an option for select inputs.
type SelectOption struct {
	Label       string
	Value       string
	Description string
	Recommended bool
}

// InputField defines an input field for an action.
type InputField struct {
	Name        string
	Label       string
	Description string
	Type        InputType
	Required    bool
	Default     string
	Placeholder string
	Options     []SelectOption
	ShortFlag   rune
	ShowIf      func(ctx *Context) bool
	Validate    func(value string) error
	DefaultFunc func(ctx *Context) string
}

// Handler is the function signature for action handlers.
type Handler func(ctx *Context) error

// Action defines a command/menu action.
type Action struct {
	ID         string
	Parent     string
	Use        string
	Short      string
	Long       string
	MenuLabel  string
	Inputs     []InputField
	Handler    Handler
	Hidden     bool
	ShowInMenu func(ctx *Context) bool
	IsSubmenu  bool
	// Locks lists the settings the action changes; it is refused
	// when any of them is locked in the config.
	Locks []string
}

// Context provides the execution context for action handlers.
type Context struct {
	Ctx           context.Context
	Config        *config.Config
	Network       network.Network
	Values        map[string]interface{}
	Output        OutputWriter
	IsInteractive bool
}

// GetString returns a string value from the context.
func (c *Context) GetString(key string) string {
	if v, ok := c.Values[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// GetInt returns an integer value from the context.
func (c *Context) GetInt(key string) int {
	if v, ok := c.Values[key]; ok {
		switch i := v.(type) {
		case int:
			return i
		case int64:
			return int(i)
		case float64:
			return int(i)
		}
	}
	return 0
}

// GetBool returns a boolean value from the context.
func (c *Context) GetBool(key string) bool {
	if v, ok := c.Values[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return false
}

// Set sets a value in the context.
func (c *Context) Set(key string, value interface{}) {
	if c.Values == nil {
		c.Values = make(map[string]interface{})
	}
	c.Values[key] = value
}

// IsSet returns true if a non-empty value was provided for key.
func (c *Context) IsSet(key string) bool {
	v, ok := c.Values[key]
	if !ok || v == nil {
		return false
	}
	if s, ok := v.(string); ok {
		return s != ""
	}
	return true
}

// CheckLocks returns a SettingLockedError for the first setting in Locks
// that cfg does not allow to change.
func (a *Action) CheckLocks(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}
	for _, name := range a.Locks {
		if !cfg.IsModifiable(name) {
			return SettingLockedError(name)
		}
	}
	return nil
}
