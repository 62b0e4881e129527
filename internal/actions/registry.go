package actions

import (
	"strings"
	"sync"
)

var (
	mu       sync.RWMutex
	registry = make(map[string]*Action)
	order    []string
)

// Register adds an action to the registry. Actions keep their registration
// order in menus and help output.
func Register(action *Action) {
	mu.Lock()
	defer mu.Unlock()
	if _, ok := registry[action.ID]; !ok {
		order = append(order, action.ID)
	}
	registry[action.ID] = action
}

// Get retrieves an action by ID.
func Get(id string) *Action {
	mu.RLock()
	defer mu.RUnlock()
	return registry[id]
}

// GetChildren returns the immediate children of an action in registration order.
func GetChildren(actionID string) []*Action {
	mu.RLock()
	defer mu.RUnlock()

	var children []*Action
	for _, id := range order {
		if a := registry[id]; a.Parent == actionID {
			children = append(children, a)
		}
	}
	return children
}

// TopLevel returns all top-level actions (no parent).
func TopLevel() []*Action {
	return GetChildren("")
}

// GetCommandName returns the command name portion of an action ID.
func GetCommandName(actionID string) string {
	return actionID[strings.LastIndex(actionID, ".")+1:]
}

// SetHandler sets the handler for an action.
func SetHandler(actionID string, handler Handler) {
	mu.Lock()
	defer mu.Unlock()
	if action, ok := registry[actionID]; ok {
		action.Handler = handler
	}
}
