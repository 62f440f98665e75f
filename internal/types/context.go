package types

import (
	"github.com/KAYAMAc/tui/internal/k8s"
	"github.com/KAYAMAc/tui/internal/ui"
)

// AppContext holds app-wide configuration and dependencies. Screens and
// operation dispatch receive it at construction.
type AppContext struct {
	Theme  *ui.Theme
	Client *k8s.Client
}

// NewAppContext creates a new application context
func NewAppContext(theme *ui.Theme, client *k8s.Client) *AppContext {
	return &AppContext{
		Theme:  theme,
		Client: client,
	}
}

// WithContext returns a copy of the app context with the client pinned
// to the given kubectl context. Used when the user picks a context.
func (c *AppContext) WithContext(contextName string) *AppContext {
	copied := *c
	copied.Client = c.Client.WithContext(contextName)
	return &copied
}
