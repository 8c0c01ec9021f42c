package adapters

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"tabnav/internal/ports"
)

// ScreenToken is an opaque leaf screen value.  The router treats it as a
// capability token; only the rendering layer would give it meaning.
type ScreenToken struct {
	Name string
}

// NavigatorScreen wraps a child router so a tab can embed a nested navigator.
type NavigatorScreen struct {
	Name  string
	Child ports.Router
}

func (s NavigatorScreen) Router() ports.Router { return s.Child }

// ScreenRegistry is the in-repo screen resolver: a plain name-to-component
// table populated while building a router from config.
type ScreenRegistry struct {
	screens map[string]ports.Component
}

func NewScreenRegistry() *ScreenRegistry {
	return &ScreenRegistry{screens: map[string]ports.Component{}}
}

func (r *ScreenRegistry) Register(routeName string, screen ports.Component) {
	r.screens[routeName] = screen
}

func (r *ScreenRegistry) ScreenForRouteName(routeName string) (ports.Component, error) {
	screen, ok := r.screens[routeName]
	if !ok {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("no screen registered for route: %s", routeName))
	}
	return screen, nil
}
