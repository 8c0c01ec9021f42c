package core

import (
	"context"
	"fmt"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/require"

	"tabnav/internal/ports"
	"tabnav/internal/types"
)

// leafScreen is an opaque screen token with no nested router.
type leafScreen struct {
	name string
}

// navScreen wraps a child router, making its tab a navigator tab.
type navScreen struct {
	router ports.Router
}

func (s navScreen) Router() ports.Router { return s.router }

// scriptedRouter stands in for an arbitrary child router implementation so
// tests can pin down how the tab router reacts to each possible child result.
type scriptedRouter struct {
	onAction func(action types.Action, state *types.NavigationState) *types.NavigationState
	onDecode func(path string, params map[string]any) *types.Action
}

func (r scriptedRouter) StateForAction(action types.Action, state *types.NavigationState) *types.NavigationState {
	if r.onAction == nil {
		return state
	}
	return r.onAction(action, state)
}

func (r scriptedRouter) ComponentForState(*types.NavigationState) (ports.Component, error) {
	return nil, nil
}

func (r scriptedRouter) ComponentForRouteName(string) (ports.Component, error) {
	return nil, nil
}

func (r scriptedRouter) PathAndParamsForState(*types.NavigationState) types.PathAndParams {
	return types.PathAndParams{}
}

func (r scriptedRouter) ActionForPathAndParams(path string, params map[string]any) *types.Action {
	if r.onDecode == nil {
		return nil
	}
	return r.onDecode(path, params)
}

func (r scriptedRouter) ScreenConfig(*types.NavigationState) (types.ScreenOptions, error) {
	return nil, nil
}

type mapScreens map[string]ports.Component

func (m mapScreens) ScreenForRouteName(name string) (ports.Component, error) {
	screen, ok := m[name]
	if !ok {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("no screen registered for route: %s", name))
	}
	return screen, nil
}

type mapOptions map[string]types.ScreenOptions

func (m mapOptions) ScreenOptions(name string) (types.ScreenOptions, error) {
	return m[name], nil
}

func leafEntries(names ...string) []types.RouteConfigEntry {
	entries := make([]types.RouteConfigEntry, 0, len(names))
	for _, name := range names {
		entries = append(entries, types.RouteConfigEntry{RouteName: name, Screen: leafScreen{name: name}})
	}
	return entries
}

func mustBuild(t *testing.T, entries []types.RouteConfigEntry, opts Options) *TabRouter {
	t.Helper()
	router, err := Build(context.Background(), entries, opts)
	require.NoError(t, err)
	return router
}

func strptr(s string) *string { return &s }
