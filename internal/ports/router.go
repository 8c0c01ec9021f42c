package ports

import "tabnav/internal/types"

// Component is an opaque renderable token.  The router never inspects it
// beyond the Navigator assertion below; resolving a route name to an actual
// component lives behind ScreenResolver.
type Component = any

// Router is the polymorphic contract every navigator satisfies.  A tab whose
// screen exposes a Router is itself a navigator, which makes router trees
// composable to arbitrary depth (tabs of tabs, stacks of tabs, and so on).
//
// StateForAction is the reducer: it returns nil when the action is not
// handled, or produced no change, relative to a supplied input state.  When
// the input state is nil a default state is always materialized first.  An
// unchanged result is the same pointer that went in.
type Router interface {
	StateForAction(action types.Action, state *types.NavigationState) *types.NavigationState
	ComponentForState(state *types.NavigationState) (Component, error)
	ComponentForRouteName(routeName string) (Component, error)
	PathAndParamsForState(state *types.NavigationState) types.PathAndParams
	ActionForPathAndParams(path string, params map[string]any) *types.Action
	ScreenConfig(state *types.NavigationState) (types.ScreenOptions, error)
}

// Navigator is implemented by screen values that wrap a child router.  The
// router factory uses this assertion once, at construction, to bind each tab
// as either a leaf or a navigator.
type Navigator interface {
	Router() Router
}
