package ports

import "tabnav/internal/types"

// StateStore persists navigation states between CLI invocations.
type StateStore interface {
	Load(path string) (*types.NavigationState, error)
	Save(path string, state *types.NavigationState) error
}

// RouteConfigLoader reads a declarative route tree from a file.
type RouteConfigLoader interface {
	LoadRouteTree(path string) (types.RouteTree, error)
}
