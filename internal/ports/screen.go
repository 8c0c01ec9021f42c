package ports

import "tabnav/internal/types"

// ScreenResolver maps a route name to its renderable component.  This is an
// external collaborator from the router's point of view; the core only calls
// it for leaf tabs.
type ScreenResolver interface {
	ScreenForRouteName(routeName string) (Component, error)
}

// ScreenOptionsGetter resolves the merged presentation options for a route.
// The router's ScreenConfig delegates here without interpreting the result.
type ScreenOptionsGetter interface {
	ScreenOptions(routeName string) (types.ScreenOptions, error)
}

// ConfigValidator checks the structural validity of a route config before a
// router is built from it.  Validation failures abort construction.
type ConfigValidator interface {
	ValidateRouteConfigs(entries []types.RouteConfigEntry) error
}
