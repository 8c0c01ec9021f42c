package adapters

import (
	"tabnav/internal/shared"
	"tabnav/internal/types"
)

// OptionsGetterAdapter resolves per-screen options by overlaying each route's
// own options onto the navigator-level defaults.  The screen's values win on
// collision.
type OptionsGetterAdapter struct {
	defaults types.ScreenOptions
	byRoute  map[string]types.ScreenOptions
}

func NewOptionsGetterAdapter(defaults types.ScreenOptions, entries []types.RouteConfigEntry) OptionsGetterAdapter {
	byRoute := make(map[string]types.ScreenOptions, len(entries))
	for _, entry := range entries {
		byRoute[entry.RouteName] = entry.Options
	}
	return OptionsGetterAdapter{defaults: defaults, byRoute: byRoute}
}

func (a OptionsGetterAdapter) ScreenOptions(routeName string) (types.ScreenOptions, error) {
	merged := shared.MergeParams(a.defaults, a.byRoute[routeName])
	if merged == nil {
		return nil, nil
	}
	return types.ScreenOptions(merged), nil
}
