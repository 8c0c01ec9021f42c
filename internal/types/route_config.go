package types

// ScreenOptions holds per-screen presentation options.  The router never
// interprets them; it only merges and hands them out on request.
type ScreenOptions map[string]any

// RouteConfigEntry configures one tab.  Entries are kept as an ordered slice
// because tab order is significant and the default order is declaration
// order.  Screen is an opaque value; if it implements ports.Navigator the tab
// is treated as a nested navigator, otherwise as a leaf.
//
// Path distinguishes "unset" (nil, defaults to the route name) from an
// explicit empty segment.
type RouteConfigEntry struct {
	RouteName string
	Screen    any
	Path      *string
	Options   ScreenOptions
}
