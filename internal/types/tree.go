package types

// RouteTree is the declarative, file-loadable form of a router hierarchy.
// Each node either names a leaf screen or embeds a nested tree of tabs.
type RouteTree struct {
	Routes       []RouteNode   `yaml:"routes"`
	Order        []string      `yaml:"order,omitempty"`
	InitialRoute string        `yaml:"initial_route,omitempty"`
	BackBehavior BackBehavior  `yaml:"back_behavior,omitempty"`
	Defaults     ScreenOptions `yaml:"defaults,omitempty"`
}

type RouteNode struct {
	Name    string        `yaml:"name"`
	Path    *string       `yaml:"path,omitempty"`
	Options ScreenOptions `yaml:"options,omitempty"`
	Tabs    *RouteTree    `yaml:"tabs,omitempty"`
}
