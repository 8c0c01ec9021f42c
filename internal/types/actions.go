package types

// Action is the tagged navigation command fed to a router's dispatcher.
// Only Type is always set.  Action carries an optional nested action for
// delegation into a tab's child router.  Types outside the canonical set are
// opaque to the tab router: they are only ever delegated or broadcast, never
// interpreted.
type Action struct {
	Type      ActionType     `yaml:"type"`
	RouteName string         `yaml:"route_name,omitempty"`
	Key       string         `yaml:"key,omitempty"`
	Params    map[string]any `yaml:"params,omitempty"`
	Action    *Action        `yaml:"action,omitempty"`
}
