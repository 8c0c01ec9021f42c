package types

// NavigationState is the recursive navigation value shared by every level of
// a router tree.  A top-level state carries only Index and Routes.  A leaf
// route carries Key, RouteName and optional Params with Routes left nil.  A
// route backed by a nested navigator carries both: the child router's own
// Index/Routes plus the identity fields of the tab that owns it.
//
// States are never mutated in place.  Every transition builds a new value and
// reuses unchanged substructures, so pointer equality on a returned state (or
// any nested route) means "nothing changed here".  Callers rely on that for
// cheap change detection.
type NavigationState struct {
	Key       string             `yaml:"key,omitempty"`
	RouteName string             `yaml:"route_name,omitempty"`
	Params    map[string]any     `yaml:"params,omitempty"`
	Index     int                `yaml:"index"`
	Routes    []*NavigationState `yaml:"routes,omitempty"`
}

// ActiveRoute returns the route the state's index points at, or nil when the
// index falls outside the route list.
func (s *NavigationState) ActiveRoute() *NavigationState {
	if s == nil || s.Index < 0 || s.Index >= len(s.Routes) {
		return nil
	}
	return s.Routes[s.Index]
}

// PathAndParams is the encoded form of a navigation state: a slash-separated
// path assembled from per-tab segments plus the merged params along the
// active chain.
type PathAndParams struct {
	Path   string         `yaml:"path"`
	Params map[string]any `yaml:"params,omitempty"`
}
