package core

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"tabnav/internal/ports"
	"tabnav/internal/types"
)

// ComponentForState resolves the component for the state's active tab,
// recursing through navigator tabs.  An index outside the routing table is an
// invariant violation somewhere upstream and is surfaced loudly instead of
// being defaulted away.
func (r *TabRouter) ComponentForState(state *types.NavigationState) (ports.Component, error) {
	if state == nil || state.Index < 0 || state.Index >= len(r.bindings) {
		index := -1
		if state != nil {
			index = state.Index
		}
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("there is no route defined for index %d", index))
	}
	binding := r.bindings[state.Index]
	if binding.child != nil {
		return binding.child.ComponentForState(state.Routes[state.Index])
	}
	return r.ComponentForRouteName(binding.routeName)
}

// ComponentForRouteName is a direct screen lookup; no state involved.
func (r *TabRouter) ComponentForRouteName(routeName string) (ports.Component, error) {
	if r.screens == nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("no screen resolver configured")
	}
	return r.screens.ScreenForRouteName(routeName)
}

// ScreenConfig delegates entirely to the per-route options resolver.
func (r *TabRouter) ScreenConfig(state *types.NavigationState) (types.ScreenOptions, error) {
	route := state.ActiveRoute()
	if route == nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("there is no route defined for index %d", state.Index))
	}
	if r.options == nil {
		return nil, nil
	}
	return r.options.ScreenOptions(route.RouteName)
}
