package core

import (
	"tabnav/internal/policies"
	"tabnav/internal/types"
)

// StateForAction is the transition function.  It returns nil when the action
// is not handled, or produced no change, relative to a supplied input state.
// With a nil input state a default state is materialized first and something
// non-nil is always returned.  Unchanged states come back as the exact
// pointer that went in.
//
// Priority order: the active tab's child router gets first claim on the
// action; then BACK-to-initial and NAVIGATE resolve a target index; a plain
// index move beats everything that follows; last, the action is broadcast to
// the inactive tabs in order, first taker wins.
func (r *TabRouter) StateForAction(action types.Action, state *types.NavigationState) *types.NavigationState {
	action = policies.NormalizeAction(action)

	inputState := state
	if state == nil {
		state = r.initialState(action)
	}

	activeBinding := r.bindings[state.Index]
	activeRoute := state.Routes[state.Index]
	if activeBinding.child != nil {
		childAction := action
		if action.Action != nil {
			childAction = *action.Action
		}
		next := activeBinding.child.StateForAction(childAction, activeRoute)
		if next == nil && inputState != nil {
			return nil
		}
		if next != nil && next != activeRoute {
			routes := append([]*types.NavigationState(nil), state.Routes...)
			routes[state.Index] = next
			out := *state
			out.Routes = routes
			return &out
		}
	}

	// An action only qualifies for back handling when it carries no key or
	// names the active route's key.
	activeTabIndex := state.Index
	backEligible := action.Key == "" || action.Key == activeRoute.Key
	if action.Type == types.ActionBack && backEligible && r.settings.BackBehavior == types.BackBehaviorInitialRoute {
		activeTabIndex = r.settings.InitialRouteIndex
	}

	didNavigate := false
	if action.Type == types.ActionNavigate {
		for i, binding := range r.bindings {
			if binding.routeName != action.RouteName {
				continue
			}
			activeTabIndex = i
			didNavigate = true
			if action.Action != nil && binding.child != nil {
				tabRoute := state.Routes[i]
				if next := binding.child.StateForAction(*action.Action, tabRoute); next != nil && next != tabRoute {
					routes := append([]*types.NavigationState(nil), state.Routes...)
					routes[i] = next
					out := *state
					out.Index = i
					out.Routes = routes
					return &out
				}
			}
			break
		}
	}

	if activeTabIndex != state.Index {
		out := *state
		out.Index = activeTabIndex
		return &out
	}
	if didNavigate && inputState == nil {
		return state
	}
	if didNavigate {
		// Navigating to the already-active tab with no further effect is a
		// no-op action, not a new state.
		return nil
	}

	// Broadcast: offer the action to the inactive tabs' child routers in tab
	// order and stop at the first one that reacts.  A child that returns nil
	// takes focus but keeps its previously stored route.
	index := state.Index
	routes := state.Routes
	routesChanged := false
	for i, binding := range r.bindings {
		if i == state.Index || binding.child == nil {
			continue
		}
		tabRoute := state.Routes[i]
		next := binding.child.StateForAction(action, tabRoute)
		if next == nil {
			index = i
			break
		}
		if next != tabRoute {
			routes = append([]*types.NavigationState(nil), state.Routes...)
			routes[i] = next
			routesChanged = true
			index = i
			break
		}
	}
	if index != state.Index || routesChanged {
		out := *state
		out.Index = index
		out.Routes = routes
		return &out
	}
	return state
}
