package core

import "tabnav/internal/types"

// initialState builds the default navigation state for a dispatch that
// arrived with no prior state: one route per tab, initialized recursively
// through each navigator tab's own router, with the index on the configured
// initial tab.
func (r *TabRouter) initialState(action types.Action) *types.NavigationState {
	routes := make([]*types.NavigationState, 0, len(r.bindings))
	for _, binding := range r.bindings {
		route := &types.NavigationState{Key: binding.routeName, RouteName: binding.routeName}
		if binding.child != nil {
			childAction := types.Action{Type: types.ActionInit}
			if action.Action != nil {
				childAction = *action.Action
			}
			if childState := binding.child.StateForAction(childAction, nil); childState != nil {
				clone := *childState
				clone.Key = binding.routeName
				clone.RouteName = binding.routeName
				route = &clone
			}
		}
		routes = append(routes, route)
	}
	return &types.NavigationState{
		Index:  r.settings.InitialRouteIndex,
		Routes: routes,
	}
}
