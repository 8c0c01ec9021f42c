package core

import (
	"strings"

	"tabnav/internal/shared"
	"tabnav/internal/types"
)

// PathAndParamsForState encodes a state as a slash-separated path.  The
// active tab contributes its configured segment; a navigator tab appends its
// child's encoding and merges the child's params over its own (child wins on
// key collision).  The returned params map is detached from the state.
func (r *TabRouter) PathAndParamsForState(state *types.NavigationState) types.PathAndParams {
	binding := r.bindings[state.Index]
	route := state.Routes[state.Index]

	path := binding.path
	params := shared.CloneParams(route.Params)
	if binding.child != nil {
		child := binding.child.PathAndParamsForState(route)
		path = binding.path + "/" + child.Path
		if len(child.Params) > 0 {
			params = shared.MergeParams(route.Params, child.Params)
		}
	}
	return types.PathAndParams{Path: path, Params: params}
}

// ActionForPathAndParams decodes a path into the NAVIGATE action that would
// reproduce it.  The first path component is matched against each tab's
// configured segment in order; on a navigator tab the remainder is decoded
// through the child router into the nested action.  When no segment matches,
// every navigator tab is offered the entire raw path, which supports child
// routers whose own codec does not require a tab prefix.  Returns nil when
// nothing can decode the path.
func (r *TabRouter) ActionForPathAndParams(path string, params map[string]any) *types.Action {
	parts := strings.Split(path, "/")
	for _, binding := range r.bindings {
		if binding.path != parts[0] {
			continue
		}
		action := &types.Action{Type: types.ActionNavigate, RouteName: binding.routeName}
		if binding.child != nil {
			action.Action = binding.child.ActionForPathAndParams(strings.Join(parts[1:], "/"), params)
		} else if len(params) > 0 {
			action.Params = params
		}
		return action
	}

	for _, binding := range r.bindings {
		if binding.child == nil {
			continue
		}
		if action := binding.child.ActionForPathAndParams(path, params); action != nil {
			return action
		}
	}
	return nil
}
