package policies

import "tabnav/internal/types"

// Bare action names predate the namespaced types and are still accepted at
// every dispatch boundary.
var deprecatedActionTypes = map[types.ActionType]types.ActionType{
	"Init":      types.ActionInit,
	"Back":      types.ActionBack,
	"Navigate":  types.ActionNavigate,
	"SetParams": types.ActionSetParams,
}

// NormalizeAction rewrites a deprecated action shape into its canonical form.
// It is pure and stateless; unknown types pass through untouched.  Nested
// actions are left alone: the child router that receives one normalizes it
// on its own dispatch.
func NormalizeAction(action types.Action) types.Action {
	if canonical, ok := deprecatedActionTypes[action.Type]; ok {
		action.Type = canonical
	}
	return action
}
