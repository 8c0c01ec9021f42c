package core

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"tabnav/internal/types"
)

// stateValidator is satisfied by child routers that can vet a stored state
// against their own routing table.
type stateValidator interface {
	ValidateState(state *types.NavigationState) error
}

// ValidateState checks a state that entered the process from outside against
// the routing table before the dispatcher or codec index into it.  States
// produced by this router always pass; a stale or hand-edited state file may
// not, for example when a tab was removed from the config after the state
// was saved.
func (r *TabRouter) ValidateState(state *types.NavigationState) error {
	if state == nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("navigation state must not be nil")
	}
	if len(state.Routes) != len(r.bindings) {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("state has %d routes, routing table has %d tabs", len(state.Routes), len(r.bindings)))
	}
	if state.Index < 0 || state.Index >= len(state.Routes) {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("there is no route defined for index %d", state.Index))
	}
	for i, binding := range r.bindings {
		route := state.Routes[i]
		if route == nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("state route %d is missing", i))
		}
		if route.RouteName != binding.routeName {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("state route %d is %s, routing table expects %s", i, route.RouteName, binding.routeName))
		}
		if binding.child == nil {
			continue
		}
		if validator, ok := binding.child.(stateValidator); ok {
			if err := validator.ValidateState(route); err != nil {
				return err
			}
		}
	}
	return nil
}
