package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"tabnav/internal/types"
)

// Dispatch applies a single action against the stored navigation state.  An
// unhandled action is not an error: the result reports Handled=false and
// carries the input state unchanged.
func (s Service) Dispatch(ctx context.Context, req DispatchRequest) (DispatchResult, error) {
	router, err := s.loadAndBuild(ctx, req.ConfigPath)
	if err != nil {
		return DispatchResult{}, err
	}

	var state *types.NavigationState
	if req.StatePath != "" {
		state, err = s.States.Load(req.StatePath)
		if err != nil {
			return DispatchResult{}, err
		}
		if err := router.ValidateState(state); err != nil {
			return DispatchResult{}, err
		}
	}

	next := router.StateForAction(req.Action, state)
	result := DispatchResult{
		Handled: next != nil,
		Changed: next != nil && next != state,
		State:   next,
	}
	if next == nil {
		result.State = state
	}
	log.Ctx(ctx).Debug().
		Str("action", string(req.Action.Type)).
		Bool("handled", result.Handled).
		Bool("changed", result.Changed).
		Msg("action dispatched")

	if req.Save && req.StatePath != "" {
		if err := s.States.Save(req.StatePath, result.State); err != nil {
			return DispatchResult{}, err
		}
	}
	return result, nil
}
