package app

import (
	"context"

	"tabnav/internal/types"
)

// Init builds the router and materializes its default navigation state,
// optionally persisting it for later dispatches.
func (s Service) Init(ctx context.Context, req InitRequest) (InitResult, error) {
	router, err := s.loadAndBuild(ctx, req.ConfigPath)
	if err != nil {
		return InitResult{}, err
	}
	state := router.StateForAction(types.Action{Type: types.ActionInit}, nil)
	if req.StatePath != "" {
		if err := s.States.Save(req.StatePath, state); err != nil {
			return InitResult{}, err
		}
	}
	return InitResult{State: state}, nil
}
