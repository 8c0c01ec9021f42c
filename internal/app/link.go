package app

import (
	"context"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// ResolveLink decodes a deep-link path into the action that reproduces it.
// A path no tab can decode yields a nil action, not an error.  With Apply
// set, the action is additionally dispatched against a fresh default state.
func (s Service) ResolveLink(ctx context.Context, req ResolveLinkRequest) (ResolveLinkResult, error) {
	router, err := s.loadAndBuild(ctx, req.ConfigPath)
	if err != nil {
		return ResolveLinkResult{}, err
	}
	action := router.ActionForPathAndParams(req.Path, req.Params)
	result := ResolveLinkResult{Action: action}
	if action != nil && req.Apply {
		result.State = router.StateForAction(*action, nil)
	}
	return result, nil
}

// EncodeLink encodes a stored navigation state back into its path form.
func (s Service) EncodeLink(ctx context.Context, req EncodeLinkRequest) (EncodeLinkResult, error) {
	router, err := s.loadAndBuild(ctx, req.ConfigPath)
	if err != nil {
		return EncodeLinkResult{}, err
	}
	if req.StatePath == "" {
		return EncodeLinkResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("state file path is required")
	}
	state, err := s.States.Load(req.StatePath)
	if err != nil {
		return EncodeLinkResult{}, err
	}
	if err := router.ValidateState(state); err != nil {
		return EncodeLinkResult{}, err
	}
	encoded := router.PathAndParamsForState(state)
	return EncodeLinkResult{Path: encoded.Path, Params: encoded.Params}, nil
}
