package app

import "tabnav/internal/types"

type ValidateRequest struct {
	ConfigPath string
}

type ValidateResult struct {
	Tabs         int
	InitialRoute string
}

type InitRequest struct {
	ConfigPath string
	StatePath  string
}

type InitResult struct {
	State *types.NavigationState
}

type DispatchRequest struct {
	ConfigPath string
	StatePath  string
	Action     types.Action
	Save       bool
}

type DispatchResult struct {
	Handled bool
	Changed bool
	State   *types.NavigationState
}

type ResolveLinkRequest struct {
	ConfigPath string
	Path       string
	Params     map[string]any
	Apply      bool
}

type ResolveLinkResult struct {
	Action *types.Action
	State  *types.NavigationState
}

type EncodeLinkRequest struct {
	ConfigPath string
	StatePath  string
}

type EncodeLinkResult struct {
	Path   string
	Params map[string]any
}
