package adapters

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"tabnav/internal/types"
)

type StateFileAdapter struct{}

func NewStateFileAdapter() StateFileAdapter {
	return StateFileAdapter{}
}

func (a StateFileAdapter) Load(path string) (*types.NavigationState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("state file not found").
			WithCause(err)
	}
	var state types.NavigationState
	if err := yaml.Unmarshal(data, &state); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse state yaml").
			WithCause(err)
	}
	return &state, nil
}

func (a StateFileAdapter) Save(path string, state *types.NavigationState) error {
	data, err := yaml.Marshal(state)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode state yaml").
			WithCause(err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write state file").
			WithCause(err)
	}
	return nil
}
