package adapters

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"tabnav/internal/types"
)

type RouteConfigFileAdapter struct{}

func NewRouteConfigFileAdapter() RouteConfigFileAdapter {
	return RouteConfigFileAdapter{}
}

// LoadRouteTree reads a declarative router hierarchy from a yaml file.
// Structural validation beyond "parses into the expected shape" is left to
// the config validator at build time.
func (a RouteConfigFileAdapter) LoadRouteTree(path string) (types.RouteTree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.RouteTree{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("route config file not found").
			WithCause(err)
	}
	var tree types.RouteTree
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return types.RouteTree{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse route config yaml").
			WithCause(err)
	}
	if len(tree.Routes) == 0 {
		return types.RouteTree{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("route config must declare at least one route")
	}
	return tree, nil
}
