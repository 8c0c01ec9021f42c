package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"tabnav/internal/adapters"
	"tabnav/internal/core"
	"tabnav/internal/ports"
	"tabnav/internal/types"
)

// loadAndBuild reads a route tree from disk and builds the router hierarchy
// it describes.
func (s Service) loadAndBuild(ctx context.Context, configPath string) (*core.TabRouter, error) {
	if strings.TrimSpace(configPath) == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("route config path is required")
	}
	tree, err := s.Configs.LoadRouteTree(configPath)
	if err != nil {
		return nil, err
	}
	return BuildRouter(ctx, tree)
}

// BuildRouter turns a declarative route tree into a tab router, recursing
// into nested tab declarations so that each level gets its own child router
// and screen registry.
func BuildRouter(ctx context.Context, tree types.RouteTree) (*core.TabRouter, error) {
	registry := adapters.NewScreenRegistry()
	entries := make([]types.RouteConfigEntry, 0, len(tree.Routes))
	for _, node := range tree.Routes {
		var screen ports.Component
		if node.Tabs != nil {
			child, err := BuildRouter(ctx, *node.Tabs)
			if err != nil {
				return nil, err
			}
			screen = adapters.NavigatorScreen{Name: node.Name, Child: child}
		} else {
			screen = adapters.ScreenToken{Name: node.Name}
		}
		registry.Register(node.Name, screen)
		entries = append(entries, types.RouteConfigEntry{
			RouteName: node.Name,
			Screen:    screen,
			Path:      node.Path,
			Options:   node.Options,
		})
	}
	return core.Build(ctx, entries, core.Options{
		Order:            tree.Order,
		InitialRouteName: tree.InitialRoute,
		BackBehavior:     tree.BackBehavior,
		Screens:          registry,
		OptionsGetter:    adapters.NewOptionsGetterAdapter(tree.Defaults, entries),
		Validator:        adapters.NewConfigValidatorAdapter(),
	})
}
