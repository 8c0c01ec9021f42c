package adapters

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"tabnav/internal/types"
)

// ConfigValidatorAdapter performs the structural route-config checks that
// must hold before a router can be built: at least one route, unique
// non-blank names, and a screen value per route.
type ConfigValidatorAdapter struct{}

func NewConfigValidatorAdapter() ConfigValidatorAdapter {
	return ConfigValidatorAdapter{}
}

func (a ConfigValidatorAdapter) ValidateRouteConfigs(entries []types.RouteConfigEntry) error {
	if len(entries) == 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("route config must declare at least one route")
	}
	seen := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		if strings.TrimSpace(entry.RouteName) == "" {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("route name must not be blank")
		}
		if _, ok := seen[entry.RouteName]; ok {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("duplicate route name: %s", entry.RouteName))
		}
		seen[entry.RouteName] = struct{}{}
		if entry.Screen == nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("route %s has no screen", entry.RouteName))
		}
	}
	return nil
}
