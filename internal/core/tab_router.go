package core

import (
	"context"
	"fmt"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"tabnav/internal/ports"
	"tabnav/internal/types"
)

// tabBinding fixes, per tab, the path segment and whether the screen wraps a
// child router.  Bindings are computed once at Build and never change; the
// index-to-tab correspondence of every state handled by this router is
// positional against this slice.
type tabBinding struct {
	routeName string
	path      string
	child     ports.Router // nil for leaf tabs
}

// Settings is the immutable routing table computed at construction.
type Settings struct {
	Order             []string
	InitialRouteIndex int
	BackBehavior      types.BackBehavior
}

// Options configures Build.  All fields are optional: Order defaults to
// entry order, per-tab paths default to the route name, InitialRouteName to
// the first tab, and BackBehavior to returning to the initial tab.
type Options struct {
	Order            []string
	Paths            map[string]string
	InitialRouteName string
	BackBehavior     types.BackBehavior

	Screens       ports.ScreenResolver
	OptionsGetter ports.ScreenOptionsGetter
	Validator     ports.ConfigValidator
}

// TabRouter routes a fixed, ordered set of tabs, any of which may embed a
// nested navigator.  It satisfies ports.Router, so tab routers compose with
// themselves and with any other router implementation.
type TabRouter struct {
	settings Settings
	bindings []tabBinding
	screens  ports.ScreenResolver
	options  ports.ScreenOptionsGetter
}

// Build validates the route config and closes over the computed routing
// table.  Misconfiguration is fatal here; nothing after construction can
// repair a bad table.
func Build(ctx context.Context, entries []types.RouteConfigEntry, opts Options) (*TabRouter, error) {
	if opts.Validator != nil {
		if err := opts.Validator.ValidateRouteConfigs(entries); err != nil {
			return nil, err
		}
	}
	if len(entries) == 0 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("route config must declare at least one route")
	}

	byName := make(map[string]types.RouteConfigEntry, len(entries))
	for _, entry := range entries {
		assert.NotEmpty(ctx, entry.RouteName, "route name must be set")
		byName[entry.RouteName] = entry
	}

	order := opts.Order
	if len(order) == 0 {
		order = make([]string, 0, len(entries))
		for _, entry := range entries {
			order = append(order, entry.RouteName)
		}
	}

	bindings := make([]tabBinding, 0, len(order))
	for _, routeName := range order {
		entry, ok := byName[routeName]
		if !ok {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("order references unknown route: %s", routeName))
		}
		segment := routeName
		if entry.Path != nil {
			segment = *entry.Path
		}
		if explicit, ok := opts.Paths[routeName]; ok {
			segment = explicit
		}
		binding := tabBinding{routeName: routeName, path: segment}
		if navigator, ok := entry.Screen.(ports.Navigator); ok {
			binding.child = navigator.Router()
		}
		bindings = append(bindings, binding)
	}

	initialIndex := 0
	if opts.InitialRouteName != "" {
		found := false
		for i, routeName := range order {
			if routeName == opts.InitialRouteName {
				initialIndex = i
				found = true
				break
			}
		}
		if !found {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("invalid initial route name: %s", opts.InitialRouteName))
		}
	}

	backBehavior := opts.BackBehavior
	if backBehavior == "" {
		backBehavior = types.BackBehaviorInitialRoute
	}
	if backBehavior != types.BackBehaviorInitialRoute && backBehavior != types.BackBehaviorNone {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid back behavior: %s", backBehavior))
	}

	router := &TabRouter{
		settings: Settings{
			Order:             order,
			InitialRouteIndex: initialIndex,
			BackBehavior:      backBehavior,
		},
		bindings: bindings,
		screens:  opts.Screens,
		options:  opts.OptionsGetter,
	}
	log.Ctx(ctx).Debug().
		Int("tabs", len(bindings)).
		Str("initial_route", order[initialIndex]).
		Msg("tab router built")
	return router, nil
}

// Settings returns a copy of the routing table computed at construction.
func (r *TabRouter) Settings() Settings {
	settings := r.settings
	settings.Order = append([]string(nil), r.settings.Order...)
	return settings
}
