package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"tabnav/internal/app"
	"tabnav/internal/types"
)

type dispatchOptions struct {
	Routes     string
	State      string
	Type       string
	Route      string
	Key        string
	Params     []string
	ActionFile string
	Save       bool
}

func newDispatchCommand() *cobra.Command {
	opts := dispatchOptions{}
	cmd := &cobra.Command{
		Use:   "dispatch",
		Short: "Apply a navigation action to a stored state",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDispatch(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Routes, "routes", "", "Route config file path")
	cmd.Flags().StringVar(&opts.State, "state", "", "State file path")
	cmd.Flags().StringVar(&opts.Type, "type", "", "Action type (e.g. Navigation/NAVIGATE)")
	cmd.Flags().StringVar(&opts.Route, "route", "", "Target route name for NAVIGATE")
	cmd.Flags().StringVar(&opts.Key, "key", "", "Route key for BACK eligibility")
	cmd.Flags().StringSliceVar(&opts.Params, "param", nil, "Action params as key=value")
	cmd.Flags().StringVar(&opts.ActionFile, "action-file", "", "Full action as a yaml file (overrides the flag form)")
	cmd.Flags().BoolVar(&opts.Save, "save", false, "Write the resulting state back to the state file")
	_ = viper.BindPFlag("routes", cmd.Flags().Lookup("routes"))
	_ = viper.BindPFlag("state", cmd.Flags().Lookup("state"))
	_ = viper.BindPFlag("save", cmd.Flags().Lookup("save"))
	return cmd
}

func runDispatch(ctx context.Context, cmd *cobra.Command, opts dispatchOptions) error {
	action, err := actionFromOptions(opts)
	if err != nil {
		return err
	}
	service := app.NewService()
	result, err := service.Dispatch(ctx, app.DispatchRequest{
		ConfigPath: resolveString(cmd, opts.Routes, "routes", "routes"),
		StatePath:  resolveString(cmd, opts.State, "state", "state"),
		Action:     action,
		Save:       resolveBool(cmd, opts.Save, "save", "save"),
	})
	if err != nil {
		return err
	}
	if !result.Handled {
		fmt.Println("action not handled; state unchanged")
		return nil
	}
	encoded, err := yaml.Marshal(result.State)
	if err != nil {
		return err
	}
	fmt.Print(string(encoded))
	return nil
}

func actionFromOptions(opts dispatchOptions) (types.Action, error) {
	if opts.ActionFile != "" {
		data, err := os.ReadFile(opts.ActionFile)
		if err != nil {
			return types.Action{}, errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg("action file not found").
				WithCause(err)
		}
		var action types.Action
		if err := yaml.Unmarshal(data, &action); err != nil {
			return types.Action{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to parse action yaml").
				WithCause(err)
		}
		return action, nil
	}
	if strings.TrimSpace(opts.Type) == "" {
		return types.Action{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("action type is required")
	}
	params, err := parseParams(opts.Params)
	if err != nil {
		return types.Action{}, err
	}
	return types.Action{
		Type:      types.ActionType(opts.Type),
		RouteName: opts.Route,
		Key:       opts.Key,
		Params:    params,
	}, nil
}

func parseParams(pairs []string) (map[string]any, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	params := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		parts := strings.SplitN(pair, "=", 2)
		if len(parts) != 2 || strings.TrimSpace(parts[0]) == "" {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("invalid param, expected key=value: %s", pair))
		}
		params[parts[0]] = parts[1]
	}
	return params, nil
}
