package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"tabnav/internal/app"
)

type linkOptions struct {
	Routes string
	Path   string
	Params []string
	Apply  bool
}

func newLinkCommand() *cobra.Command {
	opts := linkOptions{}
	cmd := &cobra.Command{
		Use:   "link",
		Short: "Resolve a deep-link path into a navigation action",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLink(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Routes, "routes", "", "Route config file path")
	cmd.Flags().StringVar(&opts.Path, "path", "", "Deep-link path to resolve")
	cmd.Flags().StringSliceVar(&opts.Params, "param", nil, "Link params as key=value")
	cmd.Flags().BoolVar(&opts.Apply, "apply", false, "Also apply the action to a fresh state")
	_ = viper.BindPFlag("routes", cmd.Flags().Lookup("routes"))
	return cmd
}

func runLink(ctx context.Context, cmd *cobra.Command, opts linkOptions) error {
	params, err := parseParams(opts.Params)
	if err != nil {
		return err
	}
	service := app.NewService()
	result, err := service.ResolveLink(ctx, app.ResolveLinkRequest{
		ConfigPath: resolveString(cmd, opts.Routes, "routes", "routes"),
		Path:       opts.Path,
		Params:     params,
		Apply:      opts.Apply,
	})
	if err != nil {
		return err
	}
	if result.Action == nil {
		fmt.Println("no route can handle this path")
		return nil
	}
	encoded, err := yaml.Marshal(result.Action)
	if err != nil {
		return err
	}
	fmt.Print(string(encoded))
	if result.State != nil {
		stateEncoded, err := yaml.Marshal(result.State)
		if err != nil {
			return err
		}
		fmt.Println("---")
		fmt.Print(string(stateEncoded))
	}
	return nil
}
