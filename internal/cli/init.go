package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"tabnav/internal/app"
)

type initOptions struct {
	Routes string
	State  string
}

func newInitCommand() *cobra.Command {
	opts := initOptions{}
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Materialize the default navigation state",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Routes, "routes", "", "Route config file path")
	cmd.Flags().StringVar(&opts.State, "state", "", "State file to write (optional)")
	_ = viper.BindPFlag("routes", cmd.Flags().Lookup("routes"))
	_ = viper.BindPFlag("state", cmd.Flags().Lookup("state"))
	return cmd
}

func runInit(ctx context.Context, cmd *cobra.Command, opts initOptions) error {
	service := app.NewService()
	result, err := service.Init(ctx, app.InitRequest{
		ConfigPath: resolveString(cmd, opts.Routes, "routes", "routes"),
		StatePath:  resolveString(cmd, opts.State, "state", "state"),
	})
	if err != nil {
		return err
	}
	encoded, err := yaml.Marshal(result.State)
	if err != nil {
		return err
	}
	fmt.Print(string(encoded))
	return nil
}
