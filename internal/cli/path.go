package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tabnav/internal/app"
)

type pathOptions struct {
	Routes string
	State  string
}

func newPathCommand() *cobra.Command {
	opts := pathOptions{}
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Encode a stored navigation state as a path",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPath(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Routes, "routes", "", "Route config file path")
	cmd.Flags().StringVar(&opts.State, "state", "", "State file path")
	_ = viper.BindPFlag("routes", cmd.Flags().Lookup("routes"))
	_ = viper.BindPFlag("state", cmd.Flags().Lookup("state"))
	return cmd
}

func runPath(ctx context.Context, cmd *cobra.Command, opts pathOptions) error {
	service := app.NewService()
	result, err := service.EncodeLink(ctx, app.EncodeLinkRequest{
		ConfigPath: resolveString(cmd, opts.Routes, "routes", "routes"),
		StatePath:  resolveString(cmd, opts.State, "state", "state"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("path: %s\n", result.Path)
	for key, value := range result.Params {
		fmt.Printf("param: %s=%v\n", key, value)
	}
	return nil
}
