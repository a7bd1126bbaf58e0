package main

import (
	"github.com/aussiebroadwan/teamdir/internal/directory/app"
	"github.com/spf13/cobra"
)

func newServeCmd(opts *options) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the local preview server",
		Long: `Serves the grid and profile pages rendered per request, a JSON API under
/v1 and swagger docs under /swagger/. Data is reloaded on an interval and
whenever a local data file changes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.cfg
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}

			application, err := app.New(cfg, opts.logger)
			if err != nil {
				return err
			}
			return application.Run()
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 8080, "HTTP port (env PORT)")
	return cmd
}
