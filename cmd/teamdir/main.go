// Command teamdir renders the team directory as a static site and serves a
// local preview of it.
//
// Usage:
//
//	teamdir build --out public
//	teamdir serve --port 8080
//	teamdir list --state TX --sort name
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/aussiebroadwan/teamdir/internal/directory/app"
	"github.com/spf13/cobra"
)

// options collects the flags shared by every subcommand. Flags override the
// environment read by app.LoadConfig.
type options struct {
	cfg    app.Config
	logger *slog.Logger

	candidates []string
	origin     string
	basePath   string
	imageDir   string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "teamdir",
		Short:         "Team directory site generator",
		Long:          `Renders the team directory (card grid and profile pages) from a JSON or YAML data file.`,
		Version:       app.BuildVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
	}

	root.PersistentFlags().StringSliceVarP(&opts.candidates, "data", "d", nil, "Data candidates tried in order (URLs or paths)")
	root.PersistentFlags().StringVar(&opts.origin, "origin", "", "Site origin for the default data candidates (env TEAMDIR_SITE_ORIGIN)")
	root.PersistentFlags().StringVar(&opts.basePath, "base-path", "", "Path prefix the site is published under (env TEAMDIR_BASE_PATH)")
	root.PersistentFlags().StringVar(&opts.imageDir, "images", "", "Local image directory (env TEAMDIR_IMAGE_DIR)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error (env LOG_LEVEL)")

	root.AddCommand(newBuildCmd(opts))
	root.AddCommand(newServeCmd(opts))
	root.AddCommand(newListCmd(opts))

	return root
}

func (o *options) load(cmd *cobra.Command) error {
	cfg, err := app.LoadConfig()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("data") {
		cfg.DataCandidates = o.candidates
	}
	if flags.Changed("origin") {
		cfg.SiteOrigin = o.origin
	}
	if flags.Changed("base-path") {
		cfg.BasePath = o.basePath
	}
	if flags.Changed("images") {
		cfg.ImageDir = o.imageDir
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}

	o.cfg = cfg
	// Logs go to stderr so list output on stdout stays clean.
	o.logger = app.NewLogger(cfg, cmd.ErrOrStderr())
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "teamdir:", err)
		stop()
		os.Exit(1)
	}
}
