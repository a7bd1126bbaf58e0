package main

import (
	"fmt"

	"github.com/aussiebroadwan/teamdir/internal/directory/app"
	"github.com/aussiebroadwan/teamdir/pkg/slogx"
	"github.com/spf13/cobra"
)

func newBuildCmd(opts *options) *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Render the static site",
		Long: `Loads the team data from the first candidate that answers and writes
index.html, one page per profile and state, team.json and manifest.json.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.cfg
			if cmd.Flags().Changed("out") {
				cfg.OutDir = outDir
			}

			ctx := slogx.WithContext(cmd.Context(), opts.logger)
			m, err := app.Build(ctx, cfg)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "built %d profiles into %s (build %s)\n", m.Count, cfg.OutDir, m.BuildID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "public", "Output directory (env TEAMDIR_OUT_DIR)")
	return cmd
}
