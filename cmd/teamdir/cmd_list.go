package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/aussiebroadwan/teamdir/internal/directory/app"
	"github.com/aussiebroadwan/teamdir/internal/directory/domain"
	"github.com/aussiebroadwan/teamdir/internal/directory/service"
	"github.com/aussiebroadwan/teamdir/pkg/slogx"
	"github.com/aussiebroadwan/teamdir/pkg/teamsdk"
	"github.com/spf13/cobra"
)

type listFlags struct {
	q, role, state, sort string
	server               string
	asJSON               bool
}

func newListCmd(opts *options) *cobra.Command {
	var f listFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the directory filtered like the grid",
		Example: `  teamdir list --state TX --sort name
  teamdir list -q officer --json
  teamdir list --server http://localhost:8080 --role lead`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				rows []teamsdk.Member
				err  error
			)
			if f.server != "" {
				rows, err = listRemote(cmd, f)
			} else {
				rows, err = listLocal(cmd, opts, f)
			}
			if err != nil {
				return err
			}

			if f.asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(rows)
			}
			return printTable(cmd.OutOrStdout(), rows)
		},
	}

	cmd.Flags().StringVarP(&f.q, "query", "q", "", "Search name, job title or NMLS")
	cmd.Flags().StringVar(&f.role, "role", "", "Role filter (lead, lo, ops)")
	cmd.Flags().StringVar(&f.state, "state", "", "State filter")
	cmd.Flags().StringVar(&f.sort, "sort", "order", "Sort: order, name or name-desc")
	cmd.Flags().StringVar(&f.server, "server", "", "Query a running preview server instead of loading the data")
	cmd.Flags().BoolVar(&f.asJSON, "json", false, "Print JSON instead of a table")
	return cmd
}

func listLocal(cmd *cobra.Command, opts *options, f listFlags) ([]teamsdk.Member, error) {
	ctx := slogx.WithContext(cmd.Context(), opts.logger)
	snap, err := app.Load(ctx, opts.cfg)
	if err != nil {
		return nil, err
	}

	members := service.Apply(snap.Members, service.Query{
		Q:     f.q,
		Role:  domain.Role(f.role),
		State: f.state,
		Sort:  service.Sort(f.sort),
	})

	rows := make([]teamsdk.Member, len(members))
	for i, m := range members {
		rows[i] = teamsdk.Member{
			Name:      m.Name,
			Slug:      m.Slug,
			Role:      m.Role.String(),
			JobTitle:  m.JobTitle,
			NMLS:      m.NMLS.String(),
			Phone:     m.Phone,
			Email:     m.Email,
			PhotoFile: m.PhotoFile,
			States:    m.States,
			Links:     m.Links,
			Order:     m.Order.Float(),
			Bio:       m.Bio,
			Tint:      m.Role.Tint(),
		}
	}
	return rows, nil
}

func listRemote(cmd *cobra.Command, f listFlags) ([]teamsdk.Member, error) {
	client := teamsdk.NewSDKClient(f.server)
	resp, err := client.ListMembers(cmd.Context(), teamsdk.ListMembersParams{
		Q:     f.q,
		Role:  f.role,
		State: f.state,
		Sort:  f.sort,
	})
	if err != nil {
		return nil, err
	}
	return resp.Members, nil
}

func printTable(out io.Writer, rows []teamsdk.Member) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSLUG\tROLE\tTITLE\tNMLS\tSTATES")
	for _, m := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			m.Name, m.Slug, m.Role, m.JobTitle, m.NMLS, strings.Join(m.States, ","))
	}
	return tw.Flush()
}
