package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"github.com/stefreak/nut/internal/output"
	"github.com/stefreak/nut/internal/ui/static"
	"github.com/stefreak/nut/internal/workspace"
)

func newListCmd() *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all workspaces",
		GroupID: GroupWorkspace,
		Long: `List all workspaces, most recently created first.

With --filter, workspaces are fuzzy-matched against their id and
description.`,
		Example: `  nut list
  nut list --filter "go 1.25"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dataDir, err := cfg.DataDir()
			if err != nil {
				return err
			}

			infos, err := workspace.List(dataDir)
			if err != nil {
				return err
			}

			if filter != "" {
				infos = filterWorkspaces(infos, filter)
			}

			out := output.FromContext(cmd.Context())
			if len(infos) == 0 {
				out.Println("No workspaces found")
				return nil
			}

			if isatty.IsTerminal(os.Stdout.Fd()) {
				rows := make([][]string, 0, len(infos))
				for _, info := range infos {
					rows = append(rows, []string{
						info.ID.String(),
						info.CreatedAt.Format("2006-01-02 15:04"),
						info.Description,
					})
				}
				out.Print(static.RenderTable([]string{"ID", "CREATED", "DESCRIPTION"}, rows))
				return nil
			}

			// Tab-separated for pipes and scripts
			for _, info := range infos {
				out.Printf("%s\t%s\t%s\n",
					info.ID, info.CreatedAt.Format("2006-01-02 15:04"), info.Description)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&filter, "filter", "f", "", "Fuzzy-filter workspaces by id and description")

	return cmd
}

// filterWorkspaces keeps workspaces whose id or description fuzzy-matches
// the pattern, preserving the newest-first order.
func filterWorkspaces(infos []workspace.Info, pattern string) []workspace.Info {
	haystack := make([]string, len(infos))
	for i, info := range infos {
		haystack[i] = fmt.Sprintf("%s %s", info.ID, info.Description)
	}

	matched := make([]bool, len(infos))
	for _, m := range fuzzy.Find(pattern, haystack) {
		matched[m.Index] = true
	}

	filtered := make([]workspace.Info, 0, len(infos))
	for i, info := range infos {
		if matched[i] {
			filtered = append(filtered, info)
		}
	}
	return filtered
}
