package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/stefreak/nut/internal/git"
	"github.com/stefreak/nut/internal/output"
	"github.com/stefreak/nut/internal/ui/static"
)

func newStatusCmd() *cobra.Command {
	var workspaceArg string

	cmd := &cobra.Command{
		Use:     "status",
		Aliases: []string{"st"},
		Short:   "Show the git status of every repository in a workspace",
		GroupID: GroupRepository,
		Long: `Show branch and working-tree state for every repository in the
workspace: staged, modified and untracked counts per repository, plus a
summary line.

Repositories whose status cannot be queried are skipped.`,
		Example: `  nut status
  nut status --workspace 0198d2f0-5a7e-7cc3-a1b2-9f4e8d3c2b1a`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := resolveWorkspace(workspaceArg)
			if err != nil {
				return err
			}

			statuses, err := git.StatusAll(cmd.Context(), ws.Path)
			if err != nil {
				return err
			}

			out := output.FromContext(cmd.Context())

			clean := 0
			for _, s := range statuses {
				if !s.HasChanges {
					clean++
				}
			}

			out.Println("Workspace status:")
			out.Printf("  %d repositories total\n", len(statuses))
			out.Printf("  %d clean, %d with changes\n", clean, len(statuses)-clean)
			out.Println()

			if clean == len(statuses) {
				out.Println("All repositories are clean.")
				return nil
			}

			if isatty.IsTerminal(os.Stdout.Fd()) {
				rows := make([][]string, 0, len(statuses))
				for _, s := range statuses {
					if !s.HasChanges {
						continue
					}
					rows = append(rows, []string{
						s.PathRelative,
						s.CurrentBranch,
						strconv.Itoa(s.StagedCount),
						strconv.Itoa(s.ModifiedCount),
						strconv.Itoa(s.UntrackedCount),
					})
				}
				out.Print(static.RenderTable(
					[]string{"REPOSITORY", "BRANCH", "STAGED", "MODIFIED", "UNTRACKED"}, rows))
				return nil
			}

			for _, s := range statuses {
				if !s.HasChanges {
					continue
				}
				out.Printf("%s (%s)\n", s.PathRelative, s.CurrentBranch)
				out.Printf("    %s\n", changeSummary(s))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspaceArg, "workspace", "w", "", "Workspace id (defaults to the entered workspace)")

	return cmd
}

// changeSummary renders the non-zero counters of one repository.
func changeSummary(s git.RepoStatus) string {
	var parts []string
	if s.StagedCount > 0 {
		parts = append(parts, fmt.Sprintf("%d staged", s.StagedCount))
	}
	if s.ModifiedCount > 0 {
		parts = append(parts, fmt.Sprintf("%d modified", s.ModifiedCount))
	}
	if s.UntrackedCount > 0 {
		parts = append(parts, fmt.Sprintf("%d untracked", s.UntrackedCount))
	}
	return strings.Join(parts, ", ")
}
