package main

import (
	"github.com/spf13/cobra"

	"github.com/stefreak/nut/internal/git"
	"github.com/stefreak/nut/internal/log"
	"github.com/stefreak/nut/internal/output"
)

func newApplyCmd() *cobra.Command {
	var (
		workspaceArg string
		script       string
	)

	cmd := &cobra.Command{
		Use:     "apply [flags] -- <command> [args...]",
		Short:   "Run a command in every repository of a workspace",
		GroupID: GroupRepository,
		Long: `Run a command sequentially in every repository of the workspace,
with the repository as working directory.

A command that fails in one repository is reported and the run continues
with the next repository. With --script, the script is executed in each
repository and any positional arguments are passed to it.`,
		Example: `  nut apply -- git checkout -b upgrade-go
  nut apply -- sed -i 's/^go 1.24$/go 1.25/' go.mod
  nut apply --script ./upgrade.sh -- --dry-run`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := resolveWorkspace(workspaceArg)
			if err != nil {
				return err
			}

			argv := args
			if script != "" {
				resolved, err := git.ValidateScript(script)
				if err != nil {
					return err
				}
				argv = append([]string{resolved}, args...)
			}

			out := output.FromContext(cmd.Context())
			l := log.FromContext(cmd.Context())
			return git.Apply(cmd.Context(), ws.Path, argv, out.Writer(), l.Writer())
		},
	}

	cmd.Flags().StringVarP(&workspaceArg, "workspace", "w", "", "Workspace id (defaults to the entered workspace)")
	cmd.Flags().StringVarP(&script, "script", "s", "", "Executable script to run in each repository")

	return cmd
}
