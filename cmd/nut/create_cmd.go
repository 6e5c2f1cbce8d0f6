package main

import (
	"github.com/spf13/cobra"

	"github.com/stefreak/nut/internal/log"
	"github.com/stefreak/nut/internal/workspace"
)

func newCreateCmd() *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:     "create",
		Short:   "Create a new workspace and enter it",
		GroupID: GroupWorkspace,
		Long: `Create a new workspace directory and spawn a shell inside it.

The workspace gets a fresh time-sortable id and the given description.
Exit the shell to leave the workspace again.`,
		Example: `  nut create --description "upgrade all services to go 1.25"`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dataDir, err := cfg.DataDir()
			if err != nil {
				return err
			}

			// Nesting workspaces would make entered-workspace detection ambiguous
			if _, entered := workspace.Entered(dataDir); entered {
				return workspace.ErrAlreadyInWorkspace
			}

			ws, err := workspace.Create(dataDir, description)
			if err != nil {
				return err
			}

			l := log.FromContext(cmd.Context())
			l.Printf("Created workspace %s\n", ws.ID)
			l.Printf("Entering workspace (exit the shell to leave)\n")

			return workspace.Enter(ws)
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "What this workspace is for")
	_ = cmd.MarkFlagRequired("description")

	return cmd
}
