package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stefreak/nut/internal/log"
	"github.com/stefreak/nut/internal/workspace"
)

func newEnterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "enter <workspace-id>",
		Short:   "Enter an existing workspace",
		GroupID: GroupWorkspace,
		Long: `Spawn a shell inside the given workspace directory.

Exit the shell to leave the workspace again.`,
		Example: `  nut enter 0198d2f0-5a7e-7cc3-a1b2-9f4e8d3c2b1a`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dataDir, err := cfg.DataDir()
			if err != nil {
				return err
			}

			if _, entered := workspace.Entered(dataDir); entered {
				return workspace.ErrAlreadyInWorkspace
			}

			id, err := workspace.ParseID(args[0])
			if err != nil {
				return err
			}

			ws := workspace.Get(dataDir, id)
			if _, err := os.Stat(ws.Path); err != nil {
				return fmt.Errorf("workspace %s does not exist (see 'nut list')", id)
			}

			l := log.FromContext(cmd.Context())
			l.Printf("Entering workspace %s (exit the shell to leave)\n", ws.ID)

			return workspace.Enter(ws)
		},
	}

	return cmd
}
