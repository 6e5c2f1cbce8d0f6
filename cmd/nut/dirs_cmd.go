package main

import (
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/stefreak/nut/internal/log"
	"github.com/stefreak/nut/internal/output"
)

func newCacheDirCmd() *cobra.Command {
	var copyToClipboard bool

	cmd := &cobra.Command{
		Use:     "cache-dir",
		Short:   "Print the mirror cache directory",
		GroupID: GroupConfig,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cfg.CacheRoot()
			if err != nil {
				return err
			}
			return printDir(cmd, dir, copyToClipboard)
		},
	}

	cmd.Flags().BoolVarP(&copyToClipboard, "copy", "c", false, "Also copy the path to the clipboard")

	return cmd
}

func newDataDirCmd() *cobra.Command {
	var copyToClipboard bool

	cmd := &cobra.Command{
		Use:     "data-dir",
		Short:   "Print the directory that holds all workspaces",
		GroupID: GroupConfig,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cfg.DataDir()
			if err != nil {
				return err
			}
			return printDir(cmd, dir, copyToClipboard)
		},
	}

	cmd.Flags().BoolVarP(&copyToClipboard, "copy", "c", false, "Also copy the path to the clipboard")

	return cmd
}

func newWorkspaceDirCmd() *cobra.Command {
	var (
		workspaceArg    string
		copyToClipboard bool
	)

	cmd := &cobra.Command{
		Use:     "workspace-dir",
		Short:   "Print the directory of a workspace",
		GroupID: GroupConfig,
		Long: `Print the directory of the given workspace, or of the entered one.

Useful in shell functions, e.g. cd "$(nut workspace-dir)".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := resolveWorkspace(workspaceArg)
			if err != nil {
				return err
			}
			return printDir(cmd, ws.Path, copyToClipboard)
		},
	}

	cmd.Flags().StringVarP(&workspaceArg, "workspace", "w", "", "Workspace id (defaults to the entered workspace)")
	cmd.Flags().BoolVarP(&copyToClipboard, "copy", "c", false, "Also copy the path to the clipboard")

	return cmd
}

// printDir writes the path to stdout and optionally to the clipboard.
// Clipboard failures are warnings: the path was already printed.
func printDir(cmd *cobra.Command, dir string, copyToClipboard bool) error {
	output.FromContext(cmd.Context()).Println(dir)

	if copyToClipboard {
		if err := clipboard.WriteAll(dir); err != nil {
			log.FromContext(cmd.Context()).Printf("Warning: failed to copy to clipboard: %v\n", err)
		}
	}
	return nil
}
