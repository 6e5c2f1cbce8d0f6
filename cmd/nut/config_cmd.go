package main

import (
	"github.com/spf13/cobra"

	"github.com/stefreak/nut/internal/config"
	"github.com/stefreak/nut/internal/output"
)

func newConfigCmd() *cobra.Command {
	var (
		workspaceDir string
		cacheDir     string
	)

	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Show or change the configuration",
		GroupID: GroupConfig,
		Long: `Show the current configuration, or change it with flags.

Paths must be absolute or start with ~. The configuration lives in
~/.config/nut/config.toml.`,
		Example: `  nut config
  nut config --workspace-dir ~/workspaces
  nut config --cache-dir /var/cache/nut`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			if workspaceDir == "" && cacheDir == "" {
				out.Printf("workspace_dir = %q\n", cfg.WorkspaceDir)
				out.Printf("cache_dir = %q\n", cfg.CacheDir)
				return nil
			}

			if workspaceDir != "" {
				if err := config.ValidatePath(workspaceDir, "workspace_dir"); err != nil {
					return err
				}
				cfg.WorkspaceDir = workspaceDir
			}
			if cacheDir != "" {
				if err := config.ValidatePath(cacheDir, "cache_dir"); err != nil {
					return err
				}
				cfg.CacheDir = cacheDir
			}

			if err := cfg.Save(); err != nil {
				return err
			}

			if workspaceDir != "" {
				out.Printf("Set workspace_dir to %s\n", workspaceDir)
			}
			if cacheDir != "" {
				out.Printf("Set cache_dir to %s\n", cacheDir)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&workspaceDir, "workspace-dir", "", "Directory that holds all workspaces")
	cmd.Flags().StringVar(&cacheDir, "cache-dir", "", "Mirror cache directory")

	return cmd
}
