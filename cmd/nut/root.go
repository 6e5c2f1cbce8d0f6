package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/stefreak/nut/internal/config"
	"github.com/stefreak/nut/internal/git"
	"github.com/stefreak/nut/internal/log"
	"github.com/stefreak/nut/internal/output"
)

var (
	// Global flags
	verbose bool
	quiet   bool

	// Shared state injected into commands
	cfg config.Config
)

// Command group IDs for organizing help output
const (
	GroupWorkspace  = "workspace"
	GroupRepository = "repository"
	GroupConfig     = "config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "nut",
	Short: "Workspace manager for many repositories",
	Long: `nut manages workspaces: directory trees of many independent
repositories checked out together.

Workspaces are named by time-sortable ids. Repositories are imported from
GitHub through a shared mirror cache, so cloning the same repository into
several workspaces pays the network cost only once.`,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2, // Enable typo suggestions
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Flags are parsed by now, so the logger sees --verbose/--quiet
		ctx := cmd.Context()
		ctx = log.WithLogger(ctx, log.New(os.Stderr, verbose, quiet))
		ctx = output.WithPrinter(ctx, os.Stdout)
		cmd.SetContext(ctx)

		// Skip git check for completion and help commands
		if cmd.Name() == "completion" || cmd.Name() == "__complete" || cmd.Name() == "help" {
			return nil
		}
		return git.CheckGit()
	},
	// Run is not set - shows help when no subcommand provided
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	loadedCfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	cfg = loadedCfg

	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Run 'nut -h' for help")
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show external commands being executed")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Add command groups for organized help output
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupWorkspace, Title: "Workspace Commands:"},
		&cobra.Group{ID: GroupRepository, Title: "Repository Commands:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
	)

	// Workspace commands
	rootCmd.AddCommand(newCreateCmd())
	rootCmd.AddCommand(newEnterCmd())
	rootCmd.AddCommand(newListCmd())

	// Repository commands
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newApplyCmd())
	rootCmd.AddCommand(newImportCmd())

	// Configuration commands
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newCacheDirCmd())
	rootCmd.AddCommand(newDataDirCmd())
	rootCmd.AddCommand(newWorkspaceDirCmd())
}
