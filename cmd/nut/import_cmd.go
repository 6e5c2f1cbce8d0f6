package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/stefreak/nut/internal/git"
	"github.com/stefreak/nut/internal/github"
	"github.com/stefreak/nut/internal/log"
	"github.com/stefreak/nut/internal/output"
)

// githubHost is the host repositories are imported from.
// TODO: make configurable for GitHub Enterprise hosts.
const githubHost = "github.com"

func newImportCmd() *cobra.Command {
	var (
		workspaceArg string
		query        string
		token        string
		dryRun       bool
		parallel     int
	)

	cmd := &cobra.Command{
		Use:     "import [flags] [owner/repo...]",
		Short:   "Import repositories from GitHub into a workspace",
		GroupID: GroupRepository,
		Long: `Clone repositories into the workspace, either named explicitly as
owner/repo or selected by a GitHub search query.

Clones go through a shared mirror cache: importing the same repository
into several workspaces downloads it only once. Repositories already
present in the workspace are fast-forwarded instead of recloned.`,
		Example: `  nut import golang/go golang/tools
  nut import --query "org:myorg language:go archived:false"
  nut import --query "org:myorg" --dry-run`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if query != "" && len(args) > 0 {
				return fmt.Errorf("pass either --query or repository names, not both")
			}
			if query == "" && len(args) == 0 {
				return fmt.Errorf("nothing to import: pass repository names or --query")
			}

			ws, err := resolveWorkspace(workspaceArg)
			if err != nil {
				return err
			}

			if token == "" {
				if err := github.CheckGH(); err != nil {
					return err
				}
			}
			client := github.Client{Token: token}
			ctx := cmd.Context()

			var repos []github.Repo
			if query != "" {
				repos, err = client.Search(ctx, query)
				if err != nil {
					return err
				}
			} else {
				for _, fullName := range args {
					repo, err := client.Lookup(ctx, fullName)
					if err != nil {
						return err
					}
					repos = append(repos, repo)
				}
			}

			out := output.FromContext(ctx)
			if len(repos) == 0 {
				out.Println("No repositories matched")
				return nil
			}

			if dryRun {
				for _, repo := range repos {
					out.Println(repo.FullName)
				}
				return nil
			}

			out.Printf("Importing %d repositories:\n", len(repos))
			for _, repo := range repos {
				out.Printf("  %s\n", repo.FullName)
			}

			protocol := github.PreferredProtocol(ctx, githubHost)
			l := log.FromContext(ctx)

			infos := make([]git.CloneInfo, 0, len(repos))
			for _, repo := range repos {
				commit, err := client.LatestCommit(ctx, repo.FullName, repo.DefaultBranch)
				if err != nil {
					// Empty repository: clone directly, skip the cache tier
					l.Printf("no commits found for %s, cloning without cache\n", repo.FullName)
					commit = ""
				}
				infos = append(infos, git.CloneInfo{
					FullName:      repo.FullName,
					CloneURL:      protocol.CloneURL(githubHost, repo.FullName),
					LatestCommit:  commit,
					DefaultBranch: repo.DefaultBranch,
				})
			}

			cacheRoot, err := cfg.CacheRoot()
			if err != nil {
				return err
			}
			opts := git.CloneOptions{
				WorkspaceDir: ws.Path,
				CacheDir:     filepath.Join(cacheRoot, githubHost),
			}

			if err := git.CloneAll(ctx, opts, infos, parallel); err != nil {
				return err
			}

			out.Printf("Imported %d repositories into workspace %s\n", len(repos), ws.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspaceArg, "workspace", "w", "", "Workspace id (defaults to the entered workspace)")
	cmd.Flags().StringVar(&query, "query", "", "GitHub search query selecting repositories")
	cmd.Flags().StringVar(&token, "github-token", "", "GitHub token (defaults to gh CLI credentials)")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "List matching repositories without cloning")
	cmd.Flags().IntVarP(&parallel, "parallel", "p", 4, "Number of concurrent clones")

	return cmd
}
