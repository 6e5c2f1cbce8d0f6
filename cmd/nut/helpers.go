package main

import (
	"github.com/stefreak/nut/internal/workspace"
)

// resolveWorkspace returns the workspace from an explicit --workspace
// argument, falling back to the currently entered one.
func resolveWorkspace(workspaceArg string) (workspace.Workspace, error) {
	dataDir, err := cfg.DataDir()
	if err != nil {
		return workspace.Workspace{}, err
	}
	return workspace.Resolve(dataDir, workspaceArg)
}
