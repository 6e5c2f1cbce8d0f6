package workspace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// EnvWorkspaceID marks an entered workspace in the environment of the
// spawned shell and everything launched from it.
const EnvWorkspaceID = "NUT_WORKSPACE_ID"

// markerDir holds workspace metadata inside the workspace directory.
const markerDir = ".nut"

var (
	// ErrAlreadyInWorkspace is returned when creating or entering a
	// workspace from within another one.
	ErrAlreadyInWorkspace = errors.New(
		"already in a workspace: exit it first (for example 'cd ~' or leaving the shell)")

	// ErrNotInWorkspace is returned when no workspace was given and none
	// could be inferred from the environment or working directory.
	ErrNotInWorkspace = errors.New(
		"not in a workspace: create one with 'nut create', enter one with 'nut enter <id>', or pass --workspace")
)

// Workspace is a directory tree holding one or more repository checkouts,
// named by a time-sortable id.
type Workspace struct {
	ID   uuid.UUID
	Path string
}

// Info describes a workspace for listing.
type Info struct {
	ID          uuid.UUID
	CreatedAt   time.Time
	Description string
}

// NewID returns a fresh workspace id. Ids are UUIDv7: 128 bits,
// time-ordered, and lexicographically sortable in their canonical form,
// so directory listings sort by creation time.
func NewID() (uuid.UUID, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to generate workspace id: %w", err)
	}
	return id, nil
}

// ParseID parses a workspace id from its canonical string form.
func ParseID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid workspace id %q: %w", s, err)
	}
	return id, nil
}

// CreatedAt extracts the creation time embedded in a workspace id.
func CreatedAt(id uuid.UUID) time.Time {
	sec, nsec := id.Time().UnixTime()
	return time.Unix(sec, nsec).UTC()
}

// Get returns the workspace with the given id under dataDir.
// The workspace directory is not required to exist.
func Get(dataDir string, id uuid.UUID) Workspace {
	return Workspace{ID: id, Path: filepath.Join(dataDir, id.String())}
}

// Create creates a new workspace under dataDir with the given description.
func Create(dataDir, description string) (Workspace, error) {
	id, err := NewID()
	if err != nil {
		return Workspace{}, err
	}

	ws := Get(dataDir, id)
	marker := filepath.Join(ws.Path, markerDir)
	if err := os.MkdirAll(marker, 0755); err != nil {
		return Workspace{}, fmt.Errorf("failed to create workspace directory %s: %w", marker, err)
	}

	descPath := filepath.Join(marker, "description")
	if err := os.WriteFile(descPath, []byte(description), 0644); err != nil {
		return Workspace{}, fmt.Errorf("failed to write %s: %w", descPath, err)
	}

	return ws, nil
}

// Resolve returns the workspace from an explicit id argument, or the
// currently entered one when the argument is empty.
func Resolve(dataDir, workspaceArg string) (Workspace, error) {
	if workspaceArg != "" {
		id, err := ParseID(workspaceArg)
		if err != nil {
			return Workspace{}, err
		}
		return Get(dataDir, id), nil
	}

	id, ok := Entered(dataDir)
	if !ok {
		return Workspace{}, ErrNotInWorkspace
	}
	return Get(dataDir, id), nil
}

// Entered reports the currently entered workspace, if any. The environment
// variable set by the entered shell wins; otherwise the working directory
// is checked for being inside a workspace under dataDir.
func Entered(dataDir string) (uuid.UUID, bool) {
	if v := os.Getenv(EnvWorkspaceID); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			return id, true
		}
	}

	cwd, err := os.Getwd()
	if err != nil {
		return uuid.Nil, false
	}
	rel, err := filepath.Rel(dataDir, cwd)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return uuid.Nil, false
	}
	first := rel
	if i := strings.IndexByte(rel, filepath.Separator); i != -1 {
		first = rel[:i]
	}
	id, err := uuid.Parse(first)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// Description reads the workspace description, or a placeholder when the
// description file is missing or unreadable.
func (w Workspace) Description() string {
	data, err := os.ReadFile(filepath.Join(w.Path, markerDir, "description"))
	if err != nil {
		return "(missing description)"
	}
	return strings.TrimSpace(string(data))
}

// List returns all workspaces under dataDir, most recently created first.
// Directory entries that are not workspace ids are skipped.
func List(dataDir string) ([]Info, error) {
	entries, err := os.ReadDir(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dataDir, err)
	}

	var infos []Info
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		id, err := uuid.Parse(entry.Name())
		if err != nil {
			continue
		}
		ws := Get(dataDir, id)
		infos = append(infos, Info{
			ID:          id,
			CreatedAt:   CreatedAt(id),
			Description: ws.Description(),
		})
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].CreatedAt.After(infos[j].CreatedAt)
	})

	return infos, nil
}
