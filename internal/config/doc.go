// Package config loads and persists nut configuration.
//
// Configuration lives at ~/.config/nut/config.toml. A missing file is not
// an error: [Load] returns the defaults. Paths must be absolute or start
// with ~ (expanded on load, since shells don't expand inside config files).
//
// Two directories are derived from configuration:
//
//   - [Config.DataDir]: holds one subdirectory per workspace, named by the
//     workspace id. Must be configured explicitly.
//   - [Config.CacheRoot]: holds bare mirror caches, one per
//     <host>/<owner>/<repo>, shared by all workspaces. Defaults to the
//     user cache directory.
package config
