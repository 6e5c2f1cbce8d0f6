// Package cmd provides helpers for executing external commands with proper error handling.
//
// This package wraps [os/exec.Cmd] to capture stderr and include it in error
// messages, making command failures more informative for users.
//
// # Design Notes
//
// nut shells out to the git and gh CLIs rather than using Go libraries.
// This approach is simpler, more reliable, and ensures compatibility with
// user configurations (SSH keys, credential helpers, aliases).
//
// Failure causes stay distinguishable for callers: a command that could not
// be started yields an [os/exec.Error] (see [IsSpawnError]), a command that
// ran and failed yields either the captured stderr text or an
// [os/exec.ExitError] carrying the exit code or signal (see [ExitReason]).
// No retries happen at this layer; retry policy belongs to callers.
package cmd
