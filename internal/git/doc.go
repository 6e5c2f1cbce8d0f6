// Package git provides the multi-repository orchestration engine, built on
// shell commands.
//
// All operations use [os/exec] to call the git CLI directly rather than a
// Go git library. This approach is simpler, more reliable, and ensures
// compatibility with user configurations (SSH keys, credential helpers,
// aliases).
//
// # Repository Discovery
//
//   - [FindRepositories]: depth-bounded walk for .git markers, sorted
//     relative paths, recomputed on every call
//
// # Status Aggregation
//
//   - [Status]: branch plus porcelain change counters for one repository
//   - [StatusAll]: concurrent aggregation across the whole workspace
//
// # Cloning
//
//   - [Clone]: cache-tiered pipeline (workspace fast-forward, shared bare
//     mirror, local clone with origin repointed)
//   - [CloneAll]: bounded-concurrency scheduler with per-repository
//     failure collection
//
// # Apply
//
//   - [Apply]: run a command or script in every repository, failures
//     isolated per repository
//
// Concurrent clone pipelines synchronize through the filesystem only; the
// mirror cache is guarded by per-repository advisory locks. There is no
// cancellation layer beyond the passed context: a hung subprocess
// propagates as a wedged run, and deadlines are the caller's business.
package git
