// Package workspace manages workspace directories and their ids.
//
// A workspace is a directory named by a UUIDv7 under the configured data
// directory, holding repository checkouts plus a .nut/ marker directory
// with metadata (currently just the description). The id's embedded
// timestamp provides creation time without any extra bookkeeping, and its
// canonical string form sorts chronologically.
//
// "Entered" state is never stored globally: entering a workspace spawns a
// shell with NUT_WORKSPACE_ID set, and detection reads that variable (or
// falls back to the working directory). Core operations always receive the
// workspace explicitly.
package workspace
