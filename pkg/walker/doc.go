// Package walker enumerates a directory tree depth-first and registers every
// eligible regular file with a Sink.
//
// Exclusion is decided from names alone: every component of an entry's path
// relative to the walk root is checked against the exclusion set before the
// entry is touched, so a pruned subtree costs no filesystem calls.
//
// Symbolic links are resolved one level with Readlink (relative targets are
// joined to the link's directory) and the target is re-stat'ed. Links to
// regular files are classified by the link's own name and registered under the
// target's canonical path. Links to directories are never followed, which
// keeps the walk free of cycles.
//
// Per-entry failures (unreadable directories, stat or readlink errors, paths
// over the length limit) are logged and recorded as Problems; the walk goes on.
// Only an unreadable root or a Sink error aborts it.
package walker
