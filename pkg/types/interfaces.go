package types

import (
	"io"
	"io/fs"
)

// FS is the filesystem interface required by the walker and the merge writer
type FS interface {
	// Entry identification
	Lstat(name string) (fs.FileInfo, error)
	Stat(name string) (fs.FileInfo, error)
	ReadDir(name string) ([]fs.DirEntry, error)

	// Symlink resolution
	Readlink(name string) (string, error)

	// Realpath returns the absolute, symlink-free form of name.
	Realpath(name string) (string, error)

	// Open opens a file for streaming reads.
	Open(name string) (io.ReadCloser, error)
}
