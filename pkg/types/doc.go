// Package types defines the core data model shared by the walker, collector
// and merge writer: the ordered Category enumeration, FileRecord and the FS
// interface that abstracts filesystem access.
package types
