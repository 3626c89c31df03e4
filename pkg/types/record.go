package types

// FileRecord is one on-disk regular file selected for the merge.
// Path is absolute and canonical.
type FileRecord struct {
	Path     string
	Category Category
}
