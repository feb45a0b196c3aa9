// Package storage defines the read-only skills-tree file-system abstraction.
package storage

// Provider is the interface for skills-tree file access. All paths are
// relative to the tree root. No method ever writes to the tree.
type Provider interface {
	// Glob returns the sorted relative paths of all files matching pattern.
	Glob(pattern string) ([]string, error)
	// Read returns the raw bytes of the file at path.
	Read(path string) ([]byte, error)
	// Dirs returns the sorted names of the immediate subdirectories of dir
	// ("" for the root).
	Dirs(dir string) ([]string, error)
}
