// Package ports defines interfaces for external dependencies.
package ports

import "io/fs"

// FileSystem abstracts file system operations.
type FileSystem interface {
	// Stat returns file info for the path, following symlinks.
	Stat(path string) (fs.FileInfo, error)

	// Exists checks if a file or directory exists.
	Exists(path string) (bool, error)

	// Mkdir creates a single directory. The parent must already exist.
	Mkdir(path string) error

	// ReadDir lists a directory, sorted by name.
	ReadDir(path string) ([]fs.DirEntry, error)

	// Glob returns the paths matching pattern in lexicographic order.
	Glob(pattern string) ([]string, error)

	// SameFile reports whether both paths refer to the same file.
	SameFile(a, b string) (bool, error)

	// CopyFile copies src to dst, truncating dst if it exists.
	CopyFile(src, dst string) error

	// MkdirTemp creates a new temporary directory.
	MkdirTemp(pattern string) (string, error)

	// Remove deletes a file or empty directory.
	Remove(path string) error

	// RemoveAll deletes a path and everything below it.
	RemoveAll(path string) error
}
