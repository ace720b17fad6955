// Package osfilesystem provides a filesystem implementation using the os package.
package osfilesystem

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/user/prepareclips/pkg/ports"
)

// FileSystem implements ports.FileSystem using the os package.
type FileSystem struct{}

// New creates a new FileSystem.
func New() *FileSystem {
	return &FileSystem{}
}

// Stat returns file info for path.
func (f *FileSystem) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// Exists checks if a file or directory exists.
func (f *FileSystem) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// Mkdir creates a single directory.
func (f *FileSystem) Mkdir(path string) error {
	return os.Mkdir(path, 0755)
}

// ReadDir lists the entries of a directory sorted by name.
func (f *FileSystem) ReadDir(path string) ([]fs.DirEntry, error) {
	return os.ReadDir(path)
}

// Glob returns the sorted paths matching pattern.
func (f *FileSystem) Glob(pattern string) ([]string, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)
	return matches, nil
}

// SameFile reports whether a and b resolve to the same file.
// A path that does not exist is never the same as another.
func (f *FileSystem) SameFile(a, b string) (bool, error) {
	ai, err := os.Stat(a)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	bi, err := os.Stat(b)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return os.SameFile(ai, bi), nil
}

// CopyFile copies src to dst.
func (f *FileSystem) CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copy %s: %w", src, err)
	}
	return out.Close()
}

// MkdirTemp creates a new directory under the system temp directory.
func (f *FileSystem) MkdirTemp(pattern string) (string, error) {
	return os.MkdirTemp("", pattern)
}

// Remove deletes a file or empty directory.
func (f *FileSystem) Remove(path string) error {
	return os.Remove(path)
}

// RemoveAll deletes path recursively.
func (f *FileSystem) RemoveAll(path string) error {
	return os.RemoveAll(path)
}

// Ensure FileSystem implements ports.FileSystem
var _ ports.FileSystem = (*FileSystem)(nil)
