package mocks

import (
	"io/fs"
	"sync"

	"github.com/user/prepareclips/pkg/adapters/osfilesystem"
	"github.com/user/prepareclips/pkg/ports"
)

// FileSystem is a mock implementation of ports.FileSystem. Operations
// without an override fall through to the real filesystem, so tests build
// fixtures in t.TempDir() and inject failures where needed.
type FileSystem struct {
	mu   sync.Mutex
	base ports.FileSystem

	StatFunc      func(path string) (fs.FileInfo, error)
	MkdirFunc     func(path string) error
	ReadDirFunc   func(path string) ([]fs.DirEntry, error)
	CopyFileFunc  func(src, dst string) error
	MkdirTempFunc func(pattern string) (string, error)
	RemoveFunc    func(path string) error
	RemoveAllFunc func(path string) error

	// Recorded calls for verification
	TempDirs []string
	Removed  []string
	Copies   int
}

// NewFileSystem creates a mock FileSystem on top of the os filesystem.
func NewFileSystem() *FileSystem {
	return &FileSystem{base: osfilesystem.New()}
}

func (m *FileSystem) Stat(path string) (fs.FileInfo, error) {
	if m.StatFunc != nil {
		return m.StatFunc(path)
	}
	return m.base.Stat(path)
}

func (m *FileSystem) Exists(path string) (bool, error) {
	return m.base.Exists(path)
}

func (m *FileSystem) Mkdir(path string) error {
	if m.MkdirFunc != nil {
		return m.MkdirFunc(path)
	}
	return m.base.Mkdir(path)
}

func (m *FileSystem) ReadDir(path string) ([]fs.DirEntry, error) {
	if m.ReadDirFunc != nil {
		return m.ReadDirFunc(path)
	}
	return m.base.ReadDir(path)
}

func (m *FileSystem) Glob(pattern string) ([]string, error) {
	return m.base.Glob(pattern)
}

func (m *FileSystem) SameFile(a, b string) (bool, error) {
	return m.base.SameFile(a, b)
}

func (m *FileSystem) CopyFile(src, dst string) error {
	m.mu.Lock()
	m.Copies++
	m.mu.Unlock()
	if m.CopyFileFunc != nil {
		return m.CopyFileFunc(src, dst)
	}
	return m.base.CopyFile(src, dst)
}

func (m *FileSystem) MkdirTemp(pattern string) (string, error) {
	if m.MkdirTempFunc != nil {
		return m.MkdirTempFunc(pattern)
	}
	dir, err := m.base.MkdirTemp(pattern)
	if err == nil {
		m.mu.Lock()
		m.TempDirs = append(m.TempDirs, dir)
		m.mu.Unlock()
	}
	return dir, err
}

func (m *FileSystem) Remove(path string) error {
	m.mu.Lock()
	m.Removed = append(m.Removed, path)
	m.mu.Unlock()
	if m.RemoveFunc != nil {
		return m.RemoveFunc(path)
	}
	return m.base.Remove(path)
}

func (m *FileSystem) RemoveAll(path string) error {
	if m.RemoveAllFunc != nil {
		return m.RemoveAllFunc(path)
	}
	return m.base.RemoveAll(path)
}

var _ ports.FileSystem = (*FileSystem)(nil)
