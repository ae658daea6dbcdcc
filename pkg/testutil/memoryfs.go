// Package testutil provides test doubles and fixture helpers shared by the
// package test suites.
package testutil

import (
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemoryFS implements types.FS with in-memory storage. Directories are
// implied by file paths; WriteFile is the only setup operation tests need.
type MemoryFS struct {
	mu    sync.RWMutex
	files map[string][]byte

	// Error injection
	errorPaths map[string]error
}

// NewMemoryFS creates an empty in-memory filesystem.
func NewMemoryFS() *MemoryFS {
	return &MemoryFS{
		files:      make(map[string][]byte),
		errorPaths: make(map[string]error),
	}
}

// WriteFile stores a file, creating implied parent directories.
func (m *MemoryFS) WriteFile(name string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[path.Clean(name)] = data
}

// InjectError makes subsequent reads of name fail with err.
func (m *MemoryFS) InjectError(name string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorPaths[path.Clean(name)] = err
}

func (m *MemoryFS) Stat(name string) (fs.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	name = path.Clean(name)
	if data, ok := m.files[name]; ok {
		return &memFileInfo{name: path.Base(name), size: int64(len(data))}, nil
	}
	if m.hasDir(name) {
		return &memFileInfo{name: path.Base(name), isDir: true}, nil
	}
	return nil, &fs.PathError{Op: "stat", Path: name, Err: os.ErrNotExist}
}

func (m *MemoryFS) ReadFile(name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	name = path.Clean(name)
	if err, ok := m.errorPaths[name]; ok {
		return nil, err
	}
	data, ok := m.files[name]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: os.ErrNotExist}
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (m *MemoryFS) ReadDir(name string) ([]fs.DirEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	name = path.Clean(name)
	if !m.hasDir(name) {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: os.ErrNotExist}
	}

	prefix := name + "/"
	if name == "." || name == "/" {
		prefix = ""
	}

	seen := make(map[string]bool)
	var entries []fs.DirEntry
	for p, data := range m.files {
		if !strings.HasPrefix(p, prefix) {
			continue
		}
		rest := strings.TrimPrefix(p, prefix)
		parts := strings.SplitN(rest, "/", 2)
		child := parts[0]
		if seen[child] {
			continue
		}
		seen[child] = true
		isDir := len(parts) > 1
		size := int64(0)
		if !isDir {
			size = int64(len(data))
		}
		entries = append(entries, &memDirEntry{
			info: memFileInfo{name: child, size: size, isDir: isDir},
		})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	return entries, nil
}

// hasDir reports whether name is an implied directory. Callers hold the lock.
func (m *MemoryFS) hasDir(name string) bool {
	if name == "." || name == "/" {
		return len(m.files) > 0
	}
	prefix := name + "/"
	for p := range m.files {
		if strings.HasPrefix(p, prefix) {
			return true
		}
	}
	return false
}

type memFileInfo struct {
	name  string
	size  int64
	isDir bool
}

func (fi *memFileInfo) Name() string { return fi.name }
func (fi *memFileInfo) Size() int64  { return fi.size }
func (fi *memFileInfo) Mode() fs.FileMode {
	if fi.isDir {
		return 0755 | fs.ModeDir
	}
	return 0644
}
func (fi *memFileInfo) ModTime() time.Time { return time.Time{} }
func (fi *memFileInfo) IsDir() bool        { return fi.isDir }
func (fi *memFileInfo) Sys() any           { return nil }

type memDirEntry struct {
	info memFileInfo
}

func (e *memDirEntry) Name() string               { return e.info.name }
func (e *memDirEntry) IsDir() bool                { return e.info.isDir }
func (e *memDirEntry) Type() fs.FileMode          { return e.info.Mode().Type() }
func (e *memDirEntry) Info() (fs.FileInfo, error) { return &e.info, nil }
