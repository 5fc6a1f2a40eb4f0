package testutil

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemoryFS implements types.FS with in-memory storage. Fixture state is
// created through WriteFile/MkdirAll (not part of the FS interface);
// InjectError makes a path fail for testing failure propagation.
type MemoryFS struct {
	mu    sync.RWMutex
	files map[string]*fileNode

	errorPaths map[string]error
}

// fileNode represents a file or directory in memory
type fileNode struct {
	name    string
	mode    fs.FileMode
	modTime time.Time
	content []byte
	isDir   bool
}

// NewMemoryFS creates a new in-memory filesystem with a root directory.
func NewMemoryFS() *MemoryFS {
	return &MemoryFS{
		files: map[string]*fileNode{
			"/": {name: "/", mode: 0755 | fs.ModeDir, modTime: time.Now(), isDir: true},
		},
		errorPaths: make(map[string]error),
	}
}

// InjectError makes every operation on path (and its descendants, for
// ReadDir and RemoveAll) return err.
func (m *MemoryFS) InjectError(path string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorPaths[normalize(path)] = err
}

func normalize(path string) string {
	path = filepath.ToSlash(path)
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return filepath.Clean(path)
}

func (m *MemoryFS) checkError(path string) error {
	if err, ok := m.errorPaths[path]; ok {
		return err
	}
	return nil
}

// MkdirAll creates a directory and all parents. Fixture helper.
func (m *MemoryFS) MkdirAll(path string, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	path = normalize(path)
	parts := strings.Split(strings.TrimPrefix(path, "/"), "/")
	cur := ""
	for _, part := range parts {
		if part == "" {
			continue
		}
		cur = cur + "/" + part
		if _, ok := m.files[cur]; !ok {
			m.files[cur] = &fileNode{
				name:    part,
				mode:    perm | fs.ModeDir,
				modTime: time.Now(),
				isDir:   true,
			}
		}
	}
	return nil
}

// WriteFile creates a file and its parent directories. Fixture helper.
func (m *MemoryFS) WriteFile(path string, data []byte, perm fs.FileMode) error {
	if err := m.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	path = normalize(path)
	m.files[path] = &fileNode{
		name:    filepath.Base(path),
		mode:    perm,
		modTime: time.Now(),
		content: data,
	}
	return nil
}

// Exists reports whether a path is present. Assertion helper.
func (m *MemoryFS) Exists(path string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.files[normalize(path)]
	return ok
}

func (m *MemoryFS) Stat(name string) (fs.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	path := normalize(name)
	if err := m.checkError(path); err != nil {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: err}
	}
	node, ok := m.files[path]
	if !ok {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
	}
	return &memFileInfo{node: node}, nil
}

func (m *MemoryFS) ReadDir(name string) ([]fs.DirEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	path := normalize(name)
	if err := m.checkError(path); err != nil {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: err}
	}
	node, ok := m.files[path]
	if !ok {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: fs.ErrNotExist}
	}
	if !node.isDir {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: fs.ErrInvalid}
	}

	var entries []fs.DirEntry
	prefix := path
	if prefix != "/" {
		prefix += "/"
	}
	for p, n := range m.files {
		if p == path || !strings.HasPrefix(p, prefix) {
			continue
		}
		if strings.Contains(strings.TrimPrefix(p, prefix), "/") {
			continue
		}
		entries = append(entries, &memDirEntry{node: n})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	return entries, nil
}

func (m *MemoryFS) Remove(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	path := normalize(name)
	if err := m.checkError(path); err != nil {
		return &fs.PathError{Op: "remove", Path: name, Err: err}
	}
	node, ok := m.files[path]
	if !ok {
		return &fs.PathError{Op: "remove", Path: name, Err: fs.ErrNotExist}
	}
	if node.isDir {
		for p := range m.files {
			if strings.HasPrefix(p, path+"/") {
				return &fs.PathError{Op: "remove", Path: name, Err: fs.ErrInvalid}
			}
		}
	}
	delete(m.files, path)
	return nil
}

func (m *MemoryFS) RemoveAll(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p := normalize(path)
	if err := m.checkError(p); err != nil {
		return &fs.PathError{Op: "removeall", Path: path, Err: err}
	}
	for candidate := range m.files {
		if candidate == p || strings.HasPrefix(candidate, p+"/") {
			delete(m.files, candidate)
		}
	}
	return nil
}

type memFileInfo struct {
	node *fileNode
}

func (i *memFileInfo) Name() string       { return i.node.name }
func (i *memFileInfo) Size() int64        { return int64(len(i.node.content)) }
func (i *memFileInfo) Mode() fs.FileMode  { return i.node.mode }
func (i *memFileInfo) ModTime() time.Time { return i.node.modTime }
func (i *memFileInfo) IsDir() bool        { return i.node.isDir }
func (i *memFileInfo) Sys() interface{}   { return nil }

type memDirEntry struct {
	node *fileNode
}

func (e *memDirEntry) Name() string               { return e.node.name }
func (e *memDirEntry) IsDir() bool                { return e.node.isDir }
func (e *memDirEntry) Type() fs.FileMode          { return e.node.mode.Type() }
func (e *memDirEntry) Info() (fs.FileInfo, error) { return &memFileInfo{node: e.node}, nil }
