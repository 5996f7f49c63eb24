package core

import (
	"context"
	"io/fs"
	"path/filepath"
	"sort"
	"time"
)

// MockFileSystem is an in-memory FileSystem for tests.
// Parent directories are derived automatically from the file paths set via
// SetFile, so ReadDir works for any ancestor of a registered file.
type MockFileSystem struct {
	files map[string][]byte
	dirs  map[string]bool
}

// NewMockFileSystem creates an empty MockFileSystem.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		files: make(map[string][]byte),
		dirs:  make(map[string]bool),
	}
}

// SetFile registers a file with the given contents, creating all parent
// directories implicitly.
func (m *MockFileSystem) SetFile(name string, data []byte) {
	name = filepath.Clean(name)
	m.files[name] = data

	for dir := filepath.Dir(name); ; dir = filepath.Dir(dir) {
		m.dirs[dir] = true
		if dir == filepath.Dir(dir) {
			break
		}
	}
}

// Stat returns file info for a registered file or derived directory.
func (m *MockFileSystem) Stat(ctx context.Context, name string) (fs.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name = filepath.Clean(name)
	if data, ok := m.files[name]; ok {
		return &mockFileInfo{name: filepath.Base(name), size: int64(len(data))}, nil
	}
	if m.dirs[name] {
		return &mockFileInfo{name: filepath.Base(name), dir: true}, nil
	}
	return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
}

// ReadFile returns the contents of a registered file.
func (m *MockFileSystem) ReadFile(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name = filepath.Clean(name)
	data, ok := m.files[name]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}

	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// ReadDir returns the entries directly contained in a derived directory.
func (m *MockFileSystem) ReadDir(ctx context.Context, name string) ([]fs.DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name = filepath.Clean(name)
	if !m.dirs[name] {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}

	var entries []fs.DirEntry
	for path, data := range m.files {
		if filepath.Dir(path) == name {
			entries = append(entries, &mockDirEntry{
				info: &mockFileInfo{name: filepath.Base(path), size: int64(len(data))},
			})
		}
	}
	for dir := range m.dirs {
		if dir != name && filepath.Dir(dir) == name {
			entries = append(entries, &mockDirEntry{
				info: &mockFileInfo{name: filepath.Base(dir), dir: true},
			})
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})
	return entries, nil
}

// AppendFile appends data to a registered file, creating it if needed.
func (m *MockFileSystem) AppendFile(ctx context.Context, name string, data []byte, _ fs.FileMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	name = filepath.Clean(name)
	if _, ok := m.files[name]; !ok {
		m.SetFile(name, nil)
	}
	m.files[name] = append(m.files[name], data...)
	return nil
}

// mockFileInfo implements fs.FileInfo for the mock filesystem.
type mockFileInfo struct {
	name string
	size int64
	dir  bool
}

func (i *mockFileInfo) Name() string { return i.name }
func (i *mockFileInfo) Size() int64  { return i.size }
func (i *mockFileInfo) Mode() fs.FileMode {
	if i.dir {
		return fs.ModeDir | 0o755
	}
	return 0o644
}
func (i *mockFileInfo) ModTime() time.Time { return time.Time{} }
func (i *mockFileInfo) IsDir() bool        { return i.dir }
func (i *mockFileInfo) Sys() any           { return nil }

// mockDirEntry implements fs.DirEntry for the mock filesystem.
type mockDirEntry struct {
	info *mockFileInfo
}

func (e *mockDirEntry) Name() string               { return e.info.name }
func (e *mockDirEntry) IsDir() bool                { return e.info.dir }
func (e *mockDirEntry) Type() fs.FileMode          { return e.info.Mode().Type() }
func (e *mockDirEntry) Info() (fs.FileInfo, error) { return e.info, nil }
