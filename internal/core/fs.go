package core

import (
	"context"
	"io/fs"
	"os"
)

// FileSystem abstracts filesystem operations for testability.
// All methods honor context cancellation before touching the disk.
type FileSystem interface {
	// Stat returns file info for the named file.
	Stat(ctx context.Context, name string) (fs.FileInfo, error)

	// ReadFile reads the named file and returns its contents.
	ReadFile(ctx context.Context, name string) ([]byte, error)

	// ReadDir reads the named directory and returns its entries.
	ReadDir(ctx context.Context, name string) ([]fs.DirEntry, error)

	// AppendFile appends data to the named file, creating it with the given
	// permissions if it does not exist.
	AppendFile(ctx context.Context, name string, data []byte, perm fs.FileMode) error
}

// OSFileSystem is the production FileSystem backed by the os package.
type OSFileSystem struct{}

// NewOSFileSystem creates a new OSFileSystem.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// Stat returns file info via os.Stat.
func (o *OSFileSystem) Stat(ctx context.Context, name string) (fs.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.Stat(name)
}

// ReadFile reads a file via os.ReadFile.
func (o *OSFileSystem) ReadFile(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadFile(name)
}

// ReadDir reads a directory via os.ReadDir.
func (o *OSFileSystem) ReadDir(ctx context.Context, name string) ([]fs.DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadDir(name)
}

// AppendFile opens the file in append mode and writes data to it.
func (o *OSFileSystem) AppendFile(ctx context.Context, name string, data []byte, perm fs.FileMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	file, err := os.OpenFile(name, os.O_APPEND|os.O_CREATE|os.O_WRONLY, perm)
	if err != nil {
		return err
	}

	if _, err := file.Write(data); err != nil {
		file.Close()
		return err
	}

	return file.Close()
}
