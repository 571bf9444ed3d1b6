// Package localfs gives read access to data files on the local filesystem.
package localfs

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"
)

// FileSystem is an fs.FS over the local file system.
type FileSystem struct {
	// RootPath is an optional parameter to jail the file system access for file access.
	RootPath string
}

var (
	_ fs.FS         = FileSystem{}
	_ fs.ReadFileFS = FileSystem{}
	_ fs.StatFS     = FileSystem{}
)

func (fsys FileSystem) path(name, op string) (string, error) {
	if !fs.ValidPath(name) {
		return "", &fs.PathError{Op: op, Path: name, Err: fs.ErrInvalid}
	}
	if fsys.RootPath == "" {
		return filepath.FromSlash(name), nil
	}

	root, err := filepath.Abs(fsys.RootPath)
	if err != nil {
		return "", err
	}

	path, err := filepath.Abs(filepath.Join(root, filepath.FromSlash(name)))
	if err != nil {
		return "", err
	}

	if path != root && !strings.HasPrefix(path, root+string(filepath.Separator)) {
		return "", &fs.PathError{Op: op, Path: name, Err: syscall.EACCES}
	}

	return path, nil
}

func (fsys FileSystem) Open(name string) (fs.File, error) {
	path, err := fsys.path(name, "open")
	if err != nil {
		return nil, err
	}
	return os.Open(path)
}

func (fsys FileSystem) ReadFile(name string) ([]byte, error) {
	path, err := fsys.path(name, "read")
	if err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}

func (fsys FileSystem) Stat(name string) (fs.FileInfo, error) {
	path, err := fsys.path(name, "stat")
	if err != nil {
		return nil, err
	}
	return os.Stat(path)
}
