package fsutil

import (
	"os"
)

// OSFileSystem implements filesystem operations using the local OS filesystem primitives.
// It uses internal function fields to enable testability via functional injection.
type OSFileSystem struct {
	readDir func(name string) ([]os.DirEntry, error)
}

// NewOSFileSystem creates a new OSFileSystem with real OS syscalls.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{
		readDir: os.ReadDir,
	}
}

// Stat returns file info for a path (follows symlinks).
func (r *OSFileSystem) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

// ReadFile reads the whole file at path.
func (r *OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// UserHomeDir returns the current user's home directory.
func (r *OSFileSystem) UserHomeDir() (string, error) {
	return os.UserHomeDir()
}

// ListDir lists the contents of a directory, sorted by name.
// Entries that vanish between the listing and the stat are skipped.
func (r *OSFileSystem) ListDir(path string) ([]os.FileInfo, error) {
	entries, err := r.readDir(path)
	if err != nil {
		return nil, &ListDirError{Path: path, Cause: err}
	}

	infos := make([]os.FileInfo, 0, len(entries))
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, &EntryInfoError{Path: path, Name: entry.Name(), Cause: err}
		}
		infos = append(infos, info)
	}

	return infos, nil
}
