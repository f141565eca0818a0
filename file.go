package filesize

import (
	"errors"
	"io/fs"
	"os"

	"github.com/Cyclone1070/filesize/internal/fsutil"
)

// FileInspector reports the size in bytes of a regular file.
type FileInspector interface {
	SizeInBytes(path string) (int64, error)
}

// statter is the filesystem operation the default inspector needs.
type statter interface {
	Stat(path string) (os.FileInfo, error)
}

// Inspector is the default FileInspector backed by a filesystem.
type Inspector struct {
	fs statter
}

// NewInspector creates an Inspector over the local filesystem.
func NewInspector() *Inspector {
	return &Inspector{fs: fsutil.NewOSFileSystem()}
}

// NewInspectorWithFS creates an Inspector over fs (for testing).
func NewInspectorWithFS(fs statter) *Inspector {
	return &Inspector{fs: fs}
}

// SizeInBytes stats path (following symlinks) and returns its size.
// Missing paths and non-regular files fail with "Not a valid file"; any
// other stat failure fails with "Unable to read file size".
func (i *Inspector) SizeInBytes(path string) (int64, error) {
	info, err := i.fs.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, &InvalidFileError{Path: path, Reason: "Not a valid file", Cause: err}
		}
		return 0, &InvalidFileError{Path: path, Reason: "Unable to read file size", Cause: err}
	}
	return sizeOf(path, info)
}

func sizeOf(path string, info fs.FileInfo) (int64, error) {
	if !info.Mode().IsRegular() {
		return 0, &InvalidFileError{Path: path, Reason: "Not a valid file"}
	}
	if info.Size() < 0 {
		return 0, &InvalidFileError{Path: path, Reason: "Unable to read file size"}
	}
	return info.Size(), nil
}

// FromFile returns the size of the regular file at path.
func FromFile(path string, overrides ...OptionMap) (FileSize, error) {
	return FromFileWith(NewInspector(), path, overrides...)
}

// FromFileWith is FromFile using inspector to read the size. The inspector's
// error is returned unchanged.
func FromFileWith(inspector FileInspector, path string, overrides ...OptionMap) (FileSize, error) {
	size, err := inspector.SizeInBytes(path)
	if err != nil {
		return FileSize{}, err
	}
	return NewFromBytes(float64(size), overrides...)
}

// FromFileInfo returns the size recorded in info, which must describe a
// regular file.
func FromFileInfo(info fs.FileInfo, overrides ...OptionMap) (FileSize, error) {
	size, err := sizeOf(info.Name(), info)
	if err != nil {
		return FileSize{}, err
	}
	return NewFromBytes(float64(size), overrides...)
}
