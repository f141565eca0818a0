package fsutil

import (
	"fmt"
)

// ListDirError is returned when a directory cannot be read.
type ListDirError struct {
	Path  string
	Cause error
}

func (e *ListDirError) Error() string {
	return fmt.Sprintf("failed to list directory %s: %v", e.Path, e.Cause)
}

func (e *ListDirError) Unwrap() error {
	return e.Cause
}

func (e *ListDirError) IOError() bool {
	return true
}

// EntryInfoError is returned when a directory entry cannot be stat'ed.
type EntryInfoError struct {
	Path  string
	Name  string
	Cause error
}

func (e *EntryInfoError) Error() string {
	return fmt.Sprintf("failed to stat %s in %s: %v", e.Name, e.Path, e.Cause)
}

func (e *EntryInfoError) Unwrap() error {
	return e.Cause
}

func (e *EntryInfoError) IOError() bool {
	return true
}
