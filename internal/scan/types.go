package scan

import (
	"os"

	"github.com/Cyclone1070/filesize"
)

// fileSystem defines the filesystem operations the scanner needs.
type fileSystem interface {
	Stat(path string) (os.FileInfo, error)
	ListDir(path string) ([]os.FileInfo, error)
	ReadFile(path string) ([]byte, error)
}

// ignoreMatcher decides whether a root-relative path is excluded. LoadDir
// picks up the ignore file of a directory before it is walked.
type ignoreMatcher interface {
	LoadDir(dir string) error
	ShouldIgnore(relativePath string, isDir bool) bool
}

// Request describes one root to measure.
type Request struct {
	Root string
	// MaxDepth: 0 = immediate children only, -1 = unlimited.
	MaxDepth       int
	IncludeIgnored bool
	// MinSize skips files smaller than this many bytes. 0 disables the threshold.
	MinSize uint64
}

// Entry is a counted file, or a directory carrying the total of what was
// counted beneath it.
type Entry struct {
	RelativePath string
	IsDir        bool
	Size         filesize.FileSize
	bytes        float64
}

// Bytes returns the resolved byte count of the entry.
func (e Entry) Bytes() float64 {
	return e.bytes
}

// SkipReason says why a path did not contribute to the total.
type SkipReason string

const (
	SkipIgnored    SkipReason = "ignored"
	SkipBelowMin   SkipReason = "below minimum size"
	SkipUnreadable SkipReason = "unreadable"
	SkipNotRegular SkipReason = "not a regular file"
)

// Skipped records a path left out of the total.
type Skipped struct {
	RelativePath string
	Reason       SkipReason
	Err          error
}

// Result is the outcome of scanning one root.
type Result struct {
	Root string
	// Total is evaluated: it carries no pending operations.
	Total     filesize.FileSize
	FileCount int
	// Entries are sorted largest first, ties by path.
	Entries          []Entry
	Skipped          []Skipped
	Truncated        bool
	TruncationReason string
}
