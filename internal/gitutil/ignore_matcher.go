package gitutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

const gitignoreFile = ".gitignore"

// GitignoreReadError is returned when a .gitignore exists but cannot be read.
type GitignoreReadError struct {
	Path  string
	Cause error
}

func (e *GitignoreReadError) Error() string {
	return fmt.Sprintf("failed to read .gitignore at %s: %v", e.Path, e.Cause)
}

func (e *GitignoreReadError) Unwrap() error {
	return e.Cause
}

func (e *GitignoreReadError) IOError() bool {
	return true
}

// fileSystem is what the matcher needs to find and read ignore files.
type fileSystem interface {
	Stat(path string) (os.FileInfo, error)
	ReadFile(path string) ([]byte, error)
}

// IgnoreMatcher answers gitignore queries for paths relative to a root.
// Patterns from a nested .gitignore only apply beneath its directory, and
// later (deeper) files take precedence, as in git.
type IgnoreMatcher struct {
	root     string
	fs       fileSystem
	patterns []gitignore.Pattern
	matcher  gitignore.Matcher
}

// NewIgnoreMatcher loads root/.gitignore. A missing file yields a matcher
// that ignores nothing.
func NewIgnoreMatcher(root string, fs fileSystem) (*IgnoreMatcher, error) {
	if root == "" {
		panic("root is required")
	}
	if fs == nil {
		panic("fs is required")
	}

	m := &IgnoreMatcher{root: root, fs: fs}
	if err := m.LoadDir(""); err != nil {
		return nil, err
	}
	return m, nil
}

// LoadDir adds the patterns of the .gitignore inside dir, a root-relative
// directory. It is a no-op when the file does not exist.
func (m *IgnoreMatcher) LoadDir(dir string) error {
	path := filepath.Join(m.root, filepath.FromSlash(dir), gitignoreFile)
	if _, err := m.fs.Stat(path); err != nil {
		return nil
	}

	content, err := m.fs.ReadFile(path)
	if err != nil {
		return &GitignoreReadError{Path: path, Cause: err}
	}

	patterns := parsePatterns(content, splitPath(dir))
	if len(patterns) == 0 {
		return nil
	}
	m.patterns = append(m.patterns, patterns...)
	m.matcher = gitignore.NewMatcher(m.patterns)
	return nil
}

// ShouldIgnore reports whether relativePath is excluded by the loaded files.
func (m *IgnoreMatcher) ShouldIgnore(relativePath string, isDir bool) bool {
	if m.matcher == nil {
		return false
	}
	return m.matcher.Match(splitPath(relativePath), isDir)
}

// parsePatterns turns ignore file content into patterns scoped to domain.
// Blank lines and comments are dropped; CRLF endings are accepted.
func parsePatterns(content []byte, domain []string) []gitignore.Pattern {
	var patterns []gitignore.Pattern
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimRight(line, " \t\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, gitignore.ParsePattern(line, domain))
	}
	return patterns
}

// splitPath splits a slash or OS separated path into segments, dropping
// empty and "." segments.
func splitPath(path string) []string {
	segments := []string{}
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if part != "" && part != "." {
			segments = append(segments, part)
		}
	}
	return segments
}

// NoOpMatcher ignores nothing. It stands in when ignore filtering is off
// or the root ignore file could not be read.
type NoOpMatcher struct{}

func (m *NoOpMatcher) LoadDir(dir string) error {
	return nil
}

func (m *NoOpMatcher) ShouldIgnore(relativePath string, isDir bool) bool {
	return false
}
