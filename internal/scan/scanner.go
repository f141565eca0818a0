package scan

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"go.uber.org/zap"

	"github.com/Cyclone1070/filesize"
	"github.com/Cyclone1070/filesize/internal/gitutil"
)

// foldEvery bounds how many additions a running total queues before it is
// evaluated.
const foldEvery = 256

// Scanner measures files and directory trees.
type Scanner struct {
	fs         fileSystem
	format     filesize.OptionMap
	maxEntries int
	logger     *zap.Logger
	newMatcher func(root string) (ignoreMatcher, error)
}

// NewScanner creates a Scanner. format is applied to every FileSize it
// produces; maxEntries caps the number of paths visited per root.
func NewScanner(fs fileSystem, format filesize.OptionMap, maxEntries int, logger *zap.Logger) *Scanner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scanner{
		fs:         fs,
		format:     format,
		maxEntries: maxEntries,
		logger:     logger,
		newMatcher: func(root string) (ignoreMatcher, error) {
			m, err := gitutil.NewIgnoreMatcher(root, fs)
			if err != nil {
				return nil, err
			}
			return m, nil
		},
	}
}

// walk is the state of one Run.
type walk struct {
	ctx     context.Context
	req     Request
	matcher ignoreMatcher
	visited map[string]bool
	count   int
	result  *Result
}

// Run measures req.Root. A regular file yields a single entry; a directory is
// walked and every regular file beneath it is summed. MaxDepth limits which
// entries are listed, not what is counted.
func (s *Scanner) Run(ctx context.Context, req Request) (*Result, error) {
	if _, err := filesize.New(s.format); err != nil {
		return nil, fmt.Errorf("invalid format options: %w", err)
	}

	info, err := s.fs.Stat(req.Root)
	if err != nil {
		return nil, &RootError{Root: req.Root, Cause: err}
	}

	if !info.IsDir() {
		return s.runFile(req)
	}

	matcher := ignoreMatcher(&gitutil.NoOpMatcher{})
	if !req.IncludeIgnored {
		m, err := s.newMatcher(req.Root)
		if err != nil {
			s.logger.Warn("gitignore unavailable, scanning everything", zap.String("root", req.Root), zap.Error(err))
		} else {
			matcher = m
		}
	}

	w := &walk{
		ctx:     ctx,
		req:     req,
		matcher: matcher,
		visited: make(map[string]bool),
		result:  &Result{Root: req.Root},
	}

	total, err := s.walkDir(w, req.Root, 0)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &RootError{Root: req.Root, Cause: err}
	}

	w.result.Total = total.size
	sortEntries(w.result.Entries)
	return w.result, nil
}

func (s *Scanner) runFile(req Request) (*Result, error) {
	size, err := filesize.FromFileWith(filesize.NewInspectorWithFS(s.fs), req.Root, s.format)
	if err != nil {
		return nil, &RootError{Root: req.Root, Cause: err}
	}
	bytes, err := size.GetBytes()
	if err != nil {
		return nil, &RootError{Root: req.Root, Cause: err}
	}
	return &Result{
		Root:      req.Root,
		Total:     size,
		FileCount: 1,
		Entries: []Entry{{
			RelativePath: filepath.Base(req.Root),
			Size:         size,
			bytes:        bytes,
		}},
	}, nil
}

// walkDir sums the directory at abs. Errors are returned only for the
// directory itself; unreadable children are recorded as skipped.
func (s *Scanner) walkDir(w *walk, abs string, depth int) (subtotal, error) {
	if err := w.ctx.Err(); err != nil {
		return subtotal{}, err
	}

	acc, err := newAccumulator(s.format)
	if err != nil {
		return subtotal{}, err
	}

	// Detect symlink loops using canonical path
	canonicalPath, err := filepath.EvalSymlinks(abs)
	if err != nil {
		canonicalPath = abs
	}
	if w.visited[canonicalPath] {
		s.logger.Debug("directory already visited", zap.String("path", abs))
		return acc.total()
	}
	w.visited[canonicalPath] = true

	infos, err := s.fs.ListDir(abs)
	if err != nil {
		return subtotal{}, err
	}

	listed := w.req.MaxDepth < 0 || depth <= w.req.MaxDepth

	for _, info := range infos {
		if w.result.Truncated {
			break
		}
		if w.count >= s.maxEntries {
			w.result.Truncated = true
			w.result.TruncationReason = fmt.Sprintf("Results capped at %d entries.", s.maxEntries)
			break
		}

		entryAbs := filepath.Join(abs, info.Name())
		entryRel, err := filepath.Rel(w.req.Root, entryAbs)
		if err != nil {
			return subtotal{}, fmt.Errorf("failed to calculate relative path for entry %s: %w", info.Name(), err)
		}
		entryRel = filepath.ToSlash(entryRel)

		if info.Mode()&os.ModeSymlink != 0 {
			target, err := s.fs.Stat(entryAbs)
			if err != nil {
				s.skip(w, entryRel, SkipUnreadable, err)
				continue
			}
			info = target
		}

		if w.matcher.ShouldIgnore(entryRel, info.IsDir()) {
			s.skip(w, entryRel, SkipIgnored, nil)
			continue
		}
		w.count++

		if info.IsDir() {
			if err := w.matcher.LoadDir(entryRel); err != nil {
				s.logger.Warn("nested gitignore unreadable", zap.String("path", entryRel), zap.Error(err))
			}
			sub, err := s.walkDir(w, entryAbs, depth+1)
			if err != nil {
				if w.ctx.Err() != nil {
					return subtotal{}, err
				}
				var ioErr interface{ IOError() bool }
				if errors.As(err, &ioErr) && ioErr.IOError() {
					s.skip(w, entryRel, SkipUnreadable, err)
					continue
				}
				return subtotal{}, err
			}
			if err := acc.add(sub.bytes); err != nil {
				return subtotal{}, err
			}
			if listed {
				w.result.Entries = append(w.result.Entries, Entry{RelativePath: entryRel, IsDir: true, Size: sub.size, bytes: sub.bytes})
			}
			continue
		}

		if !info.Mode().IsRegular() {
			s.skip(w, entryRel, SkipNotRegular, nil)
			continue
		}

		size, err := filesize.FromFileInfo(info, s.format)
		if err != nil {
			s.skip(w, entryRel, SkipUnreadable, err)
			continue
		}
		if w.req.MinSize > 0 {
			below, err := size.LessThan(float64(w.req.MinSize), filesize.Byte)
			if err != nil {
				return subtotal{}, err
			}
			if below {
				s.skip(w, entryRel, SkipBelowMin, nil)
				continue
			}
		}

		bytes := float64(info.Size())
		if err := acc.add(bytes); err != nil {
			return subtotal{}, err
		}
		w.result.FileCount++
		if listed {
			w.result.Entries = append(w.result.Entries, Entry{RelativePath: entryRel, Size: size, bytes: bytes})
		}
	}

	return acc.total()
}

func (s *Scanner) skip(w *walk, rel string, reason SkipReason, err error) {
	s.logger.Debug("skipping entry", zap.String("path", rel), zap.String("reason", string(reason)), zap.Error(err))
	w.result.Skipped = append(w.result.Skipped, Skipped{RelativePath: rel, Reason: reason, Err: err})
}

// sortEntries orders largest first, then by path.
func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].bytes != entries[j].bytes {
			return entries[i].bytes > entries[j].bytes
		}
		return entries[i].RelativePath < entries[j].RelativePath
	})
}

// subtotal is an evaluated size and its byte count.
type subtotal struct {
	size  filesize.FileSize
	bytes float64
}

// accumulator sums byte counts through FileSize additions, evaluating the
// queue every foldEvery additions.
type accumulator struct {
	size   filesize.FileSize
	queued int
}

func newAccumulator(format filesize.OptionMap) (*accumulator, error) {
	zero, err := filesize.Zero(format)
	if err != nil {
		return nil, err
	}
	return &accumulator{size: zero}, nil
}

func (a *accumulator) add(bytes float64) error {
	a.size = a.size.AddBytes(bytes)
	a.queued++
	if a.queued < foldEvery {
		return nil
	}
	return a.fold()
}

func (a *accumulator) fold() error {
	size, err := a.size.Evaluate()
	if err != nil {
		return err
	}
	a.size = size
	a.queued = 0
	return nil
}

func (a *accumulator) total() (subtotal, error) {
	if err := a.fold(); err != nil {
		return subtotal{}, err
	}
	bytes, err := a.size.GetBytes()
	if err != nil {
		return subtotal{}, err
	}
	return subtotal{size: a.size, bytes: bytes}, nil
}
