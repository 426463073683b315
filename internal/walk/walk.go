// Package walk traverses a directory tree depth-first, one directory
// block at a time, on top of the readdir primitive. Each directory is
// read exactly once; the walker recurses into entries classified as
// directories and leaves every ordering and filtering decision beyond
// its own exclude patterns to the caller.
package walk

import (
	"errors"
	"path/filepath"

	"github.com/mcdonaldj/dirwalk/internal/readdir"
)

// SkipDir can be returned by a Func to keep the walker out of the
// subdirectories of the block it was just given. The walk itself
// continues.
var SkipDir = errors.New("skip directories in this block")

// Dir identifies the directory a block of entries was read from.
type Dir struct {
	// Path is the directory's path relative to the walk root.
	Path string
	// AbsPath is the directory's on-disk path.
	AbsPath string
}

// Func is called once per directory with its finished entries, in the
// raw enumeration order readdir produced. Returning SkipDir prunes
// descent below this block; any other non-nil error aborts the walk.
type Func func(dir Dir, entries []readdir.Entry) error

// Walker drives a traversal. The zero value walks everything.
type Walker struct {
	// Exclude holds basename patterns (filepath.Match syntax) whose
	// entries are dropped before the callback sees them. Excluded
	// directories are not descended into.
	Exclude []string

	// MaxDepth limits how many directory levels are read; the root
	// block is level one. Zero means unlimited.
	MaxDepth int
}

// Walk reads the tree rooted at top. prefix is top's path relative to
// the traversal root and prefixes every relative path handed to fn,
// which allows walking a subtree while reporting paths rooted higher up.
func (w *Walker) Walk(top, prefix string, fn Func) error {
	type frame struct {
		entry readdir.Entry
		depth int
	}

	pending := []frame{{entry: readdir.StartingDir(top, prefix), depth: 1}}
	for len(pending) > 0 {
		f := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		entries, err := readdir.ReadDir(f.entry.Path, f.entry.AbsPath)
		if err != nil {
			return err
		}
		entries = w.filter(entries)

		err = fn(Dir{Path: f.entry.Path, AbsPath: f.entry.AbsPath}, entries)
		if err == SkipDir {
			continue
		}
		if err != nil {
			return err
		}

		if w.MaxDepth > 0 && f.depth >= w.MaxDepth {
			continue
		}
		// Reverse push so the first subdirectory listed is the first
		// walked.
		for i := len(entries) - 1; i >= 0; i-- {
			if entries[i].Kind == readdir.KindDirectory {
				pending = append(pending, frame{entry: entries[i], depth: f.depth + 1})
			}
		}
	}
	return nil
}

// Walk traverses the tree rooted at top with a zero-value Walker.
func Walk(top, prefix string, fn Func) error {
	w := Walker{}
	return w.Walk(top, prefix, fn)
}

func (w *Walker) filter(entries []readdir.Entry) []readdir.Entry {
	if len(w.Exclude) == 0 {
		return entries
	}
	kept := entries[:0]
	for _, e := range entries {
		if !w.excluded(e.Name) {
			kept = append(kept, e)
		}
	}
	return kept
}

func (w *Walker) excluded(name string) bool {
	for _, pattern := range w.Exclude {
		if name == pattern {
			return true
		}
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
	}
	return false
}
