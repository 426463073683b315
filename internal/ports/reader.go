// Package ports defines interfaces (contracts) for external dependencies.
// These enable dependency injection and testability via mock implementations.
package ports

import (
	"github.com/mcdonaldj/dirwalk/internal/readdir"
	"github.com/mcdonaldj/dirwalk/internal/walk"
)

// DirReader abstracts single-directory enumeration for testability.
// Production code uses the readdir package; tests use MockDirReader.
type DirReader interface {
	// ReadDir reads the directory at top and returns finished entry
	// records: root-relative paths under prefix, absolute paths under
	// top, kinds classified from each snapshot.
	ReadDir(prefix, top string) ([]readdir.Entry, error)
}

// TreeWalker abstracts recursive traversal for testability.
// Production code uses walk.Walker; tests use MockTreeWalker.
type TreeWalker interface {
	// Walk reads the tree rooted at top depth-first, handing each
	// directory block to fn.
	Walk(top, prefix string, fn walk.Func) error
}
