// Package mocks provides mock implementations for testing.
package mocks

import (
	"os"

	"github.com/mcdonaldj/dirwalk/internal/ports"
	"github.com/mcdonaldj/dirwalk/internal/readdir"
	"github.com/mcdonaldj/dirwalk/internal/walk"
)

// MockDirReader implements ports.DirReader for testing.
type MockDirReader struct {
	// Blocks maps a top path to the entries returned for it.
	Blocks map[string][]readdir.Entry
	// Errors maps a top path to an error (for simulating failures).
	Errors map[string]error
	// Calls records every (prefix, top) pair in order.
	Calls [][2]string
}

// NewMockDirReader creates an empty mock reader.
func NewMockDirReader() *MockDirReader {
	return &MockDirReader{
		Blocks: make(map[string][]readdir.Entry),
		Errors: make(map[string]error),
	}
}

// ReadDir returns the canned block for top, with Path/AbsPath rewritten
// the way the real reader would.
func (m *MockDirReader) ReadDir(prefix, top string) ([]readdir.Entry, error) {
	m.Calls = append(m.Calls, [2]string{prefix, top})
	if err, ok := m.Errors[top]; ok {
		return nil, err
	}
	block, ok := m.Blocks[top]
	if !ok {
		return nil, os.ErrNotExist
	}
	out := make([]readdir.Entry, len(block))
	for i, e := range block {
		e.Path = joinPath(prefix, e.Name)
		e.AbsPath = joinPath(top, e.Name)
		out[i] = e
	}
	return out, nil
}

// MockTreeWalker implements ports.TreeWalker for testing.
type MockTreeWalker struct {
	// Blocks are handed to the callback in order.
	Blocks []MockBlock
	// Err is returned after all blocks have been delivered.
	Err error
}

// MockBlock is one canned directory block.
type MockBlock struct {
	Dir     walk.Dir
	Entries []readdir.Entry
}

// Walk replays the canned blocks through fn.
func (m *MockTreeWalker) Walk(top, prefix string, fn walk.Func) error {
	for _, b := range m.Blocks {
		if err := fn(b.Dir, b.Entries); err != nil && err != walk.SkipDir {
			return err
		}
	}
	return m.Err
}

func joinPath(dir, name string) string {
	if dir == "" {
		return name
	}
	return dir + "/" + name
}

// Compile-time checks.
var (
	_ ports.DirReader  = (*MockDirReader)(nil)
	_ ports.TreeWalker = (*MockTreeWalker)(nil)
)
