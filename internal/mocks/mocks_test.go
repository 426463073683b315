package mocks

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/mcdonaldj/dirwalk/internal/readdir"
	"github.com/mcdonaldj/dirwalk/internal/walk"
)

func TestMockDirReaderReturnsBlock(t *testing.T) {
	m := NewMockDirReader()
	m.Blocks["/data"] = []readdir.Entry{
		{Name: "f", Kind: readdir.KindFile,
			Stat: readdir.NewSnapshot(1, 42, 0o100644, 1, 10, time.Now(), time.Now())},
		{Name: "d", Kind: readdir.KindDirectory,
			Stat: readdir.NewSnapshot(1, 43, 0o40755, 2, 0, time.Now(), time.Now())},
	}

	entries, err := m.ReadDir("pre", "/data")
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, expected 2", len(entries))
	}
	if entries[0].Path != "pre/f" {
		t.Errorf("Path = %q, expected %q", entries[0].Path, "pre/f")
	}
	if entries[0].AbsPath != "/data/f" {
		t.Errorf("AbsPath = %q, expected %q", entries[0].AbsPath, "/data/f")
	}
	if len(m.Calls) != 1 || m.Calls[0] != [2]string{"pre", "/data"} {
		t.Errorf("Calls = %v, expected one (pre, /data) call", m.Calls)
	}
}

func TestMockDirReaderErrors(t *testing.T) {
	m := NewMockDirReader()
	boom := errors.New("boom")
	m.Errors["/bad"] = boom

	if _, err := m.ReadDir("", "/bad"); !errors.Is(err, boom) {
		t.Errorf("ReadDir error = %v, expected %v", err, boom)
	}
	if _, err := m.ReadDir("", "/unknown"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("ReadDir error = %v, expected os.ErrNotExist", err)
	}
}

func TestMockTreeWalkerReplaysBlocks(t *testing.T) {
	m := &MockTreeWalker{
		Blocks: []MockBlock{
			{Dir: walk.Dir{Path: "", AbsPath: "/r"},
				Entries: []readdir.Entry{{Name: "a", Kind: readdir.KindDirectory, Path: "a"}}},
			{Dir: walk.Dir{Path: "a", AbsPath: "/r/a"},
				Entries: []readdir.Entry{{Name: "f", Kind: readdir.KindFile, Path: "a/f"}}},
		},
	}

	var dirs []string
	if err := m.Walk("/r", "", func(dir walk.Dir, entries []readdir.Entry) error {
		dirs = append(dirs, dir.Path)
		return nil
	}); err != nil {
		t.Fatalf("Walk failed: %v", err)
	}
	if len(dirs) != 2 || dirs[0] != "" || dirs[1] != "a" {
		t.Errorf("visited %v, expected [\"\", \"a\"]", dirs)
	}
}

func TestMockTreeWalkerCallbackError(t *testing.T) {
	m := &MockTreeWalker{Blocks: []MockBlock{{}, {}}}

	boom := errors.New("stop")
	calls := 0
	err := m.Walk("/r", "", func(walk.Dir, []readdir.Entry) error {
		calls++
		return boom
	})
	if !errors.Is(err, boom) {
		t.Errorf("Walk error = %v, expected %v", err, boom)
	}
	if calls != 1 {
		t.Errorf("callback ran %d times, expected 1", calls)
	}
}
