package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mcdonaldj/dirwalk/internal/mocks"
	"github.com/mcdonaldj/dirwalk/internal/readdir"
)

func snap(size int64, mode uint32) *readdir.Snapshot {
	mtime := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	return readdir.NewSnapshot(1, 42, mode, 1, size, mtime, mtime)
}

func newTestModel(t *testing.T) (*Model, *mocks.MockDirReader) {
	t.Helper()

	reader := mocks.NewMockDirReader()
	reader.Blocks["/root"] = []readdir.Entry{
		{Name: "docs", Kind: readdir.KindDirectory, Stat: snap(0, 0o40755)},
		{Name: "main.go", Kind: readdir.KindFile, Stat: snap(2048, 0o100644)},
		{Name: ".hidden", Kind: readdir.KindFile, Stat: snap(3, 0o100600)},
	}
	reader.Blocks["/root/docs"] = []readdir.Entry{
		{Name: "readme.md", Kind: readdir.KindFile, Stat: snap(128, 0o100644)},
	}
	reader.Blocks["/"] = []readdir.Entry{
		{Name: "root", Kind: readdir.KindDirectory, Stat: snap(0, 0o40755)},
	}

	m := &Model{
		reader: reader,
		path:   "/root",
		view:   BrowseView,
		height: 40,
	}
	if err := m.loadEntries(); err != nil {
		t.Fatalf("loadEntries failed: %v", err)
	}
	return m, reader
}

func keyPress(m *Model, k string) {
	var msg tea.KeyMsg
	switch k {
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	m.Update(msg)
}

func TestLoadEntriesFiltersHidden(t *testing.T) {
	m, _ := newTestModel(t)

	if len(m.entries) != 2 {
		t.Fatalf("entries = %d, expected 2 with dotfiles hidden", len(m.entries))
	}
	for _, e := range m.entries {
		if strings.HasPrefix(e.Name, ".") {
			t.Errorf("hidden entry %q visible without toggle", e.Name)
		}
	}
}

func TestCursorClamping(t *testing.T) {
	m, _ := newTestModel(t)

	keyPress(m, "up")
	if m.cursor != 0 {
		t.Errorf("cursor = %d after up at top, expected 0", m.cursor)
	}

	keyPress(m, "down")
	keyPress(m, "down")
	keyPress(m, "down")
	if m.cursor != len(m.entries)-1 {
		t.Errorf("cursor = %d after repeated down, expected %d", m.cursor, len(m.entries)-1)
	}
}

func TestEnterDescends(t *testing.T) {
	m, _ := newTestModel(t)

	// Entries are sorted, so "docs" is first.
	keyPress(m, "enter")
	if m.path != "/root/docs" {
		t.Fatalf("path = %q after enter, expected /root/docs", m.path)
	}
	if len(m.entries) != 1 || m.entries[0].Name != "readme.md" {
		t.Errorf("entries = %v, expected the docs listing", m.entries)
	}
	if m.cursor != 0 {
		t.Errorf("cursor = %d after descend, expected 0", m.cursor)
	}
}

func TestEnterOnFileSetsStatus(t *testing.T) {
	m, _ := newTestModel(t)

	keyPress(m, "down") // main.go
	keyPress(m, "enter")
	if m.path != "/root" {
		t.Errorf("path = %q, expected unchanged /root", m.path)
	}
	if !m.statusErr || !strings.Contains(m.statusMsg, "not a directory") {
		t.Errorf("statusMsg = %q (err=%v), expected not-a-directory notice", m.statusMsg, m.statusErr)
	}
}

func TestEnterFailureRestoresPath(t *testing.T) {
	m, reader := newTestModel(t)
	reader.Errors["/root/docs"] = readdir.ErrUnavailable

	keyPress(m, "enter")
	if m.path != "/root" {
		t.Errorf("path = %q after failed descend, expected /root", m.path)
	}
	if !m.statusErr {
		t.Error("expected error status after failed descend")
	}
}

func TestBackToParent(t *testing.T) {
	m, _ := newTestModel(t)

	keyPress(m, "esc")
	if m.path != "/" {
		t.Errorf("path = %q after back, expected /", m.path)
	}
	if len(m.entries) != 1 || m.entries[0].Name != "root" {
		t.Errorf("entries = %v, expected root listing", m.entries)
	}
}

func TestBackAtRootStays(t *testing.T) {
	m, _ := newTestModel(t)
	m.path = "/"
	if err := m.loadEntries(); err != nil {
		t.Fatalf("loadEntries failed: %v", err)
	}

	keyPress(m, "esc")
	if m.path != "/" {
		t.Errorf("path = %q after back at root, expected /", m.path)
	}
}

func TestHiddenToggle(t *testing.T) {
	m, _ := newTestModel(t)

	keyPress(m, ".")
	if len(m.entries) != 3 {
		t.Fatalf("entries = %d after toggle, expected 3", len(m.entries))
	}

	keyPress(m, ".")
	if len(m.entries) != 2 {
		t.Errorf("entries = %d after second toggle, expected 2", len(m.entries))
	}
}

func TestInspectView(t *testing.T) {
	m, _ := newTestModel(t)

	keyPress(m, "down") // main.go
	keyPress(m, "i")
	if m.view != InspectView {
		t.Fatalf("view = %v after inspect, expected InspectView", m.view)
	}

	got := m.View()
	if !strings.Contains(got, "main.go") {
		t.Errorf("inspect view missing name: %q", got)
	}
	if !strings.Contains(got, "file") {
		t.Errorf("inspect view missing kind: %q", got)
	}
	if !strings.Contains(got, "2.0 KB") {
		t.Errorf("inspect view missing formatted size: %q", got)
	}
	if !strings.Contains(got, "0100644") {
		t.Errorf("inspect view missing octal mode: %q", got)
	}
	if !strings.Contains(got, "42") {
		t.Errorf("inspect view missing inode: %q", got)
	}

	keyPress(m, "esc")
	if m.view != BrowseView {
		t.Errorf("view = %v after esc, expected BrowseView", m.view)
	}
}

func TestInspectVanishedEntry(t *testing.T) {
	m, reader := newTestModel(t)
	reader.Blocks["/root"] = []readdir.Entry{
		{Name: "ghost", Kind: readdir.KindMissing},
	}
	keyPress(m, "r")

	keyPress(m, "i")
	got := m.View()
	if !strings.Contains(got, "vanished") {
		t.Errorf("inspect view missing vanished notice: %q", got)
	}
}

func TestBrowseView(t *testing.T) {
	m, _ := newTestModel(t)

	got := m.View()
	if !strings.Contains(got, "/root") {
		t.Errorf("browse view missing path: %q", got)
	}
	if !strings.Contains(got, "docs/") {
		t.Errorf("browse view missing directory marker: %q", got)
	}
	if !strings.Contains(got, "▸") {
		t.Errorf("browse view missing cursor: %q", got)
	}
	if !strings.Contains(got, "[q] quit") {
		t.Errorf("browse view missing help bar: %q", got)
	}
}

func TestEmptyDirectoryView(t *testing.T) {
	m, reader := newTestModel(t)
	reader.Blocks["/root"] = nil
	keyPress(m, "r")

	got := m.View()
	if !strings.Contains(got, "empty directory") {
		t.Errorf("browse view missing empty notice: %q", got)
	}
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected tea.Quit command")
	}
	if !m.quitting {
		t.Error("quitting = false after q")
	}
	if m.View() != "" {
		t.Errorf("View() = %q while quitting, expected empty", m.View())
	}
}

func TestWindowResize(t *testing.T) {
	m, _ := newTestModel(t)

	m.Update(tea.WindowSizeMsg{Width: 120, Height: 50})
	if m.width != 120 || m.height != 50 {
		t.Errorf("size = %dx%d, expected 120x50", m.width, m.height)
	}
}
