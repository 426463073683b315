package tui

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mcdonaldj/dirwalk/internal/cli"
	"github.com/mcdonaldj/dirwalk/internal/config"
	"github.com/mcdonaldj/dirwalk/internal/ports"
	"github.com/mcdonaldj/dirwalk/internal/readdir"
)

// View represents the current view state
type View int

const (
	BrowseView  View = iota
	InspectView      // Showing one entry's full status snapshot
)

// Model is the main TUI model
type Model struct {
	reader     ports.DirReader
	path       string // directory currently listed
	entries    []readdir.Entry
	cursor     int
	showHidden bool
	view       View
	width      int
	height     int
	quitting   bool

	// Status message
	statusMsg string
	statusErr bool
}

// Key bindings
type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Enter   key.Binding
	Back    key.Binding
	Hidden  key.Binding
	Inspect key.Binding
	Reload  key.Binding
	Quit    key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc", "backspace"),
		key.WithHelp("esc", "parent"),
	),
	Hidden: key.NewBinding(
		key.WithKeys("."),
		key.WithHelp(".", "dotfiles"),
	),
	Inspect: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "inspect"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// osReader is the production DirReader.
type osReader struct{}

func (osReader) ReadDir(prefix, top string) ([]readdir.Entry, error) {
	return readdir.ReadDir(prefix, top)
}

// NewModel creates a new TUI model rooted at path
func NewModel(path string) (*Model, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	abs, err := filepath.Abs(config.ExpandPath(path))
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}

	m := &Model{
		reader:     osReader{},
		path:       abs,
		showHidden: cfg.ShowHidden,
		view:       BrowseView,
	}

	if err := m.loadEntries(); err != nil {
		return nil, err
	}

	return m, nil
}

// loadEntries re-reads the current directory
func (m *Model) loadEntries() error {
	entries, err := m.reader.ReadDir("", m.path)
	if err != nil {
		return err
	}

	m.entries = nil
	for _, e := range entries {
		if !m.showHidden && strings.HasPrefix(e.Name, ".") {
			continue
		}
		m.entries = append(m.entries, e)
	}
	sort.Slice(m.entries, func(i, j int) bool { return m.entries[i].Name < m.entries[j].Name })

	if m.cursor >= len(m.entries) {
		m.cursor = len(m.entries) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	return nil
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Clear status on any key
		m.statusMsg = ""
		m.statusErr = false

		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.Up):
			m.moveCursor(-1)

		case key.Matches(msg, keys.Down):
			m.moveCursor(1)

		case key.Matches(msg, keys.Enter):
			m.enter()

		case key.Matches(msg, keys.Back):
			m.back()

		case key.Matches(msg, keys.Hidden):
			if m.view == BrowseView {
				m.showHidden = !m.showHidden
				m.reload()
			}

		case key.Matches(msg, keys.Inspect):
			if m.view == BrowseView && len(m.entries) > 0 {
				m.view = InspectView
			}

		case key.Matches(msg, keys.Reload):
			if m.view == BrowseView {
				m.reload()
			}
		}
	}

	return m, nil
}

func (m *Model) moveCursor(delta int) {
	if m.view != BrowseView {
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.entries) {
		m.cursor = len(m.entries) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// enter descends into the directory under the cursor
func (m *Model) enter() {
	if m.view != BrowseView || len(m.entries) == 0 {
		return
	}
	e := m.entries[m.cursor]
	if e.Kind != readdir.KindDirectory {
		m.statusMsg = fmt.Sprintf("%s is a %s, not a directory", e.Name, e.Kind)
		m.statusErr = true
		return
	}
	prev := m.path
	m.path = e.AbsPath
	m.cursor = 0
	if err := m.loadEntries(); err != nil {
		m.path = prev
		_ = m.loadEntries()
		m.statusMsg = fmt.Sprintf("Error: %v", err)
		m.statusErr = true
	}
}

// back leaves the inspector, or moves to the parent directory
func (m *Model) back() {
	if m.view == InspectView {
		m.view = BrowseView
		return
	}
	parent := filepath.Dir(m.path)
	if parent == m.path {
		return
	}
	m.path = parent
	m.cursor = 0
	if err := m.loadEntries(); err != nil {
		m.statusMsg = fmt.Sprintf("Error: %v", err)
		m.statusErr = true
	}
}

func (m *Model) reload() {
	if err := m.loadEntries(); err != nil {
		m.statusMsg = fmt.Sprintf("Error: %v", err)
		m.statusErr = true
	}
}

// View renders the current view
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.view == InspectView {
		return m.renderInspectView()
	}
	return m.renderBrowseView()
}

func (m *Model) renderBrowseView() string {
	var b strings.Builder

	title := titleStyle.Render(fmt.Sprintf(" dirwalk %s ", m.path))
	b.WriteString(title)
	b.WriteString("\n\n")

	if len(m.entries) == 0 {
		b.WriteString(dimStyle.Render("  (empty directory)"))
		b.WriteString("\n")
	} else {
		header := fmt.Sprintf("  %-36s %10s  %s", "NAME", "SIZE", "MODIFIED")
		b.WriteString(dimStyle.Render(header))
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(strings.Repeat("─", 64)))
		b.WriteString("\n")

		visibleHeight := m.height - 9
		if visibleHeight < 5 {
			visibleHeight = 5
		}

		start := 0
		if m.cursor >= visibleHeight {
			start = m.cursor - visibleHeight + 1
		}

		for i := start; i < len(m.entries) && i < start+visibleHeight; i++ {
			e := m.entries[i]
			cursor := "  "
			style := m.entryStyle(e)
			if i == m.cursor {
				cursor = "▸ "
				style = selectedStyle
			}

			line := fmt.Sprintf("%s%-36s %10s  %s",
				cursor, truncate(entryLabel(e), 36), entrySize(e), entryTime(e))
			b.WriteString(style.Render(line))
			b.WriteString("\n")
		}

		for i := len(m.entries); i < visibleHeight; i++ {
			b.WriteString("\n")
		}
	}

	// Status
	b.WriteString("\n")
	if m.statusMsg != "" {
		if m.statusErr {
			b.WriteString(errorBadge.Render(m.statusMsg))
		} else {
			b.WriteString(successBadge.Render(m.statusMsg))
		}
	}
	b.WriteString("\n")

	help := "[↑/↓] navigate  [enter] open  [esc] parent  [i] inspect  [.] dotfiles  [r] reload  [q] quit"
	b.WriteString(helpStyle.Render(help))

	return b.String()
}

func (m *Model) renderInspectView() string {
	var b strings.Builder

	if len(m.entries) == 0 {
		return ""
	}
	e := m.entries[m.cursor]

	title := titleStyle.Render(fmt.Sprintf(" %s ", e.Name))
	b.WriteString(title)
	b.WriteString("\n\n")

	row := func(label, value string) {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  %-12s", label)))
		b.WriteString(normalStyle.Render(value))
		b.WriteString("\n")
	}

	row("Kind", e.Kind.String())
	row("Path", e.AbsPath)
	if e.Stat == nil {
		b.WriteString("\n")
		b.WriteString(missingStyle.Render("  entry vanished before it could be inspected"))
		b.WriteString("\n")
	} else {
		row("Size", fmt.Sprintf("%s (%d bytes)", cli.FormatSize(e.Stat.Size()), e.Stat.Size()))
		row("Mode", fmt.Sprintf("%#o", e.Stat.Mode()))
		row("Inode", fmt.Sprintf("%d", e.Stat.Ino()))
		row("Device", fmt.Sprintf("%d", e.Stat.Dev()))
		row("Links", fmt.Sprintf("%d", e.Stat.Nlink()))
		row("Modified", formatTime(e.Stat.ModTime()))
		if !e.Stat.ChangeTime().IsZero() {
			row("Changed", formatTime(e.Stat.ChangeTime()))
		}
	}

	help := "[esc] back  [q] quit"
	b.WriteString(helpStyle.Render(help))

	return b.String()
}

func (m *Model) entryStyle(e readdir.Entry) lipgloss.Style {
	switch e.Kind {
	case readdir.KindDirectory:
		return dirStyle
	case readdir.KindSymlink:
		return linkStyle
	case readdir.KindMissing:
		return missingStyle
	default:
		return normalStyle
	}
}

// Run starts the TUI rooted at path
func Run(path string) error {
	m, err := NewModel(path)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// Helper functions
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}

func entryLabel(e readdir.Entry) string {
	switch e.Kind {
	case readdir.KindDirectory:
		return e.Name + "/"
	case readdir.KindSymlink:
		return e.Name + "@"
	default:
		return e.Name
	}
}

func entrySize(e readdir.Entry) string {
	if e.Stat == nil || e.Kind == readdir.KindDirectory {
		return "-"
	}
	return cli.FormatSize(e.Stat.Size())
}

func entryTime(e readdir.Entry) string {
	if e.Stat == nil {
		return "-"
	}
	return relativeTime(e.Stat.ModTime())
}

func formatTime(t time.Time) string {
	return fmt.Sprintf("%s (%s)", t.Format("2006-01-02 15:04:05"), relativeTime(t))
}

func relativeTime(t time.Time) string {
	diff := time.Since(t)
	switch {
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	default:
		return t.Format("Jan 2 2006")
	}
}
