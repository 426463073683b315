// Package cli provides the command-line interface with injectable io.Writer for testing.
package cli

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/mcdonaldj/dirwalk/internal/config"
	"github.com/mcdonaldj/dirwalk/internal/readdir"
	"github.com/mcdonaldj/dirwalk/internal/walk"
)

// ConfigService provides configuration operations for the CLI.
type ConfigService interface {
	Load() (*config.Config, error)
	Save(cfg *config.Config) error
	ConfigPath() string
	DefaultConfig() *config.Config
}

// ReadService provides single-directory enumeration for the CLI.
type ReadService interface {
	ReadDir(prefix, top string) ([]readdir.Entry, error)
}

// WalkService provides recursive traversal for the CLI.
type WalkService interface {
	Walk(top, prefix string, fn walk.Func) error
}

// CLI represents the command-line interface with injectable dependencies.
type CLI struct {
	Out     io.Writer // Standard output
	Err     io.Writer // Standard error
	Version string    // Application version
	Args    []string  // Command arguments (like os.Args)

	// Exit function for testability (defaults to os.Exit)
	Exit func(code int)

	// Injectable dependencies (nil means use defaults)
	ConfigSvc ConfigService
	ReadSvc   ReadService
	WalkSvc   WalkService

	// Color functions (can be disabled for testing)
	green  func(a ...interface{}) string
	yellow func(a ...interface{}) string
	cyan   func(a ...interface{}) string
	gray   func(a ...interface{}) string
	red    func(a ...interface{}) string
}

// New creates a new CLI with default settings.
func New(version string) *CLI {
	return &CLI{
		Out:     os.Stdout,
		Err:     os.Stderr,
		Version: version,
		Args:    os.Args,
		Exit:    os.Exit,
		green:   color.New(color.FgGreen, color.Bold).SprintFunc(),
		yellow:  color.New(color.FgYellow).SprintFunc(),
		cyan:    color.New(color.FgCyan).SprintFunc(),
		gray:    color.New(color.FgHiBlack).SprintFunc(),
		red:     color.New(color.FgRed).SprintFunc(),
	}
}

// NewForTesting creates a CLI configured for testing (no colors, captured output).
func NewForTesting(out, errOut io.Writer, args []string) *CLI {
	noColor := func(a ...interface{}) string { return fmt.Sprint(a...) }
	exitCode := 0
	return &CLI{
		Out:     out,
		Err:     errOut,
		Version: "test",
		Args:    args,
		Exit:    func(code int) { exitCode = code; _ = exitCode },
		green:   noColor,
		yellow:  noColor,
		cyan:    noColor,
		gray:    noColor,
		red:     noColor,
	}
}

// defaultConfigService wraps the config package functions.
type defaultConfigService struct{}

func (d *defaultConfigService) Load() (*config.Config, error) { return config.Load() }
func (d *defaultConfigService) Save(cfg *config.Config) error { return cfg.Save() }
func (d *defaultConfigService) ConfigPath() string            { return config.ConfigPath() }
func (d *defaultConfigService) DefaultConfig() *config.Config { return config.DefaultConfig() }

// defaultReadService wraps the readdir package functions.
type defaultReadService struct{}

func (d *defaultReadService) ReadDir(prefix, top string) ([]readdir.Entry, error) {
	return readdir.ReadDir(prefix, top)
}

// Helper methods to get the service or default
func (c *CLI) configSvc() ConfigService {
	if c.ConfigSvc != nil {
		return c.ConfigSvc
	}
	return &defaultConfigService{}
}

func (c *CLI) readSvc() ReadService {
	if c.ReadSvc != nil {
		return c.ReadSvc
	}
	return &defaultReadService{}
}

func (c *CLI) walkSvc(cfg *config.Config) WalkService {
	if c.WalkSvc != nil {
		return c.WalkSvc
	}
	return &walk.Walker{Exclude: cfg.Exclude, MaxDepth: cfg.MaxDepth}
}

// Run executes the CLI with the configured arguments.
func (c *CLI) Run() {
	if len(c.Args) < 2 {
		// No command - would launch TUI, but we skip that for CLI testing
		fmt.Fprintln(c.Out, "No command specified. Use 'dirwalk help' for usage.")
		return
	}

	switch c.Args[1] {
	case "list":
		c.ListDir()
	case "tree":
		c.PrintTree()
	case "du":
		c.DiskUsage()
	case "init":
		c.InitConfig()
	case "version", "-v", "--version":
		fmt.Fprintf(c.Out, "dirwalk v%s\n", c.Version)
	case "help", "-h", "--help":
		c.PrintUsage()
	default:
		fmt.Fprintf(c.Err, "Unknown command: %s\n", c.Args[1])
		c.PrintUsage()
		c.Exit(1)
	}
}

// PrintUsage prints the help message.
func (c *CLI) PrintUsage() {
	fmt.Fprintln(c.Out, `dirwalk - Directory Enumeration Tool

Usage:
  dirwalk                        Launch interactive browser
  dirwalk ui [dir]               Launch interactive browser at dir
  dirwalk list <dir> [--all]     List one directory with kinds and sizes
  dirwalk tree <dir>             Print the directory tree
  dirwalk du <dir>               Summarize disk usage per top-level entry
  dirwalk init                   Create default config file
  dirwalk version, -v            Show version
  dirwalk help, -h               Show this help

Config: ~/.dirwalk/config.yaml`)
}

// InitConfig creates the default config file.
func (c *CLI) InitConfig() {
	svc := c.configSvc()
	if err := svc.Save(svc.DefaultConfig()); err != nil {
		fmt.Fprintf(c.Err, "Error saving config: %v\n", err)
		c.Exit(1)
		return
	}
	fmt.Fprintf(c.Out, "Created config at %s\n", svc.ConfigPath())
}

// ListDir lists a single directory with kind, size and mtime columns.
func (c *CLI) ListDir() {
	if len(c.Args) < 3 {
		fmt.Fprintln(c.Out, "Usage: dirwalk list <dir> [--all]")
		c.Exit(1)
		return
	}
	dir := config.ExpandPath(c.Args[2])
	showAll := false
	for _, arg := range c.Args[3:] {
		if arg == "--all" || arg == "-a" {
			showAll = true
		}
	}

	cfg, err := c.configSvc().Load()
	if err != nil {
		fmt.Fprintf(c.Err, "Error loading config: %v\n", err)
		c.Exit(1)
		return
	}
	if cfg.ShowHidden {
		showAll = true
	}

	entries, err := c.readSvc().ReadDir("", dir)
	if err != nil {
		fmt.Fprintf(c.Err, "Error: %v\n", err)
		c.Exit(1)
		return
	}

	// The reader preserves raw enumeration order; ordering for display
	// is this caller's job.
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })

	files, dirs := 0, 0
	for _, e := range entries {
		if !showAll && strings.HasPrefix(e.Name, ".") {
			continue
		}
		switch e.Kind {
		case readdir.KindDirectory:
			dirs++
		case readdir.KindFile:
			files++
		}
		fmt.Fprintf(c.Out, "  %s %10s  %s  %s\n",
			c.kindBadge(e.Kind),
			c.yellow(c.entrySize(e)),
			c.gray(c.entryTime(e)),
			c.entryName(e))
	}
	fmt.Fprintf(c.Out, "\n%s files, %s directories\n",
		c.green(fmt.Sprintf("%d", files)), c.cyan(fmt.Sprintf("%d", dirs)))
}

// PrintTree walks the tree and prints it indented.
func (c *CLI) PrintTree() {
	if len(c.Args) < 3 {
		fmt.Fprintln(c.Out, "Usage: dirwalk tree <dir>")
		c.Exit(1)
		return
	}
	dir := config.ExpandPath(c.Args[2])

	cfg, err := c.configSvc().Load()
	if err != nil {
		fmt.Fprintf(c.Err, "Error loading config: %v\n", err)
		c.Exit(1)
		return
	}

	fmt.Fprintln(c.Out, c.cyan(dir))
	count := 0
	err = c.walkSvc(cfg).Walk(dir, "", func(d walk.Dir, entries []readdir.Entry) error {
		for _, e := range entries {
			if !cfg.ShowHidden && strings.HasPrefix(e.Name, ".") {
				continue
			}
			indent := strings.Repeat("  ", strings.Count(e.Path, "/")+1)
			fmt.Fprintf(c.Out, "%s%s\n", indent, c.entryName(e))
			count++
		}
		return nil
	})
	if err != nil {
		fmt.Fprintf(c.Err, "Error: %v\n", err)
		c.Exit(1)
		return
	}
	fmt.Fprintf(c.Out, "\n%s entries\n", c.green(fmt.Sprintf("%d", count)))
}

// DiskUsage sums snapshot sizes per top-level entry.
func (c *CLI) DiskUsage() {
	if len(c.Args) < 3 {
		fmt.Fprintln(c.Out, "Usage: dirwalk du <dir>")
		c.Exit(1)
		return
	}
	dir := config.ExpandPath(c.Args[2])

	cfg, err := c.configSvc().Load()
	if err != nil {
		fmt.Fprintf(c.Err, "Error loading config: %v\n", err)
		c.Exit(1)
		return
	}

	sizes := make(map[string]int64)
	var names []string
	var total int64
	err = c.walkSvc(cfg).Walk(dir, "", func(d walk.Dir, entries []readdir.Entry) error {
		for _, e := range entries {
			if e.Stat == nil {
				continue
			}
			top := e.Path
			if i := strings.Index(top, "/"); i >= 0 {
				top = top[:i]
			}
			if _, ok := sizes[top]; !ok {
				names = append(names, top)
			}
			if e.Kind == readdir.KindFile {
				sizes[top] += e.Stat.Size()
				total += e.Stat.Size()
			}
		}
		return nil
	})
	if err != nil {
		fmt.Fprintf(c.Err, "Error: %v\n", err)
		c.Exit(1)
		return
	}

	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(c.Out, "  %10s  %s\n", c.yellow(FormatSize(sizes[name])), name)
	}
	fmt.Fprintf(c.Out, "\nTotal: %s\n", c.green(FormatSize(total)))
}

// kindBadge returns a one-letter colored marker for an entry kind.
func (c *CLI) kindBadge(k readdir.Kind) string {
	switch k {
	case readdir.KindDirectory:
		return c.cyan("d")
	case readdir.KindSymlink:
		return c.yellow("l")
	case readdir.KindMissing:
		return c.red("!")
	case readdir.KindFile:
		return c.gray("-")
	case readdir.KindCharDevice, readdir.KindBlockDevice:
		return c.yellow("b")
	case readdir.KindFIFO:
		return c.yellow("p")
	case readdir.KindSocket:
		return c.yellow("s")
	default:
		return c.red("?")
	}
}

func (c *CLI) entryName(e readdir.Entry) string {
	switch e.Kind {
	case readdir.KindDirectory:
		return c.cyan(e.Name + "/")
	case readdir.KindSymlink:
		return c.yellow(e.Name + "@")
	case readdir.KindMissing:
		return c.red(e.Name)
	default:
		return e.Name
	}
}

func (c *CLI) entrySize(e readdir.Entry) string {
	if e.Stat == nil {
		return "-"
	}
	return FormatSize(e.Stat.Size())
}

func (c *CLI) entryTime(e readdir.Entry) string {
	if e.Stat == nil {
		return "-"
	}
	return e.Stat.ModTime().Format("2006-01-02 15:04")
}

// FormatSize formats bytes as human-readable
func FormatSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
