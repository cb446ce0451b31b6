package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/handiism/coverfix/internal/curate"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6B6B"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#95E1A3"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFE66D"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#A8DADC"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C757D"))
)

// reporter prints progress events as one line each.
type reporter struct {
	out      io.Writer
	verbose  bool
	colorize bool
}

func newReporter(out io.Writer, verbose bool) *reporter {
	return &reporter{out: out, verbose: verbose, colorize: shouldColorize(out)}
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func (r *reporter) header(title string) {
	rule := strings.Repeat("━", 40)
	fmt.Fprintln(r.out, r.style(titleStyle, title))
	fmt.Fprintln(r.out, r.style(dimStyle, rule))
}

func (r *reporter) handle(event curate.ProgressEvent) {
	if event.Kind == curate.EventSummary {
		return
	}
	if event.Level == curate.LevelVerbose && !r.verbose {
		return
	}

	prefix, style := "  ", dimStyle
	switch event.Level {
	case curate.LevelError:
		prefix, style = "✖ ", errorStyle
	case curate.LevelWarning:
		prefix, style = "! ", warningStyle
	case curate.LevelSuccess:
		prefix, style = "✔ ", successStyle
	case curate.LevelInfo:
		prefix, style = "· ", infoStyle
	}

	fmt.Fprintln(r.out, r.style(style, prefix+event.Message))
}

func (r *reporter) style(s lipgloss.Style, msg string) string {
	if !r.colorize {
		return msg
	}
	return s.Render(msg)
}
