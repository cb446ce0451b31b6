// Package tui provides a Bubble Tea terminal user interface for coverfix.
package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/handiism/coverfix/internal/config"
	"github.com/handiism/coverfix/internal/curate"
	"github.com/handiism/coverfix/internal/logging"
	"github.com/handiism/coverfix/internal/model"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)

	duplicateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))
)

// maxLogs is how many recent events stay on screen.
const maxLogs = 10

// errCancelled is shown when the user aborts a run.
var errCancelled = errors.New("cancelled by user")

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateScanning
	StateCurating
	StateComplete
	StateError
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   curate.ProgressLevel
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	textInput textinput.Model
	spinner   spinner.Model
	progress  progress.Model
	settings  *config.Settings
	logs      []LogEntry
	summary   *curate.Summary
	err       error

	// Run context
	ctx    context.Context
	cancel context.CancelFunc

	// Runner and its event stream
	runner *curate.Runner
	runLog *logging.RunLog
	events chan curate.ProgressEvent

	// Run progress
	totalFiles     int32
	processedFiles int32
	duplicates     int

	// Options
	playlist bool
	verbose  bool

	width  int
	height int
}

// NewModel creates a new TUI model.
//
// folder pre-fills the input; settings may be nil for defaults.
func NewModel(settings *config.Settings, folder string) Model {
	if settings == nil {
		settings = config.DefaultSettings()
	}

	ti := textinput.New()
	ti.Placeholder = "/path/to/music"
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60
	ti.SetValue(folder)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:     StateInput,
		textInput: ti,
		spinner:   sp,
		progress:  prog,
		settings:  settings,
		playlist:  settings.CreateDuplicatesPlaylist,
		logs:      make([]LogEntry, 0),
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Message types
type (
	// ProgressMsg carries one runner event.
	ProgressMsg struct {
		Event curate.ProgressEvent
	}

	// EventsClosedMsg is sent once the runner has emitted its last event.
	EventsClosedMsg struct{}

	// InitDoneMsg is sent when file discovery completes.
	InitDoneMsg struct {
		Runner *curate.Runner
		RunLog *logging.RunLog
		Events chan curate.ProgressEvent
		Files  int
		Err    error
	}

	// RunDoneMsg is sent when the curation pass ends.
	RunDoneMsg struct {
		Summary *curate.Summary
		Err     error
	}

	// TickMsg is for periodic progress updates.
	TickMsg struct{}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 20
		if m.progress.Width > 80 {
			m.progress.Width = 80
		}
		if m.progress.Width < 20 {
			m.progress.Width = 20
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit

		case "esc":
			if m.state == StateInput {
				return m, tea.Quit
			}
			if m.state == StateCurating || m.state == StateScanning {
				m.cancel()
				m.state = StateError
				m.err = errCancelled
			}

		case "enter":
			if m.state == StateInput && strings.TrimSpace(m.textInput.Value()) != "" {
				m.state = StateScanning
				return m, tea.Batch(m.initializeRun(), m.spinner.Tick)
			}

		case "ctrl+p":
			if m.state == StateInput {
				m.playlist = !m.playlist
			}
			return m, nil

		case "ctrl+o":
			if m.state == StateInput {
				m.verbose = !m.verbose
			}
			return m, nil

		case "q":
			if m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateComplete || m.state == StateError {
				// Reset for a new run
				m.state = StateInput
				m.logs = nil
				m.summary = nil
				m.err = nil
				m.processedFiles = 0
				m.totalFiles = 0
				m.duplicates = 0
				m.runner = nil
				m.events = nil
				m.ctx, m.cancel = context.WithCancel(context.Background())
				m.textInput.Focus()
				return m, nil
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case ProgressMsg:
		m.applyEvent(msg.Event)
		cmds = append(cmds, waitForEvent(m.events))

	case EventsClosedMsg:
		m.events = nil

	case InitDoneMsg:
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
			break
		}
		if m.state != StateScanning {
			// Cancelled while scanning.
			msg.RunLog.Close()
			break
		}
		m.runner = msg.Runner
		m.runLog = msg.RunLog
		m.events = msg.Events
		m.totalFiles = int32(msg.Files)
		m.state = StateCurating
		cmds = append(cmds, waitForEvent(m.events), m.startRun(), m.tickProgress())

	case RunDoneMsg:
		m.summary = msg.Summary
		if msg.Summary != nil {
			m.processedFiles = int32(msg.Summary.Total)
		}
		switch {
		case m.ctx.Err() != nil:
			m.state = StateError
			m.err = errCancelled
		case msg.Err != nil:
			m.state = StateError
			m.err = msg.Err
		default:
			m.state = StateComplete
		}

	case TickMsg:
		// Update progress from the runner
		if m.runner != nil && m.state == StateCurating {
			processed, total := m.runner.GetProgress()
			m.processedFiles = processed
			m.totalFiles = total

			var percent float64
			if total > 0 {
				percent = float64(processed) / float64(total)
			}
			progressCmd := m.progress.SetPercent(percent)
			cmds = append(cmds, progressCmd, m.tickProgress())
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	// Update text input
	if m.state == StateInput {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// applyEvent records a runner event in the log pane.
func (m *Model) applyEvent(ev curate.ProgressEvent) {
	switch ev.Kind {
	case curate.EventDuplicate:
		m.duplicates++
	case curate.EventSummary:
		m.summary = ev.Summary
		return
	}

	// Filter verbose messages if not in verbose mode
	if ev.Level == curate.LevelVerbose && !m.verbose {
		return
	}
	m.logs = append(m.logs, LogEntry{Message: ev.Message, Level: ev.Level})
	// Keep only the most recent logs
	if len(m.logs) > maxLogs {
		m.logs = m.logs[len(m.logs)-maxLogs:]
	}
}

// tickProgress returns a command to tick progress updates.
func (m Model) tickProgress() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// waitForEvent blocks until the runner emits the next event.
func waitForEvent(events <-chan curate.ProgressEvent) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return EventsClosedMsg{}
		}
		return ProgressMsg{Event: ev}
	}
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("♪ coverfix"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Normalize embedded cover art to %dx%d", m.settings.TargetSize, m.settings.TargetSize)))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateScanning:
		b.WriteString(m.viewScanning())
	case StateCurating:
		b.WriteString(m.viewCurating())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Enter music folder:"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")

	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Create duplicates playlist (ctrl+p)\n", checkbox(m.playlist)))
	b.WriteString(fmt.Sprintf("  %s Verbose output (ctrl+o)\n", checkbox(m.verbose)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Workers: %d | Artwork provider: %s", m.settings.Workers, m.settings.ProviderBaseURL)))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewScanning() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Scanning folder..."))
	b.WriteString("\n\n")

	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewCurating() string {
	var b strings.Builder

	var percent float64
	if m.totalFiles > 0 {
		percent = float64(m.processedFiles) / float64(m.totalFiles)
	}
	b.WriteString(m.progress.ViewAs(percent))
	b.WriteString("\n")

	b.WriteString(infoStyle.Render(fmt.Sprintf("Files: %d/%d", m.processedFiles, m.totalFiles)))
	if m.duplicates > 0 {
		b.WriteString(duplicateStyle.Render(fmt.Sprintf(" | Possible duplicates: %d", m.duplicates)))
	}
	b.WriteString("\n\n")

	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	var b strings.Builder

	if m.summary == nil {
		b.WriteString(boxStyle.Render("Run complete."))
		return b.String()
	}

	var lines []string
	lines = append(lines, "✔ Run complete", "")
	lines = append(lines, fmt.Sprintf("Total files checked: %d", m.summary.Total))
	lines = append(lines, fmt.Sprintf("Already had album art: %d", m.summary.WithArt))
	for _, o := range model.Outcomes {
		if n := m.summary.Count(o); n > 0 {
			lines = append(lines, fmt.Sprintf("%s: %d", o.Label(), n))
		}
	}
	lines = append(lines, fmt.Sprintf("Duplicate candidates: %d", m.summary.DuplicateCount()))
	b.WriteString(boxStyle.Render(strings.Join(lines, "\n")))
	b.WriteString("\n")

	for _, pair := range m.summary.Duplicates {
		b.WriteString(duplicateStyle.Render(fmt.Sprintf("  ≈ %s\n    %s",
			relPath(m.summary.Root, pair.Original.Path), relPath(m.summary.Root, pair.Duplicate.Path))))
		b.WriteString("\n")
	}
	if m.runLog != nil && m.runLog.Path != "" {
		b.WriteString(dimStyle.Render("Log saved: " + m.runLog.Path))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("✖ Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case curate.LevelError:
			style = errorStyle
			prefix = "✗"
		case curate.LevelWarning:
			style = warningStyle
			prefix = "!"
		case curate.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case curate.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateInput:
		return "enter: start • ctrl+p: playlist • ctrl+o: verbose • esc: quit"
	case StateScanning, StateCurating:
		return "esc: cancel"
	case StateComplete, StateError:
		return "r: new run • q: quit"
	}
	return ""
}

// initializeRun discovers the files of the chosen folder and builds the runner.
func (m *Model) initializeRun() tea.Cmd {
	folder := expandHome(strings.TrimSpace(m.textInput.Value()))
	settings := *m.settings
	settings.CreateDuplicatesPlaylist = m.playlist
	ctx := m.ctx

	return func() tea.Msg {
		root, err := filepath.Abs(folder)
		if err != nil {
			return InitDoneMsg{Err: err}
		}
		if info, err := os.Stat(root); err != nil || !info.IsDir() {
			return InitDoneMsg{Err: fmt.Errorf("%s is not a folder", root)}
		}

		runLog, err := logging.New(logging.Options{
			Level:      settings.LogLevel,
			Dir:        root,
			FileName:   settings.LogFileName,
			EnableFile: settings.EnableLogFile,
		})
		if err != nil {
			return InitDoneMsg{Err: err}
		}

		// Buffered so workers rarely wait on the UI.
		events := make(chan curate.ProgressEvent, 256)
		runner, err := curate.NewRunner(&settings, func(ev curate.ProgressEvent) {
			select {
			case events <- ev:
			case <-ctx.Done():
			}
		}, curate.WithLogger(runLog.Logger), curate.WithRunID(runLog.RunID))
		if err != nil {
			runLog.Close()
			return InitDoneMsg{Err: err}
		}

		if err := runner.Initialize(ctx, root); err != nil {
			runLog.Close()
			return InitDoneMsg{Err: err}
		}

		return InitDoneMsg{
			Runner: runner,
			RunLog: runLog,
			Events: events,
			Files:  len(runner.Files()),
		}
	}
}

// startRun curates the folder in the background.
func (m *Model) startRun() tea.Cmd {
	runner, runLog, events, ctx := m.runner, m.runLog, m.events, m.ctx

	return func() tea.Msg {
		if runner == nil {
			return RunDoneMsg{Err: fmt.Errorf("no runner")}
		}

		summary, err := runner.Run(ctx)
		close(events)
		if runLog != nil {
			runLog.Close()
		}

		return RunDoneMsg{Summary: summary, Err: err}
	}
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}

func relPath(root, path string) string {
	if rel, err := filepath.Rel(root, path); err == nil {
		return rel
	}
	return path
}

// Run starts the TUI application.
func Run(settings *config.Settings, folder string) error {
	p := tea.NewProgram(NewModel(settings, folder), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
