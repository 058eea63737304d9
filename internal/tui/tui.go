// Package tui provides a Bubble Tea practice browser: walk the circle of
// fifths, switch modes, and export what is on screen.
package tui

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/handiism/virtuoso/internal/config"
	"github.com/handiism/virtuoso/internal/export"
	ioutils "github.com/handiism/virtuoso/internal/io"
	"github.com/handiism/virtuoso/internal/model"
	"github.com/handiism/virtuoso/internal/notation"
	"github.com/handiism/virtuoso/internal/theory"
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
			Padding(0, 1)

	currentKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F8B500"))
)

// State represents the current UI state.
type State int

const (
	StateBrowse State = iota
	StateRootInput
	StateExporting
	StateComplete
	StateError
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   export.ProgressLevel
}

// logBuffer collects export events from worker goroutines until the next
// tick picks them up.
type logBuffer struct {
	mu      sync.Mutex
	entries []LogEntry
}

func (b *logBuffer) add(e export.ProgressEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries = append(b.entries, LogEntry{Message: e.Message, Level: e.Level})
	if len(b.entries) > 10 {
		b.entries = b.entries[len(b.entries)-10:]
	}
}

func (b *logBuffer) snapshot() []LogEntry {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]LogEntry(nil), b.entries...)
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	session   Session
	keys      keyMap
	help      help.Model
	rootInput textinput.Model
	spinner   spinner.Model
	progress  progress.Model
	settings  *config.Settings

	status      string
	statusLevel export.ProgressLevel

	// Export run
	ctx     context.Context
	cancel  context.CancelFunc
	manager *export.Manager
	events  *logBuffer
	logs    []LogEntry
	written int32
	failed  int32
	total   int32
	err     error

	verbose bool
	width   int
	height  int
}

// NewModel creates a new TUI model showing session.
func NewModel(settings *config.Settings, session Session) Model {
	ti := textinput.New()
	ti.Placeholder = "C, F#, Bb, ..."
	ti.CharLimit = 8
	ti.Width = 12

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:     StateBrowse,
		session:   session,
		keys:      keys,
		help:      help.New(),
		rootInput: ti,
		spinner:   sp,
		progress:  prog,
		settings:  settings,
		events:    &logBuffer{},
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Session returns the practice state shown by the model.
func (m Model) Session() Session {
	return m.session
}

// State returns the current UI state.
func (m Model) State() State {
	return m.state
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Message types
type (
	// ExportedMsg is sent when the current exercise has been written.
	ExportedMsg struct {
		Paths []string
		Err   error
	}

	// ExportInitMsg is sent when a full export run has been planned.
	ExportInitMsg struct {
		Manager *export.Manager
		Err     error
	}

	// ExportDoneMsg is sent when a full export run ends.
	ExportDoneMsg struct {
		Written, Failed, Total int32
		Err                    error
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
		m.help.Width = msg.Width
		m.progress.Width = min(max(msg.Width-20, 20), 80)
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case StateBrowse:
			return m.updateBrowse(msg)
		case StateRootInput:
			return m.updateRootInput(msg)
		case StateExporting:
			if msg.String() == "esc" || msg.String() == "ctrl+c" {
				m.cancel()
			}
			return m, nil
		case StateComplete, StateError:
			switch {
			case key.Matches(msg, m.keys.Quit):
				m.cancel()
				return m, tea.Quit
			case msg.String() == "esc", msg.String() == "enter":
				m.state = StateBrowse
				m.err = nil
				m.manager = nil
				m.ctx, m.cancel = context.WithCancel(context.Background())
			}
			return m, nil
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case ExportedMsg:
		if msg.Err != nil {
			m.setStatus(fmt.Sprintf("Export failed: %v", msg.Err), export.LevelError)
		} else {
			m.setStatus(fmt.Sprintf("Wrote %s", strings.Join(msg.Paths, ", ")), export.LevelSuccess)
		}

	case ExportInitMsg:
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
		} else {
			m.manager = msg.Manager
			_, _, m.total = m.manager.Progress()
			cmds = append(cmds, runExport(m.ctx, m.manager), tickProgress())
		}

	case ExportDoneMsg:
		m.written, m.failed, m.total = msg.Written, msg.Failed, msg.Total
		m.logs = m.events.snapshot()
		switch {
		case m.ctx.Err() != nil:
			m.state = StateError
			m.err = fmt.Errorf("cancelled by user")
		case msg.Err != nil:
			m.state = StateError
			m.err = msg.Err
		default:
			m.state = StateComplete
		}

	case TickMsg:
		if m.manager != nil && m.state == StateExporting {
			m.written, m.failed, m.total = m.manager.Progress()
			m.logs = m.events.snapshot()

			var percent float64
			if m.total > 0 {
				percent = float64(m.written+m.failed) / float64(m.total)
			}
			cmds = append(cmds, m.progress.SetPercent(percent), tickProgress())
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.cancel()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Next):
		m.session.NextFifth()
	case key.Matches(msg, m.keys.Prev):
		m.session.PrevFifth()
	case key.Matches(msg, m.keys.Relative):
		m.session.Relative()
	case key.Matches(msg, m.keys.Mode):
		m.session.ToggleMode()
	case key.Matches(msg, m.keys.Harmonic):
		m.session.SetMinorType(theory.HarmonicMinor)
	case key.Matches(msg, m.keys.Melodic):
		m.session.SetMinorType(theory.MelodicMinor)
	case key.Matches(msg, m.keys.Natural):
		m.session.SetMinorType(theory.NaturalMinor)
	case key.Matches(msg, m.keys.Shuffle):
		m.session.Shuffle()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Root):
		m.state = StateRootInput
		m.rootInput.SetValue("")
		m.status = ""
		return m, m.rootInput.Focus()
	case key.Matches(msg, m.keys.Export):
		m.setStatus("Exporting "+m.session.Title()+"...", export.LevelInfo)
		return m, exportCurrent(m.ctx, m.settings, m.session)
	case key.Matches(msg, m.keys.ExportAll):
		m.state = StateExporting
		m.events = &logBuffer{}
		m.logs = nil
		m.written, m.failed, m.total = 0, 0, 0
		return m, tea.Batch(initExport(m.settings, m.events), m.spinner.Tick)
	default:
		return m, nil
	}
	m.status = ""
	return m, nil
}

func (m Model) updateRootInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state = StateBrowse
		m.rootInput.Blur()
		return m, nil
	case "enter":
		m.state = StateBrowse
		m.rootInput.Blur()
		if err := m.session.SetRoot(m.rootInput.Value()); err != nil {
			m.setStatus(err.Error(), export.LevelError)
		}
		return m, nil
	case "ctrl+c":
		m.cancel()
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.rootInput, cmd = m.rootInput.Update(msg)
	return m, cmd
}

func (m *Model) setStatus(s string, level export.ProgressLevel) {
	m.status = s
	m.statusLevel = level
}

// tickProgress returns a command to tick progress updates.
func tickProgress() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// exportCurrent writes the session's exercise once per configured format.
func exportCurrent(ctx context.Context, settings *config.Settings, s Session) tea.Cmd {
	return func() tea.Msg {
		var paths []string
		for _, format := range settings.Formats {
			b := model.NewBook(settings.BookTitle, format, settings.ToPathConfig())
			ex := model.NewExercise(b, 1, s.Root, s.Type, settings.ToExerciseConfig())
			if err := ioutils.EnsureDir(b.Path); err != nil {
				return ExportedMsg{Err: err}
			}
			if err := export.WriteExercise(ctx, ex, settings.Tempo); err != nil {
				return ExportedMsg{Err: err}
			}
			paths = append(paths, ex.Path)
		}
		return ExportedMsg{Paths: paths}
	}
}

// initExport plans a full run with the configured settings.
func initExport(settings *config.Settings, events *logBuffer) tea.Cmd {
	return func() tea.Msg {
		manager := export.NewManager(settings, events.add)
		if err := manager.Initialize(); err != nil {
			return ExportInitMsg{Err: err}
		}
		return ExportInitMsg{Manager: manager}
	}
}

// runExport writes every planned file in the background.
func runExport(ctx context.Context, manager *export.Manager) tea.Cmd {
	return func() tea.Msg {
		err := manager.Start(ctx)
		written, failed, total := manager.Progress()
		return ExportDoneMsg{Written: written, Failed: failed, Total: total, Err: err}
	}
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("♪ Virtuoso"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Scales and cadences around the circle of fifths"))
	b.WriteString("\n\n")

	switch m.state {
	case StateBrowse, StateRootInput:
		b.WriteString(m.viewBrowse())
	case StateExporting:
		b.WriteString(m.viewExporting())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	b.WriteString("\n")
	b.WriteString(m.viewHelp())

	return b.String()
}

func (m Model) viewBrowse() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render(m.session.Title()))
	b.WriteString("  ")
	b.WriteString(infoStyle.Render("Key signature: " + m.session.KeySignature()))
	b.WriteString("\n\n")
	b.WriteString(m.viewCircle())
	b.WriteString("\n\n")
	b.WriteString(boxStyle.Render(strings.TrimRight(notation.Render(m.session.Exercise()), "\n")))
	b.WriteString("\n")

	if m.state == StateRootInput {
		b.WriteString("\n")
		b.WriteString(subtitleStyle.Render("Root: "))
		b.WriteString(m.rootInput.View())
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(levelStyle(m.statusLevel).Render(m.status))
		b.WriteString("\n")
	}

	return b.String()
}

// viewCircle lists the keys of the current mode with the root highlighted.
func (m Model) viewCircle() string {
	circle := theory.CircleFor(m.session.Type)
	parts := make([]string, 0, len(circle))
	for _, n := range circle {
		name := n.Pretty()
		if n.PitchEqual(m.session.Root) {
			parts = append(parts, currentKeyStyle.Render("["+name+"]"))
		} else {
			parts = append(parts, dimStyle.Render(" "+name+" "))
		}
	}
	return strings.Join(parts, "")
}

func (m Model) viewExporting() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Exporting..."))
	b.WriteString("\n\n")

	var percent float64
	if m.total > 0 {
		percent = float64(m.written+m.failed) / float64(m.total)
	}
	b.WriteString(m.progress.ViewAs(percent))
	b.WriteString("\n")
	b.WriteString(infoStyle.Render(fmt.Sprintf("Files: %d/%d | Failed: %d", m.written, m.total, m.failed)))
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	var b strings.Builder

	b.WriteString(boxStyle.Render(fmt.Sprintf(
		"✨ Export Complete!\n\nFiles: %d\nFailed: %d\nPath: %s",
		m.written,
		m.failed,
		m.settings.OutputPath,
	)))
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("✗ Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}

	return b.String()
}

func levelStyle(level export.ProgressLevel) lipgloss.Style {
	switch level {
	case export.LevelError:
		return errorStyle
	case export.LevelWarning:
		return warningStyle
	case export.LevelSuccess:
		return successStyle
	case export.LevelInfo:
		return infoStyle
	default:
		return dimStyle
	}
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		if log.Level == export.LevelVerbose && !m.verbose {
			continue
		}
		prefix := "•"
		switch log.Level {
		case export.LevelError:
			prefix = "✗"
		case export.LevelWarning:
			prefix = "!"
		case export.LevelSuccess:
			prefix = "✓"
		case export.LevelInfo:
			prefix = "›"
		}
		b.WriteString(levelStyle(log.Level).Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewHelp() string {
	switch m.state {
	case StateBrowse:
		return m.help.View(m.keys)
	case StateRootInput:
		return dimStyle.Render("enter: set root • esc: cancel")
	case StateExporting:
		return dimStyle.Render("esc: cancel")
	case StateComplete, StateError:
		return dimStyle.Render("enter: back • q: quit")
	}
	return ""
}

// Options configures Run.
type Options struct {
	Settings *config.Settings
	Root     theory.Note
	Type     theory.ScaleType
	Verbose  bool
}

// Run starts the TUI application.
func Run(opts Options) error {
	settings := opts.Settings
	if settings == nil {
		settings = config.DefaultSettings()
	}
	m := NewModel(settings, NewSession(opts.Root, opts.Type, nil))
	m.verbose = opts.Verbose

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
