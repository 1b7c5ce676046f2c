// Package tui provides the terminal user interface for hrportal.
package tui

import (
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/hrportal/internal/config"
	"github.com/javiermolinar/hrportal/internal/content"
	"github.com/javiermolinar/hrportal/internal/payslip"
	"github.com/javiermolinar/hrportal/internal/portal"
	"github.com/javiermolinar/hrportal/internal/tui/commands"
	"github.com/javiermolinar/hrportal/internal/tui/theme"
)

// leaveField identifies an input in the leave form.
type leaveField int

const (
	leaveFieldReason leaveField = iota
	leaveFieldDate
)

func (f leaveField) next() leaveField {
	if f == leaveFieldDate {
		return leaveFieldReason
	}
	return f + 1
}

func (f leaveField) prev() leaveField {
	if f == leaveFieldReason {
		return leaveFieldDate
	}
	return f - 1
}

// Status messages stay visible this long.
const (
	statusDuration      = 3 * time.Second
	errorStatusDuration = 5 * time.Second
)

// Model is the main TUI model.
type Model struct {
	// Dependencies
	config    *config.Config
	content   content.Portal
	desk      *portal.LeaveDesk
	clipboard commands.ClipboardWriter

	// Theme and styles
	theme  *theme.Theme
	styles *Styles
	keys   keyMap

	// Navigation state
	state portal.State

	// Leave form
	leaveReason textinput.Model
	leaveDate   textinput.Model
	leaveFocus  leaveField
	leaveError  string // Inline validation message

	// Components
	progress progress.Model
	help     help.Model
	overlay  OverlayModel

	initState InitState

	// Terminal dimensions
	width  int
	height int
	layout LayoutCache

	// Messages
	statusMsg   string             // Temporary status/error message
	statusLevel portal.NoticeLevel // Styles the status line
	statusTime  time.Time          // When to clear message
	now         func() time.Time
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithInitState sets the startup initialization state.
func WithInitState(state InitState) ModelOption {
	return func(m *Model) {
		m.initState = state
	}
}

// WithContent replaces the built-in portal content.
func WithContent(c content.Portal) ModelOption {
	return func(m *Model) {
		m.content = c
	}
}

// WithLeaveDesk sets the desk that acknowledges leave requests.
func WithLeaveDesk(d *portal.LeaveDesk) ModelOption {
	return func(m *Model) {
		m.desk = d
	}
}

// WithClipboard replaces the system clipboard writer.
func WithClipboard(w commands.ClipboardWriter) ModelOption {
	return func(m *Model) {
		m.clipboard = w
	}
}

// WithClock overrides the clock used for status expiry.
func WithClock(now func() time.Time) ModelOption {
	return func(m *Model) {
		m.now = now
	}
}

// New creates a new TUI model.
func New(cfg *config.Config, opts ...ModelOption) *Model {
	if cfg == nil {
		cfg = config.Default()
	}

	// Load theme from config
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		// Fallback to mocha on error
		t, _ = theme.Load("mocha")
	}

	// Create styles from theme
	styles := NewStyles(t)

	reason := newFormInput(styles, "Reason for leave", 120)
	date := newFormInput(styles, "YYYY-MM-DD", 10)

	bar := progress.New(
		progress.WithSolidFill(string(styles.colorInfo)),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(styles.colorTrackBg)

	h := help.New()
	h.Styles = help.Styles{
		ShortKey:       styles.HelpKeyStyle,
		ShortDesc:      styles.HelpDescStyle,
		ShortSeparator: styles.HelpSepStyle,
		FullKey:        styles.HelpKeyStyle,
		FullDesc:       styles.HelpDescStyle,
		FullSeparator:  styles.HelpSepStyle,
		Ellipsis:       styles.HelpSepStyle,
	}

	m := &Model{
		config:      cfg,
		content:     content.Default(),
		desk:        portal.NewLeaveDesk(),
		clipboard:   clipboard.WriteAll,
		theme:       t,
		styles:      styles,
		keys:        defaultKeyMap(),
		state:       portal.Initial(),
		leaveReason: reason,
		leaveDate:   date,
		leaveFocus:  leaveFieldReason,
		progress:    bar,
		help:        h,
		overlay:     NewOverlayModel(styles.ModalBackdropColor),
		now:         time.Now,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

func newFormInput(styles *Styles, placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = modalWidth - 10
	ti.Prompt = ""
	ti.PlaceholderStyle = styles.ModalPlaceholderStyle
	ti.TextStyle = styles.ModalInputTextStyle
	ti.PromptStyle = styles.ModalInputTextStyle
	ti.Cursor.Style = styles.ModalInputCursorStyle
	ti.Cursor.TextStyle = styles.ModalInputTextStyle
	return ti
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	if m.initState.ConfigMissing {
		return commands.SaveConfig(m.config, m.initState.ConfigPath)
	}
	return nil
}

// State returns the current navigation state.
func (m Model) State() portal.State {
	return m.state
}

// payslipDocument assembles the payslip for display, copy, and export.
func (m Model) payslipDocument() payslip.Document {
	return payslip.Document{
		Employee:     m.config.Employee.Name,
		CurrencyCode: m.config.Currency.Code,
		Symbol:       m.config.Currency.Symbol,
		Slip:         m.content.Payslip,
	}
}

// setStatus shows msg on the status line and schedules its removal.
func (m *Model) setStatus(msg string, level portal.NoticeLevel) tea.Cmd {
	d := statusDuration
	if level == portal.NoticeError {
		d = errorStatusDuration
	}
	m.statusMsg = msg
	m.statusLevel = level
	m.statusTime = m.now().Add(d)
	return commands.ClearStatusAfter(d)
}

// Run starts the TUI.
func Run(cfg *config.Config) error {
	return RunWithDebug(cfg, false)
}

// RunWithDebug starts the TUI with optional debug logging.
func RunWithDebug(cfg *config.Config, debug bool) error {
	if err := InitDebugLogger(debug); err != nil {
		return err
	}
	defer CloseDebugLogger()

	initState, err := DetectInitState(config.DefaultConfigPath())
	if err != nil {
		return err
	}

	model := New(cfg, WithInitState(initState))
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(model, opts...)
	_, err = p.Run()
	return err
}
