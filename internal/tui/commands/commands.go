// Package commands provides TUI command constructors and message types.
package commands

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/hrportal/internal/config"
	"github.com/javiermolinar/hrportal/internal/payslip"
	"github.com/javiermolinar/hrportal/internal/portal"
)

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg   string
	Level portal.NoticeLevel
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// PayslipExportedMsg is sent when the payslip PDF has been written.
type PayslipExportedMsg struct {
	Path string
}

// PayslipCopiedMsg is sent when the payslip text is on the clipboard.
type PayslipCopiedMsg struct{}

// ConfigSavedMsg is sent when a default config file was written on first run.
type ConfigSavedMsg struct {
	Path string
}

// ClipboardWriter writes text to the system clipboard.
type ClipboardWriter func(string) error

// Status returns a command that posts a status message.
func Status(msg string, level portal.NoticeLevel) tea.Cmd {
	return func() tea.Msg {
		return StatusMsgCmd{Msg: msg, Level: level}
	}
}

// ClearStatusAfter returns a command that clears the status line after d.
func ClearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}

// ExportPayslip writes the payslip PDF into dir.
func ExportPayslip(dir string, doc payslip.Document) tea.Cmd {
	return func() tea.Msg {
		path, err := payslip.ExportFile(dir, doc)
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("exporting payslip: %w", err)}
		}
		return PayslipExportedMsg{Path: path}
	}
}

// CopyPayslip copies the payslip text using write.
func CopyPayslip(write ClipboardWriter, doc payslip.Document) tea.Cmd {
	return func() tea.Msg {
		if write == nil {
			return ErrMsg{Err: fmt.Errorf("clipboard unavailable")}
		}
		if err := write(payslip.Text(doc)); err != nil {
			return ErrMsg{Err: fmt.Errorf("copying payslip: %w", err)}
		}
		return PayslipCopiedMsg{}
	}
}

// SaveConfig writes cfg to path.
func SaveConfig(cfg *config.Config, path string) tea.Cmd {
	return func() tea.Msg {
		if err := cfg.SaveTo(path); err != nil {
			return ErrMsg{Err: fmt.Errorf("saving config: %w", err)}
		}
		return ConfigSavedMsg{Path: path}
	}
}
