package tui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/hrportal/internal/portal"
)

// DebugLogger logs TUI state transitions, keystrokes, and events as JSON lines.
type DebugLogger struct {
	mu     sync.Mutex
	closer io.Closer
	logger *slog.Logger
}

// Global debug logger instance
var debugLog *DebugLogger

// DebugLogPath is the fixed path for debug logs
const DebugLogPath = "hrportal-debug.log"

// InitDebugLogger initializes the debug logger if debug mode is enabled.
func InitDebugLogger(enabled bool) error {
	if !enabled {
		debugLog = nil
		return nil
	}

	// Create log file in current directory with fixed name (easy to find)
	f, err := os.Create(DebugLogPath)
	if err != nil {
		return fmt.Errorf("creating debug log: %w", err)
	}

	debugLog = newDebugLogger(f, f)
	debugLog.log("DEBUG_START", slog.String("log_file", DebugLogPath))
	return nil
}

func newDebugLogger(w io.Writer, closer io.Closer) *DebugLogger {
	return &DebugLogger{
		closer: closer,
		logger: slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})),
	}
}

// CloseDebugLogger closes the debug log file.
func CloseDebugLogger() {
	if debugLog == nil {
		return
	}
	debugLog.log("DEBUG_END")
	if debugLog.closer != nil {
		_ = debugLog.closer.Close()
	}
	debugLog = nil
}

func (d *DebugLogger) log(event string, attrs ...slog.Attr) {
	if d == nil || d.logger == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.logger.LogAttrs(context.Background(), slog.LevelDebug, event, attrs...)
}

// LogKeyPress logs a key press event.
func LogKeyPress(msg tea.KeyMsg) {
	debugLog.log("KEY_PRESS", slog.String("key", msg.String()))
}

// LogMouse logs a mouse click with its resolved target.
func LogMouse(msg tea.MouseMsg, target string) {
	debugLog.log("MOUSE",
		slog.Int("x", msg.X),
		slog.Int("y", msg.Y),
		slog.String("target", target),
	)
}

// LogTransition logs a state change.
func LogTransition(from, to portal.State, reason string) {
	if from == to {
		return
	}
	debugLog.log("TRANSITION",
		slog.String("from", from.String()),
		slog.String("to", to.String()),
		slog.String("reason", reason),
	)
}

// LogError logs an error.
func LogError(op string, err error) {
	debugLog.log("ERROR",
		slog.String("op", op),
		slog.String("error", err.Error()),
	)
}
