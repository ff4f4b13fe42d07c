// Package logging provides structured, colorful logging for pinotctl batch runs,
// ensuring consistent log formatting across the CLI surface, the processing loop,
// and integrated third-party libraries (Resty, Gin).
//
// Implements an explicitly constructed Logger with a defined lifecycle: created
// at run start, closed at run end. There is no ambient package-level logger;
// every component that logs receives a *Logger. This keeps the interactive shell
// and the flag-driven shell on the exact same logging pipeline.
//
// LOGGING FEATURES:
//   - Color-coded levels: DEBUG (purple), INFO (blue), WARN (yellow), ERROR (red), SUCCESS (green)
//   - Unix conventions: INFO/SUCCESS to stdout, WARN/ERROR/DEBUG to stderr
//   - Run log file: every line is teed into an append-mode log file so a run
//     leaves a durable trace independent of the results file
//   - Integration writers: io.Writer adapters for libraries that log through
//     writers (Gin) or printf-style logger interfaces (Resty)
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// Options configures a Logger at construction time. Zero value gives an
// INFO-level console-only logger.
type Options struct {
	Level   string // DEBUG, INFO, WARN, ERROR (default INFO)
	LogFile string // append-mode run log path; empty disables the file tee
}

// Logger is the unified logging pipeline for one batch run. INFO and SUCCESS
// lines go to stdout, WARN/ERROR/DEBUG to stderr, and everything is duplicated
// into the run log file when one is configured.
type Logger struct {
	stdout  *log.Logger // INFO
	stderr  *log.Logger // WARN/ERROR/DEBUG
	success *log.Logger // INFO level restyled as SUCCESS
	file    *os.File    // run log handle, nil when disabled
}

// setupCustomStyles configures custom color schemes for log levels to improve
// visual distinction while scanning a batch run's output.
//
// Colors are chosen to work in both light and dark terminals while keeping
// the five levels immediately distinguishable.
func setupCustomStyles() *log.Styles {
	styles := log.DefaultStyles()

	// DEBUG: light purple
	styles.Levels[log.DebugLevel] = lipgloss.NewStyle().
		SetString("DEBUG").
		Foreground(lipgloss.Color("#7F6DFF"))

	// INFO: light blue
	styles.Levels[log.InfoLevel] = lipgloss.NewStyle().
		SetString("INFO").
		Foreground(lipgloss.Color("#42E7FF"))

	// WARN: light yellow
	styles.Levels[log.WarnLevel] = lipgloss.NewStyle().
		SetString("WARN").
		Foreground(lipgloss.Color("#FFE763"))

	// ERROR: light red/pink
	styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
		SetString("ERROR").
		Foreground(lipgloss.Color("#FF4473"))

	return styles
}

// successStyles returns the custom style set with the INFO label restyled as
// a light green SUCCESS marker. Success messages use INFO level internally so
// they respect INFO level filtering.
func successStyles() *log.Styles {
	styles := setupCustomStyles()
	styles.Levels[log.InfoLevel] = lipgloss.NewStyle().
		SetString("SUCCESS").
		Foreground(lipgloss.Color("#60F281"))
	return styles
}

// newCharmLogger builds a charmbracelet logger with the shared timestamp
// options and the given style set.
func newCharmLogger(w io.Writer, styles *log.Styles) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
	})
	l.SetStyles(styles)
	return l
}

// New constructs a Logger for one batch run. When opts.LogFile is set the
// file is opened in append mode and every console line is duplicated into it,
// so repeated runs accumulate in a single operational log.
func New(opts Options) (*Logger, error) {
	var (
		file      *os.File
		outWriter io.Writer = os.Stdout
		errWriter io.Writer = os.Stderr
	)

	if opts.LogFile != "" {
		f, err := os.OpenFile(opts.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open run log %s: %w", opts.LogFile, err)
		}
		file = f
		outWriter = io.MultiWriter(os.Stdout, f)
		errWriter = io.MultiWriter(os.Stderr, f)
	}

	l := &Logger{
		stdout:  newCharmLogger(outWriter, setupCustomStyles()),
		stderr:  newCharmLogger(errWriter, setupCustomStyles()),
		success: newCharmLogger(outWriter, successStyles()),
		file:    file,
	}
	l.SetLevel(opts.Level)
	return l, nil
}

// Discard returns a Logger that drops everything. Used by tests and by
// components that require a non-nil logger before one is configured.
func Discard() *Logger {
	styles := setupCustomStyles()
	return &Logger{
		stdout:  newCharmLogger(io.Discard, styles),
		stderr:  newCharmLogger(io.Discard, styles),
		success: newCharmLogger(io.Discard, successStyles()),
	}
}

// NewWithWriter constructs a Logger that sends all levels to a single writer.
// Useful in tests that want to assert on emitted lines.
func NewWithWriter(w io.Writer, level string) *Logger {
	l := &Logger{
		stdout:  newCharmLogger(w, setupCustomStyles()),
		stderr:  newCharmLogger(w, setupCustomStyles()),
		success: newCharmLogger(w, successStyles()),
	}
	l.SetLevel(level)
	return l
}

// Info logs informational messages for run progress and status updates.
// Uses stdout following Unix conventions.
func (l *Logger) Info(format string, v ...any) {
	l.stdout.Info(fmt.Sprintf(format, v...))
}

// Warn logs warning messages for non-critical issues requiring attention.
// Uses stderr following Unix conventions.
func (l *Logger) Warn(format string, v ...any) {
	l.stderr.Warn(fmt.Sprintf(format, v...))
}

// Error logs error messages for failures in the batch run.
// Uses stderr following Unix conventions.
func (l *Logger) Error(format string, v ...any) {
	l.stderr.Error(fmt.Sprintf(format, v...))
}

// Debug logs detailed debugging information such as field mappings and
// raw request/response traffic. Uses stderr following Unix conventions.
func (l *Logger) Debug(format string, v ...any) {
	l.stderr.Debug(fmt.Sprintf(format, v...))
}

// Success logs successful operations in green using INFO level with custom
// styling, so it is filtered together with INFO messages.
func (l *Logger) Success(format string, v ...any) {
	if l.stdout.GetLevel() > log.InfoLevel {
		return // Skip if INFO level is suppressed
	}
	l.success.Info(fmt.Sprintf(format, v...))
}

// SetLevel configures the minimum logging level for filtering log output.
// Accepts standard level strings (DEBUG, INFO, WARN, ERROR); anything else
// falls back to INFO.
func (l *Logger) SetLevel(level string) {
	var logLevel log.Level
	switch strings.ToUpper(level) {
	case "DEBUG":
		logLevel = log.DebugLevel
	case "INFO":
		logLevel = log.InfoLevel
	case "WARN":
		logLevel = log.WarnLevel
	case "ERROR":
		logLevel = log.ErrorLevel
	default:
		logLevel = log.InfoLevel
	}

	l.stdout.SetLevel(logLevel)
	l.stderr.SetLevel(logLevel)
	l.success.SetLevel(logLevel)
}

// Close flushes and releases the run log file. Safe to call on loggers
// constructed without a file.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// LevelWriter forwards log lines to a specific log level with optional prefix.
// Useful for integrating third-party libraries that expect io.Writer interfaces.
type LevelWriter struct {
	logger *Logger
	level  string
	prefix string
}

// NewLevelWriter creates a writer that logs each line at the specified level
// with the given prefix. Valid levels: DEBUG, INFO, WARN, ERROR.
func (l *Logger) NewLevelWriter(level, prefix string) io.Writer {
	return &LevelWriter{logger: l, level: strings.ToUpper(level), prefix: prefix}
}

// Write implements io.Writer by splitting input into lines and logging each
// at the configured level.
func (w *LevelWriter) Write(p []byte) (int, error) {
	lines := strings.Split(string(p), "\n")
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		msg := line
		if w.prefix != "" {
			msg = w.prefix + ": " + line
		}
		switch w.level {
		case "DEBUG":
			w.logger.Debug("%s", msg)
		case "INFO":
			w.logger.Info("%s", msg)
		case "WARN":
			w.logger.Warn("%s", msg)
		case "ERROR":
			w.logger.Error("%s", msg)
		default:
			w.logger.Info("%s", msg)
		}
	}
	return len(p), nil
}
