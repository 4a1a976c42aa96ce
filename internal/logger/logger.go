// Package logger provides the suite's level-tagged logger. Output goes either to plain console
// lines or to a structured zap backend, chosen once when the logger is built.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/themizzi/jupitertoys/internal/config"
)

// Level is a log severity
type Level string

// Log levels
const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// sink is a logging backend
type sink interface {
	write(level Level, message string)
}

// Logger writes level-tagged lines to its backend
type Logger struct {
	sink sink
}

// New creates a logger writing to w with the backend selected by cfg
func New(cfg config.LogConfig, w io.Writer) *Logger {
	if cfg.Structured {
		return &Logger{sink: newStructuredSink(w, cfg.Level)}
	}
	return &Logger{sink: &consoleSink{w: w, now: time.Now}}
}

// Nop returns a logger that discards everything
func Nop() *Logger {
	return &Logger{sink: nopSink{}}
}

var (
	defaultOnce   sync.Once
	defaultLogger *Logger
)

// Default returns the process-wide logger configured from the environment on first use
func Default() *Logger {
	defaultOnce.Do(func() {
		defaultLogger = New(config.LoadLogConfig(os.Getenv), os.Stdout)
	})
	return defaultLogger
}

// Log writes message at the given level
func (l *Logger) Log(message string, level Level) {
	if l == nil || l.sink == nil {
		return
	}
	l.sink.write(level, message)
}

func (l *Logger) Debugf(format string, args ...any) { l.Log(fmt.Sprintf(format, args...), LevelDebug) }
func (l *Logger) Infof(format string, args ...any)  { l.Log(fmt.Sprintf(format, args...), LevelInfo) }
func (l *Logger) Warnf(format string, args ...any)  { l.Log(fmt.Sprintf(format, args...), LevelWarn) }
func (l *Logger) Errorf(format string, args ...any) { l.Log(fmt.Sprintf(format, args...), LevelError) }

// consoleSink writes every message, unfiltered, with an ISO timestamp prefix
type consoleSink struct {
	mu  sync.Mutex
	w   io.Writer
	now func() time.Time
}

func (s *consoleSink) write(level Level, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	timestamp := s.now().UTC().Format("2006-01-02T15:04:05.000Z07:00")
	fmt.Fprintf(s.w, "%s [%s]: %s\n", timestamp, strings.ToUpper(string(level)), message)
}

type nopSink struct{}

func (nopSink) write(Level, string) {}
