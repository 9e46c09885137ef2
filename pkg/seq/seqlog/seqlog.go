package seqlog

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// Config controls level, format and destination of the diagnostics stream.
type Config struct {
	Level  string // zerolog level name; "info" when empty or unknown
	Format string // "json" (default) or "console"
	Output string // "stderr" (default) or "stdout"
}

// Logger tags every event with the component that raised it.
type Logger struct {
	logger    zerolog.Logger
	component string
}

// New builds a Logger from cfg.
func New(cfg Config, component string) *Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	out := outputWriter(cfg.Output)
	var zl zerolog.Logger
	if strings.EqualFold(cfg.Format, "console") {
		zl = zerolog.New(zerolog.ConsoleWriter{Out: out})
	} else {
		zl = zerolog.New(out)
	}
	zl = zl.Level(level).With().Timestamp().Str("component", component).Logger()

	return &Logger{logger: zl, component: component}
}

// NewDefault builds a Logger with the default configuration.
func NewDefault(component string) *Logger {
	return New(Config{}, component)
}

// WithComponent returns a copy tagged with a different component name.
func (l *Logger) WithComponent(name string) *Logger {
	return &Logger{
		logger:    l.logger.With().Str("component", name).Logger(),
		component: name,
	}
}

// Warn starts a warning event.
func (l *Logger) Warn() *zerolog.Event {
	return l.logger.Warn()
}

// Debug starts a debug event.
func (l *Logger) Debug() *zerolog.Event {
	return l.logger.Debug()
}

// Error starts an error event.
func (l *Logger) Error() *zerolog.Event {
	return l.logger.Error()
}

var (
	defaultMu     sync.RWMutex
	defaultLogger = NewDefault("seq3")
)

// Default returns the process-wide diagnostics logger.
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault replaces the process-wide diagnostics logger.
func SetDefault(l *Logger) {
	if l == nil {
		return
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

func outputWriter(name string) io.Writer {
	if strings.EqualFold(name, "stdout") {
		return os.Stdout
	}
	return os.Stderr
}
