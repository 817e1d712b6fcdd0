// Package logging builds the program logger: a console core and an
// optional file core teed together.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level names accepted in configuration.
const (
	LevelNone   = "none"
	LevelNormal = "normal"
	LevelDebug  = "debug"
)

// Config selects what goes where.
type Config struct {
	// Console is the level written to Console, usually stderr.
	Console string
	// File is the level written to FilePath.
	File     string
	FilePath string
	// Append keeps the previous file contents instead of truncating.
	Append bool
}

// Logger is a zap logger plus the file it owns.
type Logger struct {
	*zap.Logger
	file *os.File
}

// Close flushes the logger and closes the log file.
func (l *Logger) Close() error {
	_ = l.Sync()
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// ValidLevel reports whether name is a known level name.
func ValidLevel(name string) bool {
	switch strings.ToLower(name) {
	case LevelNone, LevelNormal, LevelDebug, "":
		return true
	}
	return false
}

func enabler(name string) (zapcore.LevelEnabler, bool) {
	switch strings.ToLower(name) {
	case LevelNormal:
		return zap.NewAtomicLevelAt(zap.InfoLevel), true
	case LevelDebug:
		return zap.NewAtomicLevelAt(zap.DebugLevel), true
	}
	return nil, false
}

// New builds a logger writing console output to console. A nil console
// means stderr.
func New(cfg Config, console io.Writer) (*Logger, error) {
	if !ValidLevel(cfg.Console) || !ValidLevel(cfg.File) {
		return nil, fmt.Errorf("unknown log level (console %q, file %q): use none, normal or debug", cfg.Console, cfg.File)
	}
	if console == nil {
		console = os.Stderr
	}

	consoleCore := zapcore.NewNopCore()
	if lvl, ok := enabler(cfg.Console); ok {
		ec := zap.NewDevelopmentEncoderConfig()
		ec.EncodeCaller = nil
		ec.TimeKey = zapcore.OmitKey
		consoleCore = zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.AddSync(console), lvl)
	}

	l := &Logger{}
	fileCore := zapcore.NewNopCore()
	if lvl, ok := enabler(cfg.File); ok && cfg.FilePath != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0o755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
		flags := os.O_CREATE | os.O_WRONLY
		if cfg.Append {
			flags |= os.O_APPEND
		} else {
			flags |= os.O_TRUNC
		}
		f, err := os.OpenFile(cfg.FilePath, flags, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file %s: %w", cfg.FilePath, err)
		}
		l.file = f
		fileCore = zapcore.NewCore(zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()), zapcore.Lock(f), lvl)
	}

	l.Logger = zap.New(zapcore.NewTee(consoleCore, fileCore), zap.AddCaller()).Named("cssmastery")
	return l, nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{Logger: zap.NewNop()}
}
