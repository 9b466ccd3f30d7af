// Package logger provides a small leveled logger whose lines carry a coloured component prefix.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/beka-birhanu/vinom-posemaze/config"
)

var ErrEmptyPrefix = errors.New("logger prefix must not be empty")

// Logger writes lines of the form "[PREFIX] [LEVEL] message".
type Logger struct {
	prefix string
	out    *log.Logger
}

// New creates a logger writing to w. color is an ANSI escape applied to the prefix.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if prefix == "" {
		return nil, ErrEmptyPrefix
	}
	if w == nil {
		w = io.Discard
	}

	return &Logger{
		prefix: fmt.Sprintf("%s[%s]%s ", color, prefix, config.ColorReset),
		out:    log.New(w, "", log.LstdFlags),
	}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.print(config.LogInfoColor, "INFO", msg)
}

// Warning logs a recoverable problem.
func (l *Logger) Warning(msg string) {
	l.print(config.LogWarningColor, "WARNING", msg)
}

// Error logs a failure.
func (l *Logger) Error(msg string) {
	l.print(config.LogErrorColor, "ERROR", msg)
}

func (l *Logger) print(color, level, msg string) {
	l.out.Printf("%s%s[%s]%s %s", l.prefix, color, level, config.LogColorReset, msg)
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	l, _ := New("DISCARD", "", io.Discard)
	return l
}
