// Package logger provides named, colored level loggers on top of the standard log package.
package logger

import (
	"errors"
	"io"
	"log"
)

const colorReset = "\033[0m"

var (
	ErrEmptyName = errors.New("logger name is required")
	ErrNilWriter = errors.New("logger writer is required")
)

// Logger writes messages prefixed with its colored name and a level tag.
type Logger struct {
	name  string
	color string
	out   *log.Logger
}

// New creates a Logger that writes to w. The name is printed in the given
// terminal color; pass an empty color for plain output.
func New(name, color string, w io.Writer) (*Logger, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if w == nil {
		return nil, ErrNilWriter
	}
	return &Logger{
		name:  name,
		color: color,
		out:   log.New(w, "", log.LstdFlags),
	}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.print("INFO", msg)
}

// Warning logs a recoverable problem.
func (l *Logger) Warning(msg string) {
	l.print("WARNING", msg)
}

// Error logs a failure.
func (l *Logger) Error(msg string) {
	l.print("ERROR", msg)
}

func (l *Logger) print(level, msg string) {
	if l.color == "" {
		l.out.Printf("[%s] [%s] %s", l.name, level, msg)
		return
	}
	l.out.Printf("%s[%s]%s [%s] %s", l.color, l.name, colorReset, level, msg)
}
