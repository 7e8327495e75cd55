// Package logger provides the prefixed, coloured logger shared by every component.
package logger

import (
	"errors"
	"io"
	"log"

	"github.com/beka-birhanu/vinom-maze/config"
)

var ErrNilWriter = errors.New("logger writer is nil")

// Logger writes "[PREFIX] [LEVEL] message" lines, colouring the prefix and the level.
type Logger struct {
	prefix string
	color  string
	out    *log.Logger
}

// New creates a Logger tagging every line with prefix rendered in color.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if w == nil {
		return nil, ErrNilWriter
	}

	return &Logger{
		prefix: prefix,
		color:  color,
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

func (l *Logger) print(levelColor, level, msg string) {
	l.out.Printf("%s[%s]%s %s[%s]%s %s", l.color, l.prefix, config.ColorReset, levelColor, level, config.LogColorReset, msg)
}
