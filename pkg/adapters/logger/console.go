// Package logger provides logging implementations.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/ideamans/go-l10n"
	"github.com/mattn/go-isatty"

	"github.com/user/prepareclips/pkg/ports"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorGray   = "\033[90m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
	colorCyan   = "\033[36m"
)

// ConsoleLogger writes translated messages to stdout, and warnings and
// errors to stderr.
type ConsoleLogger struct {
	level     ports.LogLevel
	component string
	color     bool
	out       io.Writer
	errOut    io.Writer
	mu        *sync.Mutex
}

// NewConsole creates a console logger on os.Stdout and os.Stderr.
// Color output is enabled when stdout is a terminal.
func NewConsole(level ports.LogLevel) *ConsoleLogger {
	fd := os.Stdout.Fd()
	color := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	return NewConsoleWithWriters(level, os.Stdout, os.Stderr, color)
}

// NewConsoleWithWriters creates a console logger on the given writers.
func NewConsoleWithWriters(level ports.LogLevel, out, errOut io.Writer, color bool) *ConsoleLogger {
	return &ConsoleLogger{
		level:  level,
		color:  color,
		out:    out,
		errOut: errOut,
		mu:     &sync.Mutex{},
	}
}

// Level returns the minimum level that is written.
func (l *ConsoleLogger) Level() ports.LogLevel {
	return l.level
}

// Debug logs a debug message.
func (l *ConsoleLogger) Debug(msg string, args ...interface{}) {
	l.log(ports.LevelDebug, msg, args...)
}

// Info logs an informational message.
func (l *ConsoleLogger) Info(msg string, args ...interface{}) {
	l.log(ports.LevelInfo, msg, args...)
}

// Warn logs a warning message.
func (l *ConsoleLogger) Warn(msg string, args ...interface{}) {
	l.log(ports.LevelWarn, msg, args...)
}

// Error logs an error message.
func (l *ConsoleLogger) Error(msg string, args ...interface{}) {
	l.log(ports.LevelError, msg, args...)
}

// WithComponent returns a logger sharing this logger's writers.
func (l *ConsoleLogger) WithComponent(component string) ports.Logger {
	c := *l
	c.component = component
	return &c
}

func (l *ConsoleLogger) log(level ports.LogLevel, msg string, args ...interface{}) {
	if level < l.level {
		return
	}

	output := l10n.F(msg, args...)
	if l.component != "" {
		if l.color {
			output = fmt.Sprintf("%s[%s]%s %s", colorCyan, l.component, colorReset, output)
		} else {
			output = fmt.Sprintf("[%s] %s", l.component, output)
		}
	}

	if l.color {
		switch level {
		case ports.LevelDebug:
			output = colorGray + output + colorReset
		case ports.LevelWarn:
			output = colorYellow + output + colorReset
		case ports.LevelError:
			output = colorRed + output + colorReset
		}
	}

	w := l.out
	if level >= ports.LevelWarn {
		w = l.errOut
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(w, output)
}

var _ ports.Logger = (*ConsoleLogger)(nil)
