// internal/logx/logx.go
package logx

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Logger appends timestamped severity lines to a single sink. Safe for
// concurrent use; a nil Logger discards everything.
type Logger struct {
	mu sync.Mutex
	w  io.Writer
}

func New(w io.Writer) *Logger { return &Logger{w: w} }

// OpenFile opens (or creates) an append-only log sink at path and returns the
// logger plus its close function.
func OpenFile(path string) (*Logger, func() error, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log %s: %w", path, err)
	}
	return New(f), f.Close, nil
}

func (l *Logger) Errorf(format string, a ...any)    { l.line("ERROR", format, a...) }
func (l *Logger) Criticalf(format string, a ...any) { l.line("CRITICAL", format, a...) }

// Append writes a preformatted free-text record, newline-terminated.
func (l *Logger) Append(text string) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = io.WriteString(l.w, text)
	if !strings.HasSuffix(text, "\n") {
		_, _ = io.WriteString(l.w, "\n")
	}
}

func (l *Logger) line(level, format string, a ...any) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = fmt.Fprintf(l.w, "%s - %s - %s\n",
		time.Now().Format("2006-01-02 15:04:05"), level, fmt.Sprintf(format, a...))
}
