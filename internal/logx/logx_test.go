// internal/logx/logx_test.go
package logx

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var lineRE = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2} - (ERROR|CRITICAL) - `)

func TestSeverityLines(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)
	l.Errorf("bad thing %d", 7)
	l.Criticalf("worse thing")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Regexp(t, lineRE, lines[0])
	assert.Contains(t, lines[0], "ERROR - bad thing 7")
	assert.Contains(t, lines[1], "CRITICAL - worse thing")
}

func TestAppendTerminatesRecord(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)
	l.Append("record without newline")
	l.Append("record with newline\n")
	assert.Equal(t, "record without newline\nrecord with newline\n", buf.String())
}

func TestNilLoggerDiscards(t *testing.T) {
	var l *Logger
	l.Errorf("ignored")
	l.Criticalf("ignored")
	l.Append("ignored")
}

func TestOpenFileAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.log")
	require.NoError(t, os.WriteFile(path, []byte("previous run\n"), 0o644))

	l, closeFn, err := OpenFile(path)
	require.NoError(t, err)
	l.Errorf("new run")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "previous run\n"), "append must not truncate")
	assert.Contains(t, string(data), "ERROR - new run")
}

func TestConcurrentWriters(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.Errorf("worker line")
		}()
	}
	wg.Wait()
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 16)
	for _, ln := range lines {
		assert.Regexp(t, lineRE, ln)
	}
}
