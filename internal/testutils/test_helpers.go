// Package testutils provides scripted input sources and output capture for
// testing the dispatch loop and the CLI.
package testutils

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"assistantbot/internal/commands"
)

// ScriptedSource replays a fixed list of lines and then reports io.EOF.
type ScriptedSource struct {
	lines []string
	next  int
}

// NewScriptedSource creates a source that yields lines in order.
func NewScriptedSource(lines ...string) *ScriptedSource {
	return &ScriptedSource{lines: lines}
}

// ReadLine returns the next scripted line, or io.EOF when none are left.
func (s *ScriptedSource) ReadLine() (string, error) {
	if s.next >= len(s.lines) {
		return "", io.EOF
	}
	line := s.lines[s.next]
	s.next++
	return line, nil
}

// Consumed returns how many lines have been read so far.
func (s *ScriptedSource) Consumed() int {
	return s.next
}

// FailingSource yields its lines and then fails with Err instead of io.EOF.
type FailingSource struct {
	*ScriptedSource
	Err error
}

// ReadLine returns the next line, then Err.
func (f *FailingSource) ReadLine() (string, error) {
	line, err := f.ScriptedSource.ReadLine()
	if err == io.EOF {
		return "", f.Err
	}
	return line, err
}

// Output captures the success and diagnostic channels separately.
type Output struct {
	Stdout bytes.Buffer
	Stderr bytes.Buffer
}

// NewOutput creates empty capture buffers.
func NewOutput() *Output {
	return &Output{}
}

// Reset clears both buffers.
func (o *Output) Reset() {
	o.Stdout.Reset()
	o.Stderr.Reset()
}

// NewDefaultRegistry builds the registry from the embedded catalog with
// 4-space JSON indentation, failing the test on error.
func NewDefaultRegistry(t *testing.T) *commands.Registry {
	t.Helper()
	registry, _, err := commands.NewDefaultRegistry(commands.Options{JSONIndent: 4})
	require.NoError(t, err)
	return registry
}

// WriteTempFile writes content to name inside a per-test temporary directory
// and returns the full path.
func WriteTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}
