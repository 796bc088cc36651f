package shell

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScannerSource_ReadLine(t *testing.T) {
	src := NewScannerSource(strings.NewReader("hello\r\nadd Alice 1234567890\n\nall"), "", nil)

	var lines []string
	for {
		line, err := src.ReadLine()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		lines = append(lines, line)
	}

	assert.Equal(t, []string{"hello", "add Alice 1234567890", "", "all"}, lines)
}

func TestScannerSource_Prompt(t *testing.T) {
	var out strings.Builder
	src := NewScannerSource(strings.NewReader("hello\n"), "Enter a command: ", &out)

	line, err := src.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "hello", line)

	_, err = src.ReadLine()
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, "Enter a command: Enter a command: ", out.String())
}

func TestScannerSource_LineLongerThanDefaultBuffer(t *testing.T) {
	long := "add " + strings.Repeat("a", 70000) + " 1234567890"
	src := NewScannerSource(strings.NewReader(long+"\nhello\n"), "", nil)

	line, err := src.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, long, line)

	line, err = src.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "hello", line)

	_, err = src.ReadLine()
	assert.ErrorIs(t, err, io.EOF)
}

func TestScannerSource_ReaderError(t *testing.T) {
	boom := errors.New("disk on fire")
	src := NewScannerSource(iotest.ErrReader(boom), "", nil)

	_, err := src.ReadLine()
	assert.ErrorIs(t, err, boom)
}

func TestIsInteractive(t *testing.T) {
	assert.False(t, IsInteractive(nil))

	f, err := os.Create(filepath.Join(t.TempDir(), "input.txt"))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	assert.False(t, IsInteractive(f), "regular files are never terminals")
}

func TestNewCompleter(t *testing.T) {
	completer := newCompleter([]string{"add", "all", "change", "hello", "help"})

	tests := []struct {
		name      string
		input     string
		wantCount int
	}{
		{name: "shared prefix", input: "he", wantCount: 2},
		{name: "single match", input: "ch", wantCount: 1},
		{name: "no match", input: "zz", wantCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidates, offset := completer.Do([]rune(tt.input), len(tt.input))
			assert.Len(t, candidates, tt.wantCount)
			if tt.wantCount > 0 {
				assert.Equal(t, len(tt.input), offset)
			}
		})
	}
}
