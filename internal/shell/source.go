package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/chzyer/readline"
	"golang.org/x/term"
)

// IsInteractive reports whether f is attached to a terminal.
func IsInteractive(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// ReadlineSource reads lines from a terminal with editing, history and
// keyword completion.
type ReadlineSource struct {
	rl *readline.Instance
}

// NewReadlineSource opens a readline instance on the given streams. An empty
// historyFile keeps history in memory only.
func NewReadlineSource(prompt, historyFile string, keywords []string, stdin io.ReadCloser, stdout, stderr io.Writer) (*ReadlineSource, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     historyFile,
		AutoComplete:    newCompleter(keywords),
		InterruptPrompt: "^C",
		EOFPrompt:       "",
		Stdin:           stdin,
		Stdout:          stdout,
		Stderr:          stderr,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start line editor: %w", err)
	}
	return &ReadlineSource{rl: rl}, nil
}

// ReadLine returns the next edited line. Ctrl-C discards the current line and
// yields an empty one; Ctrl-D ends input.
func (s *ReadlineSource) ReadLine() (string, error) {
	line, err := s.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", nil
	}
	return line, err
}

// Close restores the terminal.
func (s *ReadlineSource) Close() error {
	return s.rl.Close()
}

func newCompleter(keywords []string) *readline.PrefixCompleter {
	items := make([]readline.PrefixCompleterInterface, 0, len(keywords))
	for _, keyword := range keywords {
		items = append(items, readline.PcItem(keyword))
	}
	return readline.NewPrefixCompleter(items...)
}

// maxLineSize bounds a single input line; longer lines fail the read.
const maxLineSize = math.MaxInt32

// ScannerSource reads plain lines from a pipe or file, optionally echoing a
// prompt before each read.
type ScannerSource struct {
	scanner *bufio.Scanner
	prompt  string
	out     io.Writer
}

// NewScannerSource creates a source over r. The prompt is written to out
// before each line when both are set.
func NewScannerSource(r io.Reader, prompt string, out io.Writer) *ScannerSource {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	return &ScannerSource{scanner: scanner, prompt: prompt, out: out}
}

// ReadLine returns the next line without its terminator, or io.EOF.
func (s *ScannerSource) ReadLine() (string, error) {
	if s.prompt != "" && s.out != nil {
		fmt.Fprint(s.out, s.prompt)
	}
	if s.scanner.Scan() {
		return s.scanner.Text(), nil
	}
	if err := s.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}
