// Package dispatch drives the read-validate-execute loop: it parses each input
// line, resolves the keyword, validates arguments against the command schema,
// runs the handler against the contact directory and renders the outcome.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"assistantbot/internal/commands"
	"assistantbot/internal/directory"
	"assistantbot/internal/logger"
	"assistantbot/internal/parser"
	"assistantbot/internal/validation"
	"assistantbot/pkg/bottypes"
)

// Keywords handled by the dispatcher itself rather than the registry.
const (
	KeywordHello = "hello"
	KeywordClose = "close"
	KeywordExit  = "exit"
)

var builtinKeywords = []string{KeywordHello, KeywordClose, KeywordExit}

// Options hold the fixed texts and tuning of a dispatcher.
type Options struct {
	Greeting        string // Reply to hello
	Farewell        string // Printed on close/exit
	SuggestDistance int    // Max edit distance for "did you mean"; 0 disables
	SessionID       string // Tags log lines; a random UUID when empty
}

// DefaultOptions returns the stock greeting, farewell and suggestion distance.
func DefaultOptions() Options {
	return Options{
		Greeting:        "How can I help you?",
		Farewell:        "Good bye!",
		SuggestDistance: 2,
	}
}

// LineSource yields one input line per call and io.EOF once input ends.
type LineSource interface {
	ReadLine() (string, error)
}

// Result is the outcome of a successfully executed line.
type Result struct {
	Output    string // Text for the success channel; may be empty
	Terminate bool   // The line was close/exit
}

// Dispatcher owns the registry, the directory and the loop state. Results go
// to stdout; invalid-command diagnostics go to stderr.
type Dispatcher struct {
	registry *commands.Registry
	dir      *directory.Directory
	opts     Options
	stdout   io.Writer
	stderr   io.Writer
	state    bottypes.State
	logger   *log.Logger
}

// New creates a dispatcher in the Running state.
func New(registry *commands.Registry, dir *directory.Directory, opts Options, stdout, stderr io.Writer) *Dispatcher {
	if opts.SessionID == "" {
		opts.SessionID = uuid.NewString()
	}
	return &Dispatcher{
		registry: registry,
		dir:      dir,
		opts:     opts,
		stdout:   stdout,
		stderr:   stderr,
		state:    bottypes.StateRunning,
		logger:   logger.NewStyledLogger("Dispatcher").With("session", opts.SessionID),
	}
}

// State returns the current loop state.
func (d *Dispatcher) State() bottypes.State {
	return d.state
}

// Directory returns the directory the dispatcher mutates.
func (d *Dispatcher) Directory() *directory.Directory {
	return d.dir
}

// Keywords returns every keyword the dispatcher accepts, in ascending order.
func (d *Dispatcher) Keywords() []string {
	keywords := append(d.registry.Keywords(), builtinKeywords...)
	sort.Strings(keywords)
	return keywords
}

// Execute runs one line without rendering it. Failures are returned as
// *bottypes.CommandError values; handler infrastructure failures are returned
// as they are. Execute does not change the loop state.
func (d *Dispatcher) Execute(line string) (Result, error) {
	cmd, err := parser.ParseCommand(line)
	if err != nil {
		return Result{}, err
	}
	logger.CommandExecution(cmd.Keyword, cmd.Args)

	switch cmd.Keyword {
	case KeywordClose, KeywordExit:
		return Result{Output: d.opts.Farewell, Terminate: true}, nil
	case KeywordHello:
		return Result{Output: d.opts.Greeting}, nil
	}

	entry, ok := d.registry.Get(cmd.Keyword)
	if !ok {
		return Result{}, d.unknownCommand(cmd.Keyword)
	}

	values, err := validation.Validate(cmd.Args, entry.Schema, entry.Usage)
	if err != nil {
		return Result{}, err
	}

	output, err := entry.Handler(values, d.dir)
	if err != nil {
		return Result{}, err
	}
	return Result{Output: output}, nil
}

// Dispatch executes one line, renders its outcome and returns the resulting
// state. Every error is rendered and leaves the dispatcher Running; only
// close/exit move it to Terminated.
func (d *Dispatcher) Dispatch(line string) bottypes.State {
	if d.state == bottypes.StateTerminated {
		return d.state
	}

	result, err := d.Execute(line)
	if err != nil {
		d.renderError(line, err)
		return d.state
	}

	if result.Output != "" {
		fmt.Fprintln(d.stdout, result.Output)
	}
	if result.Terminate {
		d.state = bottypes.StateTerminated
		d.logger.Debug("Terminated by command", "state", d.state)
	}
	return d.state
}

// Run reads and dispatches lines until close/exit, end of input or ctx
// cancellation, all of which end the loop without error. Only a failing
// source is reported. The directory keeps whatever the last successful
// command left in it.
func (d *Dispatcher) Run(ctx context.Context, src LineSource) error {
	for d.state == bottypes.StateRunning {
		if err := ctx.Err(); err != nil {
			d.terminate("context done", err)
			return nil
		}

		line, err := src.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				d.terminate("end of input", nil)
				return nil
			}
			d.terminate("input failed", err)
			return fmt.Errorf("failed to read input: %w", err)
		}

		d.Dispatch(line)
	}
	return nil
}

func (d *Dispatcher) terminate(reason string, err error) {
	d.state = bottypes.StateTerminated
	if err != nil {
		d.logger.Debug("Loop stopped", "reason", reason, "state", d.state, "error", err)
		return
	}
	d.logger.Debug("Loop stopped", "reason", reason, "state", d.state)
}

func (d *Dispatcher) renderError(line string, err error) {
	kind, ok := bottypes.KindOf(err)
	switch {
	case !ok:
		d.logger.Error("Command failed", "input", line, "error", err)
		fmt.Fprintf(d.stderr, "Error: %s\n", err.Error())
	case kind == bottypes.KindEmptyInput:
		// nothing to render
	case kind.IsInvalidCommand():
		d.logger.Debug("Invalid command", "input", line, "kind", kind)
		fmt.Fprintln(d.stderr, err.Error())
	default:
		d.logger.Debug("Command rejected", "input", line, "kind", kind)
		fmt.Fprintln(d.stdout, err.Error())
	}
}

func (d *Dispatcher) unknownCommand(keyword string) error {
	keywords := d.Keywords()
	msg := fmt.Sprintf("Invalid command %q. Available commands: %s.", keyword, strings.Join(keywords, ", "))
	if suggestion := d.suggest(keyword, keywords); suggestion != "" {
		msg += fmt.Sprintf(" Did you mean %q?", suggestion)
	}
	return bottypes.NewCommandError(bottypes.KindUnknownCommand, "%s", msg)
}

// suggest returns the keyword closest to input, or "" if none is within the
// configured distance. Ties go to the alphabetically first keyword.
func (d *Dispatcher) suggest(input string, keywords []string) string {
	if d.opts.SuggestDistance <= 0 {
		return ""
	}
	best, bestDistance := "", d.opts.SuggestDistance+1
	for _, keyword := range keywords {
		if distance := levenshtein.ComputeDistance(input, keyword); distance < bestDistance {
			best, bestDistance = keyword, distance
		}
	}
	return best
}
