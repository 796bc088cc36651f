// Package shell wires the configuration, the command registry and the
// dispatcher into runnable sessions fed by a terminal, a pipe or a file.
package shell

import (
	"context"
	"fmt"
	"io"
	"os"

	"assistantbot/internal/commands"
	"assistantbot/internal/config"
	"assistantbot/internal/directory"
	"assistantbot/internal/dispatch"
	"assistantbot/internal/logger"
	"assistantbot/internal/render"
)

// Session is one bot run over a fresh, empty directory.
type Session struct {
	cfg        config.Config
	dispatcher *dispatch.Dispatcher
	stdout     io.Writer
	stderr     io.Writer
}

// NewSession builds the help renderer, the registry and the dispatcher
// described by cfg.
func NewSession(cfg config.Config, stdout, stderr io.Writer) (*Session, error) {
	md, err := render.NewMarkdown(cfg.HelpStyle, render.DefaultWordWrap)
	if err != nil {
		return nil, err
	}

	registry, _, err := commands.NewDefaultRegistry(commands.Options{
		JSONIndent: cfg.JSONIndent,
		Markdown:   md,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build command registry: %w", err)
	}

	opts := dispatch.Options{
		Greeting:        cfg.Greeting,
		Farewell:        cfg.Farewell,
		SuggestDistance: cfg.SuggestDistance,
	}

	return &Session{
		cfg:        cfg,
		dispatcher: dispatch.New(registry, directory.New(), opts, stdout, stderr),
		stdout:     stdout,
		stderr:     stderr,
	}, nil
}

// Dispatcher exposes the session's dispatcher.
func (s *Session) Dispatcher() *dispatch.Dispatcher {
	return s.dispatcher
}

// Run prints the welcome line and dispatches lines from src until the loop
// terminates.
func (s *Session) Run(ctx context.Context, src dispatch.LineSource) error {
	if s.cfg.Welcome != "" {
		fmt.Fprintln(s.stdout, s.cfg.Welcome)
	}

	logger.Debug("Session started")
	if err := s.dispatcher.Run(ctx, src); err != nil {
		return err
	}
	logger.Debug("Session finished", "contacts", s.dispatcher.Directory().Len())
	return nil
}

// RunInteractive reads from stdin, with line editing when it is a terminal
// and as plain lines when it is a pipe.
func (s *Session) RunInteractive(ctx context.Context, stdin *os.File) error {
	if !IsInteractive(stdin) {
		return s.Run(ctx, NewScannerSource(stdin, "", nil))
	}

	src, err := NewReadlineSource(s.cfg.Prompt, s.cfg.HistoryFile, s.dispatcher.Keywords(), stdin, s.stdout, s.stderr)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := src.Close(); closeErr != nil {
			logger.Warn("Failed to close line editor", "error", closeErr)
		}
	}()

	return s.Run(ctx, src)
}

// RunBatch dispatches the lines of the file at path.
func (s *Session) RunBatch(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open batch file %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	logger.Debug("Running batch file", "path", path)
	return s.Run(ctx, NewScannerSource(f, "", nil))
}
