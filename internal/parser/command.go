// Package parser turns a raw input line into a command keyword and its
// positional arguments.
package parser

import (
	"strings"

	"assistantbot/pkg/bottypes"
)

// Command is one parsed input line. It is produced fresh for every line and
// never retained by the dispatcher.
type Command struct {
	Keyword string
	Args    []string
}

// ParseCommand splits raw on whitespace. The first token, lower-cased, becomes
// the keyword; the remaining tokens become Args in their original order and
// case. Quoting is not interpreted.
func ParseCommand(raw string) (*Command, error) {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return nil, bottypes.ErrEmptyInput
	}

	return &Command{
		Keyword: strings.ToLower(strings.TrimSpace(fields[0])),
		Args:    fields[1:],
	}, nil
}

// String reassembles the command in canonical single-space form.
func (c *Command) String() string {
	if len(c.Args) == 0 {
		return c.Keyword
	}
	return c.Keyword + " " + strings.Join(c.Args, " ")
}
