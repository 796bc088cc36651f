// Package bottypes defines the shared types of the assistant bot.
// This file contains the declarative command schema types: restrictions,
// validators and the structured help information rendered by the help command.
package bottypes

// Validator judges a single raw argument. It returns the value to hand to the
// command handler (possibly normalized) or an error explaining the rejection.
// Validators must be free of side effects.
type Validator interface {
	Validate(value string) (string, error)
}

// ValidatorFunc adapts an ordinary function to the Validator interface.
type ValidatorFunc func(value string) (string, error)

// Validate calls f(value).
func (f ValidatorFunc) Validate(value string) (string, error) {
	return f(value)
}

// Restriction is the rule for one positional argument of a command.
type Restriction struct {
	Position    int       // Zero-based argument index
	Required    bool      // Whether the argument must be present
	Description string    // Human-readable name used in error messages
	Validator   Validator // Optional; nil accepts any value unchanged
}

// Schema is the ordered set of restrictions attached to one command.
type Schema []Restriction

// MaxArgs returns the number of positional arguments the schema accepts.
func (s Schema) MaxArgs() int {
	return len(s)
}

// HelpInfo represents structured help information for a command.
type HelpInfo struct {
	Command     string        `json:"command"`              // Command keyword
	Description string        `json:"description"`          // Brief description of what the command does
	Usage       string        `json:"usage"`                // Usage syntax
	Parameters  []HelpParam   `json:"parameters,omitempty"` // Positional parameters in order
	Examples    []HelpExample `json:"examples,omitempty"`   // Usage examples
	Notes       []string      `json:"notes,omitempty"`      // Additional notes
}

// HelpParam describes one positional parameter in help output.
type HelpParam struct {
	Position    int    `json:"position"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
	Validator   string `json:"validator,omitempty"`
}

// HelpExample represents a usage example with explanation.
type HelpExample struct {
	Command     string `json:"command"`     // Example command
	Description string `json:"description"` // What this example demonstrates
}
