// Package commands provides the command registry, the declarative command
// catalog and the handlers bound to each catalog entry.
package commands

import (
	"fmt"
	"sort"

	"assistantbot/internal/directory"
	"assistantbot/pkg/bottypes"
)

// Handler executes a command whose arguments already passed schema validation.
// It returns the success message, or a *bottypes.CommandError for business
// rule violations.
type Handler func(args []string, dir *directory.Directory) (string, error)

// Entry binds a keyword to its parameter schema and handler.
type Entry struct {
	Keyword     string
	Description string
	Usage       string
	Schema      bottypes.Schema
	Handler     Handler
}

// Registry maps command keywords to entries. It is built once at startup and
// read by the single dispatch loop, so it carries no locking.
type Registry struct {
	entries map[string]*Entry
}

// NewRegistry creates a new command registry with no entries.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*Entry),
	}
}

// Register adds an entry. It fails if the keyword is empty, the handler is
// missing or the keyword is already registered.
func (r *Registry) Register(entry *Entry) error {
	if entry == nil || entry.Keyword == "" {
		return fmt.Errorf("command keyword cannot be empty")
	}
	if entry.Handler == nil {
		return fmt.Errorf("command %s has no handler", entry.Keyword)
	}
	if _, exists := r.entries[entry.Keyword]; exists {
		return fmt.Errorf("command %s already registered", entry.Keyword)
	}

	r.entries[entry.Keyword] = entry
	return nil
}

// Get retrieves an entry by keyword.
func (r *Registry) Get(keyword string) (*Entry, bool) {
	entry, exists := r.entries[keyword]
	return entry, exists
}

// Keywords returns all registered keywords in ascending order.
func (r *Registry) Keywords() []string {
	keywords := make([]string, 0, len(r.entries))
	for keyword := range r.entries {
		keywords = append(keywords, keyword)
	}
	sort.Strings(keywords)
	return keywords
}
