package commands

import (
	"fmt"

	"assistantbot/internal/render"
	"assistantbot/internal/validation"
)

// Options configure the handlers bound by Build.
type Options struct {
	JSONIndent int              // Indentation of the all command's JSON output
	Markdown   *render.Markdown // Renderer used by help
}

// Build creates a registry holding every non-builtin catalog command, each
// bound to its handler and to the schema resolved from validators.
func Build(catalog *Catalog, validators *validation.Set, opts Options) (*Registry, error) {
	if opts.Markdown == nil {
		md, err := render.NewMarkdown("notty", render.DefaultWordWrap)
		if err != nil {
			return nil, err
		}
		opts.Markdown = md
	}

	handlers := map[string]Handler{
		"add":    AddContact,
		"change": ChangeContact,
		"phone":  ShowPhone,
		"all":    AllContacts(opts.JSONIndent),
		"help":   Help(catalog, opts.Markdown),
	}

	registry := NewRegistry()
	for _, cmd := range catalog.Commands {
		if cmd.Builtin {
			continue
		}

		handler, ok := handlers[cmd.Keyword]
		if !ok {
			return nil, fmt.Errorf("command %s has no handler", cmd.Keyword)
		}

		schema, err := cmd.Schema(validators)
		if err != nil {
			return nil, err
		}

		if err := registry.Register(&Entry{
			Keyword:     cmd.Keyword,
			Description: cmd.Description,
			Usage:       cmd.Usage,
			Schema:      schema,
			Handler:     handler,
		}); err != nil {
			return nil, fmt.Errorf("failed to register command %s: %w", cmd.Keyword, err)
		}
	}

	return registry, nil
}

// NewDefaultRegistry builds the registry from the embedded catalog and the
// default validator set.
func NewDefaultRegistry(opts Options) (*Registry, *Catalog, error) {
	catalog, err := DefaultCatalog()
	if err != nil {
		return nil, nil, err
	}
	registry, err := Build(catalog, validation.DefaultSet(), opts)
	if err != nil {
		return nil, nil, err
	}
	return registry, catalog, nil
}
