package commands

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"assistantbot/internal/data/embedded"
	"assistantbot/internal/validation"
	"assistantbot/pkg/bottypes"
)

// CatalogParameter declares one positional parameter of a catalog command.
type CatalogParameter struct {
	Position    int    `yaml:"position"`
	Required    bool   `yaml:"required"`
	Description string `yaml:"description"`
	Validator   string `yaml:"validator,omitempty"`
}

// CatalogExample is a usage example shown by help.
type CatalogExample struct {
	Command     string `yaml:"command"`
	Description string `yaml:"description"`
}

// CatalogCommand is the declarative definition of one command.
// Builtin commands are handled by the dispatcher and never registered.
type CatalogCommand struct {
	Keyword     string             `yaml:"keyword"`
	Builtin     bool               `yaml:"builtin,omitempty"`
	Description string             `yaml:"description"`
	Usage       string             `yaml:"usage"`
	Parameters  []CatalogParameter `yaml:"parameters,omitempty"`
	Examples    []CatalogExample   `yaml:"examples,omitempty"`
	Notes       []string           `yaml:"notes,omitempty"`
}

// Catalog is the parsed command catalog, in file order.
type Catalog struct {
	Commands []CatalogCommand `yaml:"commands"`
}

// DefaultCatalog parses the catalog embedded in the binary.
func DefaultCatalog() (*Catalog, error) {
	return LoadCatalog(embedded.CommandCatalogData)
}

// LoadCatalog parses and checks catalog YAML. Keywords must be unique
// lower-case words, parameter positions must run 0..n-1 in order, and a
// required parameter may not follow an optional one.
func LoadCatalog(data []byte) (*Catalog, error) {
	catalog := &Catalog{}
	if err := yaml.Unmarshal(data, catalog); err != nil {
		return nil, fmt.Errorf("failed to parse command catalog: %w", err)
	}
	if len(catalog.Commands) == 0 {
		return nil, fmt.Errorf("command catalog is empty")
	}

	seen := make(map[string]bool, len(catalog.Commands))
	for _, cmd := range catalog.Commands {
		if cmd.Keyword == "" || cmd.Keyword != strings.ToLower(cmd.Keyword) || strings.ContainsAny(cmd.Keyword, " \t") {
			return nil, fmt.Errorf("invalid command keyword %q", cmd.Keyword)
		}
		if seen[cmd.Keyword] {
			return nil, fmt.Errorf("command %s defined twice", cmd.Keyword)
		}
		seen[cmd.Keyword] = true

		optionalSeen := false
		for idx, param := range cmd.Parameters {
			if param.Position != idx {
				return nil, fmt.Errorf("command %s: parameter %q has position %d, expected %d",
					cmd.Keyword, param.Description, param.Position, idx)
			}
			if param.Description == "" {
				return nil, fmt.Errorf("command %s: parameter %d has no description", cmd.Keyword, idx)
			}
			if param.Required && optionalSeen {
				return nil, fmt.Errorf("command %s: required parameter %q follows an optional one",
					cmd.Keyword, param.Description)
			}
			optionalSeen = optionalSeen || !param.Required
		}
	}

	return catalog, nil
}

// Lookup returns the catalog definition for keyword.
func (c *Catalog) Lookup(keyword string) (*CatalogCommand, bool) {
	for i := range c.Commands {
		if c.Commands[i].Keyword == keyword {
			return &c.Commands[i], true
		}
	}
	return nil, false
}

// Schema resolves the command's parameters into restrictions, looking each
// validator name up in validators.
func (c *CatalogCommand) Schema(validators *validation.Set) (bottypes.Schema, error) {
	schema := make(bottypes.Schema, 0, len(c.Parameters))
	for _, param := range c.Parameters {
		restriction := bottypes.Restriction{
			Position:    param.Position,
			Required:    param.Required,
			Description: param.Description,
		}
		if param.Validator != "" {
			v, ok := validators.Lookup(param.Validator)
			if !ok {
				return nil, fmt.Errorf("command %s: unknown validator %q for %s (known: %s)",
					c.Keyword, param.Validator, param.Description, strings.Join(validators.Names(), ", "))
			}
			restriction.Validator = v
		}
		schema = append(schema, restriction)
	}
	return schema, nil
}

// HelpInfo returns structured help for the command.
func (c *CatalogCommand) HelpInfo() bottypes.HelpInfo {
	info := bottypes.HelpInfo{
		Command:     c.Keyword,
		Description: c.Description,
		Usage:       c.Usage,
		Notes:       c.Notes,
	}
	for _, p := range c.Parameters {
		info.Parameters = append(info.Parameters, bottypes.HelpParam{
			Position:    p.Position,
			Description: p.Description,
			Required:    p.Required,
			Validator:   p.Validator,
		})
	}
	for _, e := range c.Examples {
		info.Examples = append(info.Examples, bottypes.HelpExample{
			Command:     e.Command,
			Description: e.Description,
		})
	}
	return info
}
