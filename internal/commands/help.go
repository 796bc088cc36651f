package commands

import (
	"fmt"
	"strings"

	"assistantbot/internal/directory"
	"assistantbot/internal/render"
	"assistantbot/pkg/bottypes"
)

// Help returns the handler of help [command]. Without an argument it lists
// every catalog command; with one it shows that command's parameters,
// examples and notes. Output is rendered through md.
func Help(catalog *Catalog, md *render.Markdown) Handler {
	return func(args []string, _ *directory.Directory) (string, error) {
		var text string
		if len(args) == 0 {
			text = overviewMarkdown(catalog)
		} else {
			cmd, ok := catalog.Lookup(args[0])
			if !ok {
				keywords := make([]string, 0, len(catalog.Commands))
				for _, c := range catalog.Commands {
					keywords = append(keywords, c.Keyword)
				}
				return "", bottypes.NewCommandError(bottypes.KindUnknownCommand,
					"No help for %q. Available commands: %s.", args[0], strings.Join(keywords, ", "))
			}
			text = commandMarkdown(cmd.HelpInfo())
		}
		return md.Render(text)
	}
}

func overviewMarkdown(catalog *Catalog) string {
	var b strings.Builder
	b.WriteString("# Commands\n\n")
	for _, c := range catalog.Commands {
		fmt.Fprintf(&b, "- `%s`: %s\n", c.Usage, c.Description)
	}
	b.WriteString("\nType `help <command>` for details.\n")
	return b.String()
}

func commandMarkdown(info bottypes.HelpInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n%s\n\nUsage: `%s`\n", info.Command, info.Description, info.Usage)

	if len(info.Parameters) > 0 {
		b.WriteString("\n## Parameters\n\n")
		for _, p := range info.Parameters {
			requirement := "optional"
			if p.Required {
				requirement = "required"
			}
			fmt.Fprintf(&b, "%d. %s (%s", p.Position+1, p.Description, requirement)
			if p.Validator != "" {
				fmt.Fprintf(&b, ", checked as %s", p.Validator)
			}
			b.WriteString(")\n")
		}
	}

	if len(info.Examples) > 0 {
		b.WriteString("\n## Examples\n\n")
		for _, e := range info.Examples {
			fmt.Fprintf(&b, "- `%s`: %s\n", e.Command, e.Description)
		}
	}

	if len(info.Notes) > 0 {
		b.WriteString("\n## Notes\n\n")
		for _, n := range info.Notes {
			fmt.Fprintf(&b, "- %s\n", n)
		}
	}

	return b.String()
}
