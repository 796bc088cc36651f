// Package render converts markdown help text into terminal output using Glamour.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// DefaultWordWrap is the column at which rendered text is wrapped.
const DefaultWordWrap = 80

// Markdown renders markdown with a fixed Glamour style.
type Markdown struct {
	renderer *glamour.TermRenderer
}

// NewMarkdown creates a renderer for the given style. Supported styles are the
// Glamour standard styles: "notty", "ascii", "dark", "light", "dracula" and
// "auto", which picks one from the terminal.
func NewMarkdown(style string, wordWrap int) (*Markdown, error) {
	if style == "" {
		style = "notty"
	}
	if wordWrap <= 0 {
		wordWrap = DefaultWordWrap
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(wordWrap),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer for style %s: %w", style, err)
	}

	return &Markdown{renderer: renderer}, nil
}

// Render renders markdown and strips the padding Glamour adds: blank lines
// around the document and spaces filling each line to the wrap width.
func (m *Markdown) Render(markdown string) (string, error) {
	if strings.TrimSpace(markdown) == "" {
		return "", fmt.Errorf("markdown content cannot be empty")
	}

	rendered, err := m.renderer.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}

	lines := strings.Split(rendered, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.Trim(strings.Join(lines, "\n"), "\n"), nil
}
