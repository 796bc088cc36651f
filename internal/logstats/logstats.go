// Package logstats parses plain-text log files of the form
// "YYYY-MM-DD HH:MM:SS LEVEL text" and summarizes them per level.
package logstats

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// TimestampLayout is the layout of the date and time columns.
const TimestampLayout = "2006-01-02 15:04:05"

// ErrInvalidLine is wrapped by every parse failure.
var ErrInvalidLine = errors.New("invalid log line")

var linePattern = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})\s(\d{2}:\d{2}:\d{2})\s([A-Z]+)\s(.*)$`)

// Entry is one parsed log line.
type Entry struct {
	Date      string
	Time      string
	Timestamp time.Time
	Level     string
	Text      string
}

// LevelCount is the number of entries seen for a level.
type LevelCount struct {
	Level string
	Count int
}

// ParseLine parses a single log line. The line terminator is ignored.
func ParseLine(line string) (Entry, error) {
	line = strings.TrimRight(line, "\r\n")
	m := linePattern.FindStringSubmatch(line)
	if m == nil {
		return Entry{}, fmt.Errorf("%w: %s", ErrInvalidLine, line)
	}

	ts, err := time.Parse(TimestampLayout, m[1]+" "+m[2])
	if err != nil {
		return Entry{}, fmt.Errorf("%w: %s: %v", ErrInvalidLine, line, err)
	}

	return Entry{
		Date:      m[1],
		Time:      m[2],
		Timestamp: ts,
		Level:     m[3],
		Text:      m[4],
	}, nil
}

// Load parses every non-blank line of r. The first invalid line aborts.
func Load(r io.Reader) ([]Entry, error) {
	var entries []Entry
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), math.MaxInt32)
	for n := 1; scanner.Scan(); n++ {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		entry, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read log: %w", err)
	}
	return entries, nil
}

// LoadFile parses the log file at path.
func LoadFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	return Load(f)
}

// CountByLevel counts entries per level, ordered by first appearance.
func CountByLevel(entries []Entry) []LevelCount {
	index := make(map[string]int)
	var counts []LevelCount
	for _, e := range entries {
		i, ok := index[e.Level]
		if !ok {
			i = len(counts)
			index[e.Level] = i
			counts = append(counts, LevelCount{Level: e.Level})
		}
		counts[i].Count++
	}
	return counts
}

// FilterByLevel keeps the entries whose level matches any of levels,
// ignoring case.
func FilterByLevel(entries []Entry, levels ...string) []Entry {
	wanted := make(map[string]bool, len(levels))
	for _, level := range levels {
		wanted[strings.ToUpper(level)] = true
	}

	var filtered []Entry
	for _, e := range entries {
		if wanted[e.Level] {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// RenderCounts draws the per-level counts as a two-column table.
func RenderCounts(counts []LevelCount) string {
	cell := lipgloss.NewStyle().Padding(0, 1)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(_, _ int) lipgloss.Style { return cell }).
		Headers("Log level", "Count")
	for _, c := range counts {
		t.Row(c.Level, strconv.Itoa(c.Count))
	}
	return t.String()
}

// RenderDetails lists the entries of one level, one "date time - text" line
// each, under a heading.
func RenderDetails(level string, entries []Entry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Log details for level %s:", strings.ToUpper(level))
	for _, e := range entries {
		fmt.Fprintf(&b, "\n%s %s - %s", e.Date, e.Time, e.Text)
	}
	return b.String()
}

// Report renders the counts table followed by the details of every requested
// level that has entries, in order of first appearance in the log.
func Report(entries []Entry, levels ...string) string {
	counts := CountByLevel(entries)
	sections := []string{RenderCounts(counts)}

	requested := make(map[string]bool, len(levels))
	for _, level := range levels {
		requested[strings.ToUpper(level)] = true
	}
	for _, c := range counts {
		if requested[c.Level] {
			sections = append(sections, RenderDetails(c.Level, FilterByLevel(entries, c.Level)))
		}
	}
	return strings.Join(sections, "\n\n")
}
