// Package directory holds the in-memory contact directory: a mapping from
// contact name to phone number with exact-match, case-sensitive keys.
//
// The directory is created once at startup and handed to the dispatcher. It
// is owned by the single dispatch loop and is not safe for concurrent use.
package directory

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"assistantbot/internal/logger"
	"assistantbot/pkg/bottypes"
)

// Contact is one directory entry.
type Contact struct {
	Name  string
	Phone string
}

// Directory maps contact names to phone numbers. Every operation either
// succeeds completely or leaves the directory untouched.
type Directory struct {
	contacts map[string]string
}

// New creates an empty directory.
func New() *Directory {
	return &Directory{contacts: make(map[string]string)}
}

// Add inserts a new contact. It fails with KindDuplicateContact if the name is
// already present; use Change to overwrite.
func (d *Directory) Add(name, phone string) error {
	if _, exists := d.contacts[name]; exists {
		return bottypes.NewCommandError(bottypes.KindDuplicateContact, "Contact %s already exists.", name)
	}
	d.contacts[name] = phone
	logger.DirectoryOperation("add", name)
	return nil
}

// Change overwrites the phone of an existing contact. It fails with
// KindContactNotFound if the name is absent.
func (d *Directory) Change(name, phone string) error {
	if _, exists := d.contacts[name]; !exists {
		return notFound(name)
	}
	d.contacts[name] = phone
	logger.DirectoryOperation("change", name)
	return nil
}

// Lookup returns the phone stored for name.
func (d *Directory) Lookup(name string) (string, error) {
	phone, exists := d.contacts[name]
	if !exists {
		return "", notFound(name)
	}
	return phone, nil
}

// Len returns the number of contacts.
func (d *Directory) Len() int {
	return len(d.contacts)
}

// Snapshot returns a copy of all entries ordered by name ascending. Later
// changes to the directory do not affect the snapshot.
func (d *Directory) Snapshot() Snapshot {
	snap := make(Snapshot, 0, len(d.contacts))
	for name, phone := range d.contacts {
		snap = append(snap, Contact{Name: name, Phone: phone})
	}
	sort.Slice(snap, func(i, j int) bool {
		return snap[i].Name < snap[j].Name
	})
	return snap
}

func notFound(name string) error {
	return bottypes.NewCommandError(bottypes.KindContactNotFound, "Contact %s not found.", name)
}

// Snapshot is an ordered, detached view of the directory.
type Snapshot []Contact

// Map returns the snapshot as a name to phone map.
func (s Snapshot) Map() map[string]string {
	m := make(map[string]string, len(s))
	for _, c := range s {
		m[c.Name] = c.Phone
	}
	return m
}

// JSON serializes the snapshot as an object of name to phone with keys in
// ascending order, each nesting level indented by indent spaces. An indent of
// zero produces compact output.
func (s Snapshot) JSON(indent int) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent > 0 {
		enc.SetIndent("", fmt.Sprintf("%*s", indent, ""))
	}
	// encoding/json writes map keys in sorted order
	if err := enc.Encode(s.Map()); err != nil {
		return "", fmt.Errorf("failed to encode directory snapshot: %w", err)
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}
