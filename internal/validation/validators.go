// Package validation implements the argument validators and the fail-fast
// validation engine that applies a command schema to positional arguments.
package validation

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"assistantbot/pkg/bottypes"
)

const (
	// MinNameLength is the shortest accepted contact name.
	MinNameLength = 3

	nationalDigits  = 10
	withCountryCode = 12
)

// Name accepts names of at least MinNameLength Latin letters and returns them
// unchanged.
func Name(value string) (string, error) {
	if utf8.RuneCountInString(value) < MinNameLength {
		return "", fmt.Errorf("must be at least %d characters long", MinNameLength)
	}
	for _, r := range value {
		if !isLatinLetter(r) {
			return "", fmt.Errorf("must contain only Latin letters, got %q", r)
		}
	}
	return value, nil
}

// Phone accepts digits, whitespace, '-' and '+', as long as the number holds
// exactly 10 digits (national) or 12 digits (with a two-digit country code).
// The original string is returned; no canonicalization is done.
func Phone(value string) (string, error) {
	digits := 0
	for _, r := range value {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case unicode.IsSpace(r), r == '-', r == '+':
		default:
			return "", fmt.Errorf("may contain only digits, spaces, '-' and '+', got %q", r)
		}
	}
	if digits != nationalDigits && digits != withCountryCode {
		return "", fmt.Errorf("must contain %d or %d digits, got %d", nationalDigits, withCountryCode, digits)
	}
	return value, nil
}

// Keyword accepts a command keyword in any case and normalizes it to lower case.
func Keyword(value string) (string, error) {
	if value == "" {
		return "", fmt.Errorf("must be a command name")
	}
	for _, r := range value {
		if !isLatinLetter(r) {
			return "", fmt.Errorf("must be a command name, got %q", value)
		}
	}
	return strings.ToLower(value), nil
}

func isLatinLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// Set maps validator names, as referenced from the command catalog, to
// validator implementations.
type Set struct {
	validators map[string]bottypes.Validator
}

// NewSet creates an empty validator set.
func NewSet() *Set {
	return &Set{validators: make(map[string]bottypes.Validator)}
}

// DefaultSet returns a set holding the name, phone and keyword validators.
func DefaultSet() *Set {
	s := NewSet()
	for name, fn := range map[string]bottypes.ValidatorFunc{
		"name":    Name,
		"phone":   Phone,
		"keyword": Keyword,
	} {
		// Names are distinct literals; Register cannot fail here.
		_ = s.Register(name, fn)
	}
	return s
}

// Register adds a named validator. It fails on an empty name, a nil validator
// or a name that is already taken.
func (s *Set) Register(name string, v bottypes.Validator) error {
	if name == "" {
		return fmt.Errorf("validator name cannot be empty")
	}
	if v == nil {
		return fmt.Errorf("validator %s cannot be nil", name)
	}
	if _, exists := s.validators[name]; exists {
		return fmt.Errorf("validator %s already registered", name)
	}
	s.validators[name] = v
	return nil
}

// Lookup returns the validator registered under name.
func (s *Set) Lookup(name string) (bottypes.Validator, bool) {
	v, ok := s.validators[name]
	return v, ok
}

// Names returns the registered validator names in ascending order.
func (s *Set) Names() []string {
	names := make([]string, 0, len(s.validators))
	for name := range s.validators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
