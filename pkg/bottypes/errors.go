package bottypes

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a recoverable command error.
type ErrorKind int

const (
	// KindEmptyInput - the input line contained no tokens
	KindEmptyInput ErrorKind = iota
	// KindUnknownCommand - the keyword is not registered
	KindUnknownCommand
	// KindTooManyParameters - more arguments than the schema allows
	KindTooManyParameters
	// KindMissingParameter - a required argument was not supplied
	KindMissingParameter
	// KindValidationFailed - a validator rejected an argument
	KindValidationFailed
	// KindDuplicateContact - add on a name that already exists
	KindDuplicateContact
	// KindContactNotFound - change or phone on a name that does not exist
	KindContactNotFound
)

// String returns the name of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case KindEmptyInput:
		return "EmptyInput"
	case KindUnknownCommand:
		return "UnknownCommand"
	case KindTooManyParameters:
		return "TooManyParameters"
	case KindMissingParameter:
		return "MissingParameter"
	case KindValidationFailed:
		return "ValidationFailed"
	case KindDuplicateContact:
		return "DuplicateContact"
	case KindContactNotFound:
		return "ContactNotFound"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// IsInvalidCommand reports whether the kind describes a malformed command
// rather than a business rule violation on the directory.
func (k ErrorKind) IsInvalidCommand() bool {
	switch k {
	case KindUnknownCommand, KindTooManyParameters, KindMissingParameter, KindValidationFailed:
		return true
	default:
		return false
	}
}

// CommandError is the single error type returned by the parser, the
// validation engine, the directory and command handlers. Every CommandError
// is recoverable: the dispatcher renders Message and keeps reading input.
type CommandError struct {
	Kind    ErrorKind
	Message string
}

func (e *CommandError) Error() string {
	return e.Message
}

// Is matches another *CommandError of the same kind, so errors.Is can be used
// against the Err* sentinels below.
func (e *CommandError) Is(target error) bool {
	var other *CommandError
	if !errors.As(target, &other) {
		return false
	}
	return other.Kind == e.Kind
}

// ── Sentinels for errors.Is ──────────────────────────────────────────

var (
	ErrEmptyInput        = &CommandError{Kind: KindEmptyInput, Message: "empty input"}
	ErrUnknownCommand    = &CommandError{Kind: KindUnknownCommand, Message: "unknown command"}
	ErrTooManyParameters = &CommandError{Kind: KindTooManyParameters, Message: "too many parameters"}
	ErrMissingParameter  = &CommandError{Kind: KindMissingParameter, Message: "missing parameter"}
	ErrValidationFailed  = &CommandError{Kind: KindValidationFailed, Message: "validation failed"}
	ErrDuplicateContact  = &CommandError{Kind: KindDuplicateContact, Message: "duplicate contact"}
	ErrContactNotFound   = &CommandError{Kind: KindContactNotFound, Message: "contact not found"}
)

// ── Constructors ─────────────────────────────────────────────────────

// NewCommandError creates a CommandError with a formatted message.
func NewCommandError(kind ErrorKind, format string, args ...interface{}) *CommandError {
	return &CommandError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf extracts the ErrorKind carried by err.
// The second result is false when err is not a CommandError.
func KindOf(err error) (ErrorKind, bool) {
	var ce *CommandError
	if errors.As(err, &ce) {
		return ce.Kind, true
	}
	return 0, false
}

// IsKind reports whether err is a CommandError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
