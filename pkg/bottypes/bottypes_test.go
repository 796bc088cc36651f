package bottypes

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorKind_String(t *testing.T) {
	tests := []struct {
		kind     ErrorKind
		expected string
	}{
		{KindEmptyInput, "EmptyInput"},
		{KindUnknownCommand, "UnknownCommand"},
		{KindTooManyParameters, "TooManyParameters"},
		{KindMissingParameter, "MissingParameter"},
		{KindValidationFailed, "ValidationFailed"},
		{KindDuplicateContact, "DuplicateContact"},
		{KindContactNotFound, "ContactNotFound"},
		{ErrorKind(42), "ErrorKind(42)"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.kind.String())
		})
	}
}

func TestErrorKind_IsInvalidCommand(t *testing.T) {
	assert.False(t, KindEmptyInput.IsInvalidCommand())
	assert.True(t, KindUnknownCommand.IsInvalidCommand())
	assert.True(t, KindTooManyParameters.IsInvalidCommand())
	assert.True(t, KindMissingParameter.IsInvalidCommand())
	assert.True(t, KindValidationFailed.IsInvalidCommand())
	assert.False(t, KindDuplicateContact.IsInvalidCommand())
	assert.False(t, KindContactNotFound.IsInvalidCommand())
}

func TestCommandError_IsMatchesSentinelByKind(t *testing.T) {
	err := NewCommandError(KindContactNotFound, "Contact %q not found.", "Bob")

	assert.Equal(t, `Contact "Bob" not found.`, err.Error())
	assert.True(t, errors.Is(err, ErrContactNotFound))
	assert.False(t, errors.Is(err, ErrDuplicateContact))

	wrapped := fmt.Errorf("handler: %w", err)
	assert.True(t, errors.Is(wrapped, ErrContactNotFound))
	assert.True(t, IsKind(wrapped, KindContactNotFound))
}

func TestKindOf(t *testing.T) {
	kind, ok := KindOf(NewCommandError(KindValidationFailed, "bad"))
	require.True(t, ok)
	assert.Equal(t, KindValidationFailed, kind)

	_, ok = KindOf(errors.New("plain"))
	assert.False(t, ok)
	assert.False(t, IsKind(nil, KindEmptyInput))
}

func TestValidatorFunc(t *testing.T) {
	upper := ValidatorFunc(func(v string) (string, error) {
		if v == "" {
			return "", errors.New("empty")
		}
		return strings.ToUpper(v), nil
	})

	got, err := upper.Validate("abc")
	require.NoError(t, err)
	assert.Equal(t, "ABC", got)

	_, err = upper.Validate("")
	assert.EqualError(t, err, "empty")
}

func TestSchema_ArgBounds(t *testing.T) {
	schema := Schema{
		{Position: 0, Required: true, Description: "name"},
		{Position: 1, Required: true, Description: "phone"},
		{Position: 2, Required: false, Description: "note"},
	}

	assert.Equal(t, 3, schema.MaxArgs())
	assert.Equal(t, 0, Schema{}.MaxArgs())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "Running", StateRunning.String())
	assert.Equal(t, "Terminated", StateTerminated.String())
	assert.Equal(t, "Unknown", State(9).String())
}
