package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assistantbot/pkg/bottypes"
)

func TestName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{name: "three letters", input: "Bob"},
		{name: "mixed case", input: "AliceMcKenzie"},
		{name: "long name", input: strings.Repeat("a", 64)},
		{name: "empty", input: "", wantErr: "at least 3 characters"},
		{name: "two letters", input: "Al", wantErr: "at least 3 characters"},
		{name: "digit", input: "Alice1", wantErr: "only Latin letters"},
		{name: "hyphen", input: "Anne-Marie", wantErr: "only Latin letters"},
		{name: "apostrophe", input: "O'Neil", wantErr: "only Latin letters"},
		{name: "cyrillic", input: "Олена", wantErr: "only Latin letters"},
		{name: "accented", input: "José", wantErr: "only Latin letters"},
		{name: "short and invalid reports length first", input: "A1", wantErr: "at least 3 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Name(tt.input)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, got)
		})
	}
}

func TestName_Properties(t *testing.T) {
	letters := "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	for length := 0; length <= 8; length++ {
		value := strings.Repeat(string(letters[length*5%len(letters)]), length)
		_, err := Name(value)
		if length < MinNameLength {
			assert.Error(t, err, "length %d", length)
		} else {
			assert.NoError(t, err, "length %d", length)
		}
	}

	for _, bad := range []rune{'0', '9', ' ', '_', '.', '-', 'ß', '中'} {
		_, err := Name("abc" + string(bad))
		assert.Error(t, err, "character %q", bad)
	}
}

func TestPhone(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{name: "ten digits", input: "1234567890"},
		{name: "twelve digits", input: "380501234567"},
		{name: "country code with plus", input: "+380501234567"},
		{name: "dashes and spaces", input: "050-123 45 67"},
		{name: "plus and dashes", input: "+38-050-123-45-67"},
		{name: "too short", input: "123", wantErr: "10 or 12 digits, got 3"},
		{name: "eleven digits", input: "12345678901", wantErr: "got 11"},
		{name: "thirteen digits", input: "1234567890123", wantErr: "got 13"},
		{name: "empty", input: "", wantErr: "got 0"},
		{name: "letters", input: "12345abcde", wantErr: "only digits"},
		{name: "parentheses", input: "(050)1234567", wantErr: "only digits"},
		{name: "dot separator", input: "050.123.45.67", wantErr: "only digits"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Phone(tt.input)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, got, "accepted phones are returned unchanged")
		})
	}
}

func TestPhone_DigitCountProperty(t *testing.T) {
	for count := 0; count <= 15; count++ {
		_, err := Phone(strings.Repeat("7", count))
		if count == 10 || count == 12 {
			assert.NoError(t, err, "digits %d", count)
		} else {
			assert.Error(t, err, "digits %d", count)
		}
	}
}

func TestKeyword(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "add", want: "add"},
		{input: "ADD", want: "add"},
		{input: "Phone", want: "phone"},
		{input: "", wantErr: true},
		{input: "add2", wantErr: true},
		{input: "he-lp", wantErr: true},
		{input: "привіт", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Keyword(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSet(t *testing.T) {
	s := DefaultSet()
	assert.Equal(t, []string{"keyword", "name", "phone"}, s.Names())

	v, ok := s.Lookup("phone")
	require.True(t, ok)
	_, err := v.Validate("1234567890")
	assert.NoError(t, err)

	_, ok = s.Lookup("email")
	assert.False(t, ok)

	assert.Error(t, s.Register("", bottypes.ValidatorFunc(Name)))
	assert.Error(t, s.Register("email", nil))
	assert.Error(t, s.Register("name", bottypes.ValidatorFunc(Name)))

	email := bottypes.ValidatorFunc(func(v string) (string, error) {
		if !strings.Contains(v, "@") {
			return "", errors.New("must contain @")
		}
		return v, nil
	})
	require.NoError(t, s.Register("email", email))
	_, ok = s.Lookup("email")
	assert.True(t, ok)
}
