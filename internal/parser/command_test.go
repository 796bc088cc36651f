package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assistantbot/pkg/bottypes"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name            string
		input           string
		expectedKeyword string
		expectedArgs    []string
	}{
		{
			name:            "keyword only",
			input:           "all",
			expectedKeyword: "all",
			expectedArgs:    []string{},
		},
		{
			name:            "keyword with arguments",
			input:           "add Alice 1234567890",
			expectedKeyword: "add",
			expectedArgs:    []string{"Alice", "1234567890"},
		},
		{
			name:            "keyword is lower-cased, arguments keep case",
			input:           "ADD Alice BoB",
			expectedKeyword: "add",
			expectedArgs:    []string{"Alice", "BoB"},
		},
		{
			name:            "extra whitespace is collapsed",
			input:           "   phone \t  Alice   ",
			expectedKeyword: "phone",
			expectedArgs:    []string{"Alice"},
		},
		{
			name:            "quotes are not interpreted",
			input:           `add "Alice Smith" 123`,
			expectedKeyword: "add",
			expectedArgs:    []string{`"Alice`, `Smith"`, "123"},
		},
		{
			name:            "trailing newline",
			input:           "hello\n",
			expectedKeyword: "hello",
			expectedArgs:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := ParseCommand(tt.input)
			require.NoError(t, err)

			assert.Equal(t, tt.expectedKeyword, cmd.Keyword)
			assert.Equal(t, tt.expectedArgs, cmd.Args)
		})
	}
}

func TestParseCommand_EmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\t\n"} {
		cmd, err := ParseCommand(input)

		assert.Nil(t, cmd)
		assert.True(t, bottypes.IsKind(err, bottypes.KindEmptyInput), "input %q", input)
	}
}

func TestCommand_String(t *testing.T) {
	cmd, err := ParseCommand("  Change   Alice   1234567890 ")
	require.NoError(t, err)

	assert.Equal(t, "change Alice 1234567890", cmd.String())
	assert.Equal(t, "all", (&Command{Keyword: "all"}).String())
}
