package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assistantbot/pkg/bottypes"
)

func contactSchema() []bottypes.Restriction {
	return []bottypes.Restriction{
		{Position: 0, Required: true, Description: "contact name", Validator: bottypes.ValidatorFunc(Name)},
		{Position: 1, Required: true, Description: "phone number", Validator: bottypes.ValidatorFunc(Phone)},
	}
}

// countingValidator records how many times it was invoked.
type countingValidator struct {
	calls int
	inner bottypes.ValidatorFunc
}

func (c *countingValidator) Validate(value string) (string, error) {
	c.calls++
	return c.inner(value)
}

func TestValidate_Accepts(t *testing.T) {
	values, err := Validate([]string{"Alice", "1234567890"}, contactSchema(), "add <name> <phone>")

	require.NoError(t, err)
	assert.Equal(t, []string{"Alice", "1234567890"}, values)
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		kind        bottypes.ErrorKind
		msgContains []string
	}{
		{
			name:        "too many parameters",
			args:        []string{"Alice", "1234567890", "extra"},
			kind:        bottypes.KindTooManyParameters,
			msgContains: []string{"expected at most 2, got 3", "add <name> <phone>"},
		},
		{
			name:        "no parameters",
			args:        []string{},
			kind:        bottypes.KindMissingParameter,
			msgContains: []string{"contact name", "add <name> <phone>"},
		},
		{
			name:        "missing phone",
			args:        []string{"Alice"},
			kind:        bottypes.KindMissingParameter,
			msgContains: []string{"phone number"},
		},
		{
			name:        "invalid name",
			args:        []string{"Al", "1234567890"},
			kind:        bottypes.KindValidationFailed,
			msgContains: []string{"Invalid contact name", "at least 3"},
		},
		{
			name:        "invalid phone",
			args:        []string{"Alice", "12345"},
			kind:        bottypes.KindValidationFailed,
			msgContains: []string{"Invalid phone number", "got 5"},
		},
		{
			name:        "first failure wins",
			args:        []string{"Al", "123"},
			kind:        bottypes.KindValidationFailed,
			msgContains: []string{"contact name"},
		},
		{
			name:        "invalid name reported before missing phone",
			args:        []string{"Al"},
			kind:        bottypes.KindValidationFailed,
			msgContains: []string{"contact name"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := Validate(tt.args, contactSchema(), "add <name> <phone>")

			require.Error(t, err)
			assert.Nil(t, values)
			assert.True(t, bottypes.IsKind(err, tt.kind), "got %v", err)
			for _, s := range tt.msgContains {
				assert.Contains(t, err.Error(), s)
			}
		})
	}
}

func TestValidate_FailFastSkipsLaterValidators(t *testing.T) {
	second := &countingValidator{inner: Phone}
	restrictions := []bottypes.Restriction{
		{Position: 0, Required: true, Description: "contact name", Validator: bottypes.ValidatorFunc(Name)},
		{Position: 1, Required: true, Description: "phone number", Validator: second},
	}

	_, err := Validate([]string{"Al", "123"}, restrictions, "")

	require.Error(t, err)
	assert.Equal(t, 0, second.calls)
}

func TestValidate_OptionalAndUnvalidated(t *testing.T) {
	restrictions := []bottypes.Restriction{
		{Position: 0, Required: false, Description: "command", Validator: bottypes.ValidatorFunc(Keyword)},
		{Position: 1, Required: false, Description: "free text"},
	}

	values, err := Validate(nil, restrictions, "help [command]")
	require.NoError(t, err)
	assert.Empty(t, values)

	values, err = Validate([]string{"PHONE", "Any Text!"}, restrictions, "help [command]")
	require.NoError(t, err)
	assert.Equal(t, []string{"phone", "Any Text!"}, values, "validators may normalize values")
}

func TestValidate_DoesNotMutateInput(t *testing.T) {
	args := []string{"ADD"}
	restrictions := []bottypes.Restriction{
		{Position: 0, Description: "command", Validator: bottypes.ValidatorFunc(Keyword)},
	}

	values, err := Validate(args, restrictions, "")
	require.NoError(t, err)

	assert.Equal(t, []string{"add"}, values)
	assert.Equal(t, []string{"ADD"}, args)
}

func TestValidate_EmptySchema(t *testing.T) {
	values, err := Validate(nil, nil, "all")
	require.NoError(t, err)
	assert.Empty(t, values)

	_, err = Validate([]string{"x"}, nil, "all")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "expected at most 0, got 1"))
}
