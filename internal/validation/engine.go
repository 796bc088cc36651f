package validation

import (
	"assistantbot/internal/logger"
	"assistantbot/pkg/bottypes"
)

// Validate applies restrictions to args and returns the validated values in
// their original order. Validation is fail-fast: the first violated
// restriction is reported as a *bottypes.CommandError and the remaining ones
// are not evaluated. helpText is appended to arity errors.
func Validate(args []string, schema bottypes.Schema, helpText string) ([]string, error) {
	if len(args) > schema.MaxArgs() {
		return nil, bottypes.NewCommandError(bottypes.KindTooManyParameters,
			"Too many parameters: expected at most %d, got %d. Usage: %s",
			schema.MaxArgs(), len(args), helpText)
	}

	values := make([]string, len(args))
	copy(values, args)

	for idx, restriction := range schema {
		if idx >= len(args) {
			if restriction.Required {
				return nil, bottypes.NewCommandError(bottypes.KindMissingParameter,
					"Missing required parameter: %s. Usage: %s", restriction.Description, helpText)
			}
			continue
		}

		if restriction.Validator == nil {
			continue
		}

		normalized, err := restriction.Validator.Validate(args[idx])
		if err != nil {
			logger.Debug("Argument rejected", "position", idx, "parameter", restriction.Description, "error", err)
			return nil, bottypes.NewCommandError(bottypes.KindValidationFailed,
				"Invalid %s: %s", restriction.Description, err.Error())
		}
		values[idx] = normalized
	}

	return values, nil
}
