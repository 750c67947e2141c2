package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	navflowerrors "github.com/alexisbeaulieu97/navflow/pkg/errors"
)

// ConvertValidationError normalizes validator errors into navflow validation errors.
func ConvertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return navflowerrors.NewValidationError(field, msg, err)
	}

	return navflowerrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName turns "Config.UI.Theme" into "ui.theme".
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}
