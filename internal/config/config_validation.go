package config

import (
	navflowerrors "github.com/alexisbeaulieu97/navflow/pkg/errors"
)

// ValidateConfig performs structural and cross-field validation on an entire configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return navflowerrors.NewValidationError("config", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return ConvertValidationError(err)
	}

	if cfg.Metrics.Enabled {
		if err := v.Var(cfg.Metrics.Address, "required,hostname_port"); err != nil {
			return navflowerrors.NewValidationError("metrics.address", "metrics.address must be host:port when metrics are enabled", err)
		}
	}

	return nil
}
