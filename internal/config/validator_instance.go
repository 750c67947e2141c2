package config

import (
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	targetPattern = regexp.MustCompile(`^(root|modal|route:\d+)(/(root|modal|route:\d+))*$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		// nav_target is a "/"-separated path of flow addresses such as
		// "modal/route:0/root", used by scripts.
		_ = v.RegisterValidation("nav_target", func(fl validator.FieldLevel) bool {
			return targetPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns a configured validator instance for use outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}
