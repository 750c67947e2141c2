// Package script drives the landing flow headlessly from a file of steps.
// Each step either sends a named action to a target screen or simulates a
// back gesture on the presenter, and every step is recorded in a trace.
package script

import (
	"fmt"
	"os"

	"github.com/alexisbeaulieu97/navflow/internal/config"
	navflowerrors "github.com/alexisbeaulieu97/navflow/pkg/errors"
)

// Script is a named list of steps.
type Script struct {
	Name  string `yaml:"name" toml:"name"`
	Steps []Step `yaml:"steps" toml:"steps" validate:"required,min=1,dive"`
}

// Step is one scripted input.
//
// Target is a "/"-separated address such as "root", "route:1" or
// "modal/route:0"; each segment descends one flow. Back simulates a back
// gesture removing that many screens from the presenter, and -1 reports a
// transient nil path instead.
type Step struct {
	Target string `yaml:"target" toml:"target" validate:"omitempty,nav_target"`
	Action string `yaml:"action" toml:"action"`
	Text   string `yaml:"text" toml:"text"`
	Back   *int   `yaml:"back" toml:"back" validate:"omitempty,gte=-1"`
}

// Load reads and validates a script. The format follows the extension as for
// configuration files.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, navflowerrors.NewParseError(path, 0, err)
	}

	var s Script
	if err := config.Decode(path, data, &s); err != nil {
		return nil, err
	}
	if s.Name == "" {
		s.Name = path
	}

	if err := Validate(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks a script's structure. Whether targets exist is only known
// while running.
func Validate(s *Script) error {
	if s == nil {
		return navflowerrors.NewValidationError("script", "script is nil", nil)
	}

	if err := config.GetValidator().Struct(s); err != nil {
		return config.ConvertValidationError(err)
	}

	for i, step := range s.Steps {
		field := fmt.Sprintf("steps[%d]", i)
		switch {
		case step.Back != nil && step.Target != "":
			return navflowerrors.NewValidationError(field, "a step has either a target or back, not both", nil)
		case step.Back != nil && *step.Back == 0:
			return navflowerrors.NewValidationError(field+".back", "back must be -1 or positive", nil)
		case step.Back == nil && step.Target == "":
			return navflowerrors.NewValidationError(field, "a step needs a target or back", nil)
		case step.Target != "" && step.Action == "":
			return navflowerrors.NewValidationError(field+".action", "action is required with a target", nil)
		}
	}
	return nil
}

// String renders the step as it appears in traces.
func (s Step) String() string {
	if s.Back != nil {
		return fmt.Sprintf("back %d", *s.Back)
	}
	if s.Text != "" {
		return fmt.Sprintf("%s %s %q", s.Target, s.Action, s.Text)
	}
	return fmt.Sprintf("%s %s", s.Target, s.Action)
}
