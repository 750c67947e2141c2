package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	navflowerrors "github.com/alexisbeaulieu97/navflow/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load reads the configuration at path, applies defaults for everything the
// file leaves out and validates the result. An empty path yields the defaults.
// The format follows the extension: .yaml, .yml or .toml.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		if err := ValidateConfig(&cfg); err != nil {
			return nil, err
		}
		return &cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, navflowerrors.NewParseError(path, 0, err)
	}

	if err := Decode(path, data, &cfg); err != nil {
		return nil, err
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Decode unmarshals data into out using the format implied by path's
// extension. Fields absent from data keep their current value in out.
func Decode(path string, data []byte, out any) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, out); err != nil {
			return navflowerrors.NewParseError(path, extractLine(err), err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), out); err != nil {
			return navflowerrors.NewParseError(path, tomlLine(err), err)
		}
	default:
		return navflowerrors.NewParseError(path, 0, fmt.Errorf("unsupported config format %q", ext))
	}
	return nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}

func tomlLine(err error) int {
	var parseErr toml.ParseError
	if errors.As(err, &parseErr) {
		return parseErr.Position.Line
	}
	return extractLine(err)
}
