package config

import "time"

// Config is the application configuration.
type Config struct {
	Log     LogConfig     `yaml:"log" toml:"log"`
	Routing RoutingConfig `yaml:"routing" toml:"routing"`
	Metrics MetricsConfig `yaml:"metrics" toml:"metrics"`
	UI      UIConfig      `yaml:"ui" toml:"ui"`
}

// LogConfig controls the zerolog output.
type LogConfig struct {
	Level         string `yaml:"level" toml:"level" validate:"oneof=debug info warn error"`
	HumanReadable bool   `yaml:"human_readable" toml:"human_readable"`
	// File receives log output in the TUI; empty discards it.
	File string `yaml:"file" toml:"file"`
}

// RoutingConfig tunes the routers of every flow.
type RoutingConfig struct {
	// Assertions turns invariant violations into panics.
	Assertions bool `yaml:"assertions" toml:"assertions"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" toml:"enabled"`
	Address string `yaml:"address" toml:"address"`
}

// UIConfig tunes the terminal UI.
type UIConfig struct {
	Theme string `yaml:"theme" toml:"theme" validate:"oneof=dark light"`
	// Transition is how long a popped screen keeps rendering; 0 disables it.
	Transition time.Duration `yaml:"transition" toml:"transition" validate:"gte=0"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		Log: LogConfig{Level: "info"},
		Metrics: MetricsConfig{
			Address: "127.0.0.1:9464",
		},
		UI: UIConfig{
			Theme:      "dark",
			Transition: 150 * time.Millisecond,
		},
	}
}
