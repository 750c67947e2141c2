package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/navflow/internal/logger"
	"github.com/alexisbeaulieu97/navflow/internal/metrics"
	"github.com/alexisbeaulieu97/navflow/internal/script"
	"github.com/alexisbeaulieu97/navflow/pkg/diff"
)

// errTranscriptMismatch reports a replay whose output differs from --expect.
var errTranscriptMismatch = errors.New("transcript does not match expected output")

type replayOptions struct {
	scriptPath string
	jsonOutput bool
	expectPath string
}

func newReplayCmd(flags *rootFlags) *cobra.Command {
	opts := replayOptions{}

	cmd := &cobra.Command{
		Use:   "replay <script>",
		Short: "Replay a navigation script headlessly",
		Long: `Replay a YAML or TOML navigation script against a fresh landing flow and
print one line per step. With --expect the transcript is compared against a
golden file and the command fails on any difference.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.scriptPath = args[0]
			return runReplay(cmd, flags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Write records as JSON lines")
	cmd.Flags().StringVar(&opts.expectPath, "expect", "", "Golden transcript to compare against")

	return cmd
}

func runReplay(cmd *cobra.Command, flags *rootFlags, opts replayOptions) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}

	log, err := logger.New(logger.Options{
		Level:         cfg.Log.Level,
		HumanReadable: cfg.Log.HumanReadable,
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	log = log.WithFields(map[string]any{"component": "replay"})

	s, err := script.Load(opts.scriptPath)
	if err != nil {
		return err
	}
	log.Debug("script loaded", "script", s.Name, "steps", len(s.Steps))

	runOpts := script.Options{
		Logger:     log,
		Assertions: cfg.Routing.Assertions,
	}
	// A replay is too short-lived to scrape, so totals are logged instead.
	var collector *metrics.Collector
	if cfg.Metrics.Enabled {
		collector = metrics.NewCollector()
		runOpts.Observer = collector
	}

	records, err := script.Run(cmd.Context(), s, runOpts)
	if collector != nil {
		commands, dropped := collector.Totals()
		log.Info("navigation metrics", "script", s.Name, "commands", commands, "dropped", dropped)
	}
	if err != nil {
		log.Error(err, "replay failed", "script", s.Name)
		return fmt.Errorf("replay %s: %w", s.Name, err)
	}

	var buf bytes.Buffer
	if opts.jsonOutput {
		err = script.WriteJSON(&buf, records)
	} else {
		err = script.WriteText(&buf, records)
	}
	if err != nil {
		return fmt.Errorf("write transcript: %w", err)
	}

	if opts.expectPath != "" {
		expected, err := os.ReadFile(opts.expectPath)
		if err != nil {
			return fmt.Errorf("read expected transcript: %w", err)
		}
		if d := diff.Lines(expected, buf.Bytes(), opts.expectPath, s.Name); d != "" {
			fmt.Fprint(cmd.OutOrStdout(), d)
			return fmt.Errorf("%s: %w", opts.expectPath, errTranscriptMismatch)
		}
		log.Info("transcript matches", "script", s.Name, "expect", opts.expectPath)
		return nil
	}

	_, err = cmd.OutOrStdout().Write(buf.Bytes())
	return err
}
