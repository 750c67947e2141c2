package main

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/navflow/internal/config"
	"github.com/alexisbeaulieu97/navflow/internal/flows/landingflow"
	"github.com/alexisbeaulieu97/navflow/internal/logger"
	"github.com/alexisbeaulieu97/navflow/internal/metrics"
	"github.com/alexisbeaulieu97/navflow/internal/tui"
	"github.com/alexisbeaulieu97/navflow/pkg/routing"
)

type rootFlags struct {
	configPath string
	verbose    bool
}

var termIsTerminal = func(fd int) bool {
	return term.IsTerminal(fd)
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "navflow",
		Short: "navflow drives declarative navigation flows",
		Long: `navflow hosts the landing flow in an interactive terminal UI and replays
scripted navigation journeys against it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !termIsTerminal(int(os.Stdout.Fd())) {
				return fmt.Errorf("navflow needs an interactive terminal; use `navflow replay` for scripted runs")
			}
			return runTUI(cmd.Context(), flags)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a YAML or TOML configuration file")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(newReplayCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// loadConfig reads the configured file and applies flag overrides.
func loadConfig(flags *rootFlags) (*config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if flags.verbose {
		cfg.Log.Level = "debug"
	}
	return cfg, nil
}

// routerOptions wires logging, metrics and assertions into every router.
func routerOptions(cfg *config.Config, log *logger.Logger, collector *metrics.Collector) []routing.Option {
	opts := []routing.Option{
		routing.WithLogger(log),
		routing.WithAssertions(cfg.Routing.Assertions),
	}
	if collector != nil {
		opts = append(opts, routing.WithObserver(collector))
	}
	return opts
}

func runTUI(ctx context.Context, flags *rootFlags) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}

	// The terminal owns stdout, so logs only go to a file.
	var out io.Writer = io.Discard
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		out = f
	}
	log, err := logger.New(logger.Options{
		Level:         cfg.Log.Level,
		HumanReadable: cfg.Log.HumanReadable,
		Writer:        out,
	})
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var collector *metrics.Collector
	if cfg.Metrics.Enabled {
		collector = metrics.NewCollector()
		go func() {
			if err := collector.Serve(ctx, cfg.Metrics.Address); err != nil {
				log.Error(err, "metrics server stopped", "address", cfg.Metrics.Address)
			}
		}()
		log.Info("metrics server listening", "address", cfg.Metrics.Address)
	}

	store := landingflow.NewStore(routerOptions(cfg, log, collector)...)
	model := tui.NewModel(store, tui.Options{
		Transition: cfg.UI.Transition,
		Theme:      cfg.UI.Theme,
		Logger:     log,
	})

	log.Info("launching terminal UI", "theme", cfg.UI.Theme)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		log.Error(err, "terminal UI failed")
		return fmt.Errorf("failed to run terminal UI: %w", err)
	}
	log.Info("terminal UI closed", "dispatched", store.Dispatched())
	return nil
}
