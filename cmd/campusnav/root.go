package main

import (
	"context"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/campusnav/config"
	"github.com/katalvlaran/campusnav/pathfinder"
)

// app carries what every subcommand needs once the root has run.
type app struct {
	configPath string
	dataPath   string
	logLevel   string

	cfg      config.Config
	logger   *slog.Logger
	registry *prometheus.Registry
	finder   *pathfinder.Finder
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "campusnav",
		Short:         "Shortest walking routes between campus locations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (YAML or JSON)")
	pf.StringVar(&a.dataPath, "data", "", "pathway document, overrides data.path")
	pf.StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error; overrides logging.level")

	root.AddCommand(
		newRouteCmd(a),
		newNearestCmd(a),
		newLocationsCmd(a),
		newServeCmd(a),
	)

	return root
}

// setup merges configuration and flags, then builds the logger, metrics
// registry and finder. Nothing is loaded yet.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.dataPath != "" {
		cfg.Data.Path = a.dataPath
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = cfg.Logger(cmd.ErrOrStderr())
	a.registry = prometheus.NewRegistry()
	a.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	opts := append(cfg.FinderOptions(),
		pathfinder.WithLogger(a.logger),
		pathfinder.WithMetrics(pathfinder.NewMetrics(a.registry)),
	)
	a.finder = pathfinder.New(opts...)

	return nil
}

// load reads the configured pathway document into the finder.
func (a *app) load(ctx context.Context) error {
	return a.finder.LoadFile(ctx, a.cfg.Data.Path)
}
