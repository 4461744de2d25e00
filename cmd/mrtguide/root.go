package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	"github.com/katalvlaran/mrtguide/config"
	"github.com/katalvlaran/mrtguide/formatter"
	"github.com/katalvlaran/mrtguide/pathfinder"
)

var (
	cfgPath  string
	dataPath string
	limit    int
	format   string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "mrtguide",
	Short: "Find MRT routes between stations",
	Long: `mrtguide ranks routes across a rail network loaded from a station CSV.
Without a departure time routes are ranked by the number of stops; with one,
by the estimated travel time for that hour (peak, night or normal service).`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive(cmd)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", config.DefaultPath, "YAML config file (optional)")
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "station CSV (overrides data_path)")
	rootCmd.PersistentFlags().IntVarP(&limit, "limit", "n", 0, "routes to show (overrides limit)")
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", "", "output format: console, styled or json (overrides formatter)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error (overrides log_level)")
}

// env is everything a command needs, built from config and flags.
type env struct {
	cfg       *config.AppConfig
	finder    *pathfinder.PathFinder
	formatter formatter.Formatter
	log       *slog.Logger
}

// setup loads the config, applies flag overrides, installs the logger and
// builds the path finder.
func setup(cmd *cobra.Command) (*env, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("data") {
		cfg.DataPath = dataPath
	}
	if flags.Changed("limit") {
		cfg.Limit = limit
	}
	if flags.Changed("format") {
		cfg.Formatter = format
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level()}))
	slog.SetDefault(logger)

	opts := []pathfinder.Option{
		pathfinder.WithLines(cfg.Weights()),
		pathfinder.WithCacheSize(cfg.CacheSize),
		pathfinder.WithLogger(logger),
	}
	var (
		opened time.Time
		ok     bool
	)
	if opened, ok, err = cfg.OpenedByTime(); err != nil {
		return nil, err
	} else if ok {
		opts = append(opts, pathfinder.WithOpenedBy(opened))
	}

	finder, err := pathfinder.Open(cfg.DataPath, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", cfg.DataPath, err)
	}
	logger.Info("stations loaded", "path", cfg.DataPath, "stations", len(finder.Map().Stations()))

	return &env{
		cfg:       cfg,
		finder:    finder,
		formatter: formatter.NewRegistry().Get(cfg.Formatter),
		log:       logger,
	}, nil
}
