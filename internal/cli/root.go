// Package cli implements the cubesim command-line interface.
package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SeamusWaldron/gocube_lattice/internal/config"
	"github.com/SeamusWaldron/gocube_lattice/internal/storage"
)

const version = "0.1.0"

// app holds state shared by every command of one invocation.
type app struct {
	// Global flags
	dbPath     string
	configPath string
	verbose    bool

	cfg    config.Config
	logger *zap.Logger
}

// NewRootCommand builds the cubesim command tree.
func NewRootCommand() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "cubesim",
		Short: "3x3x3 cube simulator",
		Long: `cubesim - A command-line simulator for the 3x3x3 cube.

Parse and simplify move sequences in standard notation, apply them to a
virtual cube, combine moves algebraically, and keep named sessions of
moves in a local database.`,
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.dbPath, "db", "", "Database file path (default: ~/"+config.DirName+"/gocube.db)")
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file path (default: ~/"+config.DirName+"/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(
		a.parseCmd(),
		a.applyCmd(),
		a.simplifyCmd(),
		a.algebraCmd(),
		a.sessionCmd(),
		a.playCmd(),
	)
	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads the config file, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	path := a.configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if a.dbPath != "" {
		cfg.DBPath = a.dbPath
	}
	a.cfg = cfg

	logger, err := newLogger(cfg.LogLevel, a.verbose)
	if err != nil {
		return err
	}
	a.logger = logger
	a.logger.Debug("config loaded",
		zap.String("path", path),
		zap.String("db", cfg.DBPath),
		zap.Bool("simplify", cfg.Simplify))
	return nil
}

// newLogger builds a production logger at the given level; verbose forces debug.
func newLogger(level string, verbose bool) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	if verbose {
		lvl = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	zcfg.Level = lvl
	zcfg.Encoding = "console"
	zcfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	return zcfg.Build()
}

// openDB opens the configured database.
func (a *app) openDB(ctx context.Context) (*storage.DB, error) {
	db, err := storage.Open(ctx, a.cfg.DBPath)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("database opened", zap.String("path", db.Path()))
	return db, nil
}

// joinArgs lets a sequence be passed either quoted or as separate arguments.
func joinArgs(args []string) string {
	return strings.Join(args, " ")
}
