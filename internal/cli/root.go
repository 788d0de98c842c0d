// Package cli wires the lvroute command tree.
package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroute/ingest"
	"github.com/katalvlaran/lvroute/internal/config"
	"github.com/katalvlaran/lvroute/internal/logging"
	"github.com/katalvlaran/lvroute/query"
)

// app is the state shared by every subcommand of one invocation.
type app struct {
	configPath string
	logLevel   string

	cfg    config.Config
	logger *slog.Logger
}

// NewRootCommand builds a fresh command tree. Each call is independent, so
// tests can execute several trees side by side.
func NewRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "lvroute",
		Short: "Answer route queries over a weighted directed graph",
		Long: `lvroute loads a comma-delimited edge list ("A,B,5" per line) and answers
route questions about it.

Examples:
  lvroute distance towns.csv -r A,B,C
  lvroute shortest-path towns.csv -s C -e C
  lvroute paths-by-stops towns.csv -s A -e E -o "<=" -v 3
  lvroute paths-by-distance towns.csv -s C -e C -o "<" -v 30`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to a YAML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	root.AddCommand(
		newDistanceCmd(a),
		newShortestPathCmd(a),
		newCountCmd(a, query.KindPathsByStops, "Count paths bounded by number of stops"),
		newCountCmd(a, query.KindPathsByDistance, "Count paths bounded by total distance"),
		newBatchCmd(a),
		newExportCmd(a),
	)

	return root
}

// setup loads configuration and builds the logger before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Logging.Level = strings.ToLower(a.logLevel)
		if err = cfg.Validate(); err != nil {
			return fmt.Errorf("--log-level: %w", err)
		}
	}
	a.cfg = cfg
	a.logger = logging.New(cfg.Logging, cmd.ErrOrStderr())

	return nil
}

// engine loads the edge list at path and wraps it in a query engine.
func (a *app) engine(path string) (*query.Engine, error) {
	g, err := ingest.LoadFile(path)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("graph loaded", "file", path, "vertices", g.VertexCount(), "edges", g.EdgeCount())

	return query.NewEngine(g,
		query.WithLogger(a.logger),
		query.WithCacheSize(a.cfg.Cache.Size),
		query.WithConcurrency(a.cfg.Batch.Concurrency),
	)
}
