package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/braces/config"
	"github.com/katalvlaran/braces/logging"
	"github.com/katalvlaran/braces/metrics"
)

// app carries state resolved once in PersistentPreRunE.
type app struct {
	cfgFile string
	verbose bool

	cfg     *config.Config
	log     *slog.Logger
	metrics *metrics.Collector
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "braces",
		Short: "Brace expansion for patterns like file.{png,jp{e,}g}",
		Long: `braces expands every {a,b,...} group in a pattern into the set of strings
obtained by choosing one alternative per group. Groups nest, alternatives may
be empty, and duplicate results are removed.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "braces.yaml", "config file path (defaults apply if missing)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(newExpandCmd(a), newServeCmd(a), newVersionCmd())

	return root
}

// setup loads configuration and builds the logger and metrics collector.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}

	level := cfg.Logging.Level
	if a.verbose {
		level = "debug"
	}
	log, err := logging.New(logging.Config{
		Level:  level,
		Format: cfg.Logging.Format,
		Writer: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = log
	a.metrics = metrics.NewCollector(nil)
	a.log.Debug("configuration loaded", "path", a.cfgFile,
		"max_results", cfg.Expand.MaxResults, "max_expansions", cfg.Expand.MaxExpansions)

	return nil
}

// Execute runs the root command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
