// Package cli implements the persuade command-line driver.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/arloliu/persuade"
	"github.com/arloliu/persuade/internal/logging"
	"github.com/arloliu/persuade/internal/metrics"
)

var (
	scenarioPath string
	logLevel     string
	jsonOutput   bool
	showMetrics  bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&scenarioPath, "scenario", "s", "", "path to scenario.yaml")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print results as JSON")
	rootCmd.PersistentFlags().BoolVar(&showMetrics, "metrics", false, "print collected metrics after the run")
}

var rootCmd = &cobra.Command{
	Use:   "persuade",
	Short: "Bayesian persuasion policy search and threshold planning",
	Long: "Searches for the signaling policy that maximizes a sender's expected utility over a " +
		"receiver population, and plans budgeted belief thresholds over a belief distribution.",
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// session bundles what every subcommand needs for one run.
type session struct {
	scenario *Scenario
	engine   *persuade.Engine
	registry *prometheus.Registry
	out      io.Writer
}

// newSession loads the scenario and builds an engine wired to the command's
// output streams.
func newSession(cmd *cobra.Command) (*session, error) {
	if scenarioPath == "" {
		return nil, fmt.Errorf("--scenario is required")
	}

	sc, err := LoadScenario(scenarioPath)
	if err != nil {
		return nil, err
	}

	level, err := logging.ParseLevel(logLevel)
	if err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	engine, err := persuade.NewEngine(&sc.Config,
		persuade.WithLogger(logging.NewText(cmd.ErrOrStderr(), level)),
		persuade.WithMetrics(metrics.NewPrometheus(reg, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}

	return &session{scenario: sc, engine: engine, registry: reg, out: cmd.OutOrStdout()}, nil
}

// finish prints collected metrics when requested.
func (s *session) finish() error {
	if !showMetrics || jsonOutput {
		return nil
	}

	return writeMetrics(s.out, s.registry)
}
