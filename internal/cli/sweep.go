package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(sweepCmd)
}

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Plan every budget and print the value-versus-budget curve",
	RunE:  runSweep,
}

func runSweep(cmd *cobra.Command, _ []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	dist, err := s.scenario.LoadDistribution(cmd.Context())
	if err != nil {
		return err
	}

	results, err := s.engine.Sweep(cmd.Context(), dist)
	if err != nil {
		return err
	}

	if jsonOutput {
		return writeJSON(s.out, results)
	}
	if err := writeSweep(s.out, results); err != nil {
		return err
	}

	return s.finish()
}
