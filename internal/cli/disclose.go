package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(discloseCmd)
}

var discloseCmd = &cobra.Command{
	Use:   "disclose",
	Short: "Solve the disclosure linear program over the scenario's distribution",
	RunE:  runDisclose,
}

func runDisclose(cmd *cobra.Command, _ []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	dist, err := s.scenario.LoadDistribution(cmd.Context())
	if err != nil {
		return err
	}

	d, err := s.engine.OptimalDisclosure(cmd.Context(), dist)
	if err != nil {
		return err
	}

	if jsonOutput {
		return writeJSON(s.out, d)
	}
	if err := writeDisclosure(s.out, dist, d); err != nil {
		return err
	}

	return s.finish()
}
