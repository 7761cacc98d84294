package cli

import (
	"github.com/spf13/cobra"

	"github.com/arloliu/persuade/oracle"
)

func init() {
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Find the best signaling policy for the scenario's receivers",
	RunE:  runSearch,
}

func runSearch(cmd *cobra.Command, _ []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	pop, err := s.scenario.Population()
	if err != nil {
		return err
	}
	receivers, err := pop.ListReceivers(cmd.Context())
	if err != nil {
		return err
	}

	res, err := s.engine.SearchPolicy(cmd.Context(), receivers)
	if err != nil {
		return err
	}

	responses := oracle.Responses(receivers, res.Policy)
	if jsonOutput {
		return writeJSON(s.out, policyReport{Result: res, Responses: responses})
	}
	if err := writePolicy(s.out, res, responses); err != nil {
		return err
	}

	return s.finish()
}
