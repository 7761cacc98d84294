package cli

import (
	"github.com/spf13/cobra"
)

var (
	planBudget int
	planCost   float64
)

func init() {
	rootCmd.AddCommand(planCmd)

	planCmd.Flags().IntVarP(&planBudget, "budget", "k", 0, "segment budget K (default: config planner.queryBudget)")
	planCmd.Flags().Float64Var(&planCost, "cost", 0, "cost per split (default: config planner.queryCost)")
}

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Plan budgeted belief thresholds over the scenario's distribution",
	RunE:  runPlan,
}

func runPlan(cmd *cobra.Command, _ []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	dist, err := s.scenario.LoadDistribution(cmd.Context())
	if err != nil {
		return err
	}

	budget, cost := s.engine.Config().Planner.QueryBudget, s.engine.Config().Planner.QueryCost
	if cmd.Flags().Changed("budget") {
		budget = planBudget
	}
	if cmd.Flags().Changed("cost") {
		cost = planCost
	}

	res, err := s.engine.Plan(cmd.Context(), dist, budget, cost)
	if err != nil {
		return err
	}

	if jsonOutput {
		return writeJSON(s.out, res)
	}
	if err := writePlan(s.out, res); err != nil {
		return err
	}

	return s.finish()
}
