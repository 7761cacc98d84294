package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/arloliu/persuade/oracle"
	"github.com/arloliu/persuade/strategy"
	"github.com/arloliu/persuade/types"
)

// policyReport is the JSON shape of the search command.
type policyReport struct {
	Result    types.PolicyResult `json:"result"`
	Responses []oracle.Response  `json:"responses"`
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

func writePolicy(w io.Writer, res types.PolicyResult, responses []oracle.Response) error {
	fmt.Fprintf(w, "Best policy: %s\n", res.Policy)
	fmt.Fprintf(w, "Expected utility: %.4f\n", res.Utility)
	fmt.Fprintf(w, "Policies evaluated: %d (skipped %d)\n\n", res.Candidates, res.Skipped)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "BELIEF\tWEIGHT\tON m0\tON m1")
	for _, r := range responses {
		fmt.Fprintf(tw, "%.3f\t%.3f\t%s\t%s\n", r.Receiver.Belief, r.Receiver.Weight, r.OnM0, r.OnM1)
	}

	return tw.Flush()
}

func writePlan(w io.Writer, res types.PlanResult) error {
	fmt.Fprintf(w, "Budget: %d  Query cost: %g\n", res.Budget, res.QueryCost)
	fmt.Fprintf(w, "Expected value: %.6f\n", res.ExpectedValue)
	if len(res.Thresholds) == 0 {
		fmt.Fprintln(w, "Thresholds: none")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "INDEX\tBELIEF")
	beliefs := res.ThresholdBeliefs()
	for i, idx := range res.Thresholds {
		fmt.Fprintf(tw, "%d\t%.4f\n", idx, beliefs[i])
	}

	return tw.Flush()
}

func writeSweep(w io.Writer, results []types.PlanResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "BUDGET\tVALUE\tTHRESHOLDS")
	for _, res := range results {
		fmt.Fprintf(tw, "%d\t%.6f\t%v\n", res.Budget, res.ExpectedValue, res.Thresholds)
	}

	return tw.Flush()
}

func writeDisclosure(w io.Writer, dist types.BeliefDistribution, d strategy.Disclosure) error {
	fmt.Fprintf(w, "Objective: %.6f\n\n", d.Objective)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "BELIEF\tPROBABILITY\tP(m1)")
	for i, p := range dist {
		fmt.Fprintf(tw, "%.4f\t%.4f\t%.4f\n", p.Belief, p.Probability, d.Probabilities[i])
	}

	return tw.Flush()
}

// writeMetrics prints the gathered families in the Prometheus text format.
func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Metrics:")
	for _, f := range families {
		if _, err := expfmt.MetricFamilyToText(w, f); err != nil {
			return fmt.Errorf("failed to encode metric family %s: %w", f.GetName(), err)
		}
	}

	return nil
}
